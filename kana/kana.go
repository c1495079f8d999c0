// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package kana implements Hepburn romanization of Japanese kana.
//
// Katakana and hiragana runs are transliterated in place and all other text
// is left untouched. Long vowels marked with the chōonpu (ー) are rendered
// with a macron (ā, ī, ū, ē, ō). The result is normalized to NFKC, which
// also folds full-width punctuation to its ASCII equivalents.
package kana

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	sokuon  = 'ッ'
	choonpu = 'ー'

	// Combining macron. NFKC composes it with the preceding vowel.
	macron = '\u0304'
)

// Romanize transliterates all kana in s to romaji.
func Romanize(s string) string {
	var b strings.Builder

	// lastSyl is the romaji of the most recent kana syllable. It is reset
	// whenever non-kana text passes through so a chōonpu never reaches
	// across non-kana runes.
	var lastSyl string
	// geminate is set when a sokuon is waiting for the next syllable.
	var geminate bool

	writeSyl := func(syl string) {
		if geminate {
			if c := geminationPrefix(syl); c != "" {
				b.WriteString(c)
			}
			geminate = false
		}
		b.WriteString(syl)
		lastSyl = syl
	}

	runes := []rune(s)
	for i := 0; i < len(runes); {
		r := toKatakana(runes[i])

		switch {
		case r == sokuon:
			geminate = true
			i++
		case r == choonpu:
			if endsWithVowel(lastSyl) {
				b.WriteRune(macron)
			} else {
				b.WriteRune(runes[i])
				lastSyl = ""
			}
			i++
		case isKatakana(r):
			if i+1 < len(runes) {
				next := toKatakana(runes[i+1])
				if syl, ok := digraphs[string([]rune{r, next})]; ok {
					writeSyl(syl)
					i += 2
					continue
				}
			}
			if syl, ok := singles[r]; ok {
				writeSyl(syl)
			} else {
				b.WriteRune(runes[i])
				lastSyl = ""
			}
			i++
		default:
			geminate = false
			b.WriteRune(runes[i])
			lastSyl = ""
			i++
		}
	}

	return norm.NFKC.String(b.String())
}

// geminationPrefix returns the consonant a sokuon doubles before syl, or
// empty if the sokuon is dropped (e.g. before a vowel).
func geminationPrefix(syl string) string {
	if syl == "" {
		return ""
	}
	// ッチ is "tchi", not "cchi".
	if strings.HasPrefix(syl, "ch") {
		return "t"
	}
	switch syl[0] {
	case 'a', 'i', 'u', 'e', 'o', 'n':
		return ""
	}
	return syl[:1]
}

func endsWithVowel(syl string) bool {
	if syl == "" {
		return false
	}
	switch syl[len(syl)-1] {
	case 'a', 'i', 'u', 'e', 'o':
		return true
	}
	return false
}

// toKatakana maps hiragana to the corresponding katakana and returns all
// other runes unchanged.
func toKatakana(r rune) rune {
	if r >= 'ぁ' && r <= 'ゖ' {
		return r + ('ァ' - 'ぁ')
	}
	return r
}

// isKatakana reports whether r is a katakana letter.
func isKatakana(r rune) bool {
	return r >= 'ァ' && r <= 'ヺ'
}
