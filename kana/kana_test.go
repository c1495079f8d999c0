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

package kana

import (
	"testing"
)

// TestRomanize tests Romanize.
func TestRomanize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string

		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "katakana",
			input:    "エブリデイワールド",
			expected: "eburideiwārudo",
		},
		{
			name:     "hiragana",
			input:    "ひらがな",
			expected: "hiragana",
		},
		{
			name:     "long vowels",
			input:    "ボールペン",
			expected: "bōrupen",
		},
		{
			name:     "sokuon",
			input:    "ラッパ",
			expected: "rappa",
		},
		{
			name:     "sokuon before chi",
			input:    "マッチ",
			expected: "matchi",
		},
		{
			name:     "digraphs",
			input:    "シャッフル",
			expected: "shaffuru",
		},
		{
			name:     "extended katakana",
			input:    "ファンタジー",
			expected: "fantajī",
		},
		{
			name:     "mixed kana and ascii",
			input:    "太陽のKiss",
			expected: "太陽noKiss",
		},
		{
			name:     "ascii only",
			input:    "U&I",
			expected: "U&I",
		},
		{
			name:     "choonpu without vowel",
			input:    "ー",
			expected: "ー",
		},
		{
			name:     "nfkc folds fullwidth",
			input:    "～テスト～",
			expected: "~tesuto~",
		},
		{
			name:     "kanji untouched",
			input:    "空の境界",
			expected: "空no境界",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if got, want := Romanize(test.input), test.expected; got != want {
				t.Errorf("unexpected romaji; want: %q, got: %q", want, got)
			}
		})
	}
}

// TestRomanize_gemination tests sokuon handling at run boundaries.
func TestRomanize_gemination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string

		expected string
	}{
		{
			name:     "trailing sokuon dropped",
			input:    "アッ",
			expected: "a",
		},
		{
			name:     "sokuon before vowel dropped",
			input:    "ッア",
			expected: "a",
		},
		{
			name:     "sokuon before non-kana dropped",
			input:    "ッx",
			expected: "x",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if got, want := Romanize(test.input), test.expected; got != want {
				t.Errorf("unexpected romaji; want: %q, got: %q", want, got)
			}
		})
	}
}

// TestToKatakana tests hiragana to katakana mapping.
func TestToKatakana(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r        rune
		expected rune
	}{
		{'あ', 'ア'},
		{'ん', 'ン'},
		{'っ', 'ッ'},
		{'ア', 'ア'},
		{'a', 'a'},
		{'漢', '漢'},
	}

	for _, test := range tests {
		if got, want := toKatakana(test.r), test.expected; got != want {
			t.Errorf("toKatakana(%q); want: %q, got: %q", test.r, want, got)
		}
	}
}
