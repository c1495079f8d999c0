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

// Package testutil provides test fixtures for dictionary builds.
package testutil

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/japanese"

	"github.com/ianlewis/go-ipadic/lexicon"
)

// MakeLexicon makes a UTF-8 lexicon file body from a list of entries.
func MakeLexicon(entries []*lexicon.Entry) []byte {
	var b strings.Builder
	for _, e := range entries {
		fields := []string{
			e.Surface,
			strconv.Itoa(e.LeftID),
			strconv.Itoa(e.RightID),
			strconv.Itoa(e.Cost),
		}
		fields = append(fields, e.Features...)
		b.WriteString(strings.Join(fields, "\t"))
		b.WriteString("\n")
	}
	return []byte(b.String())
}

// EncodeEUCJP encodes a UTF-8 file body as EUC-JP.
func EncodeEUCJP(b []byte) []byte {
	out, err := japanese.EUCJP.NewEncoder().Bytes(b)
	if err != nil {
		panic(fmt.Sprintf("encoding EUC-JP: %v", err))
	}
	return out
}
