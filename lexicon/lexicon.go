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

// Package lexicon implements reading morphological analyzer lexicon files.
//
// Lexicon files are tab-separated text files, one word entry per line, in a
// legacy encoding such as EUC-JP. Each line has at least four fields: the
// surface form, the left and right context IDs, and the connection cost.
// Any remaining fields are feature values (part of speech, reading, and so
// on) that are passed through to the dictionary builder uninterpreted.
package lexicon

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// ErrInvalidEntry indicates a malformed lexicon line.
var ErrInvalidEntry = errors.New("invalid lexicon entry")

// ErrUnknownEncoding indicates an unknown or unsupported encoding name.
var ErrUnknownEncoding = errors.New("unknown encoding")

// Entry is a single word entry in a lexicon file.
type Entry struct {
	// Surface is the surface form of the word.
	Surface string

	// LeftID is the left context ID.
	LeftID int

	// RightID is the right context ID.
	RightID int

	// Cost is the word's connection cost.
	Cost int

	// Features are the entry's remaining feature fields.
	Features []string
}

// Encoding resolves an encoding by its IANA registry name (e.g. "EUC-JP",
// "Shift_JIS").
func Encoding(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnknownEncoding, name, err)
	}
	// The index returns a nil encoding for names that are registered but
	// not supported.
	if enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// parseEntry parses a single non-empty lexicon line.
func parseEntry(line string) (*Entry, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: expected at least 4 fields, got %d", ErrInvalidEntry, len(fields))
	}

	surface := fields[0]
	if surface == "" {
		return nil, fmt.Errorf("%w: empty surface form", ErrInvalidEntry)
	}

	leftID, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: bad left context ID %q", ErrInvalidEntry, fields[1])
	}

	rightID, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("%w: bad right context ID %q", ErrInvalidEntry, fields[2])
	}

	cost, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, fmt.Errorf("%w: bad cost %q", ErrInvalidEntry, fields[3])
	}

	return &Entry{
		Surface:  surface,
		LeftID:   leftID,
		RightID:  rightID,
		Cost:     cost,
		Features: fields[4:],
	}, nil
}
