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

package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/transform"
)

// Scanner scans a lexicon file from start to end.
type Scanner struct {
	r     io.ReadCloser
	s     *bufio.Scanner
	entry *Entry
	line  int
	err   error
}

// ScannerOptions are options for scanning a lexicon file.
type ScannerOptions struct {
	// Encoding is the IANA name of the file's text encoding. An empty
	// name means UTF-8.
	Encoding string
}

// DefaultScannerOptions is the default options for a Scanner.
var DefaultScannerOptions = &ScannerOptions{}

// NewScanner returns a new lexicon scanner that scans the file from start to
// end, decoding from the configured encoding. The Scanner assumes ownership
// of the reader and should be closed with the Close method.
func NewScanner(r io.ReadCloser, options *ScannerOptions) (*Scanner, error) {
	if options == nil {
		options = DefaultScannerOptions
	}

	var dec io.Reader = r
	if options.Encoding != "" {
		enc, err := Encoding(options.Encoding)
		if err != nil {
			return nil, err
		}
		dec = transform.NewReader(r, enc.NewDecoder())
	}

	return &Scanner{
		r: r,
		s: bufio.NewScanner(bufio.NewReader(dec)),
	}, nil
}

// Scan advances the scanner to the next entry. It returns false if the scan
// stops either by reaching the end of the file or an error. Blank lines are
// skipped.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.s.Scan() {
		s.line++
		line := strings.TrimSuffix(s.s.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		entry, err := parseEntry(line)
		if err != nil {
			s.err = fmt.Errorf("line %d: %w", s.line, err)
			return false
		}
		s.entry = entry
		return true
	}
	return false
}

// Entry returns the last entry scanned.
func (s *Scanner) Entry() *Entry {
	return s.entry
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	if s.err != nil {
		return s.err
	}
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// Close closes the underlying reader.
func (s *Scanner) Close() error {
	err := s.r.Close()
	if err != nil {
		return fmt.Errorf("closing lexicon file: %w", err)
	}
	return nil
}
