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
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStats are statistics for a single lexicon file.
type FileStats struct {
	// Path is the file's path relative to the scanned directory.
	Path string

	// Entries is the number of word entries in the file.
	Entries int

	// Size is the file size in bytes.
	Size int64
}

// Stats are statistics for a lexicon directory.
type Stats struct {
	// Files are per-file statistics ordered by path.
	Files []FileStats

	// Entries is the total number of word entries.
	Entries int

	// Size is the total size in bytes of all lexicon files.
	Size int64
}

// DirStats scans all lexicon files (.tsv or .csv) under dir and returns
// entry counts and sizes. Scanning stops at the first malformed file.
func DirStats(dir string, options *ScannerOptions) (*Stats, error) {
	var stats Stats
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch filepath.Ext(d.Name()) {
		case ".tsv", ".csv":
		default:
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		fileStats, err := fileStats(path, rel, options)
		if err != nil {
			return err
		}

		stats.Files = append(stats.Files, *fileStats)
		stats.Entries += fileStats.Entries
		stats.Size += fileStats.Size
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning lexicon %q: %w", dir, err)
	}
	return &stats, nil
}

func fileStats(path, rel string, options *ScannerOptions) (*FileStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	s, err := NewScanner(f, options)
	if err != nil {
		f.Close()
		return nil, err
	}
	defer s.Close()

	stats := FileStats{
		Path: rel,
	}
	for s.Scan() {
		stats.Entries++
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", rel, err)
	}

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	stats.Size = info.Size()

	return &stats, nil
}
