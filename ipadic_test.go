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

package ipadic_test

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	ipadic "github.com/ianlewis/go-ipadic"
	"github.com/ianlewis/go-ipadic/internal/testutil"
	"github.com/ianlewis/go-ipadic/lexicon"
)

// fakeBuilder stands in for the external dictionary builder. It records its
// arguments and writes fixture dictionary files to the dictionary directory.
type fakeBuilder struct {
	dictDir    string
	lexiconDir string
	encoding   string

	err error
}

func (b *fakeBuilder) Build(_ context.Context, dictDir, lexiconDir, encoding string) error {
	b.dictDir = dictDir
	b.lexiconDir = lexiconDir
	b.encoding = encoding

	if b.err != nil {
		return b.err
	}

	if err := os.MkdirAll(dictDir, 0o750); err != nil {
		return err
	}
	for _, name := range []string{"word2id", "word.dat", "matrix.bin"} {
		if err := os.WriteFile(filepath.Join(dictDir, name), []byte(name), 0o600); err != nil {
			return err
		}
	}
	return nil
}

// TestBuild tests that Build produces an archive and removes the
// intermediate directory.
func TestBuild(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	lexiconDir := filepath.Join(dir, "lexicon")
	if err := os.MkdirAll(lexiconDir, 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(
		filepath.Join(lexiconDir, "noun.tsv"),
		testutil.EncodeEUCJP(testutil.MakeLexicon([]*lexicon.Entry{
			{Surface: "夕日", LeftID: 1285, RightID: 1285, Cost: 6278},
		})),
		0o600,
	); err != nil {
		t.Fatal(err)
	}

	c := &ipadic.Config{
		LexiconDir: lexiconDir,
		DictDir:    filepath.Join(dir, "ipadic"),
		Output:     filepath.Join(dir, "ipadic.zip"),
	}

	// A stale archive from a previous build is replaced.
	if err := os.WriteFile(c.Output, []byte("stale"), 0o600); err != nil {
		t.Fatal(err)
	}

	b := &fakeBuilder{}
	if err := ipadic.Build(context.Background(), b, c); err != nil {
		t.Fatal(err)
	}

	if got, want := b.dictDir, c.DictDir; got != want {
		t.Errorf("unexpected dict dir; want: %q, got: %q", want, got)
	}
	if got, want := b.lexiconDir, lexiconDir; got != want {
		t.Errorf("unexpected lexicon dir; want: %q, got: %q", want, got)
	}
	if got, want := b.encoding, ipadic.DefaultEncoding; got != want {
		t.Errorf("unexpected encoding; want: %q, got: %q", want, got)
	}

	// The intermediate directory is removed.
	if _, err := os.Stat(c.DictDir); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("dict dir still exists: %v", err)
	}

	// The archive is a valid non-empty zip.
	zr, err := zip.OpenReader(c.Output)
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()

	var names []string
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		names = append(names, f.Name)
	}

	expected := []string{
		"ipadic/matrix.bin",
		"ipadic/word.dat",
		"ipadic/word2id",
	}
	if diff := cmp.Diff(expected, names); diff != "" {
		t.Errorf("unexpected archive members (-want +got):\n%s", diff)
	}
}

// TestBuild_builderError tests that a failing builder aborts the build.
func TestBuild_builderError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	c := &ipadic.Config{
		LexiconDir: filepath.Join(dir, "lexicon"),
		DictDir:    filepath.Join(dir, "ipadic"),
		Output:     filepath.Join(dir, "ipadic.zip"),
	}

	wantErr := fmt.Errorf("builder failed")
	b := &fakeBuilder{err: wantErr}

	err := ipadic.Build(context.Background(), b, c)
	if !errors.Is(err, wantErr) {
		t.Fatalf("unexpected error: %v", err)
	}

	// No archive is produced on failure.
	if _, err := os.Stat(c.Output); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("unexpected archive: %v", err)
	}
}

// TestConfig_Validate tests validation and defaults.
func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		config *ipadic.Config

		expected *ipadic.Config
		err      error
	}{
		{
			name: "defaults",
			config: &ipadic.Config{
				LexiconDir: "lexicon",
			},

			expected: &ipadic.Config{
				LexiconDir: "lexicon",
				DictDir:    "ipadic",
				Output:     "ipadic.zip",
				Encoding:   "EUC-JP",
			},
		},
		{
			name: "output from dict dir",
			config: &ipadic.Config{
				LexiconDir: "lexicon",
				DictDir:    "mydict",
			},

			expected: &ipadic.Config{
				LexiconDir: "lexicon",
				DictDir:    "mydict",
				Output:     "mydict.zip",
				Encoding:   "EUC-JP",
			},
		},
		{
			name:   "missing lexicon dir",
			config: &ipadic.Config{},

			err: ipadic.ErrConfig,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			err := test.config.Validate()
			if got, want := err, test.err; !errors.Is(got, want) {
				t.Fatalf("unexpected error; want: %v, got: %v", want, got)
			}
			if test.err != nil {
				return
			}

			if diff := cmp.Diff(test.expected, test.config); diff != "" {
				t.Errorf("unexpected config (-want +got):\n%s", diff)
			}
		})
	}
}

// TestLoadConfig tests reading a config file.
func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "build.yaml")
	body := `lexicon_dir: mecab-ipadic-2.7.0-20070801
dict_dir: ipadic
output: ipadic.zip
encoding: EUC-JP
jar: lib/igo-0.4.3.jar
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := ipadic.LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	expected := &ipadic.Config{
		LexiconDir: "mecab-ipadic-2.7.0-20070801",
		DictDir:    "ipadic",
		Output:     "ipadic.zip",
		Encoding:   "EUC-JP",
		Jar:        "lib/igo-0.4.3.jar",
	}
	if diff := cmp.Diff(expected, c); diff != "" {
		t.Errorf("unexpected config (-want +got):\n%s", diff)
	}
}

// TestLoadConfig_notFound tests that a missing config file is an error.
func TestLoadConfig_notFound(t *testing.T) {
	t.Parallel()

	_, err := ipadic.LoadConfig(filepath.Join(t.TempDir(), "no-such.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("unexpected error: %v", err)
	}
}
