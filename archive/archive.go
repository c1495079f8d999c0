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

// Package archive implements zip packaging of compiled dictionaries.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/klauspost/compress/flate"
)

// ErrInsecurePath indicates an archive member whose name cannot be safely
// extracted.
var ErrInsecurePath = errors.New("insecure path in archive")

// Create archives dir into a deflate-compressed zip file at zipPath. Member
// names are rooted at dir's base name so that the archive extracts to a
// single top-level directory.
func Create(zipPath, dir string) error {
	f, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("creating archive %q: %w", zipPath, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		//nolint:wrapcheck // error is returned via the zip writer.
		return flate.NewWriter(out, flate.BestCompression)
	})

	root := filepath.Base(filepath.Clean(dir))
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		name := path.Join(root, filepath.ToSlash(rel))
		if d.IsDir() {
			_, err := zw.Create(name + "/")
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		return addFile(zw, name, p)
	})
	if err != nil {
		return fmt.Errorf("archiving %q: %w", dir, err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing archive %q: %w", zipPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing archive %q: %w", zipPath, err)
	}
	return nil
}

func addFile(zw *zip.Writer, name, p string) error {
	info, err := os.Lstat(p)
	if err != nil {
		return err
	}

	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	hdr.Name = name
	hdr.Method = zip.Deflate

	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return err
	}

	f, err := os.Open(p)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(w, f)
	return err
}

// ExtractFile extracts the zip archive at zipPath flat into outDir. See
// Extract.
func ExtractFile(zipPath, outDir string) error {
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return fmt.Errorf("opening archive %q: %w", zipPath, err)
	}
	defer zr.Close()

	return extract(&zr.Reader, outDir)
}

// Extract extracts a zip archive flat into outDir: directory entries are
// skipped and only the base name of each member is used, so nested members
// land directly in outDir. This is the layout a dictionary loader expects
// when staging a dictionary into a scratch directory.
func Extract(r io.ReaderAt, size int64, outDir string) error {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return fmt.Errorf("reading archive: %w", err)
	}
	return extract(zr, outDir)
}

func extract(zr *zip.Reader, outDir string) error {
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}

		name := path.Base(path.Clean(f.Name))
		if name == "." || name == ".." || name == "/" {
			return fmt.Errorf("%w: %q", ErrInsecurePath, f.Name)
		}

		if err := extractFile(f, filepath.Join(outDir, name)); err != nil {
			return fmt.Errorf("extracting %q: %w", f.Name, err)
		}
	}
	return nil
}

func extractFile(f *zip.File, outPath string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return err
	}
	return out.Close()
}
