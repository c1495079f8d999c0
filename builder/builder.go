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

// Package builder invokes the external dictionary build tool.
//
// The compiled dictionary format and the compilation algorithm live entirely
// in the external tool. This package treats it as an opaque subprocess that
// reads a lexicon directory and writes a dictionary directory.
package builder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	// DefaultJava is the default java executable name.
	DefaultJava = "java"

	// DefaultClass is the command line entry point of the igo dictionary
	// builder.
	DefaultClass = "net.reduls.igo.bin.BuildDic"
)

// Builder builds a binary dictionary directory from a lexicon directory.
type Builder interface {
	// Build compiles the lexicon files in lexiconDir, interpreted in the
	// named text encoding, and writes the dictionary to dictDir.
	Build(ctx context.Context, dictDir, lexiconDir, encoding string) error
}

// JavaBuilder runs the igo dictionary builder's command line entry point in
// a java subprocess.
type JavaBuilder struct {
	// Java is the java executable. Defaults to DefaultJava.
	Java string

	// Classpath is passed to java via -cp. Typically the path to the igo
	// jar. Empty means the classpath is taken from the environment.
	Classpath string

	// Class is the entry point class. Defaults to DefaultClass.
	Class string

	// Stdout and Stderr receive the tool's output. They default to
	// os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Build implements Builder.Build.
func (b *JavaBuilder) Build(ctx context.Context, dictDir, lexiconDir, encoding string) error {
	java := b.Java
	if java == "" {
		java = DefaultJava
	}
	class := b.Class
	if class == "" {
		class = DefaultClass
	}

	var args []string
	if b.Classpath != "" {
		args = append(args, "-cp", b.Classpath)
	}
	args = append(args, class, dictDir, lexiconDir, encoding)

	cmd := exec.CommandContext(ctx, java, args...)
	cmd.Stdout = b.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = b.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	desc := java + " " + strings.Join(args, " ")
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %q: %w", desc, err)
	}
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%q exited with status %d: %w", desc, exitErr.ExitCode(), err)
		}
		return fmt.Errorf("running %q: %w", desc, err)
	}
	return nil
}
