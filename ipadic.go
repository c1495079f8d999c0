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

package ipadic

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ianlewis/go-ipadic/archive"
	"github.com/ianlewis/go-ipadic/builder"
)

const (
	// DefaultEncoding is the lexicon encoding used when none is
	// configured. IPA dictionary source distributions are EUC-JP.
	DefaultEncoding = "EUC-JP"

	// DefaultDictDir is the intermediate dictionary directory used when
	// none is configured.
	DefaultDictDir = "ipadic"
)

// ErrConfig indicates an invalid build configuration.
var ErrConfig = errors.New("invalid config")

// Config describes a dictionary build.
type Config struct {
	// LexiconDir is the directory containing the lexicon source files.
	LexiconDir string `yaml:"lexicon_dir"`

	// DictDir is the intermediate directory the external builder writes
	// the compiled dictionary to. Defaults to DefaultDictDir.
	DictDir string `yaml:"dict_dir,omitempty"`

	// Output is the path of the output zip archive. Defaults to DictDir +
	// ".zip".
	Output string `yaml:"output,omitempty"`

	// Encoding is the IANA name of the lexicon text encoding. Defaults to
	// DefaultEncoding.
	Encoding string `yaml:"encoding,omitempty"`

	// Java is the java executable used to run the external builder.
	Java string `yaml:"java,omitempty"`

	// Jar is the path to the dictionary builder jar.
	Jar string `yaml:"jar,omitempty"`
}

// LoadConfig reads a build configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}
	return &c, nil
}

// Validate checks the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.LexiconDir == "" {
		return fmt.Errorf("%w: missing lexicon_dir", ErrConfig)
	}
	if c.DictDir == "" {
		c.DictDir = DefaultDictDir
	}
	if c.Output == "" {
		c.Output = c.DictDir + ".zip"
	}
	if c.Encoding == "" {
		c.Encoding = DefaultEncoding
	}
	return nil
}

// Builder returns the external builder described by the configuration.
func (c *Config) Builder() builder.Builder {
	return &builder.JavaBuilder{
		Java:      c.Java,
		Classpath: c.Jar,
	}
}

// Build builds and packages a dictionary. The previous output archive is
// removed, the external builder compiles the lexicon into the dictionary
// directory, the directory is archived to the output path, and finally the
// directory is removed. The first failing step aborts the build.
func Build(ctx context.Context, b builder.Builder, c *Config) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if err := os.Remove(c.Output); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing stale archive %q: %w", c.Output, err)
	}

	if err := b.Build(ctx, c.DictDir, c.LexiconDir, c.Encoding); err != nil {
		return fmt.Errorf("building dictionary: %w", err)
	}

	if err := archive.Create(c.Output, c.DictDir); err != nil {
		return err
	}

	if err := os.RemoveAll(c.DictDir); err != nil {
		return fmt.Errorf("removing %q: %w", c.DictDir, err)
	}

	return nil
}
