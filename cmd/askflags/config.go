// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const defaultSuffix = "_askflags.go"

// configNames are looked for, in order, in the working directory and its
// parents.
var configNames = []string{"askflags.toml", ".askflags.toml", "askflags.yaml", "askflags.yml"}

// fileConfig is the content of an askflags config file.
type fileConfig struct {
	Types      []string `toml:"types,omitempty" yaml:"types,omitempty"`
	Suffix     string   `toml:"suffix,omitempty" yaml:"suffix,omitempty"`
	Runtime    string   `toml:"runtime,omitempty" yaml:"runtime,omitempty"`
	Header     string   `toml:"header,omitempty" yaml:"header,omitempty"`
	HeaderFile string   `toml:"header_file,omitempty" yaml:"header_file,omitempty"`
}

type configLocation struct {
	Path   string
	Config fileConfig
	// Undecoded lists keys present in the file that askflags does not know.
	Undecoded []string
}

// loadConfig reads the config file at path, or the nearest one found from
// dir upwards when path is empty. It returns nil when there is none.
func loadConfig(path, dir string) (*configLocation, error) {
	if path == "" {
		p, err := findConfigPath(dir)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, nil
			}
			return nil, err
		}
		path = p
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	loc := &configLocation{Path: path}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(content), &loc.Config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		for _, k := range md.Undecoded() {
			loc.Undecoded = append(loc.Undecoded, k.String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(&loc.Config); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (want .toml, .yaml or .yml)", ext)
	}
	if loc.Config.HeaderFile != "" {
		hf := loc.Config.HeaderFile
		if !filepath.IsAbs(hf) {
			hf = filepath.Join(filepath.Dir(path), hf)
		}
		b, err := os.ReadFile(hf)
		if err != nil {
			return nil, fmt.Errorf("failed to read header file: %w", err)
		}
		if loc.Config.Header == "" {
			loc.Config.Header = string(b)
		}
	}
	return loc, nil
}

func findConfigPath(startDir string) (string, error) {
	dir := filepath.Clean(startDir)
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			} else if !os.IsNotExist(err) {
				return "", err
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// settings is the effective configuration of a run.
type settings struct {
	Types   []string
	Suffix  string
	Runtime string
	Header  string
	Output  string
	Check   bool
}

// resolveSettings layers command line flags over the config file.
func resolveSettings(f flags, cfg *configLocation) settings {
	s := settings{Suffix: defaultSuffix, Output: f.Output, Check: f.Check}
	if cfg != nil {
		c := cfg.Config
		s.Types = slices.Clone(c.Types)
		if c.Suffix != "" {
			s.Suffix = c.Suffix
		}
		s.Runtime = c.Runtime
		s.Header = c.Header
	}
	if len(f.Types) > 0 {
		s.Types = splitList(f.Types)
	}
	if f.Suffix != "" {
		s.Suffix = f.Suffix
	}
	if f.Runtime != "" {
		s.Runtime = f.Runtime
	}
	if f.Header != "" {
		s.Header = f.Header
	}
	return s
}

// splitList flattens comma separated values and drops empty entries.
func splitList(vals []string) []string {
	var out []string
	for _, v := range vals {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
