// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Askflags generates argument parsers that prompt for missing required
// values. It is meant to be run by go generate:
//
//	//go:generate go run github.com/yeetrun/askflags/cmd/askflags
//
// With no arguments it processes $GOFILE. Arguments may name Go files or
// directories; in a directory every file with an //askflags:command
// directive is processed.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/charmbracelet/log"
	"github.com/yeetrun/askflags/pkg/ask"
	"github.com/yeetrun/askflags/pkg/askgen"
	"github.com/yeetrun/askflags/pkg/fileutil"
	"golang.org/x/sync/errgroup"
)

const version = "0.3.0"

var command = ask.Command{
	Name:    "askflags",
	Version: version,
	About:   "Generate argument parsers that prompt for missing required values",
	Examples: []string{
		"//go:generate go run github.com/yeetrun/askflags/cmd/askflags",
		"askflags ./cmd/myapp",
		"askflags -type Cli -output cli_gen.go main.go",
		"askflags -check ./...",
	},
}

type flags struct {
	Types   []string `flag:"type" short:"t" help:"Types to generate, comma separated (default: types with an //askflags:command directive)"`
	Output  string   `flag:"output" short:"o" help:"Output file name; requires a single input file"`
	Suffix  string   `flag:"suffix" help:"Suffix replacing .go in output file names (default: _askflags.go)"`
	Runtime string   `flag:"runtime" help:"Import path of the prompt runtime"`
	Header  string   `flag:"header" help:"Comment written above the generated code"`
	Config  string   `flag:"config" short:"c" help:"Config file (default: nearest askflags.toml or askflags.yaml)"`
	Check   bool     `flag:"check" help:"Report out of date files without writing them"`
	Verbose bool     `flag:"verbose" short:"v" help:"Log every file"`
}

var errStale = errors.New("generated files are out of date")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stderr); err != nil {
		ask.Exit(command, err)
	}
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "askflags",
		Level:  level,
	})
}

func run(ctx context.Context, args []string, logw io.Writer) error {
	f, inputs, err := ask.ParseFlags[flags](args, command)
	if err != nil {
		return err
	}
	logger := newLogger(logw, f.Verbose)

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(f.Config, cwd)
	if err != nil {
		return err
	}
	if cfg != nil {
		logger.Debug("Loaded config", "path", cfg.Path)
		for _, k := range cfg.Undecoded {
			logger.Warn("Unknown config key", "path", cfg.Path, "key", k)
		}
	}
	s := resolveSettings(f, cfg)

	if len(inputs) == 0 {
		gofile := os.Getenv("GOFILE")
		if gofile == "" {
			return errors.New("no input files: name files or directories, or run from go generate")
		}
		inputs = []string{gofile}
	}
	jobs, err := planJobs(inputs, s)
	if err != nil {
		return err
	}
	logger.Debug("Planned generation", "files", len(jobs))

	g := &generator{settings: s, logger: logger, found: make(map[string]bool)}
	return g.run(ctx, jobs)
}

// job is one source file and the file generated from it.
type job struct {
	src string
	dst string
	// scanned is set for files found in a directory, which are skipped
	// quietly when they have nothing to generate.
	scanned bool
}

func outputName(src, suffix string) string {
	return strings.TrimSuffix(src, ".go") + suffix
}

// planJobs expands inputs into jobs in a stable order.
func planJobs(inputs []string, s settings) ([]job, error) {
	var jobs []job
	for _, in := range inputs {
		if strings.HasSuffix(in, "/...") {
			root := strings.TrimSuffix(in, "/...")
			err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() {
					return nil
				}
				if path != root && skipDir(d.Name()) {
					return filepath.SkipDir
				}
				found, err := scanDir(path, s.Suffix)
				if err != nil {
					return err
				}
				jobs = append(jobs, found...)
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}
		st, err := os.Stat(in)
		if err != nil {
			return nil, err
		}
		if st.IsDir() {
			found, err := scanDir(in, s.Suffix)
			if err != nil {
				return nil, err
			}
			jobs = append(jobs, found...)
			continue
		}
		jobs = append(jobs, job{src: in, dst: outputName(in, s.Suffix)})
	}
	if s.Output != "" {
		if len(jobs) != 1 || jobs[0].scanned {
			return nil, errors.New("-output requires exactly one input file")
		}
		out := s.Output
		if !filepath.IsAbs(out) && filepath.Dir(out) == "." {
			out = filepath.Join(filepath.Dir(jobs[0].src), out)
		}
		jobs[0].dst = out
	}
	seen := make(map[string]bool)
	jobs = slices.DeleteFunc(jobs, func(j job) bool {
		if seen[j.src] {
			return true
		}
		seen[j.src] = true
		return false
	})
	return jobs, nil
}

func skipDir(name string) bool {
	return name == "testdata" || name == "vendor" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

// scanDir lists the non-test, non-generated Go files of dir.
func scanDir(dir, suffix string) ([]job, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var jobs []job
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") {
			continue
		}
		if strings.HasSuffix(name, "_test.go") || strings.HasSuffix(name, suffix) {
			continue
		}
		src := filepath.Join(dir, name)
		jobs = append(jobs, job{src: src, dst: outputName(src, suffix), scanned: true})
	}
	return jobs, nil
}

type generator struct {
	settings settings
	logger   *log.Logger

	mu    sync.Mutex
	stale []string
	found map[string]bool
}

func (g *generator) run(ctx context.Context, jobs []job) error {
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))
	for _, j := range jobs {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return g.generate(j)
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}
	for _, t := range g.settings.Types {
		if !g.found[t] {
			return fmt.Errorf("%w: %s", askgen.ErrTypeNotFound, t)
		}
	}
	if len(g.stale) > 0 {
		slices.Sort(g.stale)
		return fmt.Errorf("%w: %s", errStale, strings.Join(g.stale, ", "))
	}
	return nil
}

func (g *generator) generate(j job) error {
	res, err := askgen.Generate(j.src, nil, askgen.Options{
		Types:       g.settings.Types,
		Runtime:     g.settings.Runtime,
		Header:      g.settings.Header,
		SkipMissing: j.scanned,
	})
	if err != nil {
		if errors.Is(err, askgen.ErrNoTypes) {
			if j.scanned {
				return nil
			}
			return fmt.Errorf("%s: %w", j.src, err)
		}
		return err
	}
	g.mu.Lock()
	for _, d := range res.Decls {
		g.found[d.Name] = true
	}
	g.mu.Unlock()
	for _, d := range res.Decls {
		if v := d.Command.Version; v != "" {
			if _, err := semver.NewVersion(v); err != nil {
				g.logger.Warn("Command version is not a semantic version", "type", d.Name, "version", v)
			}
		}
	}

	if g.settings.Check {
		same, err := fileutil.SameContent(j.dst, res.Source)
		if err != nil {
			return err
		}
		if !same {
			g.logger.Warn("Out of date", "file", j.dst)
			g.mu.Lock()
			g.stale = append(g.stale, j.dst)
			g.mu.Unlock()
		}
		return nil
	}

	wrote, err := fileutil.WriteIfChanged(j.dst, res.Source, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", j.dst, err)
	}
	if wrote {
		g.logger.Info("Generated", "file", j.dst, "types", len(res.Decls))
	} else {
		g.logger.Debug("Unchanged", "file", j.dst)
	}
	return nil
}
