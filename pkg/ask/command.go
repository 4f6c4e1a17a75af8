// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ask

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shayne/yargs"
)

// Command is the program metadata shown by --help and --version.
type Command struct {
	Name     string
	Version  string
	About    string
	Examples []string
}

func (c Command) name() string {
	if c.Name != "" {
		return c.Name
	}
	return filepath.Base(os.Args[0])
}

func (c Command) helpConfig() yargs.HelpConfig {
	return yargs.HelpConfig{
		Command: yargs.CommandInfo{
			Name:        c.name(),
			Description: c.About,
			Examples:    c.Examples,
		},
	}
}

func (c Command) versionText() string {
	return c.name() + " " + c.Version + "\n"
}

var (
	helpLine    = fmt.Sprintf("%-28s %s\n", "    -h, --help", "Show help")
	versionLine = fmt.Sprintf("%-28s %s\n", "    -V, --version", "Show version")
)

// helpText renders the usage of a command whose flags are the fields of T.
func helpText[T any](c Command, llm bool) string {
	var flags T
	cfg := c.helpConfig()
	if llm {
		return yargs.GenerateGlobalHelpLLM(cfg, flags)
	}
	name := cfg.Command.Name
	h := yargs.GenerateGlobalHelp(cfg, flags)
	// There are no subcommands.
	h = strings.Replace(h, name+" [OPTIONS] COMMAND [ARGS...]", name+" [OPTIONS]", 1)
	h = strings.Replace(h, "GLOBAL OPTIONS:", "OPTIONS:", 1)
	if c.Version != "" && !definesFlag[T]("version", "V") {
		h = strings.Replace(h, helpLine, helpLine+versionLine, 1)
	}
	if i := strings.Index(h, "Run '"+name+" COMMAND --help'"); i >= 0 {
		h = h[:i]
	}
	return strings.TrimRight(h, "\n") + "\n"
}
