// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cdn-mirror/pkg/logging"
	"github.com/NVIDIA/cdn-mirror/pkg/serializer"
)

const (
	name           = "cdnver"
	versionDefault = "dev"

	envFormat = "CDNVER_FORMAT"
	envOutput = "CDNVER_OUTPUT"
	envRoman  = "CDNVER_ROMAN"
)

var (
	// overridden during build with ldflags
	cliVersion = versionDefault
	commit     = "unknown"
	date       = "unknown"
)

// Execute runs the root command with the process arguments and exits
// non-zero on failure. This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().Run(ctx, os.Args)
	stop()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, err)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		os.Exit(2)
	}
	os.Exit(1)
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Parse, compare and sort CDN library versions",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", cliVersion, commit, date),
		EnableShellCompletion: true,
		Description: `cdnver understands the versions found on CDN library mirrors: semantic
versions, dates, lettered patches like 1.0.2k, names like "latest", and
package URLs such as pkg:npm/jquery@3.6.0.

Versions are ordered numerically, never lexically, and pre-releases sort
before their release.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   string(serializer.FormatYAML),
				Usage:   fmt.Sprintf("output format (supported: %v)", serializer.SupportedFormats()),
				Sources: cli.EnvVars(envFormat),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output file path (default: stdout)",
				Sources: cli.EnvVars(envOutput),
			},
			&cli.BoolFlag{
				Name:    "roman",
				Usage:   "detect upper-case roman numerals such as XIV",
				Sources: cli.EnvVars(envRoman),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, cliVersion, cmd.String("log-level"))
			return ctx, nil
		},
		ShellComplete: commandLister,
		Commands: []*cli.Command{
			parseCmd(),
			compareCmd(),
			sortCmd(),
		},
	}
}

// commandLister prints the visible subcommands of cmd, one per line.
func commandLister(_ context.Context, cmd *cli.Command) {
	if cmd == nil {
		return
	}
	for _, c := range cmd.Commands {
		if c.Hidden {
			continue
		}
		fmt.Println(c.Name)
	}
}
