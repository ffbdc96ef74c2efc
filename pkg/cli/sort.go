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
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cdn-mirror/pkg/defaults"
	"github.com/NVIDIA/cdn-mirror/pkg/header"
	"github.com/NVIDIA/cdn-mirror/pkg/report"
	"github.com/NVIDIA/cdn-mirror/pkg/serializer"
	"github.com/NVIDIA/cdn-mirror/pkg/version"
)

func sortCmd() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Usage:     "Sort versions oldest first",
		ArgsUsage: "[version...]",
		Description: `Sort versions given as arguments and/or read from --file.

The file may be a local path, an HTTP(S) URL, or - for stdin. Files ending
in .json, .yaml or .yml hold a list of strings or an object with a
"versions" list; anything else is read one version per line, skipping blank
lines and lines starting with #.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "read versions from a file, URL, or - for stdin",
			},
			&cli.BoolFlag{
				Name:  "desc",
				Usage: "sort newest first",
			},
			&cli.BoolFlag{
				Name:  "unique",
				Usage: "drop duplicate versions, ignoring case",
			},
			&cli.BoolFlag{
				Name:  "latest",
				Usage: "report the newest release",
			},
			&cli.BoolFlag{
				Name:  "pre",
				Usage: "let --latest pick a pre-release",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			inputs, err := collectInputs(ctx, cmd)
			if err != nil {
				return err
			}
			if len(inputs) == 0 {
				return fmt.Errorf("no versions given; pass arguments or --file")
			}

			vs, err := version.ParseAll(ctx, inputs, defaults.ParseConcurrency, parseOptions(cmd)...)
			if err != nil {
				return fmt.Errorf("failed to parse versions: %w", err)
			}

			if cmd.Bool("unique") {
				vs = version.Unique(vs)
			}
			if cmd.Bool("desc") {
				version.SortDescending(vs)
			} else {
				version.Sort(vs)
			}
			slog.Debug("sorted versions", "received", len(inputs), "returned", len(vs))

			doc := report.NewVersionList(vs, cliVersion)
			doc.Annotate(header.MetadataSource, cmd.String("file"))
			if cmd.Bool("latest") {
				doc.WithLatest(version.Latest(vs, cmd.Bool("pre")))
			}
			return writeDocument(ctx, cmd, doc)
		},
	}
}

// collectInputs returns the command arguments followed by the entries of
// --file, if set.
func collectInputs(ctx context.Context, cmd *cli.Command) ([]string, error) {
	inputs := cmd.Args().Slice()

	path := cmd.String("file")
	if path == "" {
		return inputs, nil
	}

	readCtx, cancel := context.WithTimeout(ctx, defaults.CLIReadTimeout)
	defer cancel()

	lines, err := serializer.ReadLines(readCtx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read versions from %q: %w", path, err)
	}
	return append(inputs, lines...), nil
}
