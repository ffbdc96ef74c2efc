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

	"github.com/NVIDIA/cdn-mirror/pkg/report"
	"github.com/NVIDIA/cdn-mirror/pkg/version"
)

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Break versions into their parts",
		ArgsUsage: "<version|purl>...",
		Description: `Parse each argument and print its prefix, major, minor, patch, micro,
pre-release and build parts along with every token.

Arguments may be bare versions (v1.2.3-rc.1) or package URLs
(pkg:npm/jquery@3.6.0).`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return fmt.Errorf("at least one version is required")
			}

			opts := parseOptions(cmd)
			refs := make([]version.Reference, 0, len(args))
			for _, arg := range args {
				ref, err := version.ParseReference(arg, opts...)
				if err != nil {
					return fmt.Errorf("failed to parse %q: %w", arg, err)
				}
				slog.Debug("parsed", "input", arg, "canonical", ref.Version.CanonicalValue())
				refs = append(refs, ref)
			}

			return writeDocument(ctx, cmd, report.NewParsedVersions(args, refs, cliVersion))
		},
	}
}
