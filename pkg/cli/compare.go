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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cdn-mirror/pkg/report"
	"github.com/NVIDIA/cdn-mirror/pkg/version"
)

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "Compare two versions",
		ArgsUsage: "<a> <b>",
		Description: `Compare a with b and print the order (-1, 0 or 1), whether they have
equal precedence, whether they are exactly equal, and whether a is newer.

Precedence ignores the prefix and build metadata, so v1.2.3 and
1.2.3+build.7 are equal but not exactly equal.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("expected 2 versions, got %d", cmd.Args().Len())
			}

			opts := parseOptions(cmd)
			refs := make([]version.Reference, 0, 2)
			for _, arg := range cmd.Args().Slice() {
				ref, err := version.ParseReference(arg, opts...)
				if err != nil {
					return fmt.Errorf("failed to parse %q: %w", arg, err)
				}
				refs = append(refs, ref)
			}

			return writeDocument(ctx, cmd, report.NewComparison(refs[0], refs[1], cliVersion))
		},
	}
}
