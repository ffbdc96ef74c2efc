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

// Package cli implements the cdnver command-line tool.
//
// # Overview
//
// cdnver parses, compares and sorts the library versions published on CDN
// mirrors. It accepts bare versions (v1.2.3-rc.1, 2016-01-02, 1.0.2k,
// latest) and package URLs (pkg:npm/jquery@3.6.0).
//
// # Commands
//
// parse - Break versions into their parts:
//
//	cdnver parse v1.2.3-rc.1+sha.7 pkg:cdnjs/jquery@3.6.0
//
// compare - Compare two versions:
//
//	cdnver --format table compare 1.10 1.9
//
// Prints the order (-1, 0, 1), precedence equality, exact equality and
// whether the first version is newer.
//
// sort - Sort versions oldest first:
//
//	cdnver sort --file versions.txt --desc --unique --latest
//
// --file accepts a local path, an HTTP(S) URL, or - for stdin.
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--roman        Detect upper-case roman numerals
//	--log-level    Logging verbosity (debug, info, warn, error)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	CDNVER_FORMAT  Default for --format
//	CDNVER_OUTPUT  Default for --output
//	CDNVER_ROMAN   Default for --roman
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//	2  Context canceled or timeout
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/cdn-mirror/pkg/cli.cliVersion=1.0.0'"
package cli
