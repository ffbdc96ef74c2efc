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
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/cdn-mirror/pkg/header"
	"github.com/NVIDIA/cdn-mirror/pkg/report"
)

// run executes the root command with args and returns what it wrote to the
// output file.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := filepath.Join(t.TempDir(), "out")
	argv := append([]string{name, "--log-level", "error", "--output", out}, args...)

	if err := newRootCmd().Run(context.Background(), argv); err != nil {
		return "", err
	}
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	return string(b), nil
}

func TestParseCommand(t *testing.T) {
	out, err := run(t, "--format", "json", "parse", "v1.2.3-rc.1", "pkg:npm/jquery@3.6.0")
	require.NoError(t, err)

	var doc report.ParsedVersions
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "ParsedVersion", doc.Kind.String())
	require.Len(t, doc.Versions, 2)
	assert.Equal(t, "v1.2.3-rc.1", doc.Versions[0].Input)
	assert.Equal(t, "numeric", doc.Versions[0].Variant)
	assert.Equal(t, "jquery", doc.Versions[1].Library)
	assert.Equal(t, "3.6.0", doc.Versions[1].Source)
}

func TestParseCommandYAMLDefault(t *testing.T) {
	out, err := run(t, "parse", "1.0.2k")
	require.NoError(t, err)

	var doc report.ParsedVersions
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Versions, 1)
	assert.Equal(t, "2k", doc.Versions[0].Patch)
}

func TestParseCommandRoman(t *testing.T) {
	out, err := run(t, "--format", "json", "--roman", "parse", "XIV")
	require.NoError(t, err)
	assert.Contains(t, out, `"variant":"numeric"`)

	t.Setenv(envRoman, "false")
	out, err = run(t, "--format", "json", "parse", "XIV")
	require.NoError(t, err)
	assert.Contains(t, out, `"variant":"name"`)
}

func TestParseCommandErrors(t *testing.T) {
	_, err := run(t, "parse")
	assert.ErrorContains(t, err, "at least one version")

	_, err = run(t, "parse", "pkg:npm/jquery")
	assert.ErrorContains(t, err, "pkg:npm/jquery")

	_, err = run(t, "--format", "xml", "parse", "1.0")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestCompareCommand(t *testing.T) {
	tests := []struct {
		a, b   string
		order  int
		equals bool
		newer  bool
	}{
		{"1.10", "1.9", 1, false, true},
		{"v1.2.3", "1.2.3+build.7", 0, true, false},
		{"1.0.0-rc.1", "1.0.0", -1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			out, err := run(t, "--format", "json", "compare", tt.a, tt.b)
			require.NoError(t, err)

			var c report.Comparison
			require.NoError(t, json.Unmarshal([]byte(out), &c))
			assert.Equal(t, tt.order, c.Order)
			assert.Equal(t, tt.equals, c.Equals)
			assert.Equal(t, tt.newer, c.Newer)
		})
	}
}

func TestCompareCommandArgs(t *testing.T) {
	_, err := run(t, "compare", "1.0")
	assert.ErrorContains(t, err, "expected 2 versions")

	_, err = run(t, "compare", "1", "2", "3")
	assert.ErrorContains(t, err, "expected 2 versions")
}

func TestCompareCommandTable(t *testing.T) {
	out, err := run(t, "--format", "table", "compare", "2.0", "10.0")
	require.NoError(t, err)
	assert.Contains(t, out, "ORDER")
	assert.Contains(t, out, "-1")
}

func TestSortCommand(t *testing.T) {
	dir := t.TempDir()
	text := filepath.Join(dir, "versions.txt")
	require.NoError(t, os.WriteFile(text, []byte("# jquery\n3.6.0\n\n3.10.1\n3.6.0-beta.1\n"), 0o600))
	list := filepath.Join(dir, "versions.json")
	require.NoError(t, os.WriteFile(list, []byte(`{"versions":["2.0.0","4.0.0-rc.1","2.0.0"]}`), 0o600))

	tests := []struct {
		name   string
		args   []string
		want   []string
		latest string
	}{
		{
			name: "arguments",
			args: []string{"sort", "1.10", "1.9", "1.9.0-alpha"},
			want: []string{"1.9.0-alpha", "1.9", "1.10"},
		},
		{
			name: "text file plus arguments",
			args: []string{"sort", "--file", text, "2.2.4"},
			want: []string{"2.2.4", "3.6.0-beta.1", "3.6.0", "3.10.1"},
		},
		{
			name:   "json file descending unique latest",
			args:   []string{"sort", "-f", list, "--desc", "--unique", "--latest"},
			want:   []string{"4.0.0-rc.1", "2.0.0"},
			latest: "2.0.0",
		},
		{
			name:   "latest pre-release",
			args:   []string{"sort", "--latest", "--pre", "1.0", "2.0-rc.1"},
			want:   []string{"1.0", "2.0-rc.1"},
			latest: "2.0-rc.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"--format", "json"}, tt.args...)...)
			require.NoError(t, err)

			var l report.VersionList
			require.NoError(t, json.Unmarshal([]byte(out), &l))
			assert.Equal(t, tt.want, l.Versions)
			assert.Equal(t, tt.latest, l.Latest)
		})
	}
}

func TestSortCommandRecordsSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "versions.txt")
	require.NoError(t, os.WriteFile(path, []byte("1.1\n1.0\n"), 0o600))

	out, err := run(t, "--format", "json", "sort", "--file", path)
	require.NoError(t, err)

	var l report.VersionList
	require.NoError(t, json.Unmarshal([]byte(out), &l))
	assert.Equal(t, path, l.Metadata[header.MetadataSource])
	assert.Equal(t, []string{"1.0", "1.1"}, l.Versions)

	out, err = run(t, "--format", "json", "sort", "2", "1")
	require.NoError(t, err)
	var args report.VersionList
	require.NoError(t, json.Unmarshal([]byte(out), &args))
	_, ok := args.Metadata[header.MetadataSource]
	assert.False(t, ok)
}

func TestSortCommandErrors(t *testing.T) {
	_, err := run(t, "sort")
	assert.ErrorContains(t, err, "no versions given")

	_, err = run(t, "sort", "--file", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "failed to read versions")
}

func TestFormatFromEnvironment(t *testing.T) {
	t.Setenv(envFormat, "json")

	out, err := run(t, "compare", "1", "2")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), out)
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd()
	assert.Equal(t, name, root.Name)
	assert.NotEmpty(t, root.Version)

	var names []string
	for _, c := range root.Commands {
		names = append(names, c.Name)
		assert.NotNil(t, c.Action, c.Name)
	}
	assert.Equal(t, []string{"parse", "compare", "sort"}, names)

	for _, flag := range []string{"log-level", "format", "output", "roman"} {
		found := false
		for _, f := range root.Flags {
			if hasName(f, flag) {
				found = true
			}
		}
		assert.True(t, found, "missing flag %q", flag)
	}
}

func TestCommandLister(_ *testing.T) {
	commandLister(context.Background(), nil)
	commandLister(context.Background(), &cli.Command{Name: "test"})
	commandLister(context.Background(), &cli.Command{
		Name: "root",
		Commands: []*cli.Command{
			{Name: "visible", Hidden: false},
			{Name: "hidden", Hidden: true},
		},
	})
}

func hasName(f cli.Flag, name string) bool {
	for _, n := range f.Names() {
		if n == name {
			return true
		}
	}
	return false
}
