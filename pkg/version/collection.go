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

package version

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"

	"github.com/NVIDIA/cdn-mirror/pkg/defaults"
	cdnerrors "github.com/NVIDIA/cdn-mirror/pkg/errors"
)

// Sort orders vs by ascending precedence. Versions of equal precedence keep
// their relative order.
func Sort(vs []*SoftwareVersion) {
	slices.SortStableFunc(vs, Compare)
}

// SortDescending orders vs by descending precedence.
func SortDescending(vs []*SoftwareVersion) {
	slices.SortStableFunc(vs, func(a, b *SoftwareVersion) int {
		return Compare(b, a)
	})
}

// SortStrings orders version strings by ascending precedence, parsing each
// input once. Blank strings sort first.
func SortStrings(ss []string, opts ...ParseOption) {
	type entry struct {
		raw string
		v   *SoftwareVersion
	}
	entries := make([]entry, len(ss))
	for i, s := range ss {
		entries[i] = entry{raw: s, v: Parse(s, opts...)}
	}
	slices.SortStableFunc(entries, func(a, b entry) int {
		return Compare(a.v, b.v)
	})
	for i, e := range entries {
		ss[i] = e.raw
	}
}

// Latest returns the version with the highest precedence, or nil when vs has
// none. Pre-releases are skipped unless includePreRelease is set. Among
// versions of equal precedence the first one wins.
func Latest(vs []*SoftwareVersion, includePreRelease bool) *SoftwareVersion {
	var latest *SoftwareVersion
	for _, v := range vs {
		if v == nil || (!includePreRelease && v.IsPreRelease()) {
			continue
		}
		if latest == nil || Compare(v, latest) > 0 {
			latest = v
		}
	}
	return latest
}

// Key returns the case-insensitive canonical value of v, suitable as a
// uniqueness key in storage. Two versions with the same Key are
// ExactEquals up to case.
func Key(v *SoftwareVersion) string {
	if v == nil {
		return ""
	}
	return cases.Fold().String(v.CanonicalValue())
}

// Unique returns vs without nil entries and without duplicates by Key,
// keeping the first occurrence.
func Unique(vs []*SoftwareVersion) []*SoftwareVersion {
	fold := cases.Fold()
	seen := make(map[string]struct{}, len(vs))
	out := make([]*SoftwareVersion, 0, len(vs))
	for _, v := range vs {
		if v == nil {
			continue
		}
		k := fold.String(v.CanonicalValue())
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}

// ParseAll parses inputs concurrently with at most limit workers and returns
// the versions in input order. Blank inputs are dropped. A limit below one
// uses defaults.ParseConcurrency.
//
// ParseAll stops early and returns a TIMEOUT error when ctx is done.
func ParseAll(ctx context.Context, inputs []string, limit int, opts ...ParseOption) ([]*SoftwareVersion, error) {
	if limit < 1 {
		limit = defaults.ParseConcurrency
	}

	results := make([]*SoftwareVersion, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for start := 0; start < len(inputs); start += defaults.ParseBatchSize {
		end := min(start+defaults.ParseBatchSize, len(inputs))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				results[i] = Parse(inputs[i], opts...)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, cdnerrors.WrapWithContext(cdnerrors.ErrCodeTimeout, "batch parse canceled", err,
			map[string]any{"count": len(inputs)})
	}
	if err := ctx.Err(); err != nil {
		return nil, cdnerrors.Wrap(cdnerrors.ErrCodeTimeout, "batch parse canceled", err)
	}

	return slices.DeleteFunc(results, func(v *SoftwareVersion) bool { return v == nil }), nil
}
