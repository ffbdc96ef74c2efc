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

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/cdn-mirror/pkg/defaults"
	cdnerrors "github.com/NVIDIA/cdn-mirror/pkg/errors"
	"github.com/NVIDIA/cdn-mirror/pkg/report"
	"github.com/NVIDIA/cdn-mirror/pkg/serializer"
	"github.com/NVIDIA/cdn-mirror/pkg/server"
	"github.com/NVIDIA/cdn-mirror/pkg/version"
)

// Handler serves the version endpoints.
type Handler struct {
	// Version is stamped into every response header.
	Version string

	// MaxBulkRequests bounds the number of versions in one request.
	MaxBulkRequests int

	// Options apply to every parse. The roman query parameter adds
	// version.WithRomanNumerals per request.
	Options []version.ParseOption
}

// NewHandler returns a Handler. A non-positive maxBulk uses
// defaults.MaxBulkRequests.
func NewHandler(toolVersion string, maxBulk int) *Handler {
	if maxBulk <= 0 {
		maxBulk = defaults.MaxBulkRequests
	}
	return &Handler{
		Version:         toolVersion,
		MaxBulkRequests: maxBulk,
	}
}

// SortRequest is the body of POST /v1/sort.
type SortRequest struct {
	Versions   []string `json:"versions" yaml:"versions"`
	Descending bool     `json:"descending,omitempty" yaml:"descending,omitempty"`
	Unique     bool     `json:"unique,omitempty" yaml:"unique,omitempty"`

	// Latest adds the newest version to the response.
	Latest bool `json:"latest,omitempty" yaml:"latest,omitempty"`

	// PreRelease lets Latest pick a pre-release.
	PreRelease bool `json:"preRelease,omitempty" yaml:"preRelease,omitempty"`
}

// HandleParse serves GET /v1/parse?v=<version|purl>. The v parameter may be
// repeated.
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.ParseHandlerTimeout)
	defer cancel()

	inputs := r.URL.Query()["v"]
	if len(inputs) == 0 {
		server.WriteError(w, r, http.StatusBadRequest, cdnerrors.ErrCodeInvalidRequest,
			"Missing query parameter", false, map[string]any{"parameter": "v"})
		return
	}
	if !h.withinLimit(w, r, len(inputs)) {
		return
	}

	opts := h.parseOptions(r)
	refs := make([]version.Reference, 0, len(inputs))
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			server.WriteErrorFromErr(w, r,
				cdnerrors.Wrap(cdnerrors.ErrCodeTimeout, "parse request timed out", err),
				"Failed to parse versions", nil)
			return
		}
		ref, err := version.ParseReference(in, opts...)
		if err != nil {
			server.WriteErrorFromErr(w, r, err, "Failed to parse version", map[string]any{"input": in})
			return
		}
		server.ObserveParsed(ref.Version.Variant().String())
		refs = append(refs, ref)
	}

	setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, report.NewParsedVersions(inputs, refs, h.Version))
}

// HandleCompare serves GET /v1/compare?a=<version>&b=<version>.
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	opts := h.parseOptions(r)

	refs := make([]version.Reference, 0, 2)
	for _, param := range []string{"a", "b"} {
		in := q.Get(param)
		if strings.TrimSpace(in) == "" {
			server.WriteError(w, r, http.StatusBadRequest, cdnerrors.ErrCodeInvalidRequest,
				"Missing query parameter", false, map[string]any{"parameter": param})
			return
		}
		ref, err := version.ParseReference(in, opts...)
		if err != nil {
			server.WriteErrorFromErr(w, r, err, "Failed to parse version", map[string]any{"parameter": param})
			return
		}
		server.ObserveParsed(ref.Version.Variant().String())
		refs = append(refs, ref)
	}

	setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, report.NewComparison(refs[0], refs[1], h.Version))
}

// HandleSort serves POST /v1/sort with a JSON or YAML SortRequest body.
// Blank entries are dropped.
func (h *Handler) HandleSort(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.SortHandlerTimeout)
	defer cancel()

	req, err := decodeSortRequest(http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes),
		r.Header.Get("Content-Type"))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			server.WriteError(w, r, http.StatusRequestEntityTooLarge, cdnerrors.ErrCodeInvalidRequest,
				"Request body too large", false, map[string]any{"limit": tooLarge.Limit})
			return
		}
		server.WriteError(w, r, http.StatusBadRequest, cdnerrors.ErrCodeInvalidRequest,
			"Invalid sort request", false, map[string]any{"error": err.Error()})
		return
	}
	if !h.withinLimit(w, r, len(req.Versions)) {
		return
	}

	buildCtx, buildCancel := context.WithTimeout(ctx, defaults.SortBuildTimeout)
	defer buildCancel()

	vs, err := version.ParseAll(buildCtx, req.Versions, defaults.ParseConcurrency, h.parseOptions(r)...)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to parse versions", nil)
		return
	}
	for _, v := range vs {
		server.ObserveParsed(v.Variant().String())
	}
	for range len(req.Versions) - len(vs) {
		server.ObserveParsed(server.VariantEmpty)
	}

	if req.Unique {
		vs = version.Unique(vs)
	}
	if req.Descending {
		version.SortDescending(vs)
	} else {
		version.Sort(vs)
	}

	slog.Debug("sorted versions",
		"requestID", server.RequestID(r.Context()),
		"received", len(req.Versions),
		"returned", len(vs),
	)

	doc := report.NewVersionList(vs, h.Version)
	if req.Latest {
		doc.WithLatest(version.Latest(vs, req.PreRelease))
	}
	serializer.RespondJSON(w, http.StatusOK, doc)
}

func (h *Handler) parseOptions(r *http.Request) []version.ParseOption {
	opts := h.Options
	if roman, err := strconv.ParseBool(r.URL.Query().Get("roman")); err == nil && roman {
		opts = append(opts[:len(opts):len(opts)], version.WithRomanNumerals())
	}
	return opts
}

func (h *Handler) withinLimit(w http.ResponseWriter, r *http.Request, n int) bool {
	if n <= h.MaxBulkRequests {
		return true
	}
	server.WriteError(w, r, http.StatusBadRequest, cdnerrors.ErrCodeInvalidRequest,
		"Too many versions in request", false, map[string]any{
			"count": n,
			"max":   h.MaxBulkRequests,
		})
	return false
}

func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	server.WriteError(w, r, http.StatusMethodNotAllowed, cdnerrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": []string{method},
		})
	return false
}

func setCacheHeaders(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(defaults.ResponseCacheTTL.Seconds())))
}

// decodeSortRequest reads a SortRequest as YAML when contentType says so,
// and as JSON otherwise.
func decodeSortRequest(body io.Reader, contentType string) (*SortRequest, error) {
	if body == nil {
		return nil, fmt.Errorf("request body cannot be nil")
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("request body is empty")
	}

	ct := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = strings.TrimSpace(ct[:idx])
	}

	var req SortRequest
	switch ct {
	case "application/x-yaml", "application/yaml", "text/yaml":
		if err := yaml.Unmarshal(data, &req); err != nil {
			return nil, fmt.Errorf("failed to parse YAML body: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &req); err != nil {
			return nil, fmt.Errorf("failed to parse JSON body: %w", err)
		}
	}

	if req.Versions == nil {
		return nil, fmt.Errorf("versions is required")
	}
	return &req, nil
}
