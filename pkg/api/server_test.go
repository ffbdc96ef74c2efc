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
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/cdn-mirror/pkg/defaults"
	cdnerrors "github.com/NVIDIA/cdn-mirror/pkg/errors"
	"github.com/NVIDIA/cdn-mirror/pkg/report"
	"github.com/NVIDIA/cdn-mirror/pkg/server"
)

func TestConstants(t *testing.T) {
	assert.Equal(t, "cdnverd", name)
	assert.Equal(t, "dev", versionDefault)
	assert.NotEmpty(t, serverVersion)
	assert.NotEmpty(t, commit)
	assert.NotEmpty(t, date)
}

func TestRoutes(t *testing.T) {
	routes := Routes(NewHandler("test", 0))
	require.Len(t, routes, 3)
	for _, path := range []string{"/v1/parse", "/v1/compare", "/v1/sort"} {
		assert.NotNil(t, routes[path], path)
	}
}

func TestNewHandlerDefaults(t *testing.T) {
	h := NewHandler("test", 0)
	assert.Equal(t, defaults.MaxBulkRequests, h.MaxBulkRequests)
	assert.Equal(t, 5, NewHandler("test", 5).MaxBulkRequests)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) server.ErrorResponse {
	t.Helper()
	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func TestHandleParse(t *testing.T) {
	h := NewHandler("test", 0)

	q := url.Values{}
	q.Add("v", "v1.2.3-rc.1")
	q.Add("v", "pkg:maven/org.webjars/bootstrap@5.3.2-1")
	req := httptest.NewRequest(http.MethodGet, "/v1/parse?"+q.Encode(), nil)
	w := httptest.NewRecorder()

	h.HandleParse(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Cache-Control"), "max-age=")

	var doc report.ParsedVersions
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "ParsedVersion", doc.Kind.String())
	require.Len(t, doc.Versions, 2)
	assert.Equal(t, "v", doc.Versions[0].Prefix)
	assert.True(t, doc.Versions[0].IsPreRelease)
	assert.Equal(t, "maven", doc.Versions[1].Type)
	assert.Equal(t, "org.webjars/bootstrap", doc.Versions[1].Library)
	assert.Equal(t, "5", doc.Versions[1].Major)
	assert.Equal(t, "pkg:maven/org.webjars/bootstrap@5.3.2-1", doc.Versions[1].Input)
}

func TestHandleParseRoman(t *testing.T) {
	h := NewHandler("test", 0)

	for _, tt := range []struct {
		query   string
		variant string
	}{
		{"v=XIV", "name"},
		{"v=XIV&roman=true", "numeric"},
	} {
		w := httptest.NewRecorder()
		h.HandleParse(w, httptest.NewRequest(http.MethodGet, "/v1/parse?"+tt.query, nil))
		require.Equal(t, http.StatusOK, w.Code)

		var doc report.ParsedVersions
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
		require.Len(t, doc.Versions, 1)
		assert.Equal(t, tt.variant, doc.Versions[0].Variant, tt.query)
	}
	assert.Empty(t, h.Options, "per-request option must not leak into the handler")
}

func TestHandleParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		status int
		code   cdnerrors.ErrorCode
	}{
		{"missing v", http.MethodGet, "/v1/parse", http.StatusBadRequest, cdnerrors.ErrCodeInvalidRequest},
		{"blank v", http.MethodGet, "/v1/parse?v=%20", http.StatusBadRequest, cdnerrors.ErrCodeInvalidRequest},
		{"purl without version", http.MethodGet, "/v1/parse?v=pkg:npm/jquery", http.StatusBadRequest, cdnerrors.ErrCodeInvalidRequest},
		{"too many", http.MethodGet, "/v1/parse?v=1&v=2&v=3", http.StatusBadRequest, cdnerrors.ErrCodeInvalidRequest},
		{"wrong method", http.MethodPost, "/v1/parse?v=1", http.StatusMethodNotAllowed, cdnerrors.ErrCodeMethodNotAllowed},
	}

	h := NewHandler("test", 2)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.HandleParse(w, httptest.NewRequest(tt.method, tt.target, nil))

			require.Equal(t, tt.status, w.Code, w.Body.String())
			assert.Equal(t, string(tt.code), decodeError(t, w).Code)
		})
	}
}

func TestHandleCompare(t *testing.T) {
	tests := []struct {
		a, b   string
		order  int
		equals bool
		exact  bool
		newer  bool
	}{
		{"1.10", "1.9", 1, false, false, true},
		{"v1.2.3", "1.2.3+build.7", 0, true, false, false},
		{"1.0.0-alpha", "1.0.0", -1, false, false, false},
		{"latest", "latest", 0, true, true, false},
		{"pkg:cdnjs/jquery@3.7.1", "3.6.0", 1, false, false, true},
	}

	h := NewHandler("test", 0)
	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			q := url.Values{"a": {tt.a}, "b": {tt.b}}
			w := httptest.NewRecorder()
			h.HandleCompare(w, httptest.NewRequest(http.MethodGet, "/v1/compare?"+q.Encode(), nil))
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var c report.Comparison
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
			assert.Equal(t, tt.order, c.Order)
			assert.Equal(t, tt.equals, c.Equals)
			assert.Equal(t, tt.exact, c.ExactEquals)
			assert.Equal(t, tt.newer, c.Newer)
		})
	}
}

func TestHandleCompareErrors(t *testing.T) {
	h := NewHandler("test", 0)

	for _, target := range []string{"/v1/compare", "/v1/compare?a=1", "/v1/compare?b=1", "/v1/compare?a=1&b=pkg:npm/jquery"} {
		w := httptest.NewRecorder()
		h.HandleCompare(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}

	w := httptest.NewRecorder()
	h.HandleCompare(w, httptest.NewRequest(http.MethodDelete, "/v1/compare?a=1&b=2", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, http.MethodGet, w.Header().Get("Allow"))
}

func TestHandleSort(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		versions    []string
		latest      string
	}{
		{
			name:        "ascending json",
			body:        `{"versions":["3.10.1","3.6.0","","3.6.0-beta.1","2.2.4"]}`,
			contentType: "application/json",
			versions:    []string{"2.2.4", "3.6.0-beta.1", "3.6.0", "3.10.1"},
		},
		{
			name:        "descending unique with latest",
			body:        `{"versions":["1.0.0","4.0.0-rc.1","1.0.0","2.0.0"],"descending":true,"unique":true,"latest":true}`,
			contentType: "application/json; charset=utf-8",
			versions:    []string{"4.0.0-rc.1", "2.0.0", "1.0.0"},
			latest:      "2.0.0",
		},
		{
			name:        "yaml body with pre-release latest",
			body:        "versions:\n  - 1.0.0\n  - 4.0.0-rc.1\nlatest: true\npreRelease: true\n",
			contentType: "application/yaml",
			versions:    []string{"1.0.0", "4.0.0-rc.1"},
			latest:      "4.0.0-rc.1",
		},
		{
			name:        "empty list",
			body:        `{"versions":[]}`,
			contentType: "",
			versions:    []string{},
		},
	}

	h := NewHandler("test", 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/sort", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			w := httptest.NewRecorder()

			h.HandleSort(w, req)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var l report.VersionList
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &l))
			assert.Equal(t, "VersionList", l.Kind.String())
			assert.Equal(t, tt.versions, l.Versions)
			assert.Equal(t, len(tt.versions), l.Count)
			assert.Equal(t, tt.latest, l.Latest)
		})
	}
}

func TestHandleSortErrors(t *testing.T) {
	h := NewHandler("test", 3)

	tests := []struct {
		name   string
		method string
		body   string
		status int
	}{
		{"empty body", http.MethodPost, "", http.StatusBadRequest},
		{"invalid json", http.MethodPost, "{invalid}", http.StatusBadRequest},
		{"missing versions", http.MethodPost, `{"descending":true}`, http.StatusBadRequest},
		{"too many", http.MethodPost, `{"versions":["1","2","3","4"]}`, http.StatusBadRequest},
		{"wrong method", http.MethodGet, "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/sort", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			h.HandleSort(w, req)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestHandleSortBodyTooLarge(t *testing.T) {
	h := NewHandler("test", 0)

	body := `{"versions":["` + strings.Repeat("1", defaults.MaxRequestBodyBytes) + `"]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/sort", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.HandleSort(w, req)
	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, string(cdnerrors.ErrCodeInvalidRequest), decodeError(t, w).Code)
}

func TestRoutesThroughServer(t *testing.T) {
	s := server.New(server.WithHandler(Routes(NewHandler("test", 0))))
	h := s.Handler()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/compare?a=2&b=10", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	assert.Equal(t, server.DefaultAPIVersion, w.Header().Get("X-API-Version"))
}

func TestConcurrentRequests(t *testing.T) {
	h := NewHandler("test", 0)

	var wg sync.WaitGroup
	errs := make(chan string, 50)
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			target := fmt.Sprintf("/v1/compare?a=1.%d&b=1.%d", i, i+1)
			w := httptest.NewRecorder()
			h.HandleCompare(w, httptest.NewRequest(http.MethodGet, target, nil))
			if w.Code != http.StatusOK {
				errs <- fmt.Sprintf("%s: status %d", target, w.Code)
				return
			}
			var c report.Comparison
			if err := json.Unmarshal(w.Body.Bytes(), &c); err != nil || c.Order != -1 {
				errs <- fmt.Sprintf("%s: order %d err %v", target, c.Order, err)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Error(e)
	}
}
