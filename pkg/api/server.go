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
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/NVIDIA/cdn-mirror/pkg/logging"
	"github.com/NVIDIA/cdn-mirror/pkg/server"
	"github.com/NVIDIA/cdn-mirror/pkg/version"
)

const (
	name           = "cdnverd"
	versionDefault = "dev"

	// EnvRoman enables roman numeral detection for every request.
	EnvRoman = "CDNVER_ROMAN"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/cdn-mirror/pkg/api.serverVersion=1.0.0"
	serverVersion = versionDefault
	commit        = "unknown"
	date          = "unknown"
)

// Routes returns the application routes served by h.
func Routes(h *Handler) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/parse":   h.HandleParse,
		"/v1/compare": h.HandleCompare,
		"/v1/sort":    h.HandleSort,
	}
}

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, serverVersion)
	slog.Info("starting",
		"name", name,
		"version", serverVersion,
		"commit", commit,
		"date", date,
	)

	cfg := server.NewConfig()
	cfg.Name = name
	cfg.Version = serverVersion

	h := NewHandler(serverVersion, cfg.MaxBulkRequests)
	if roman, err := strconv.ParseBool(os.Getenv(EnvRoman)); err == nil && roman {
		h.Options = append(h.Options, version.WithRomanNumerals())
	}

	s := server.New(
		server.WithConfig(cfg),
		server.WithHandler(Routes(h)),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
