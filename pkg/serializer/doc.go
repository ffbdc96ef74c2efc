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

// Package serializer encodes cdn-mirror documents and reads version lists.
//
// # Overview
//
// Parsed versions, comparisons and sorted version lists are written as JSON,
// YAML or a terminal table. Version lists are read from files, URLs or stdin
// for the sort command.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, indented output
//   - Used for API responses and scripting
//
// YAML:
//   - Human-readable, gopkg.in/yaml.v3
//
// Table:
//   - Column table for documents implementing Tabular
//   - FIELD/VALUE rows, flattened by json tag, for everything else
//   - Write-only (no deserialization support)
//
// # Usage - Encoding
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, doc); err != nil {
//	    return err
//	}
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, doc)
//
// # Usage - Decoding
//
// Version lists:
//
//	lines, err := serializer.ReadLines(ctx, "versions.txt")  // one per line
//	lines, err := serializer.ReadLines(ctx, "versions.json") // ["1.0", "1.1"]
//	lines, err := serializer.ReadLines(ctx, "-")             // stdin
//
// Structured documents:
//
//	doc, err := serializer.FromFile[version.Document](ctx, "parsed.yaml")
//
// # Format Detection
//
// File extension-based detection:
//   - .json → JSON
//   - .yaml, .yml → YAML
//   - .table, .txt → Table
//   - Other → JSON (default) for FromFile, plain lines for ReadLines
//
// # Resource Management
//
// Writers and readers backed by files must be closed. Close is safe to call
// more than once and on stdout writers.
package serializer
