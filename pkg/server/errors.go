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

package server

import (
	"errors"
	"maps"
	"net/http"
	"time"

	"github.com/google/uuid"

	cdnerrors "github.com/NVIDIA/cdn-mirror/pkg/errors"
	"github.com/NVIDIA/cdn-mirror/pkg/serializer"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// HTTPStatusFromCode maps a structured error code to an HTTP status.
func HTTPStatusFromCode(code cdnerrors.ErrorCode) int {
	switch code {
	case cdnerrors.ErrCodeInvalidRequest,
		cdnerrors.ErrCodeInvalidToken,
		cdnerrors.ErrCodeInvalidDelimiter,
		cdnerrors.ErrCodeInvalidMajorToken:
		return http.StatusBadRequest
	case cdnerrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case cdnerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case cdnerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case cdnerrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case cdnerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case cdnerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code cdnerrors.ErrorCode) bool {
	switch code {
	case cdnerrors.ErrCodeTimeout,
		cdnerrors.ErrCodeUnavailable,
		cdnerrors.ErrCodeRateLimitExceeded,
		cdnerrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails returns a new map with b layered over a, or nil if both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}

// WriteError writes a JSON ErrorResponse carrying the request ID from the context.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code cdnerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// WriteErrorFromErr writes err as an ErrorResponse. A StructuredError keeps
// its code, message and context; anything else is reported as INTERNAL with
// fallbackMessage. The root cause, if any, is exposed as details["error"].
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, details map[string]any) {

	var se *cdnerrors.StructuredError
	if errors.As(err, &se) {
		merged := mergeDetails(se.Context, details)
		if se.Cause != nil {
			merged = mergeDetails(merged, map[string]any{"error": se.Cause.Error()})
		}
		WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message,
			retryableFromCode(se.Code), merged)
		return
	}

	merged := details
	if err != nil {
		merged = mergeDetails(details, map[string]any{"error": err.Error()})
	}
	WriteError(w, r, http.StatusInternalServerError, cdnerrors.ErrCodeInternal,
		fallbackMessage, true, merged)
}
