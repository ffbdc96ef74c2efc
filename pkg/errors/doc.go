// Package errors provides structured error types used across the version
// engine, its CLI and its HTTP service.
//
// Construction-time contract violations in the token model carry one of the
// validation codes (ErrCodeInvalidToken, ErrCodeInvalidDelimiter,
// ErrCodeInvalidMajorToken). They are programmer errors: the parser never
// produces them for textual input.
//
// Example usage:
//
//	tok, err := token.NewRoman("")
//	if errors.IsCode(err, errors.ErrCodeInvalidToken) {
//	    // handle
//	}
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "failed to read version list",
//	    cause,
//	    map[string]any{
//	        "path": path,
//	    },
//	)
package errors
