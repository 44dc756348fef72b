// Package httputil centralizes JSON encoding and domain error translation for
// HTTP handlers. Keeping the envelope in one place ensures every endpoint
// speaks the same error dialect.
package httputil

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	dErrors "vigil/pkg/domain-errors"
)

// Validatable is implemented by request DTOs that validate and parse
// themselves after JSON decoding.
type Validatable interface {
	Validate() error
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into an HTTP response. Internal errors
// omit the description so infrastructure details never reach clients.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)

	body := map[string]string{"error": string(code)}
	if code != dErrors.CodeInternal {
		if msg := dErrors.MessageOf(err); msg != "" {
			body["error_description"] = msg
		}
	}

	WriteJSON(w, httpStatus(code), body)
}

// DecodeAndPrepare decodes the request body into T, validates it, and writes
// the error response on failure. Handlers use the second return value to
// short-circuit:
//
//	req, ok := httputil.DecodeAndPrepare[ScreenRequest](w, r, logger, ctx, requestID)
//	if !ok {
//		return
//	}
func DecodeAndPrepare[T any, P interface {
	*T
	Validatable
}](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (P, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if logger != nil {
			logger.WarnContext(ctx, "request body decode failed",
				"request_id", requestID,
				"error", err,
			)
		}
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "request body must be valid JSON"))
		return nil, false
	}

	p := P(&req)
	if err := p.Validate(); err != nil {
		if logger != nil {
			logger.WarnContext(ctx, "request validation failed",
				"request_id", requestID,
				"error", err,
			)
		}
		WriteError(w, err)
		return nil, false
	}

	return p, true
}

func httpStatus(code dErrors.Code) int {
	switch code {
	case dErrors.CodeBadRequest, dErrors.CodeValidation:
		return http.StatusBadRequest
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case dErrors.CodeForbidden:
		return http.StatusForbidden
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeConflict:
		return http.StatusConflict
	case dErrors.CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
