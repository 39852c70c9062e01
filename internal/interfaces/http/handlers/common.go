// Package handlers contains the HTTP handlers for the analysis service.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/K-dessa/VHM-api-sub000/pkg/errors"
	"github.com/K-dessa/VHM-api-sub000/pkg/types/common"
)

// writeJSON writes data wrapped in the standard response envelope.
func writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, data any) {
	resp := common.APIResponse[any]{
		Success:   statusCode < 400,
		Data:      data,
		RequestID: chimw.GetReqID(r.Context()),
		Timestamp: common.NewTimestamp(),
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

// writeError maps an error to its HTTP status via the error-code table and
// writes the envelope.  Unknown errors are masked as internal failures so
// upstream details never leak to callers.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := errors.HTTPStatusForCode(code)

	message := errors.DefaultMessageForCode(code)
	if appErr, ok := err.(*errors.AppError); ok {
		message = appErr.Message
		if appErr.RetryAfter > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(appErr.RetryAfter))
		}
	}

	resp := common.APIResponse[any]{
		Success: false,
		Error: &common.ErrorDetail{
			Code:    string(code),
			Message: message,
		},
		RequestID: chimw.GetReqID(r.Context()),
		Timestamp: common.NewTimestamp(),
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

//Personal.AI order the ending
