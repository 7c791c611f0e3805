// Package httputil holds the response helpers shared by every handler.
package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "vocprez/pkg/domain-errors"
)

// ErrorResponse is the JSON envelope returned for every failed request.
type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates err into the JSON error envelope. Errors without a
// code become internal errors, and internal descriptions are never echoed.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeInternal
	desc := ""
	if de, ok := dErrors.As(err); ok {
		code = de.Code
		desc = de.Message
	}
	if code.Internal() {
		desc = ""
	}
	WriteJSON(w, dErrors.ToHTTPStatus(code), ErrorResponse{Error: string(code), Description: desc})
}

// WriteBody writes a pre-rendered representation.
func WriteBody(w http.ResponseWriter, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
