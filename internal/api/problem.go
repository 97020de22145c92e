// SPDX-License-Identifier: MIT
package api

import (
	"encoding/json"
	"net/http"
)

// Stable machine-readable error codes returned in problem bodies.
const (
	codeInvalidBody     = "invalid_body"
	codeInvalidRate     = "invalid_rate"
	codeInvalidRegexp   = "invalid_regexp"
	codeUnsupportedEDL  = "unsupported_edl"
	codeParseFailed     = "parse_failed"
	codeInvalidTimecode = "invalid_timecode"
)

type problem struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeProblem emits a JSON error body with a stable code, so clients can
// branch without matching message text.
func writeProblem(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(problem{Code: code, Message: message})
}

// writeJSON emits a success body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
