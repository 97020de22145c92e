// SPDX-License-Identifier: MIT
package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldRequestID = "request_id"
	FieldJobID     = "job_id"

	// Process fields
	FieldComponent = "component"

	// Editorial fields
	FieldSource = "source"
	FieldFPS    = "fps"
	FieldPath   = "path"
)
