// SPDX-License-Identifier: MIT
package edl

import (
	"errors"
	"fmt"
)

var (
	// ErrDropFrame classifies EDLs declaring FCM: DROP FRAME. Only
	// non-drop-frame lists are supported.
	ErrDropFrame = errors.New("drop frame EDLs are not supported")

	// ErrBlackSlug classifies black slug (BL) events, which are not supported.
	ErrBlackSlug = errors.New("black slug (BL) events are not supported")

	// ErrUnexpectedRetime classifies M2 retime lines that appear before any edit.
	ErrUnexpectedRetime = errors.New("retime line found before any edit")

	// ErrUnexpectedEffect classifies transition events that appear before any edit.
	ErrUnexpectedEffect = errors.New("effect event found before any edit")

	// ErrMalformedEvent classifies event lines with too few tokens to carry
	// reel, channels, transition and four timecodes.
	ErrMalformedEvent = errors.New("malformed event line")
)

// ParseError wraps a parse failure with the source name, line number and the
// offending line, so a bad EDL can be located in a batch.
type ParseError struct {
	Source string
	Line   int
	Text   string
	Err    error
}

func (e *ParseError) Error() string {
	source := e.Source
	if source == "" {
		source = "edl"
	}
	return fmt.Sprintf("%s:%d: %v (line: %q)", source, e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
