// SPDX-License-Identifier: MIT
package timecode

import (
	"errors"
	"fmt"
)

var (
	// ErrDropFrame classifies timecodes using the drop-frame separator (";").
	// Only non-drop-frame timecode is supported.
	ErrDropFrame = errors.New("drop frame timecode is not supported")

	// ErrNegativeFrame classifies arithmetic results that fall before frame zero.
	ErrNegativeFrame = errors.New("frame number must not be negative")

	// ErrInvalidRate classifies frame rates that are zero or negative.
	ErrInvalidRate = errors.New("frame rate must be greater than zero")
)

// FrameRateError reports a frames field that is not valid at a given rate,
// e.g. frame 24 at 24 fps. Callers can retrieve the offending values with
// errors.As.
type FrameRateError struct {
	Frame int
	Rate  Rate
}

func (e *FrameRateError) Error() string {
	return fmt.Sprintf("invalid frame value %d, it must be smaller than the frame rate %s", e.Frame, e.Rate)
}
