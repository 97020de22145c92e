// SPDX-License-Identifier: MIT

// Package timecode implements non-drop-frame SMPTE timecode and the
// conversions between timecode and absolute frame numbers. Frame rates are
// exact decimals so fractional rates such as 23.976 or 59.94 round-trip
// without float drift.
package timecode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var sixty = decimal.NewFromInt(60)

// Rate is a frame rate. The zero value is invalid; use one of the
// constructors or DefaultRate.
type Rate struct {
	dec decimal.Decimal
}

// DefaultRate is 24 fps, the customary editorial default.
var DefaultRate = Rate{dec: decimal.NewFromInt(24)}

// NewRate builds a Rate from an integer number of frames per second.
func NewRate(fps int) (Rate, error) {
	if fps <= 0 {
		return Rate{}, fmt.Errorf("%w: %d", ErrInvalidRate, fps)
	}
	return Rate{dec: decimal.NewFromInt(int64(fps))}, nil
}

// NewRateFromFloat builds a Rate from a possibly fractional frames-per-second
// value such as 23.976 or 29.97.
func NewRateFromFloat(fps float64) (Rate, error) {
	if fps <= 0 {
		return Rate{}, fmt.Errorf("%w: %g", ErrInvalidRate, fps)
	}
	return Rate{dec: decimal.NewFromFloat(fps)}, nil
}

// ParseRate parses a decimal frames-per-second string, e.g. "24" or "23.976".
func ParseRate(s string) (Rate, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Rate{}, fmt.Errorf("parse frame rate %q: %w", s, err)
	}
	if !d.IsPositive() {
		return Rate{}, fmt.Errorf("%w: %s", ErrInvalidRate, s)
	}
	return Rate{dec: d}, nil
}

// IsZero reports whether r is the invalid zero value.
func (r Rate) IsZero() bool {
	return r.dec.IsZero()
}

// Float64 returns the rate as a float, for display and JSON payloads.
func (r Rate) Float64() float64 {
	f, _ := r.dec.Float64()
	return f
}

func (r Rate) String() string {
	return r.dec.String()
}

// MarshalText renders the rate as its decimal string, e.g. "23.976".
func (r Rate) MarshalText() ([]byte, error) {
	return []byte(r.dec.String()), nil
}

// splitFrame peels an absolute frame number into timecode fields. Frames,
// seconds and minutes are the remainders of successive divisions; each
// remainder is rounded so fractional rates land on the nearest field value.
func splitFrame(frame int, rate Rate) (hours, minutes, seconds, frames int) {
	secondsTotal := decimal.NewFromInt(int64(frame)).Div(rate.dec)
	frames = int(secondsTotal.Sub(secondsTotal.Truncate(0)).Mul(rate.dec).Round(0).IntPart())
	minutesTotal := secondsTotal.Truncate(0).Div(sixty)
	seconds = int(minutesTotal.Sub(minutesTotal.Truncate(0)).Mul(sixty).Round(0).IntPart())
	hoursTotal := minutesTotal.Truncate(0).Div(sixty)
	minutes = int(hoursTotal.Sub(hoursTotal.Truncate(0)).Mul(sixty).Round(0).IntPart())
	hours = int(hoursTotal.Truncate(0).IntPart())
	return hours, minutes, seconds, frames
}

// joinFrame is the inverse of splitFrame.
func joinFrame(hours, minutes, seconds, frames int, rate Rate) int {
	total := int64(hours)*3600 + int64(minutes)*60 + int64(seconds)
	d := decimal.NewFromInt(total).Mul(rate.dec).Add(decimal.NewFromInt(int64(frames)))
	return int(d.Round(0).IntPart())
}

// FormatFrame renders an absolute frame number as hh:mm:ss:ff. Unlike
// FromFrame it does not range-check the hours field, so frame counts beyond
// a day of footage still format.
func FormatFrame(frame int, rate Rate) (string, error) {
	if rate.IsZero() {
		return "", ErrInvalidRate
	}
	if frame < 0 {
		return "", fmt.Errorf("frame %d: %w", frame, ErrNegativeFrame)
	}
	h, m, s, f := splitFrame(frame, rate)
	return fmt.Sprintf("%02d:%02d:%02d:%02d", h, m, s, f), nil
}

// FrameFromString converts a "hh:mm:ss:ff" string to an absolute frame
// number without validating field ranges.
func FrameFromString(s string, rate Rate) (int, error) {
	if rate.IsZero() {
		return 0, ErrInvalidRate
	}
	fields := strings.Split(strings.TrimSpace(s), ":")
	if len(fields) != 4 {
		return 0, fmt.Errorf("timecode %q is not in hh:mm:ss:ff format", s)
	}
	var v [4]int
	for i, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return 0, fmt.Errorf("timecode %q is not in hh:mm:ss:ff format", s)
		}
		v[i] = n
	}
	return joinFrame(v[0], v[1], v[2], v[3], rate), nil
}

// Timecode is an immutable non-drop-frame timecode at a fixed rate.
type Timecode struct {
	hours   int
	minutes int
	seconds int
	frames  int
	rate    Rate
}

// Parse builds a Timecode from a "hh:mm:ss:ff" string. A plain integer string
// is accepted as an absolute frame number and converted at the given rate.
// Drop-frame separators (";") are rejected.
func Parse(s string, rate Rate) (Timecode, error) {
	if rate.IsZero() {
		return Timecode{}, ErrInvalidRate
	}
	s = strings.TrimSpace(s)
	if strings.Contains(s, ";") {
		return Timecode{}, fmt.Errorf("%q: %w", s, ErrDropFrame)
	}
	fields := strings.Split(s, ":")
	if len(fields) != 4 {
		frame, err := strconv.Atoi(s)
		if err != nil {
			return Timecode{}, fmt.Errorf("timecode %q is not in hh:mm:ss:ff format", s)
		}
		return FromFrame(frame, rate)
	}
	var v [4]int
	for i, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return Timecode{}, fmt.Errorf("timecode %q is not in hh:mm:ss:ff format", s)
		}
		v[i] = n
	}
	return New(v[0], v[1], v[2], v[3], rate)
}

// New validates the individual fields and builds a Timecode. The frames field
// must be smaller than the rate, hours below 24, minutes and seconds below 60.
func New(hours, minutes, seconds, frames int, rate Rate) (Timecode, error) {
	if rate.IsZero() {
		return Timecode{}, ErrInvalidRate
	}
	if hours < 0 || minutes < 0 || seconds < 0 || frames < 0 {
		return Timecode{}, fmt.Errorf("timecode fields must not be negative")
	}
	if decimal.NewFromInt(int64(frames)).GreaterThanOrEqual(rate.dec) {
		return Timecode{}, &FrameRateError{Frame: frames, Rate: rate}
	}
	if hours > 23 {
		return Timecode{}, fmt.Errorf("invalid hours value %d, it must be smaller than 24", hours)
	}
	if minutes > 59 {
		return Timecode{}, fmt.Errorf("invalid minutes value %d, it must be smaller than 60", minutes)
	}
	if seconds > 59 {
		return Timecode{}, fmt.Errorf("invalid seconds value %d, it must be smaller than 60", seconds)
	}
	return Timecode{hours: hours, minutes: minutes, seconds: seconds, frames: frames, rate: rate}, nil
}

// FromFrame converts an absolute frame number to a validated Timecode at the
// given rate.
func FromFrame(frame int, rate Rate) (Timecode, error) {
	if rate.IsZero() {
		return Timecode{}, ErrInvalidRate
	}
	if frame < 0 {
		return Timecode{}, fmt.Errorf("frame %d: %w", frame, ErrNegativeFrame)
	}
	h, m, s, f := splitFrame(frame, rate)
	return New(h, m, s, f, rate)
}

// Frame returns the absolute frame number of t at its rate.
func (t Timecode) Frame() int {
	return joinFrame(t.hours, t.minutes, t.seconds, t.frames, t.rate)
}

// Seconds returns the exact duration of t from zero, in seconds.
func (t Timecode) Seconds() decimal.Decimal {
	return decimal.NewFromInt(int64(t.Frame())).Div(t.rate.dec)
}

// Rate returns the frame rate t was built with.
func (t Timecode) Rate() Rate {
	return t.rate
}

// Add returns a new Timecode advanced by the given number of frames.
func (t Timecode) Add(frames int) (Timecode, error) {
	return FromFrame(t.Frame()+frames, t.rate)
}

// AddTimecode returns a new Timecode advanced by the duration of o. The
// result stays at t's rate.
func (t Timecode) AddTimecode(o Timecode) (Timecode, error) {
	return FromFrame(t.Frame()+o.Frame(), t.rate)
}

// Sub returns a new Timecode moved back by the given number of frames.
// Results before frame zero are an error.
func (t Timecode) Sub(frames int) (Timecode, error) {
	return FromFrame(t.Frame()-frames, t.rate)
}

// SubTimecode returns a new Timecode moved back by the duration of o.
func (t Timecode) SubTimecode(o Timecode) (Timecode, error) {
	return FromFrame(t.Frame()-o.Frame(), t.rate)
}

func (t Timecode) String() string {
	return fmt.Sprintf("%02d:%02d:%02d:%02d", t.hours, t.minutes, t.seconds, t.frames)
}

// MarshalText renders the timecode in hh:mm:ss:ff form, so Timecode fields
// serialise as strings in JSON payloads.
func (t Timecode) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
