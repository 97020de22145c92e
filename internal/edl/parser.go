// SPDX-License-Identifier: MIT
package edl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"edlkit/internal/log"
	"edlkit/internal/timecode"
)

// Visitor is called once per edit, after all of its follower lines have been
// attached. Returning an error aborts the parse.
type Visitor func(ctx context.Context, edit *Edit) error

type options struct {
	rate    timecode.Rate
	visitor Visitor
	source  string
}

// Option customises a parse.
type Option func(*options)

// WithRate sets the frame rate edits are parsed at. Defaults to 24 fps.
func WithRate(rate timecode.Rate) Option {
	return func(o *options) { o.rate = rate }
}

// WithVisitor registers a callback invoked for each completed edit.
func WithVisitor(v Visitor) Option {
	return func(o *options) { o.visitor = v }
}

// WithSourceName sets the source name used in parse error messages. ParseFile
// sets it to the file path automatically.
func WithSourceName(name string) Option {
	return func(o *options) { o.source = name }
}

// ParseFile parses the EDL document at path.
func ParseFile(ctx context.Context, path string, opts ...Option) (*EditList, error) {
	path = filepath.Clean(path)
	f, err := os.Open(path) // #nosec G304 -- path comes from caller-controlled configuration
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	opts = append([]Option{WithSourceName(path)}, opts...)
	return Parse(ctx, f, opts...)
}

// Parse reads a CMX 3600 document from r. The parse is line oriented: TITLE
// and FCM headers, numbered event lines, then M2 retimes and "*" comments
// attaching to the event above them. Token counts vary mid-line between
// editing systems, so the four timecodes are taken from the end of each
// event line.
func Parse(ctx context.Context, r io.Reader, opts ...Option) (*EditList, error) {
	o := options{rate: timecode.DefaultRate}
	for _, opt := range opts {
		opt(&o)
	}
	logger := log.WithComponentFromContext(ctx, "edl")
	logger.Info().Str(log.FieldSource, o.source).Str(log.FieldFPS, o.rate.String()).Msg("parsing EDL")

	list := &EditList{Rate: o.rate, Edits: []*Edit{}}
	var current *Edit

	finish := func(line int, text string) error {
		if current == nil || o.visitor == nil {
			return nil
		}
		if err := o.visitor(ctx, current); err != nil {
			return &ParseError{Source: o.source, Line: line, Text: text, Err: err}
		}
		return nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		// Some Windows tools append a stray DOS EOF byte.
		line := strings.TrimSpace(strings.ReplaceAll(scanner.Text(), "\x1a", ""))
		if line == "" {
			continue
		}
		logger.Debug().Int("line", lineNo).Str("text", line).Msg("parsing line")
		tokens := strings.Fields(line)

		switch {
		case strings.HasPrefix(line, "TITLE:"):
			list.Title = strings.TrimSpace(strings.TrimPrefix(line, "TITLE:"))

		case strings.HasPrefix(line, "FCM:"):
			mode := strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(line, "FCM:")))
			if strings.Contains(mode, "DROP FRAME") && !strings.HasPrefix(mode, "NON") {
				return nil, &ParseError{Source: o.source, Line: lineNo, Text: line, Err: ErrDropFrame}
			}

		case strings.HasPrefix(tokens[0], "*"):
			// Comments before the first event (header notes) have no edit to
			// attach to and are dropped.
			if current != nil {
				applyComment(current, line)
			}

		case tokens[0] == "M2":
			if current == nil {
				return nil, &ParseError{Source: o.source, Line: lineNo, Text: line, Err: ErrUnexpectedRetime}
			}
			current.Retimes = append(current.Retimes, line)

		case isEventNumber(tokens[0]):
			edit, err := parseEvent(tokens, o.rate)
			if err != nil {
				return nil, &ParseError{Source: o.source, Line: lineNo, Text: line, Err: err}
			}
			if edit == nil {
				// A transition event (dissolve, wipe, key) extends the edit above.
				if current == nil {
					return nil, &ParseError{Source: o.source, Line: lineNo, Text: line, Err: ErrUnexpectedEffect}
				}
				current.Effects = append(current.Effects, line)
				continue
			}
			if err := finish(lineNo, line); err != nil {
				return nil, err
			}
			current = edit
			list.Edits = append(list.Edits, edit)

		default:
			logger.Debug().Int("line", lineNo).Str("text", line).Msg("ignoring unrecognised line")
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read edl %s: %w", o.source, err)
	}
	if err := finish(lineNo, ""); err != nil {
		return nil, err
	}

	logger.Info().Str(log.FieldSource, o.source).Int("edits", len(list.Edits)).Msg("parsed EDL")
	return list, nil
}

// isEventNumber reports whether a token is an all-digit event number.
func isEventNumber(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseEvent interprets one numbered event line. It returns a new Edit for
// cuts, (nil, nil) for transition events that attach to the previous edit,
// and an error for unsupported or malformed events.
func parseEvent(tokens []string, rate timecode.Rate) (*Edit, error) {
	if len(tokens) < 8 {
		return nil, ErrMalformedEvent
	}
	if tokens[1] == "BL" {
		return nil, ErrBlackSlug
	}
	if tokens[3] != "C" {
		return nil, nil
	}

	id, err := strconv.Atoi(tokens[0])
	if err != nil {
		return nil, fmt.Errorf("event number %q: %w", tokens[0], err)
	}
	edit := &Edit{
		ID:       id,
		Reel:     tokens[1],
		Channels: tokens[2],
	}
	tail := tokens[len(tokens)-4:]
	fields := []struct {
		name string
		dst  *timecode.Timecode
	}{
		{"source in", &edit.SourceIn},
		{"source out", &edit.SourceOut},
		{"record in", &edit.RecordIn},
		{"record out", &edit.RecordOut},
	}
	for i, f := range fields {
		tc, err := timecode.Parse(tail[i], rate)
		if err != nil {
			return nil, fmt.Errorf("%s timecode: %w", f.name, err)
		}
		*f.dst = tc
	}
	return edit, nil
}
