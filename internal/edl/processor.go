// SPDX-License-Identifier: MIT
package edl

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	unorm "golang.org/x/text/unicode/norm"

	"edlkit/internal/log"
)

// DefaultShotRegexp matches clip names of the form <shot>_<type><nn>_V<nnn>,
// e.g. "bunny_010_cc01_V0001". The named groups are required.
const DefaultShotRegexp = `(?i)(?P<shot_name>\w+)_(?P<type>[a-z][a-z]\d\d)_(?P<version>v\d+)$`

// Processor derives shot fields on parsed edits from their clip names. Its
// Process method satisfies Visitor, so it can run during the parse.
type Processor struct {
	shotRe *regexp.Regexp
}

// NewProcessor compiles the given shot regexp, or DefaultShotRegexp when
// expr is empty. The regexp should define shot_name, type and version named
// groups; groups it omits simply stay unset on the edits.
func NewProcessor(expr string) (*Processor, error) {
	if expr == "" {
		expr = DefaultShotRegexp
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile shot regexp: %w", err)
	}
	return &Processor{shotRe: re}, nil
}

// normalizeName puts clip names in NFC form with collapsed whitespace, so
// composed and decomposed spellings of the same name compare equal.
func normalizeName(s string) string {
	s = unorm.NFC.String(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}

// Process derives Name, ShotName, Type and Version from the edit's clip name
// comments. Edits without a clip name, or whose name does not match the shot
// regexp, keep their zero values; that is not an error.
func (p *Processor) Process(ctx context.Context, e *Edit) error {
	logger := log.WithComponentFromContext(ctx, "processor")

	name := e.ClipName
	if name == "" {
		name = e.ToClipName
	}
	if name == "" {
		logger.Debug().Int("edit", e.ID).Msg("no clip name on edit")
		return nil
	}
	e.Name = normalizeName(name)

	m := p.shotRe.FindStringSubmatch(e.Name)
	if m == nil {
		logger.Debug().Int("edit", e.ID).Str("name", e.Name).Msg("clip name does not match shot regexp")
		return nil
	}
	for i, group := range p.shotRe.SubexpNames() {
		switch group {
		case "shot_name":
			e.ShotName = m[i]
		case "type":
			e.Type = m[i]
		case "version":
			e.Version = m[i]
		}
	}
	logger.Debug().
		Int("edit", e.ID).
		Str("shot", e.ShotName).
		Str("version", e.Version).
		Msg("resolved shot fields")
	return nil
}
