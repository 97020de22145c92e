// SPDX-License-Identifier: MIT

// Package edl models CMX 3600 Edit Decision Lists and parses them into typed
// events. Reference: http://xmil.biz/EDL-X/CMX3600.pdf
package edl

import (
	"edlkit/internal/timecode"
)

// Edit is a single event from an edit list: one cut with its source and
// record ranges, plus any effects, retimes and comment metadata attached to
// it by the lines that follow the event line.
type Edit struct {
	ID       int    `json:"id"`
	Reel     string `json:"reel"`
	Channels string `json:"channels"`

	SourceIn  timecode.Timecode `json:"source_in"`
	SourceOut timecode.Timecode `json:"source_out"`
	RecordIn  timecode.Timecode `json:"record_in"`
	RecordOut timecode.Timecode `json:"record_out"`

	// Raw follower lines, kept verbatim so lists can be written back out.
	Effects  []string `json:"effects,omitempty"`
	Retimes  []string `json:"retimes,omitempty"`
	Comments []string `json:"comments,omitempty"`

	// Metadata extracted from recognised comment keywords.
	ClipName   string   `json:"clip_name,omitempty"`
	ToClipName string   `json:"to_clip_name,omitempty"`
	SourceFile string   `json:"source_file,omitempty"`
	ASCSOP     string   `json:"asc_sop,omitempty"`
	ASCSAT     string   `json:"asc_sat,omitempty"`
	Locators   []string `json:"locators,omitempty"`
	Notes      []string `json:"notes,omitempty"`

	// Derived by Processor from the clip name and shot regexp.
	Name     string `json:"name,omitempty"`
	ShotName string `json:"shot_name,omitempty"`
	Type     string `json:"type,omitempty"`
	Version  string `json:"version,omitempty"`
}

// Duration returns the record range length of the edit, in frames.
func (e *Edit) Duration() int {
	return e.RecordOut.Frame() - e.RecordIn.Frame()
}

// PureComments returns the comment lines that carry no recognised keyword,
// i.e. free-form notes left by the editor.
func (e *Edit) PureComments() []string {
	var pure []string
	for _, c := range e.Comments {
		if _, _, ok := matchCommentKeyword(c); !ok {
			pure = append(pure, c)
		}
	}
	return pure
}

// EditList is an ordered collection of edits parsed from one EDL document.
type EditList struct {
	Title string        `json:"title,omitempty"`
	Rate  timecode.Rate `json:"frame_rate"`
	Edits []*Edit       `json:"edits"`
}
