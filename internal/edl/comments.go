// SPDX-License-Identifier: MIT
package edl

import (
	"regexp"
	"strings"
)

// Comment keywords written by Avid, Resolve and friends. The colon is
// optional: ASC colour decision lines ("* ASC_SOP (...)(...)(...)") omit it.
var commentKeywordRe = regexp.MustCompile(
	`(?i)^\*?\s*(FROM CLIP NAME|TO CLIP NAME|SOURCE FILE|ASC_SOP|ASC_SAT|LOC|COMMENT)\b\s*:?\s*(.*\S)\s*$`,
)

// matchCommentKeyword splits a comment line into its keyword and value.
// ok is false for pure comments.
func matchCommentKeyword(line string) (keyword, value string, ok bool) {
	m := commentKeywordRe.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return strings.ToUpper(strings.Join(strings.Fields(m[1]), " ")), m[2], true
}

// applyComment records a comment line on the edit and extracts any
// recognised keyword into the matching metadata field.
func applyComment(e *Edit, line string) {
	e.Comments = append(e.Comments, line)
	keyword, value, ok := matchCommentKeyword(line)
	if !ok {
		return
	}
	switch keyword {
	case "FROM CLIP NAME":
		e.ClipName = value
	case "TO CLIP NAME":
		e.ToClipName = value
	case "SOURCE FILE":
		e.SourceFile = value
	case "ASC_SOP":
		e.ASCSOP = value
	case "ASC_SAT":
		e.ASCSAT = value
	case "LOC":
		e.Locators = append(e.Locators, value)
	case "COMMENT":
		e.Notes = append(e.Notes, value)
	}
}
