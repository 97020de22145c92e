// SPDX-License-Identifier: MIT
package edl

import (
	"bytes"
	"fmt"
	"io"
)

// Write renders the list as a normalized CMX 3600 document. Effects, retimes
// and comments are emitted verbatim as captured by the parser, so a parse of
// the output yields the same list for supported features.
func Write(w io.Writer, list *EditList) error {
	buf := &bytes.Buffer{}
	if list.Title != "" {
		fmt.Fprintf(buf, "TITLE:   %s\n", list.Title)
	}
	buf.WriteString("FCM: NON-DROP FRAME\n\n")
	for _, e := range list.Edits {
		fmt.Fprintf(buf, "%03d  %-8s %-4s C        %s %s %s %s\n",
			e.ID, e.Reel, e.Channels,
			e.SourceIn, e.SourceOut, e.RecordIn, e.RecordOut,
		)
		for _, effect := range e.Effects {
			buf.WriteString(effect + "\n")
		}
		for _, retime := range e.Retimes {
			buf.WriteString(retime + "\n")
		}
		for _, comment := range e.Comments {
			buf.WriteString(comment + "\n")
		}
	}
	_, err := io.Copy(w, buf)
	return err
}
