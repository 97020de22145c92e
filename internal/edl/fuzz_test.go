// SPDX-License-Identifier: MIT
package edl

import (
	"context"
	"strings"
	"testing"
)

// FuzzParse feeds arbitrary text to the parser: it must return a list or an
// error, never panic.
func FuzzParse(f *testing.F) {
	f.Add("TITLE: X\nFCM: NON-DROP FRAME\n001  R V C 00:00:00:00 00:00:01:00 01:00:00:00 01:00:01:00\n")
	f.Add("001  R V C 00:00:00:00\n")
	f.Add("* a comment with no edit\nM2 x\n")
	f.Add("FCM: DROP FRAME\n")
	f.Add("\x1a\x1a\n\n")
	f.Add("999999999999999999999 R V C a b c d\n")

	f.Fuzz(func(t *testing.T, input string) {
		list, err := Parse(context.Background(), strings.NewReader(input))
		if err != nil {
			return
		}
		if list == nil {
			t.Fatal("nil list without error")
		}
		// Writing whatever parsed must also not panic.
		var sb strings.Builder
		if err := Write(&sb, list); err != nil {
			t.Fatalf("Write failed on parsed list: %v", err)
		}
	})
}
