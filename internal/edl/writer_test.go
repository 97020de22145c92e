// SPDX-License-Identifier: MIT
package edl

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteRoundTrip(t *testing.T) {
	original := parseFixture(t, "scan_request.edl")

	var buf bytes.Buffer
	if err := Write(&buf, original); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	reparsed, err := Parse(context.Background(), strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("reparse failed: %v\n--- output ---\n%s", err, buf.String())
	}

	// Compare through JSON so unexported timecode internals do not matter.
	want, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal original: %v", err)
	}
	got, err := json.Marshal(reparsed)
	if err != nil {
		t.Fatalf("marshal reparsed: %v", err)
	}
	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteLayout(t *testing.T) {
	list := parseFixture(t, "scan_request.edl")

	var buf bytes.Buffer
	if err := Write(&buf, list); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"TITLE:   SCAN_REQUEST_TEST",
		"FCM: NON-DROP FRAME",
		"001  BUNNY_01 V    C        00:00:00:00 00:00:04:00 01:00:00:00 01:00:04:00",
		"M2   BUNNY_02",
		"* FROM CLIP NAME: bunny_020_cc01_V0002",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q\n--- output ---\n%s", want, out)
		}
	}
	// One cut line and one dissolve effect line for event 002.
	if strings.Count(out, "\n002") != 2 {
		t.Fatalf("expected cut and effect lines for event 002\n--- output ---\n%s", out)
	}
}

func TestWriteEmptyList(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, &EditList{}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "FCM: NON-DROP FRAME") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
