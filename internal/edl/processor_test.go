// SPDX-License-Identifier: MIT
package edl

import (
	"context"
	"testing"
)

func TestProcessorDerivesShotFields(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		clip     string
		wantShot string
		wantType string
		wantVer  string
	}{
		{
			name:     "default pattern",
			clip:     "bunny_010_cc01_V0001",
			wantShot: "bunny_010",
			wantType: "cc01",
			wantVer:  "V0001",
		},
		{
			name:     "lowercase version",
			clip:     "city_220_fx02_v0113",
			wantShot: "city_220",
			wantType: "fx02",
			wantVer:  "v0113",
		},
		{
			name:     "custom pattern without type group",
			expr:     `(?P<shot_name>[a-z]+\d+)_(?P<version>V\d+)$`,
			clip:     "alpha001_V0002",
			wantShot: "alpha001",
			wantVer:  "V0002",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			proc, err := NewProcessor(tc.expr)
			if err != nil {
				t.Fatalf("NewProcessor failed: %v", err)
			}
			e := &Edit{ID: 1, ClipName: tc.clip}
			if err := proc.Process(context.Background(), e); err != nil {
				t.Fatalf("Process failed: %v", err)
			}
			if e.Name != tc.clip {
				t.Fatalf("name = %q, want %q", e.Name, tc.clip)
			}
			if e.ShotName != tc.wantShot || e.Type != tc.wantType || e.Version != tc.wantVer {
				t.Fatalf("shot fields = %q/%q/%q, want %q/%q/%q",
					e.ShotName, e.Type, e.Version, tc.wantShot, tc.wantType, tc.wantVer)
			}
		})
	}
}

func TestProcessorFallsBackToToClipName(t *testing.T) {
	proc, err := NewProcessor("")
	if err != nil {
		t.Fatalf("NewProcessor failed: %v", err)
	}
	e := &Edit{ID: 1, ToClipName: "bunny_030_cc01_V0003"}
	if err := proc.Process(context.Background(), e); err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if e.ShotName != "bunny_030" {
		t.Fatalf("shot name = %q", e.ShotName)
	}
}

func TestProcessorNoClipNameIsNotAnError(t *testing.T) {
	proc, err := NewProcessor("")
	if err != nil {
		t.Fatalf("NewProcessor failed: %v", err)
	}
	e := &Edit{ID: 1}
	if err := proc.Process(context.Background(), e); err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if e.Name != "" || e.ShotName != "" {
		t.Fatalf("unexpected derived fields: %+v", e)
	}
}

func TestProcessorNonMatchingNameKeepsZeroFields(t *testing.T) {
	proc, err := NewProcessor("")
	if err != nil {
		t.Fatalf("NewProcessor failed: %v", err)
	}
	e := &Edit{ID: 1, ClipName: "random clip 12"}
	if err := proc.Process(context.Background(), e); err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if e.Name != "random clip 12" {
		t.Fatalf("name = %q", e.Name)
	}
	if e.ShotName != "" || e.Version != "" {
		t.Fatalf("unexpected shot fields: %+v", e)
	}
}

func TestProcessorRejectsBadRegexp(t *testing.T) {
	if _, err := NewProcessor("("); err == nil {
		t.Fatal("expected error for unbalanced regexp")
	}
}

func TestNormalizeName(t *testing.T) {
	// Decomposed "é" (e + combining acute) must normalise to the composed
	// form, and runs of whitespace collapse.
	decomposed := "café  010"
	composed := "café 010"
	if got := normalizeName(decomposed); got != composed {
		t.Fatalf("normalizeName(%q) = %q, want %q", decomposed, got, composed)
	}
	if got := normalizeName("  plain name "); got != "plain name" {
		t.Fatalf("normalizeName trim = %q", got)
	}
}
