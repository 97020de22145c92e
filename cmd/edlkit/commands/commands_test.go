// SPDX-License-Identifier: MIT
package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleEDL = `TITLE:   CLI_TEST
FCM: NON-DROP FRAME

001  BUNNY_01 V     C        00:00:00:00 00:00:04:00 01:00:00:00 01:00:04:00
* FROM CLIP NAME: bunny_010_cc01_V0001
`

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cut.edl")
	if err := os.WriteFile(path, []byte(sampleEDL), 0o600); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	return path
}

func TestConvertCommand(t *testing.T) {
	out, err := runCommand(t, "convert", "86400", "--fps", "24")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if !strings.Contains(out, "01:00:00:00") {
		t.Fatalf("missing timecode in output:\n%s", out)
	}
	if !strings.Contains(out, "86400") {
		t.Fatalf("missing frame in output:\n%s", out)
	}
}

func TestConvertCommandBadValue(t *testing.T) {
	if _, err := runCommand(t, "convert", "nonsense"); err == nil {
		t.Fatal("expected error for bad value")
	}
}

func TestParseCommandText(t *testing.T) {
	path := writeSample(t)
	out, err := runCommand(t, "parse", path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !strings.Contains(out, "TITLE: CLI_TEST") {
		t.Fatalf("missing title in output:\n%s", out)
	}
	if !strings.Contains(out, "shot=bunny_010") {
		t.Fatalf("missing shot field in output:\n%s", out)
	}
}

func TestParseCommandJSON(t *testing.T) {
	path := writeSample(t)
	out, err := runCommand(t, "parse", "--json", path)
	if err != nil {
		t.Fatalf("parse --json failed: %v", err)
	}
	if !strings.Contains(out, `"clip_name": "bunny_010_cc01_V0001"`) {
		t.Fatalf("missing clip name in JSON output:\n%s", out)
	}
}

func TestValidateCommand(t *testing.T) {
	path := writeSample(t)
	out, err := runCommand(t, "validate", path)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if !strings.Contains(out, "ok") || !strings.Contains(out, "1 edits") {
		t.Fatalf("unexpected validate output:\n%s", out)
	}
}

func TestValidateCommandFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.edl")
	if err := os.WriteFile(path, []byte("FCM: DROP FRAME\n"), 0o600); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	if _, err := runCommand(t, "validate", path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "edlkit") {
		t.Fatalf("unexpected version output:\n%s", out)
	}
}

func TestConfigFileFlag(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "edlkit.yaml")
	if err := os.WriteFile(cfgPath, []byte("frame_rate: 30\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	out, err := runCommand(t, "--config", cfgPath, "convert", "30")
	if err != nil {
		t.Fatalf("convert with config failed: %v", err)
	}
	if !strings.Contains(out, "00:00:01:00") {
		t.Fatalf("config frame rate not applied:\n%s", out)
	}
}
