// SPDX-License-Identifier: MIT
package log

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestContextRoundTrip(t *testing.T) {
	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Fatalf("empty context returned request id %q", got)
	}
	if got := JobIDFromContext(ctx); got != "" {
		t.Fatalf("empty context returned job id %q", got)
	}

	ctx = ContextWithRequestID(ctx, "req-1")
	ctx = ContextWithJobID(ctx, "job-1")
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Fatalf("request id = %q, want req-1", got)
	}
	if got := JobIDFromContext(ctx); got != "job-1" {
		t.Fatalf("job id = %q, want job-1", got)
	}
}

func TestNilContextSafe(t *testing.T) {
	//nolint:staticcheck // nil context is the case under test
	if got := RequestIDFromContext(nil); got != "" {
		t.Fatalf("nil context returned request id %q", got)
	}
	//nolint:staticcheck
	ctx := ContextWithJobID(nil, "job-2")
	if got := JobIDFromContext(ctx); got != "job-2" {
		t.Fatalf("job id = %q, want job-2", got)
	}
}

func TestWithContextFields(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Output: &buf, Level: "debug"})

	ctx := ContextWithJobID(context.Background(), "job-3")
	logger := WithContext(ctx, Base())
	logger.Info().Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"job_id":"job-3"`) {
		t.Fatalf("log output missing job_id field: %s", out)
	}
}
