package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestValueOrUnknown(t *testing.T) {
	if got := valueOrUnknown(""); got != "unknown" {
		t.Errorf("valueOrUnknown(\"\") = %q", got)
	}
	if got := valueOrUnknown("abc123"); got != "abc123" {
		t.Errorf("valueOrUnknown(\"abc123\") = %q", got)
	}
}

func TestRenderVersionPretty(t *testing.T) {
	info := versionInfo{Version: "1.2.3", GitCommit: "abc123"}

	var minimal strings.Builder
	renderVersionPretty(&minimal, info, false, false)
	if got := minimal.String(); got != "minicheck 1.2.3\n" {
		t.Errorf("minimal output = %q", got)
	}

	var full strings.Builder
	renderVersionPretty(&full, info, true, true)
	out := full.String()
	if !strings.Contains(out, "commit: abc123") {
		t.Errorf("missing commit line: %q", out)
	}
	if !strings.Contains(out, "built:  unknown") {
		t.Errorf("missing build line: %q", out)
	}
}

func TestRenderVersionJSON(t *testing.T) {
	info := versionInfo{Version: "1.2.3"}

	var buf strings.Builder
	if err := renderVersionJSON(&buf, info, true, false); err != nil {
		t.Fatalf("renderVersionJSON: %v", err)
	}

	var payload versionPayload
	if err := json.Unmarshal([]byte(buf.String()), &payload); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if payload.Tool != "minicheck" || payload.Version != "1.2.3" {
		t.Errorf("payload = %+v", payload)
	}
	if payload.GitCommit != "unknown" {
		t.Errorf("GitCommit = %q", payload.GitCommit)
	}
	if payload.BuildDate != "" {
		t.Errorf("BuildDate should be omitted, got %q", payload.BuildDate)
	}
}
