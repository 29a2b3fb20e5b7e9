// Copyright 2025 The Ceph Go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{" error ", LevelError},
		{"off", LevelSilent},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLogLevel(tt.in); got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDefaultLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerOptions{Level: LevelWarn, Output: &buf})

	l.Debug("dropped debug")
	l.Info("dropped info")
	l.Warn("kept warn")
	l.Error("kept error")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("output contains filtered entries: %q", out)
	}
	if !strings.Contains(out, "kept warn") || !strings.Contains(out, "kept error") {
		t.Errorf("output missing expected entries: %q", out)
	}
}

func TestDefaultLogger_Silent(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerOptions{Level: LevelSilent, Output: &buf})

	l.Error("never seen")
	if buf.Len() != 0 {
		t.Errorf("silent logger produced output: %q", buf.String())
	}
}

func TestDefaultLogger_Formatting(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerOptions{Output: &buf})

	l.Info("count is %d", 42)
	if got, want := buf.String(), "count is 42\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestDefaultLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger(LoggerOptions{Output: &buf, Formatter: &TextFormatter{}})

	child := base.WithFields(map[string]interface{}{"component": "crypto"})
	child.Info("installed")

	if got := buf.String(); !strings.Contains(got, "component=crypto") {
		t.Errorf("output = %q, want component field", got)
	}

	buf.Reset()
	base.Info("plain")
	if got := buf.String(); strings.Contains(got, "component") {
		t.Errorf("parent logger inherited child fields: %q", got)
	}
}

func TestTextFormatter_ShowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerOptions{Output: &buf, Formatter: &TextFormatter{ShowLevel: true}})

	l.Info("hello")
	if got := buf.String(); !strings.HasPrefix(got, "[INFO] ") {
		t.Errorf("output = %q, want [INFO] prefix", got)
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerOptions{Output: &buf, Formatter: &JSONFormatter{}})

	l.WithFields(map[string]interface{}{"refs": 1}).Info("acquired")

	var entry struct {
		Level   string                 `json:"level"`
		Message string                 `json:"message"`
		Fields  map[string]interface{} `json:"fields"`
	}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v (%q)", err, buf.String())
	}
	if entry.Level != "info" || entry.Message != "acquired" {
		t.Errorf("entry = %+v, want level=info message=acquired", entry)
	}
	if entry.Fields["refs"] != float64(1) {
		t.Errorf("fields = %v, want refs=1", entry.Fields)
	}
}

func TestEnsureLogger(t *testing.T) {
	if EnsureLogger(nil) == nil {
		t.Error("EnsureLogger(nil) = nil, want default logger")
	}

	l := NewLogger(LoggerOptions{Level: LevelError})
	if got := EnsureLogger(l); got != Logger(l) {
		t.Error("EnsureLogger() did not pass through non-nil logger")
	}
}
