package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/felixgeelhaar/bolt/v3"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  bolt.Level
	}{
		{"trace", bolt.TRACE},
		{"debug", bolt.DEBUG},
		{"info", bolt.INFO},
		{"warn", bolt.WARN},
		{"error", bolt.ERROR},
		{"unknown", bolt.INFO},
		{"", bolt.INFO},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFields(t *testing.T) {
	var (
		buf    bytes.Buffer
		logger = New(Config{Level: "debug", Format: "json", Output: &buf})
	)
	NewEvent(logger.Info()).Add(Chart("sales"), Kind("bar"), Shapes(12), ErrorField(errors.New("boom"))).Msg("rendered")

	out := buf.String()
	for _, want := range []string{`"chart":"sales"`, `"type":"bar"`, `"shapes":12`, `"error":"boom"`, "rendered"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %s does not contain %s", out, want)
		}
	}
}
