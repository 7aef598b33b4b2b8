package findata

import (
	"encoding/json"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  rawEnvelope
		ok   bool
	}{
		{"status ok with result", rawEnvelope{Status: "ok", Result: json.RawMessage(`{"rate":1}`)}, true},
		{"status error", rawEnvelope{Status: "error", Message: "no such symbol"}, false},
		{"status ok empty object", rawEnvelope{Status: "ok", Result: json.RawMessage(`{}`)}, false},
		{"status ok null result", rawEnvelope{Status: "ok", Result: json.RawMessage(`null`)}, false},
		{"status ok empty array", rawEnvelope{Status: "ok", Result: json.RawMessage(`[]`)}, false},
		{"bare data", rawEnvelope{Data: json.RawMessage(`[{"symbol":"SPY"}]`)}, true},
		{"bare empty data", rawEnvelope{Data: json.RawMessage(`[]`)}, false},
		{"bare absent data", rawEnvelope{}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := normalize(tt.raw)
			if env.ok != tt.ok {
				t.Errorf("expected ok=%v, got %v", tt.ok, env.ok)
			}
		})
	}
}
