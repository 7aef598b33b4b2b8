package findata

import (
	"bytes"
	"encoding/json"
)

// rawEnvelope covers both outer shapes the Findata API uses: the older
// endpoints return {"status":"ok","result":...}, the newer ones a bare
// {"data":...}. Decoded once at the client boundary so mappers never branch
// on envelope shape.
type rawEnvelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
	Data    json.RawMessage `json:"data"`
}

// envelope is the normalized form. ok=false means the provider reported a
// non-ok status or shipped an empty container; callers translate that into
// a not-found, not an error.
type envelope struct {
	ok      bool
	payload json.RawMessage
}

func normalize(raw rawEnvelope) envelope {
	if raw.Status != "" {
		if raw.Status != "ok" {
			return envelope{}
		}
		return envelope{ok: !emptyPayload(raw.Result), payload: raw.Result}
	}
	return envelope{ok: !emptyPayload(raw.Data), payload: raw.Data}
}

// emptyPayload reports whether a container carries no resource: absent,
// JSON null, or an empty object/array.
func emptyPayload(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "", "null", "[]", "{}":
		return true
	}
	return false
}
