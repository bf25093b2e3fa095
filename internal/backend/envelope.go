package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// The API wraps lists and messages inconsistently across endpoints. Each
// probe below is an ordered first-match-wins pass over the known shapes;
// keep all of this knowledge here and nowhere else.

var listKeys = []string{"data", "items", "properties", "results"}

var messageKeys = []string{"message", "error", "msg"}

var totalKeys = []string{"total", "count", "totalCount", "total_count"}

func parseEnvelope(data []byte) map[string]json.RawMessage {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(bytes.TrimSpace(data), &envelope); err != nil {
		return nil
	}
	return envelope
}

// extractList finds the array payload: the bare body, a known top-level key,
// or one nested envelope level ({"data":{"properties":[...]}}).
func extractList(data []byte) (json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("[")) {
		return trimmed, true
	}

	envelope := parseEnvelope(trimmed)
	if envelope == nil {
		return nil, false
	}

	for _, key := range listKeys {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		raw = bytes.TrimSpace(raw)
		if bytes.HasPrefix(raw, []byte("[")) {
			return raw, true
		}
		if nested := parseEnvelope(raw); nested != nil {
			for _, nestedKey := range listKeys {
				if nestedRaw, ok := nested[nestedKey]; ok {
					nestedRaw = bytes.TrimSpace(nestedRaw)
					if bytes.HasPrefix(nestedRaw, []byte("[")) {
						return nestedRaw, true
					}
				}
			}
		}
	}
	return nil, false
}

// extractObject finds the single-entity payload: "data" wrapper or the bare
// object itself.
func extractObject(data []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(data)
	envelope := parseEnvelope(trimmed)
	if envelope == nil {
		return trimmed
	}
	if raw, ok := envelope["data"]; ok {
		raw = bytes.TrimSpace(raw)
		if bytes.HasPrefix(raw, []byte("{")) {
			return raw
		}
	}
	return trimmed
}

// errorMessage pulls a human-readable failure message out of an error body,
// checking message/error/msg at the top level and under "data" before giving
// up on a generic string.
func errorMessage(data []byte, status int) string {
	fallback := fmt.Sprintf("request failed (%d)", status)

	envelope := parseEnvelope(data)
	if envelope == nil {
		return fallback
	}
	if msg := probeMessage(envelope); msg != "" {
		return msg
	}
	if raw, ok := envelope["data"]; ok {
		if nested := parseEnvelope(raw); nested != nil {
			if msg := probeMessage(nested); msg != "" {
				return msg
			}
		}
	}
	return fallback
}

// successMessage is the same probe for 2xx bodies; empty when the backend
// sent nothing usable.
func successMessage(data []byte) string {
	envelope := parseEnvelope(data)
	if envelope == nil {
		return ""
	}
	if msg := probeMessage(envelope); msg != "" {
		return msg
	}
	if raw, ok := envelope["data"]; ok {
		if nested := parseEnvelope(raw); nested != nil {
			return probeMessage(nested)
		}
	}
	return ""
}

func probeMessage(envelope map[string]json.RawMessage) string {
	for _, key := range messageKeys {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}

func probeTotal(data []byte) (int, bool) {
	envelope := parseEnvelope(data)
	if envelope == nil {
		return 0, false
	}
	for _, candidate := range []map[string]json.RawMessage{envelope, parseEnvelope(envelope["data"])} {
		if candidate == nil {
			continue
		}
		for _, key := range totalKeys {
			raw, ok := candidate[key]
			if !ok {
				continue
			}
			var n int
			if err := json.Unmarshal(raw, &n); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}
