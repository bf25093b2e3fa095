package backend

import (
	"encoding/json"
	"testing"
)

func TestExtractListShapes(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"bare array", `[{"id":"1"},{"id":"2"}]`, 2},
		{"data", `{"data":[{"id":"1"}]}`, 1},
		{"items", `{"items":[{"id":"1"},{"id":"2"},{"id":"3"}]}`, 3},
		{"properties", `{"properties":[]}`, 0},
		{"results", `{"results":[{"id":"9"}]}`, 1},
		{"nested data.properties", `{"data":{"properties":[{"id":"1"},{"id":"2"}]}}`, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw, ok := extractList([]byte(tc.body))
			if !ok {
				t.Fatalf("extractList failed on %s", tc.body)
			}
			var items []map[string]any
			if err := json.Unmarshal(raw, &items); err != nil {
				t.Fatalf("extracted payload not a list: %v", err)
			}
			if len(items) != tc.want {
				t.Fatalf("expected %d items, got %d", tc.want, len(items))
			}
		})
	}
}

func TestExtractListRejectsNonLists(t *testing.T) {
	for _, body := range []string{`{"data":{"id":"1"}}`, `{"ok":true}`, `"hello"`, `{not json`} {
		if _, ok := extractList([]byte(body)); ok {
			t.Errorf("extractList accepted %q", body)
		}
	}
}

func TestErrorMessageProbing(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"message", `{"message":"email taken"}`, "email taken"},
		{"error", `{"error":"bad city"}`, "bad city"},
		{"msg", `{"msg":"nope"}`, "nope"},
		{"message wins over error", `{"error":"b","message":"a"}`, "a"},
		{"nested data.message", `{"data":{"message":"deep"}}`, "deep"},
		{"nested data.error", `{"data":{"error":"deeper"}}`, "deeper"},
		{"non string ignored", `{"message":{"code":1}}`, "request failed (500)"},
		{"blank ignored", `{"message":"   "}`, "request failed (500)"},
		{"not json", `<html>boom</html>`, "request failed (500)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := errorMessage([]byte(tc.body), 500); got != tc.want {
				t.Fatalf("errorMessage = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestProbeTotal(t *testing.T) {
	cases := []struct {
		body string
		want int
		ok   bool
	}{
		{`{"total":42,"data":[]}`, 42, true},
		{`{"count":7}`, 7, true},
		{`{"data":{"totalCount":3,"properties":[]}}`, 3, true},
		{`{"data":[]}`, 0, false},
	}
	for _, tc := range cases {
		got, ok := probeTotal([]byte(tc.body))
		if ok != tc.ok || got != tc.want {
			t.Errorf("probeTotal(%s) = (%d,%v), want (%d,%v)", tc.body, got, ok, tc.want, tc.ok)
		}
	}
}
