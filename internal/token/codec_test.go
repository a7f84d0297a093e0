package token

import (
	"encoding/base64"
	"testing"
)

func synthToken(payload string) string {
	enc := base64.RawURLEncoding.EncodeToString
	return enc([]byte(`{"alg":"HS256","typ":"JWT"}`)) + "." + enc([]byte(payload)) + ".sig"
}

func TestDecode_RoundTrip(t *testing.T) {
	raw := synthToken(`{"id":1,"username":"alice","role":"Admin"}`)

	c := Decode(raw)
	if c == nil {
		t.Fatalf("expected claims, got nil")
	}
	if c.ID != "1" || c.Username != "alice" || c.Role != "Admin" {
		t.Fatalf("unexpected claims: %+v", c)
	}
}

func TestDecode_Pure(t *testing.T) {
	raw := synthToken(`{"id":"7","role":"user","email":"u@example.com"}`)

	a := Decode(raw)
	b := Decode(raw)
	if a == nil || b == nil {
		t.Fatalf("expected claims on both calls")
	}
	if *a != *b {
		t.Fatalf("decode is not stable: %+v vs %+v", a, b)
	}
}

func TestDecode_MalformedReturnsNil(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"one segment", "abc"},
		{"two segments", "abc.def"},
		{"four segments", "a.b.c.d"},
		{"invalid base64url", "h." + "%%%" + ".s"},
		{"invalid json payload", synthToken(`not-json`)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Decode(tc.raw); got != nil {
				t.Fatalf("expected nil, got %+v", got)
			}
		})
	}
}

func TestDecode_StringAndNumberIDs(t *testing.T) {
	if c := Decode(synthToken(`{"id":42}`)); c == nil || c.ID != "42" {
		t.Fatalf("numeric id: got %+v", c)
	}
	if c := Decode(synthToken(`{"id":"abc-123"}`)); c == nil || c.ID != "abc-123" {
		t.Fatalf("string id: got %+v", c)
	}
	if c := Decode(synthToken(`{"username":"bob"}`)); c == nil || c.ID != "" {
		t.Fatalf("missing id should decode with empty ID: got %+v", c)
	}
}
