package llm

import (
	"encoding/base64"
	"testing"
)

func TestParseDataURLRoundTrip(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4e, 0x47}
	raw := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	img, err := ParseDataURL(raw)
	if err != nil {
		t.Fatalf("ParseDataURL: %v", err)
	}
	if img.MIMEType != "image/png" {
		t.Fatalf("expected image/png, got %q", img.MIMEType)
	}
	if string(img.Data) != string(payload) {
		t.Fatalf("payload mismatch")
	}
	if img.DataURL() != raw {
		t.Fatalf("expected round trip, got %q", img.DataURL())
	}
}

func TestParseDataURLRejections(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"not a data url", "https://example.com/pic.png"},
		{"missing comma", "data:image/png;base64"},
		{"not base64 encoding", "data:image/png;utf8,hello"},
		{"non image mime", "data:application/pdf;base64,aGVsbG8="},
		{"bad base64", "data:image/png;base64,@@@"},
		{"empty payload", "data:image/png;base64,"},
	}
	for _, tc := range cases {
		if _, err := ParseDataURL(tc.raw); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"{\"a\":1}", "{\"a\":1}"},
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```html\n<div></div>\n```", "<div></div>"},
		{"```\nplain\n```", "plain"},
		{"  ```json\n{\"a\":1}\n```  ", "{\"a\":1}"},
		{"```inline```", "inline```"},
	}
	for _, tc := range cases {
		if got := StripCodeFence(tc.in); got != tc.want {
			t.Errorf("StripCodeFence(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
