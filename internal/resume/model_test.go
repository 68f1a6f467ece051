package resume

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNormalizeReplacesNilLists(t *testing.T) {
	var d Data
	d.Normalize()

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{`"education":[]`, `"experience":[]`, `"skills":[]`, `"certifications":[]`} {
		if !strings.Contains(string(raw), want) {
			t.Fatalf("expected %s in %s", want, raw)
		}
	}
}

func TestApplyScalarOverwrite(t *testing.T) {
	d := New()
	d.FullName = "Old Name"
	d.Email = "old@example.com"

	name := "Jane Doe"
	d.Apply(Update{FullName: &name})

	if d.FullName != "Jane Doe" {
		t.Fatalf("expected fullName overwritten, got %q", d.FullName)
	}
	if d.Email != "old@example.com" {
		t.Fatalf("untouched field changed: %q", d.Email)
	}
}

func TestApplyArrayWholesaleReplacement(t *testing.T) {
	d := New()
	d.Experience = []Experience{
		{Company: "Acme", Title: "Engineer", Points: []string{"built things"}},
		{Company: "Globex", Title: "Lead", Points: []string{"led things"}},
	}

	replacement := []Experience{{Company: "Initech", Title: "Manager"}}
	d.Apply(Update{Experience: &replacement})

	if len(d.Experience) != 1 || d.Experience[0].Company != "Initech" {
		t.Fatalf("expected wholesale replacement, got %+v", d.Experience)
	}
	// Normalize must restore non-nil points on the new entries.
	if d.Experience[0].Points == nil {
		t.Fatal("expected non-nil points after apply")
	}
}

func TestApplyDecodedPartialLeavesAbsentFieldsAlone(t *testing.T) {
	d := New()
	d.FullName = "Jane Doe"
	d.Skills = []string{"Go"}

	var u Update
	if err := json.Unmarshal([]byte(`{"summary":"Seasoned engineer."}`), &u); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	d.Apply(u)

	if d.Summary != "Seasoned engineer." {
		t.Fatalf("expected summary applied, got %q", d.Summary)
	}
	if d.FullName != "Jane Doe" || len(d.Skills) != 1 {
		t.Fatalf("absent fields mutated: %+v", d)
	}
}

func TestUpdateIsZero(t *testing.T) {
	if !(Update{}).IsZero() {
		t.Fatal("empty update should be zero")
	}
	s := "x"
	if (Update{Summary: &s}).IsZero() {
		t.Fatal("non-empty update reported zero")
	}
}

func TestParseTemplateID(t *testing.T) {
	cases := map[string]bool{
		"classic":  true,
		"modern":   true,
		"creative": true,
		"custom":   true,
		"fancy":    false,
		"":         false,
	}
	for raw, ok := range cases {
		if _, got := ParseTemplateID(raw); got != ok {
			t.Fatalf("ParseTemplateID(%q) = %v, want %v", raw, got, ok)
		}
	}
	if TemplateCustom.BuiltIn() {
		t.Fatal("custom must not be built-in")
	}
	if !TemplateModern.BuiltIn() {
		t.Fatal("modern must be built-in")
	}
}
