package chat

import "testing"

func TestParseReplyMinimal(t *testing.T) {
	reply, err := parseReply(`{"response":"hi","action":"COLLECT"}`)
	if err != nil {
		t.Fatalf("parseReply: %v", err)
	}
	if reply.Response != "hi" || reply.Action != ActionCollect {
		t.Fatalf("unexpected reply: %+v", reply)
	}
	if !reply.UpdatedFields.IsZero() {
		t.Fatal("absent updatedFields must decode to zero update")
	}
}

func TestParseReplyStripsFence(t *testing.T) {
	raw := "```json\n{\"response\":\"hi\",\"action\":\"GENERATE\",\"templateId\":\"creative\"}\n```"
	reply, err := parseReply(raw)
	if err != nil {
		t.Fatalf("parseReply: %v", err)
	}
	if reply.Action != ActionGenerate || reply.TemplateID != "creative" {
		t.Fatalf("unexpected reply: %+v", reply)
	}
}

func TestParseReplyRejections(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"prose", "not json at all"},
		{"empty", "   "},
		{"missing action", `{"response":"hi"}`},
		{"missing response", `{"action":"COLLECT"}`},
		{"unknown action", `{"response":"hi","action":"PANIC"}`},
		{"unknown image purpose", `{"response":"hi","action":"COLLECT","imagePurpose":"LOGO"}`},
		{"custom template id", `{"response":"hi","action":"COLLECT","templateId":"custom"}`},
		{"array body", `[1,2,3]`},
	}
	for _, tc := range cases {
		if _, err := parseReply(tc.raw); err == nil {
			t.Fatalf("%s: expected rejection for %q", tc.name, tc.raw)
		}
	}
}

func TestParseReplyDecodesUpdatedFields(t *testing.T) {
	raw := `{"response":"ok","action":"COLLECT","updatedFields":{"skills":["Go","SQL"],"fullName":"Jane"}}`
	reply, err := parseReply(raw)
	if err != nil {
		t.Fatalf("parseReply: %v", err)
	}
	if reply.UpdatedFields.FullName == nil || *reply.UpdatedFields.FullName != "Jane" {
		t.Fatalf("fullName not decoded: %+v", reply.UpdatedFields)
	}
	if reply.UpdatedFields.Skills == nil || len(*reply.UpdatedFields.Skills) != 2 {
		t.Fatalf("skills not decoded: %+v", reply.UpdatedFields)
	}
}
