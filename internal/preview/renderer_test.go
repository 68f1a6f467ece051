package preview

import (
	"strings"
	"testing"

	"github.com/avishek322/Ai-Resume-Builder/internal/resume"
)

func sampleData() resume.Data {
	d := resume.New()
	d.FullName = "Jane Doe"
	d.Email = "jane@example.com"
	d.Summary = "Engineer who ships."
	d.Skills = []string{"Go", "Postgres"}
	d.Experience = []resume.Experience{
		{Company: "Acme", Title: "Engineer", StartYear: "2020", EndYear: "2024", Points: []string{"cut latency 40%"}},
	}
	return d
}

func TestRenderBuiltInFamilies(t *testing.T) {
	for _, id := range []resume.TemplateID{resume.TemplateClassic, resume.TemplateModern, resume.TemplateCreative} {
		html, err := Render(sampleData(), id)
		if err != nil {
			t.Fatalf("Render(%s): %v", id, err)
		}
		if !strings.Contains(html, `class="template-`+string(id)+`"`) {
			t.Fatalf("%s: missing root container class in %s", id, html[:min(len(html), 120)])
		}
		if !strings.Contains(html, "Jane Doe") || !strings.Contains(html, "cut latency 40%") {
			t.Fatalf("%s: content missing", id)
		}
		if !strings.Contains(html, "resume-heading") || !strings.Contains(html, "section-title") {
			t.Fatalf("%s: semantic class hooks missing", id)
		}
	}
}

func TestRenderCustomFallsBackToClassicStructure(t *testing.T) {
	html, err := Render(sampleData(), resume.TemplateCustom)
	if err != nil {
		t.Fatalf("Render(custom): %v", err)
	}
	if !strings.Contains(html, `class="template-custom"`) {
		t.Fatal("custom preview must keep the custom root class")
	}
}

func TestRenderKeepsProfilePictureDataURL(t *testing.T) {
	d := sampleData()
	d.ProfilePicture = "data:image/png;base64,aGk="
	html, err := Render(d, resume.TemplateClassic)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(html, `src="data:image/png;base64,aGk="`) {
		t.Fatal("data URL must survive template escaping")
	}
}

func TestRenderEscapesUserContent(t *testing.T) {
	d := sampleData()
	d.FullName = `<script>alert("x")</script>`
	html, err := Render(d, resume.TemplateClassic)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Fatal("user content must be escaped")
	}
}
