// Package preview renders a structural HTML preview straight from the
// snapshot. It is the fallback shown before any model-generated HTML exists;
// once generation has run, the generated document wins.
package preview

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/avishek322/Ai-Resume-Builder/internal/resume"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

type view struct {
	resume.Data
	Template   resume.TemplateID
	ProfilePic template.URL
}

// Render maps (snapshot, template) to a structural preview. Custom falls back
// to the classic structure; mimicking a reference image is the generator's
// job, not the local renderer's.
func Render(data resume.Data, id resume.TemplateID) (string, error) {
	data.Normalize()
	family := id
	if !family.BuiltIn() {
		family = resume.TemplateClassic
	}
	v := view{
		Data:       data,
		Template:   id,
		ProfilePic: template.URL(data.ProfilePicture),
	}
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, string(family)+".tmpl", v); err != nil {
		return "", fmt.Errorf("render preview %s: %w", family, err)
	}
	return buf.String(), nil
}
