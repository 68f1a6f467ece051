// Package share encodes a resume snapshot into a compact token that can ride
// in a URL fragment and be reopened anywhere.
package share

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/avishek322/Ai-Resume-Builder/internal/resume"
)

// ErrMalformed marks tokens that cannot be decoded. Callers treat these as
// absent, never fatal.
var ErrMalformed = errors.New("malformed share token")

// Payload is the shareable triple.
type Payload struct {
	ResumeData          resume.Data       `json:"resumeData"`
	TemplateID          resume.TemplateID `json:"templateId"`
	CustomTemplateImage string            `json:"customTemplateImage,omitempty"`
}

// Encode serializes the payload to a base64 token.
func Encode(p Payload) (string, error) {
	p.ResumeData.Normalize()
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode share payload: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Decode parses a token back into a payload, validating the template
// selection. A custom selection without its reference image is rejected: the
// pair travels together or not at all.
func Decode(token string) (Payload, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Payload{}, ErrMalformed
	}
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	tmpl, ok := resume.ParseTemplateID(string(p.TemplateID))
	if !ok {
		return Payload{}, fmt.Errorf("%w: unknown template %q", ErrMalformed, p.TemplateID)
	}
	if tmpl == resume.TemplateCustom && p.CustomTemplateImage == "" {
		return Payload{}, fmt.Errorf("%w: custom template without reference image", ErrMalformed)
	}
	p.TemplateID = tmpl
	p.ResumeData.Normalize()
	return p, nil
}
