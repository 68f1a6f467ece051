package chat

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/avishek322/Ai-Resume-Builder/internal/llm"
	"github.com/avishek322/Ai-Resume-Builder/internal/resume"
)

// Action tells the engine what to do after merging field updates.
type Action string

const (
	ActionCollect  Action = "COLLECT"
	ActionGenerate Action = "GENERATE"
	ActionRefine   Action = "REFINE"
)

// ImagePurpose classifies an image attached to the current turn.
type ImagePurpose string

const (
	ImageProfile  ImagePurpose = "PROFILE"
	ImageTemplate ImagePurpose = "TEMPLATE"
)

// replySchema is the strict contract for assistant replies. Unknown action or
// imagePurpose values are rejected, and templateId deliberately excludes
// "custom": the assistant may only select built-in families, since switching
// to custom without a reference image would leave the session inconsistent.
const replySchema = `{
  "type": "object",
  "required": ["response", "action"],
  "properties": {
    "response": {"type": "string"},
    "updatedFields": {"type": "object"},
    "action": {"type": "string", "enum": ["COLLECT", "GENERATE", "REFINE"]},
    "templateId": {"type": "string", "enum": ["classic", "modern", "creative"]},
    "imagePurpose": {"type": "string", "enum": ["PROFILE", "TEMPLATE"]}
  }
}`

var compiledReplySchema = gojsonschema.NewStringLoader(replySchema)

// assistantReply is the decoded per-turn contract.
type assistantReply struct {
	Response      string            `json:"response"`
	UpdatedFields resume.Update     `json:"updatedFields"`
	Action        Action            `json:"action"`
	TemplateID    resume.TemplateID `json:"templateId"`
	ImagePurpose  ImagePurpose      `json:"imagePurpose"`
}

// parseReply strips an optional code fence, validates the reply against the
// contract schema, and decodes it. Any failure here is the recoverable
// malformed-reply path: the caller apologizes and leaves all state untouched.
func parseReply(raw string) (assistantReply, error) {
	text := llm.StripCodeFence(raw)
	if strings.TrimSpace(text) == "" {
		return assistantReply{}, fmt.Errorf("empty reply")
	}
	if !json.Valid([]byte(text)) {
		return assistantReply{}, fmt.Errorf("reply is not valid JSON")
	}

	result, err := gojsonschema.Validate(compiledReplySchema, gojsonschema.NewStringLoader(text))
	if err != nil {
		return assistantReply{}, fmt.Errorf("validate reply: %w", err)
	}
	if !result.Valid() {
		var msgs []string
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return assistantReply{}, fmt.Errorf("reply violates contract: %s", strings.Join(msgs, "; "))
	}

	var reply assistantReply
	if err := json.Unmarshal([]byte(text), &reply); err != nil {
		return assistantReply{}, fmt.Errorf("decode reply: %w", err)
	}
	return reply, nil
}
