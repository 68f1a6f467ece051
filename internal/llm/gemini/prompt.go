package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/avishek322/Ai-Resume-Builder/internal/resume"
)

const chatSystemInstruction = `You are an expert resume building AI assistant. Your goal is to conversationally collect information from the user to build a professional resume.
1. Be friendly, conversational, and proactive. Greet the user and ask how you can help.
2. Guide the user. Ask for information piece by piece (full name, then contact info, and so on). For experience and education, ask for entries one at a time and confirm what you received.
3. Your response MUST BE a single, valid JSON object and nothing else. No markdown fences, no commentary outside the JSON.
4. Use Markdown inside the "response" text for readability (bolding, bullet points).
5. Image handling: if the user's message included an image, you MUST decide its purpose. A photo of a person is a profile picture; a document, screenshot, or layout is a resume template. Include "imagePurpose": "PROFILE" | "TEMPLATE" whenever an image was provided.
6. The JSON schema is: { "response": string, "updatedFields": object, "action": "COLLECT" | "GENERATE" | "REFINE", "templateId"?: "classic" | "modern" | "creative", "imagePurpose"?: "PROFILE" | "TEMPLATE" }
   - "response": your conversational reply.
   - "updatedFields": ONLY the new or changed fields. When updating an array field (like "experience"), return the ENTIRE updated array.
   - "action": "COLLECT" while gathering information, "GENERATE" when you have enough for a first draft, "REFINE" for change requests after the first generation.
   - "templateId": include only when the user explicitly asks to switch to a built-in template.
7. If the user uploads a template image, acknowledge it and continue collecting their information.
8. Example: user says "My name is John Doe". You respond: {"response": "Great to meet you, John! What's your email address?", "updatedFields": {"fullName": "John Doe"}, "action": "COLLECT"}`

func snapshotJSON(data resume.Data) (string, error) {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	return string(raw), nil
}

// generatePrompt describes the layout rules for the built-in template families.
func generatePrompt(data resume.Data, template resume.TemplateID) (string, error) {
	snapshot, err := snapshotJSON(data)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Based on the following JSON data, generate a professional, ATS-friendly resume.\n")
	fmt.Fprintf(&b, "The output must be a single, well-formatted HTML string using the '%s' theme.\n", template)
	b.WriteString(`- For 'classic', use a clean, single-column layout.
- For 'modern', use a two-column layout with contact info and skills in a sidebar.
- For 'creative', use more distinct visual styling with accent colors.
- Use semantic class names like 'resume-heading', 'resume-secondary-text', 'resume-section', 'section-title' for key regions.
- The HTML must be self-contained within a single root div whose class starts with 'template-' (for example <div class="template-classic">...</div>).
- Do not include <html>, <head>, or <body> tags. Only the resume content.
- Ensure contact information is clearly visible at the top.
- If a profile picture is provided, include an <img> tag with src pointing to the base64 data.
- Rewrite experience bullet points to be more impactful using the STAR (Situation, Task, Action, Result) method. Make them professional and achievement-oriented.
- Display skills as tags or a clean list.
`)
	fmt.Fprintf(&b, "Data: %s", snapshot)
	return b.String(), nil
}

// customGeneratePrompt accompanies a reference template image.
func customGeneratePrompt(data resume.Data) (string, error) {
	snapshot, err := snapshotJSON(data)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(`Based on the following JSON data, and visually mimicking the attached resume template image, generate a professional, ATS-friendly resume.
- The output MUST be a single, well-formatted HTML string.
- The HTML must be self-contained within a single root div.
- Match the image as closely as possible: layout, fonts, colors, spacing.
- Do not include <html>, <head>, or <body> tags.
- If a profile picture is provided in the JSON, include it.
- Make the experience bullet points sound professional and achievement-oriented.
`)
	fmt.Fprintf(&b, "Data: %s", snapshot)
	return b.String(), nil
}

func refinePrompt(currentHTML, request string, withImage bool) string {
	var b strings.Builder
	b.WriteString("You are an expert web developer. A user wants to modify their resume's HTML. Return the complete, modified HTML code.\n")
	b.WriteString("1. Analyze the user's request and the provided HTML")
	if withImage {
		b.WriteString(" and the original template image")
	}
	b.WriteString(".\n2. Modify the HTML to fulfill the request")
	if withImage {
		b.WriteString(" while maintaining the visual style of the template image")
	}
	b.WriteString(".\n3. Return the entire, full, and complete HTML code.\n")
	b.WriteString("4. CRITICAL: your response must ONLY be the raw HTML. No explanations, no markdown.\n---\n")
	fmt.Fprintf(&b, "CURRENT RESUME HTML:\n%s\n", currentHTML)
	fmt.Fprintf(&b, "USER REQUEST: %q\n", request)
	b.WriteString("MODIFIED HTML OUTPUT:")
	return b.String()
}
