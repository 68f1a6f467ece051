package main

// Exercise the generation prompts against a live model:
//   go run ./cmd/prompttest -data testdata/sample.json -template modern -out resume.html

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/avishek322/Ai-Resume-Builder/internal/llm"
	"github.com/avishek322/Ai-Resume-Builder/internal/llm/gemini"
	"github.com/avishek322/Ai-Resume-Builder/internal/resume"
	"github.com/avishek322/Ai-Resume-Builder/internal/shared/config"
)

func main() {
	cfg := config.Load()

	dataPath := flag.String("data", "", "Path to a resume data JSON file (optional, sample data when omitted)")
	templateID := flag.String("template", "classic", "Template id: classic, modern or creative")
	refine := flag.String("refine", "", "Refinement request to apply after generation (optional)")
	outPath := flag.String("out", "", "Path to write the generated HTML (stdout when omitted)")
	model := flag.String("model", cfg.GeminiTextModel, "Gemini model")
	flag.Parse()

	template, ok := resume.ParseTemplateID(*templateID)
	if !ok || !template.BuiltIn() {
		exitErr("template must be classic, modern or creative")
	}

	data := sampleData()
	if strings.TrimSpace(*dataPath) != "" {
		raw, err := os.ReadFile(*dataPath)
		if err != nil {
			exitErr(fmt.Sprintf("read data: %v", err))
		}
		if err := json.Unmarshal(raw, &data); err != nil {
			exitErr(fmt.Sprintf("decode data: %v", err))
		}
		data.Normalize()
	}

	client, err := buildClient(cfg, *model)
	if err != nil {
		exitErr(err.Error())
	}

	ctx := context.Background()
	html, err := client.GenerateResume(ctx, data, template, nil)
	if err != nil {
		exitErr(fmt.Sprintf("generate: %v", err))
	}

	if strings.TrimSpace(*refine) != "" {
		html, err = client.RefineResume(ctx, html, *refine, nil)
		if err != nil {
			exitErr(fmt.Sprintf("refine: %v", err))
		}
	}

	if *outPath == "" {
		fmt.Println(html)
		return
	}
	if err := os.WriteFile(*outPath, []byte(html), 0o644); err != nil {
		exitErr(fmt.Sprintf("write output: %v", err))
	}
	fmt.Printf("OK: wrote %s\n", *outPath)
}

func buildClient(cfg config.Config, model string) (llm.Client, error) {
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		fmt.Fprintln(os.Stderr, "GEMINI_API_KEY empty; using mock client")
		return &llm.MockClient{}, nil
	}
	return gemini.NewClient(context.Background(), cfg.GeminiAPIKey, model, cfg.GeminiImageModel)
}

func sampleData() resume.Data {
	data := resume.New()
	data.FullName = "Jordan Rivera"
	data.Email = "jordan.rivera@example.com"
	data.PhoneNumber = "+1 555 010 2030"
	data.Location = "Austin, TX"
	data.Summary = "Backend engineer with eight years of experience building payment and messaging systems."
	data.Skills = []string{"Go", "PostgreSQL", "Kubernetes", "gRPC"}
	data.Experience = []resume.Experience{
		{
			Title:     "Senior Software Engineer",
			Company:   "Acme Payments",
			StartYear: "2020",
			EndYear:   "Present",
			Points: []string{
				"Led migration of the settlement pipeline to event sourcing, cutting reconciliation time by 60%.",
				"Mentored four engineers through promotion to mid level.",
			},
		},
	}
	data.Education = []resume.Education{
		{School: "University of Texas at Austin", Degree: "BSc Computer Science", StartYear: "2012", EndYear: "2016"},
	}
	return data
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
