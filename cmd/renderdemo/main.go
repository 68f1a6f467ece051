package main

// Render the built-in preview templates with sample data:
//   go run ./cmd/renderdemo -out ./out
// Pass -pdf to also print the classic preview to PDF (requires Chrome).

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avishek322/Ai-Resume-Builder/internal/export"
	"github.com/avishek322/Ai-Resume-Builder/internal/preview"
	"github.com/avishek322/Ai-Resume-Builder/internal/resume"
	"github.com/avishek322/Ai-Resume-Builder/internal/shared/config"
)

func main() {
	outDir := flag.String("out", "./out", "output directory for rendered previews")
	withPDF := flag.Bool("pdf", false, "also render the classic preview to PDF via headless Chrome")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create out dir: %v\n", err)
		os.Exit(1)
	}

	data := sampleData()
	for _, id := range []resume.TemplateID{resume.TemplateClassic, resume.TemplateModern, resume.TemplateCreative} {
		html, err := preview.Render(data, id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "render %s: %v\n", id, err)
			os.Exit(1)
		}
		path := filepath.Join(*outDir, fmt.Sprintf("preview_%s.html", id))
		if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("OK: wrote %s\n", path)
	}

	if !*withPDF {
		return
	}

	cfg := config.Load()
	html, err := preview.Render(data, resume.TemplateClassic)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render classic: %v\n", err)
		os.Exit(1)
	}
	renderer := export.NewChromeRenderer(cfg.ChromePath)
	pdfBytes, err := renderer.RenderPDF(context.Background(), html)
	if err != nil {
		fmt.Fprintf(os.Stderr, "print pdf: %v\n", err)
		os.Exit(1)
	}
	pdfPath := filepath.Join(*outDir, "preview_classic.pdf")
	if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", pdfPath, err)
		os.Exit(1)
	}
	fmt.Printf("OK: wrote %s\n", pdfPath)
}

func sampleData() resume.Data {
	data := resume.New()
	data.FullName = "Jordan Rivera"
	data.Email = "jordan.rivera@example.com"
	data.PhoneNumber = "+1 555 010 2030"
	data.Location = "Austin, TX"
	data.Summary = "Backend engineer with eight years of experience building payment and messaging systems."
	data.Skills = []string{"Go", "PostgreSQL", "Kubernetes", "gRPC"}
	data.Certifications = []string{"CKA"}
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
