package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

const mimePDF = "application/pdf"

// ErrUnsupportedType indicates the upload is not a PDF.
var ErrUnsupportedType = errors.New("unsupported file type")

// ErrNoText indicates the PDF contained no extractable text.
var ErrNoText = errors.New("no extractable text")

// maxUploadBytes caps imported resumes at 10 MiB.
const maxUploadBytes = 10 << 20

// ResumeText extracts plain text from an uploaded resume PDF.
// Library used: github.com/ledongthuc/pdf.
func ResumeText(ctx context.Context, data []byte, mimeType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) > maxUploadBytes {
		return "", fmt.Errorf("upload exceeds %d bytes", maxUploadBytes)
	}
	if !isPDF(mimeType, data) {
		return "", ErrUnsupportedType
	}

	text, err := extractPDF(data)
	if err != nil {
		return "", fmt.Errorf("extract pdf: %w", err)
	}

	text = collapseWhitespace(text)
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

// isPDF accepts a declared PDF mime type or the %PDF- magic bytes. Browsers
// sometimes send application/octet-stream for drag-and-drop uploads.
func isPDF(mimeType string, data []byte) bool {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	if clean == mimePDF {
		return true
	}
	return bytes.HasPrefix(data, []byte("%PDF-"))
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func collapseWhitespace(raw string) string {
	lines := strings.Split(raw, "\n")
	var out []string
	for _, line := range lines {
		if fields := strings.Fields(line); len(fields) > 0 {
			out = append(out, strings.Join(fields, " "))
		}
	}
	return strings.Join(out, "\n")
}
