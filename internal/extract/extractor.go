package extract

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// PlaceholderText is stored for documents whose text could not be extracted,
// so a corrupt file still yields a (low-quality) catalog entry instead of
// halting the batch.
const PlaceholderText = "could not extract text from this document"

// Extractor turns a file on disk into raw text. Page boundaries in the
// returned text are marked with form feed characters.
type Extractor interface {
	// Text extracts the full text of the document at path.
	Text(ctx context.Context, path string) (string, error)

	// PageCount returns the document's page count from a metadata-only
	// parse, or 0 if unknown.
	PageCount(ctx context.Context, path string) (int, error)
}

// CommandRunner executes an external command and returns its stdout.
// It exists so tests can substitute the pdftotext/pdfinfo binaries.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// PDFExtractor extracts text with the poppler pdftotext/pdfinfo tools and
// reads plain-text documents directly.
type PDFExtractor struct {
	run CommandRunner
}

// NewPDFExtractor creates an extractor backed by the system pdftotext and
// pdfinfo binaries.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{run: execRunner}
}

// NewPDFExtractorWithRunner creates an extractor with a custom command
// runner, for tests.
func NewPDFExtractorWithRunner(run CommandRunner) *PDFExtractor {
	return &PDFExtractor{run: run}
}

func (e *PDFExtractor) Text(ctx context.Context, path string) (string, error) {
	if !isPDF(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return string(data), nil
	}

	// -layout keeps title-block columns readable; pages arrive separated
	// by form feeds on stdout.
	out, err := e.run(ctx, "pdftotext", "-layout", path, "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext %s: %w", path, err)
	}
	return string(out), nil
}

var pdfinfoPages = regexp.MustCompile(`(?m)^Pages:\s+(\d+)`)

func (e *PDFExtractor) PageCount(ctx context.Context, path string) (int, error) {
	if !isPDF(path) {
		return 0, nil
	}

	out, err := e.run(ctx, "pdfinfo", path)
	if err != nil {
		return 0, fmt.Errorf("pdfinfo %s: %w", path, err)
	}
	m := pdfinfoPages.FindSubmatch(out)
	if m == nil {
		return 0, fmt.Errorf("pdfinfo %s: no page count in output", path)
	}
	pages, err := strconv.Atoi(string(m[1]))
	if err != nil {
		return 0, err
	}
	return pages, nil
}

func isPDF(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}
