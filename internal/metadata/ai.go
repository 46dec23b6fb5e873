package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/buildvault/plansearch/internal/llm"
)

const extractionSystemPrompt = `You are a construction document analyst. You read title blocks and cover pages of drawings and specifications and return structured JSON. Be precise and factual. Do not invent values that are not present in the text.`

const extractionPromptTemplate = `Extract document metadata from this construction document excerpt and return a JSON object with exactly these keys:

{
  "project": "project name",
  "discipline": "engineering discipline (Structural, Civil, Architectural, Mechanical, Electrical, Plumbing, ...)",
  "drawingType": "Plans, Elevations, Sections, Details, Schedules, or Diagrams",
  "phase": "project phase or issue status",
  "drawingNumber": "the drawing/sheet number, e.g. S-46-101",
  "revision": "revision identifier"
}

Omit any key you cannot determine with confidence. Return only the JSON object.

Document excerpt:
%s`

// FailureReason distinguishes why an AI extraction contributed nothing.
type FailureReason string

const (
	FailureModelError   FailureReason = "model_error"
	FailureParseFailure FailureReason = "parse_failure"
)

// Outcome is the tagged result of an AI metadata extraction. A failed
// outcome still merges cleanly (its Meta is empty); the reason is kept so
// callers can log "model said nothing" apart from "model said something
// unparseable".
type Outcome struct {
	Meta   Metadata
	Reason FailureReason
	Err    error
}

// OK reports whether the extraction produced usable metadata.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// ExtractAI asks the generation model for title-block metadata from the
// document's first meaningful section. It is best-effort: any model or parse
// failure yields a failed Outcome with empty metadata, never an error that
// stops indexing.
func ExtractAI(ctx context.Context, provider llm.Provider, model, firstSection string) Outcome {
	prompt := fmt.Sprintf(extractionPromptTemplate, firstSection)

	resp, err := llm.CompleteWithRetry(ctx, provider, llm.CompletionRequest{
		Model: model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: extractionSystemPrompt},
			{Role: llm.RoleUser, Content: prompt},
		},
		MaxTokens:   512,
		Temperature: 0.0,
		JSONMode:    true,
	})
	if err != nil {
		return Outcome{Reason: FailureModelError, Err: err}
	}

	meta, err := parseExtraction(resp.Content)
	if err != nil {
		return Outcome{Reason: FailureParseFailure, Err: err}
	}
	return Outcome{Meta: meta}
}

// parseExtraction parses the model's raw output as a JSON metadata object,
// tolerating markdown code fences around it.
func parseExtraction(raw string) (Metadata, error) {
	raw = stripCodeFence(strings.TrimSpace(raw))

	var fields struct {
		Project       string `json:"project"`
		Discipline    string `json:"discipline"`
		DrawingType   string `json:"drawingType"`
		Phase         string `json:"phase"`
		DrawingNumber string `json:"drawingNumber"`
		Revision      string `json:"revision"`
	}
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return Metadata{}, fmt.Errorf("json parse: %w", err)
	}

	return Metadata{
		Project:       strings.TrimSpace(fields.Project),
		Discipline:    strings.TrimSpace(fields.Discipline),
		DrawingType:   strings.TrimSpace(fields.DrawingType),
		Phase:         strings.TrimSpace(fields.Phase),
		DrawingNumber: strings.TrimSpace(fields.DrawingNumber),
		Revision:      strings.TrimSpace(fields.Revision),
	}, nil
}

// stripCodeFence removes a surrounding markdown code fence if present.
func stripCodeFence(raw string) string {
	if !strings.HasPrefix(raw, "```") {
		return raw
	}
	lines := strings.Split(raw, "\n")
	if len(lines) < 2 {
		return raw
	}
	end := len(lines)
	if strings.TrimSpace(lines[end-1]) == "```" {
		end--
	}
	return strings.Join(lines[1:end], "\n")
}
