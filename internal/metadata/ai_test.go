package metadata

import (
	"context"
	"errors"
	"testing"

	"github.com/buildvault/plansearch/internal/llm"
)

// cannedProvider returns a fixed response or error for every completion.
type cannedProvider struct {
	content string
	err     error
}

func (p *cannedProvider) Complete(_ context.Context, _ llm.CompletionRequest) (*llm.CompletionResponse, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &llm.CompletionResponse{Content: p.content}, nil
}

func (p *cannedProvider) Name() string { return "canned" }

func TestExtractAI_Success(t *testing.T) {
	provider := &cannedProvider{content: `{
		"project": "Lift Station 46",
		"discipline": "Structural",
		"drawingType": "Plans",
		"phase": "Construction Documents",
		"drawingNumber": "S-46-101",
		"revision": "B"
	}`}

	outcome := ExtractAI(context.Background(), provider, "gpt-4o-mini", "title block text")
	if !outcome.OK() {
		t.Fatalf("expected success, got %s: %v", outcome.Reason, outcome.Err)
	}
	if outcome.Meta.Project != "Lift Station 46" {
		t.Errorf("Project: got %q", outcome.Meta.Project)
	}
	if outcome.Meta.DrawingNumber != "S-46-101" {
		t.Errorf("DrawingNumber: got %q", outcome.Meta.DrawingNumber)
	}
	if outcome.Meta.Revision != "B" {
		t.Errorf("Revision: got %q", outcome.Meta.Revision)
	}
}

func TestExtractAI_CodeFence(t *testing.T) {
	provider := &cannedProvider{content: "```json\n{\"project\": \"Fenced\"}\n```"}

	outcome := ExtractAI(context.Background(), provider, "gpt-4o-mini", "text")
	if !outcome.OK() {
		t.Fatalf("expected success, got %s: %v", outcome.Reason, outcome.Err)
	}
	if outcome.Meta.Project != "Fenced" {
		t.Errorf("Project: got %q, want Fenced", outcome.Meta.Project)
	}
}

func TestExtractAI_OmittedKeys(t *testing.T) {
	provider := &cannedProvider{content: `{"discipline": "Civil"}`}

	outcome := ExtractAI(context.Background(), provider, "gpt-4o-mini", "text")
	if !outcome.OK() {
		t.Fatalf("expected success, got %s: %v", outcome.Reason, outcome.Err)
	}
	if outcome.Meta.Discipline != "Civil" {
		t.Errorf("Discipline: got %q", outcome.Meta.Discipline)
	}
	if outcome.Meta.Project != "" || outcome.Meta.Revision != "" {
		t.Errorf("omitted keys should stay unset, got %+v", outcome.Meta)
	}
}

func TestExtractAI_ModelError(t *testing.T) {
	provider := &cannedProvider{err: errors.New("connection refused")}

	outcome := ExtractAI(context.Background(), provider, "gpt-4o-mini", "text")
	if outcome.OK() {
		t.Fatal("expected failure outcome")
	}
	if outcome.Reason != FailureModelError {
		t.Errorf("Reason: got %s, want %s", outcome.Reason, FailureModelError)
	}
	if !outcome.Meta.IsEmpty() {
		t.Errorf("failed outcome should carry empty metadata, got %+v", outcome.Meta)
	}
}

func TestExtractAI_ParseFailure(t *testing.T) {
	provider := &cannedProvider{content: "I could not find any metadata in this document."}

	outcome := ExtractAI(context.Background(), provider, "gpt-4o-mini", "text")
	if outcome.OK() {
		t.Fatal("expected failure outcome")
	}
	if outcome.Reason != FailureParseFailure {
		t.Errorf("Reason: got %s, want %s", outcome.Reason, FailureParseFailure)
	}
	if !outcome.Meta.IsEmpty() {
		t.Errorf("failed outcome should carry empty metadata, got %+v", outcome.Meta)
	}
}
