package llm

import (
	"context"
	"errors"
	"testing"
)

type flakyProvider struct {
	failures int
	err      error
	calls    int
}

func (p *flakyProvider) Complete(_ context.Context, _ CompletionRequest) (*CompletionResponse, error) {
	p.calls++
	if p.calls <= p.failures {
		return nil, p.err
	}
	return &CompletionResponse{Content: "  ok  "}, nil
}

func (p *flakyProvider) Name() string { return "flaky" }

func TestNewProvider_Unknown(t *testing.T) {
	if _, err := NewProvider("bedrock", "model"); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestNewProvider_OpenAIRequiresKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	if _, err := NewProvider("openai", "gpt-4o-mini"); err == nil {
		t.Error("expected error without OPENAI_API_KEY")
	}
}

func TestNewProvider_Ollama(t *testing.T) {
	p, err := NewProvider("ollama", "llama3")
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p.Name() != "ollama" {
		t.Errorf("Name: got %q", p.Name())
	}
}

func TestCompleteWithRetry_NonRetryable(t *testing.T) {
	p := &flakyProvider{failures: 100, err: errors.New("invalid request")}

	_, err := CompleteWithRetry(context.Background(), p, CompletionRequest{})
	if err == nil {
		t.Fatal("expected error")
	}
	if p.calls != 1 {
		t.Errorf("non-retryable error retried %d times", p.calls-1)
	}
}

func TestGenerate_TrimsResponse(t *testing.T) {
	p := &flakyProvider{}
	got, err := Generate(context.Background(), p, "model", "prompt", 64)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "ok" {
		t.Errorf("got %q, want trimmed %q", got, "ok")
	}
}
