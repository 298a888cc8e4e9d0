package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubGenerator struct {
	response    string
	err         error
	lastSystem  string
	lastMessage string
}

func (s *stubGenerator) GenerateContent(_ context.Context, system, message string) (string, error) {
	s.lastSystem = system
	s.lastMessage = message
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestAdvisorAnswer(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	stub := &stubGenerator{response: "```text\nTry a data internship.\n```"}
	advisor := NewAdvisor(stub, zap.New(core), 10)

	answer, err := advisor.Answer(context.Background(), "  Is a bootcamp worth it?  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "Try a data internship." {
		t.Fatalf("unexpected answer: %q", answer)
	}
	if stub.lastMessage != "Is a bootcamp worth it?" {
		t.Fatalf("unexpected message: %q", stub.lastMessage)
	}
	if !strings.Contains(stub.lastSystem, "career mentor") {
		t.Fatalf("expected embedded system prompt, got %q", stub.lastSystem)
	}

	entries := observed.FilterMessage("gemini generate content request").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 request log, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["prompt_preview"]; got != "Is a bootc..." {
		t.Fatalf("unexpected preview: %q", got)
	}
}

func TestAdvisorPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	advisor := NewAdvisor(&stubGenerator{err: boom}, nil, 0)

	if _, err := advisor.Answer(context.Background(), "question"); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestCleanAnswer(t *testing.T) {
	cases := map[string]string{
		"plain":               "plain",
		"```\nfenced\n```":    "fenced",
		"  ```text\nx\n```  ": "x",
		"no closing ```":      "no closing ```",
	}
	for in, want := range cases {
		if got := cleanAnswer(in); got != want {
			t.Fatalf("cleanAnswer(%q) = %q, want %q", in, got, want)
		}
	}
}
