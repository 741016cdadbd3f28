package graph

import (
	"strings"
	"testing"

	"github.com/pkoukk/tiktoken-go"
)

func TestTruncateTokens_EmptyInput(t *testing.T) {
	if got := TruncateTokens("", 100, "cl100k_base"); got != "" {
		t.Fatalf("TruncateTokens(\"\") = %q, want empty string", got)
	}
}

func TestTruncateTokens_WithinBudget(t *testing.T) {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		t.Skipf("encoder unavailable: %v", err)
	}

	text := "Django is a web framework built on Python."
	got := TruncateTokens(text, 1000, "cl100k_base")
	if got != text {
		t.Fatalf("TruncateTokens() should not modify text within budget, got %q", got)
	}

	if n := len(enc.Encode(got, nil, nil)); n > 1000 {
		t.Fatalf("TruncateTokens() result has %d tokens, want <= 1000", n)
	}
}

func TestTruncateTokens_EnforcesBudget(t *testing.T) {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		t.Skipf("encoder unavailable: %v", err)
	}

	text := strings.Repeat("machine learning and knowledge graphs ", 200)
	maxTokens := 50

	got := TruncateTokens(text, maxTokens, "cl100k_base")
	if n := len(enc.Encode(got, nil, nil)); n > maxTokens {
		t.Fatalf("TruncateTokens() result has %d tokens, want <= %d", n, maxTokens)
	}
	if got == "" {
		t.Fatalf("TruncateTokens() should keep a prefix of a non-empty input")
	}
}

func TestTruncateTokens_FallbackOnUnknownEncoder(t *testing.T) {
	short := "short text"
	if got := TruncateTokens(short, 10, "no-such-encoding"); got != short {
		t.Fatalf("fallback should pass short text through, got %q", got)
	}

	long := strings.Repeat("x", FallbackCharLimit+500)
	got := TruncateTokens(long, 10, "no-such-encoding")
	if len(got) != FallbackCharLimit {
		t.Fatalf("fallback should cut at %d characters, got %d", FallbackCharLimit, len(got))
	}
}
