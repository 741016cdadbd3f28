package loader

import (
	"context"
	"errors"
	"testing"

	"github.com/conceptmap/backend/pkg/ai"
)

type stubTranslator struct {
	response string
	err      error
	called   bool
}

func (s *stubTranslator) GenerateCompletion(
	ctx context.Context, prompt string, opts ...ai.GenerateOption,
) (string, error) {
	s.called = true
	return s.response, s.err
}

func (s *stubTranslator) GenerateCompletionWithFormat(
	ctx context.Context, name string, description string, prompt string,
	out any, opts ...ai.GenerateOption,
) error {
	return nil
}

func (s *stubTranslator) ResetMetrics()               {}
func (s *stubTranslator) GetMetrics() ai.ModelMetrics { return ai.ModelMetrics{} }

const spanishText = "La fotosíntesis es el proceso mediante el cual las plantas " +
	"convierten la luz solar en energía química. Este proceso ocurre en los " +
	"cloroplastos y produce oxígeno como subproducto."

const englishText = "Photosynthesis is the process by which plants convert " +
	"sunlight into chemical energy. It takes place in the chloroplasts and " +
	"produces oxygen as a byproduct."

func TestIsEnglish(t *testing.T) {
	if !IsEnglish(englishText) {
		t.Fatalf("IsEnglish() = false for English text")
	}
	if IsEnglish(spanishText) {
		t.Fatalf("IsEnglish() = true for Spanish text")
	}
	// Too short to classify reliably, passes through.
	if !IsEnglish("hola") {
		t.Fatalf("IsEnglish() = false for short text")
	}
	if !IsEnglish("") {
		t.Fatalf("IsEnglish() = false for empty text")
	}
}

func TestEnsureEnglish_SkipsEnglishInput(t *testing.T) {
	stub := &stubTranslator{response: "should not be used"}

	got, err := EnsureEnglish(context.Background(), englishText, stub)
	if err != nil {
		t.Fatalf("EnsureEnglish() failed: %v", err)
	}
	if got != englishText {
		t.Fatalf("EnsureEnglish() modified English input")
	}
	if stub.called {
		t.Fatalf("EnsureEnglish() should not call the model for English input")
	}
}

func TestEnsureEnglish_TranslatesForeignInput(t *testing.T) {
	stub := &stubTranslator{response: englishText}

	got, err := EnsureEnglish(context.Background(), spanishText, stub)
	if err != nil {
		t.Fatalf("EnsureEnglish() failed: %v", err)
	}
	if got != englishText {
		t.Fatalf("EnsureEnglish() = %q, want translated text", got)
	}
	if !stub.called {
		t.Fatalf("EnsureEnglish() should call the model for foreign input")
	}
}

func TestEnsureEnglish_PropagatesModelError(t *testing.T) {
	stub := &stubTranslator{err: errors.New("model unavailable")}

	if _, err := EnsureEnglish(context.Background(), spanishText, stub); err == nil {
		t.Fatalf("EnsureEnglish() should propagate translation failure")
	}
}
