package loader

import (
	"context"
	"strings"

	"github.com/conceptmap/backend/pkg/ai"
	"github.com/conceptmap/backend/pkg/logger"

	"github.com/abadojack/whatlanggo"
)

// Detection below this confidence is treated as inconclusive and the text
// passes through untranslated.
const minLangConfidence = 0.6

// IsEnglish reports whether text is detected as English. Short or
// inconclusive inputs count as English so they skip translation.
func IsEnglish(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 40 {
		return true
	}

	info := whatlanggo.Detect(trimmed)
	if info.Confidence < minLangConfidence {
		return true
	}
	return info.Lang == whatlanggo.Eng
}

// EnsureEnglish translates text to English via the AI client when language
// detection says it is not English. English (or inconclusive) input is
// returned unchanged without a model call.
func EnsureEnglish(ctx context.Context, text string, client ai.ConceptAIClient) (string, error) {
	if IsEnglish(text) {
		return text, nil
	}

	lang := whatlanggo.Detect(text).Lang
	logger.Info("[Loader] Translating document", "detected", whatlanggo.LangToString(lang))

	translated, err := client.GenerateCompletion(
		ctx,
		text,
		ai.WithSystemPrompts(ai.TranslatePrompt),
	)
	if err != nil {
		return "", err
	}

	return translated, nil
}
