package graph

import (
	"github.com/conceptmap/backend/pkg/logger"

	"github.com/pkoukk/tiktoken-go"
)

// FallbackCharLimit bounds the crude character truncation used when the
// token encoder cannot be loaded.
const FallbackCharLimit = 40000

// TruncateTokens shortens text so it fits within maxTokens tokens of the
// given tiktoken encoding. It never fails: if the encoder is unavailable
// the text is cut at FallbackCharLimit characters instead. Empty input
// yields empty output.
func TruncateTokens(text string, maxTokens int, encoding string) string {
	if text == "" || maxTokens <= 0 {
		return ""
	}

	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		logger.Warn("[Tokens] encoder unavailable, falling back to character limit",
			"encoding", encoding, "err", err)
		return truncateRunes(text, FallbackCharLimit)
	}

	tokens := enc.Encode(text, nil, nil)
	if len(tokens) <= maxTokens {
		return text
	}

	return enc.Decode(tokens[:maxTokens])
}

func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
