package doc

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"golang.org/x/sync/singleflight"
)

const docXMLMax = 50 << 20

// DocExtractor extracts text from Word (.docx) documents by reading the
// document XML directly. Results are cached by content digest and
// concurrent requests for the same document are collapsed into one parse.
type DocExtractor struct {
	cache   map[string][]byte
	cacheMu sync.RWMutex
	group   singleflight.Group
}

// NewDocExtractor creates a Word document text extractor.
func NewDocExtractor() *DocExtractor {
	return &DocExtractor{
		cache: make(map[string][]byte),
	}
}

// ExtractText extracts plain text from the docx content.
func (l *DocExtractor) ExtractText(ctx context.Context, content []byte) ([]byte, error) {
	sum := sha256.Sum256(content)
	key := hex.EncodeToString(sum[:])

	l.cacheMu.RLock()
	if cached, ok := l.cache[key]; ok {
		l.cacheMu.RUnlock()
		return cached, nil
	}
	l.cacheMu.RUnlock()

	result, err, _ := l.group.Do(key, func() (any, error) {
		text, err := parseDocx(content)
		if err != nil {
			return nil, err
		}

		l.cacheMu.Lock()
		l.cache[key] = text
		l.cacheMu.Unlock()

		return text, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]byte), nil
}
