package pdf

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"golang.org/x/sync/singleflight"
)

// PDFExtractor extracts text from PDF documents. Extraction results are
// cached by content digest and concurrent requests for the same document
// are collapsed into one parse.
type PDFExtractor struct {
	cache   map[string][]byte
	cacheMu sync.RWMutex
	group   singleflight.Group
}

// NewPDFExtractor creates a PDF text extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{
		cache: make(map[string][]byte),
	}
}

// ExtractText extracts plain text from the PDF content.
func (l *PDFExtractor) ExtractText(ctx context.Context, content []byte) ([]byte, error) {
	sum := sha256.Sum256(content)
	key := hex.EncodeToString(sum[:])

	l.cacheMu.RLock()
	if cached, ok := l.cache[key]; ok {
		l.cacheMu.RUnlock()
		return cached, nil
	}
	l.cacheMu.RUnlock()

	result, err, _ := l.group.Do(key, func() (any, error) {
		text, err := parsePDF(ctx, content)
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
