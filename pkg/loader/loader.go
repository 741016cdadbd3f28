package loader

import "context"

// TextExtractor extracts plain text from an uploaded document held in
// memory. Implementations exist for PDF and Word documents.
type TextExtractor interface {
	ExtractText(ctx context.Context, content []byte) ([]byte, error)
}
