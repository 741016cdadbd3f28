package store

import (
	"context"
	"errors"

	"github.com/conceptmap/backend/pkg/graph"
)

// Error kinds surfaced by cache implementations. Callers match them with
// errors.Is to choose a response status.
var (
	// ErrNotFound marks a cache lookup for a hash with no stored entry.
	ErrNotFound = errors.New("graph not found")

	// ErrStorage marks a transport or query failure against the backing
	// store, including stored payloads that no longer match the graph
	// shape.
	ErrStorage = errors.New("graph storage failed")
)

// GraphCache persists concept graphs keyed by the transcript fingerprint.
//
// Put has upsert semantics: storing under an existing hash fully replaces
// the prior entry. Last-write-wins is acceptable for concurrent upserts
// since an identical hash implies identical input.
//
// Get fails with ErrNotFound when no entry matches and ErrStorage on
// transport failure. Implementations must re-validate the stored payload
// against the current graph shape before returning it.
type GraphCache interface {
	Put(ctx context.Context, hash string, transcript string, g *graph.Graph) error
	Get(ctx context.Context, hash string) (*graph.Graph, error)
}
