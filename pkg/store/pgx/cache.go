package pgx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/conceptmap/backend/pkg/graph"
	"github.com/conceptmap/backend/pkg/logger"
	"github.com/conceptmap/backend/pkg/store"

	pgxv5 "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type pgxIConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, optionsAndArgs ...any) pgxv5.Row
}

// GraphDBCache implements store.GraphCache on PostgreSQL. Entries live in
// the concept_graphs table keyed by the transcript fingerprint; upsert
// atomicity comes from ON CONFLICT, no extra locking is needed.
type GraphDBCache struct {
	conn pgxIConn
}

// NewGraphDBCache creates a cache using an existing database connection or
// pool.
func NewGraphDBCache(conn pgxIConn) *GraphDBCache {
	return &GraphDBCache{conn: conn}
}

// Put upserts a graph under the given hash, replacing any prior entry.
func (c *GraphDBCache) Put(ctx context.Context, hash string, transcript string, g *graph.Graph) error {
	payload, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("%w: encode graph: %v", store.ErrStorage, err)
	}

	_, err = c.conn.Exec(ctx, `
		INSERT INTO concept_graphs (hash, transcript, graph_json)
		VALUES ($1, $2, $3)
		ON CONFLICT (hash) DO UPDATE
		SET transcript = EXCLUDED.transcript,
		    graph_json = EXCLUDED.graph_json,
		    updated_at = now()
	`, hash, transcript, payload)
	if err != nil {
		return fmt.Errorf("%w: upsert graph: %v", store.ErrStorage, err)
	}

	logger.Debug("[Cache] Graph stored", "hash", hash, "nodes", len(g.Nodes))
	return nil
}

// Get retrieves the graph stored under hash. The stored payload is decoded
// and validated against the current graph shape before it is returned, so
// schema drift surfaces as ErrStorage rather than a malformed response.
func (c *GraphDBCache) Get(ctx context.Context, hash string) (*graph.Graph, error) {
	var payload []byte
	err := c.conn.QueryRow(ctx, `
		SELECT graph_json FROM concept_graphs WHERE hash = $1
	`, hash).Scan(&payload)
	if errors.Is(err, pgxv5.ErrNoRows) {
		return nil, fmt.Errorf("%w: hash %s", store.ErrNotFound, hash)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: query graph: %v", store.ErrStorage, err)
	}

	var g graph.Graph
	if err := json.Unmarshal(payload, &g); err != nil {
		return nil, fmt.Errorf("%w: decode stored graph: %v", store.ErrStorage, err)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: stored graph invalid: %v", store.ErrStorage, err)
	}

	return &g, nil
}
