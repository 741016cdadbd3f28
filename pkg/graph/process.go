package graph

import (
	"context"
	"fmt"

	"github.com/conceptmap/backend/internal/timing"
	"github.com/conceptmap/backend/pkg/ai"
	"github.com/conceptmap/backend/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// ProcessTranscript runs the full pipeline: the transcript is truncated to
// the token budget, the structure stage produces the skeleton, the two
// enrichment stages run concurrently against it, and the results are
// merged into the final graph.
//
// The structure call and the enrichment pair are bounded by separate
// timeouts. Enrichment is a join, not a race: both results are required,
// and a failure in either fails the whole request. No stage is retried.
func (g *ConceptGraphClient) ProcessTranscript(
	ctx context.Context,
	transcript string,
	client ai.ConceptAIClient,
) (*Graph, error) {
	// Hash before truncation: callers key the cache by the full input.
	logger.Info("[Graph] Generating structure", "hash", Fingerprint(transcript))

	transcript = TruncateTokens(transcript, g.maxInputTokens, g.tokenEncoder)

	structureStage := timing.Start("structure stage")
	sctx, cancel := context.WithTimeout(ctx, g.structureTimeout)
	defer cancel()
	skeleton, err := g.GenerateStructure(sctx, transcript, client)
	if err != nil {
		return nil, err
	}
	structureStage.Done("nodes", len(skeleton.Nodes))

	logger.Info("[Graph] Structure complete",
		"nodes", len(skeleton.Nodes), "links", len(skeleton.Links))

	enrichStage := timing.Start("enrichment stage")
	ectx, cancel := context.WithTimeout(ctx, g.enrichTimeout)
	defer cancel()
	eg, gctx := errgroup.WithContext(ectx)

	var summaries map[string]string
	var quizzes map[string][]QuizItem

	eg.Go(func() error {
		var err error
		summaries, err = g.GenerateSummaries(gctx, transcript, skeleton.Nodes, client)
		return err
	})
	eg.Go(func() error {
		var err error
		quizzes, err = g.GenerateQuizzes(gctx, transcript, skeleton.Nodes, client)
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	enrichStage.Done()

	merged := Merge(skeleton, summaries, quizzes)
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("merged graph failed validation: %w", err)
	}

	logger.Info("[Graph] Pipeline complete",
		"nodes", len(merged.Nodes), "links", len(merged.Links))

	return merged, nil
}
