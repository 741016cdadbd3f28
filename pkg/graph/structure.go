package graph

import (
	"context"
	"fmt"

	"github.com/conceptmap/backend/pkg/ai"
	"github.com/conceptmap/backend/pkg/logger"
)

// GenerateStructure runs the first pipeline stage: a single structured
// model call producing the node/link skeleton. Summaries and quizzes are
// deliberately not requested here to keep the structural call small.
//
// The returned skeleton is validated: duplicate node ids fail the stage,
// links referencing unknown ids are dropped.
func (g *ConceptGraphClient) GenerateStructure(
	ctx context.Context,
	transcript string,
	client ai.ConceptAIClient,
) (*Skeleton, error) {
	var skeleton Skeleton
	err := client.GenerateCompletionWithFormat(
		ctx,
		"extract_concept_structure",
		"Extract the concept nodes and their relationships from a transcript.",
		transcript,
		&skeleton,
		ai.WithSystemPrompts(ai.StructurePrompt),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: structure stage: %v", ErrGeneration, err)
	}

	if err := validateSkeleton(&skeleton); err != nil {
		return nil, err
	}

	return &skeleton, nil
}

func validateSkeleton(s *Skeleton) error {
	ids := make(map[int]struct{}, len(s.Nodes))
	for _, n := range s.Nodes {
		if _, ok := ids[n.ID]; ok {
			return fmt.Errorf("%w: structure stage returned duplicate node id %d", ErrParse, n.ID)
		}
		ids[n.ID] = struct{}{}
	}

	kept := s.Links[:0]
	for _, l := range s.Links {
		_, srcOK := ids[l.Source]
		_, tgtOK := ids[l.Target]
		if !srcOK || !tgtOK {
			logger.Warn("[Graph] dropping link with unknown endpoint",
				"source", l.Source, "target", l.Target, "relation", l.Relation)
			continue
		}
		kept = append(kept, l)
	}
	s.Links = kept

	return nil
}
