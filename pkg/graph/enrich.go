package graph

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/conceptmap/backend/pkg/ai"
)

type summaryEntry struct {
	NodeID  int    `json:"node_id" jsonschema_description:"Id of the concept this summary belongs to"`
	Summary string `json:"summary" jsonschema_description:"3-6 sentence study summary of the concept"`
}

type summariesResponse struct {
	Summaries []summaryEntry `json:"summaries" jsonschema_description:"One summary per concept"`
}

type quizEntry struct {
	NodeID int        `json:"node_id" jsonschema_description:"Id of the concept these questions belong to"`
	Items  []QuizItem `json:"items" jsonschema_description:"3-5 multiple-choice questions for the concept"`
}

type quizzesResponse struct {
	Quizzes []quizEntry `json:"quizzes" jsonschema_description:"One question set per concept"`
}

// GenerateSummaries produces a study summary for every skeleton node,
// keyed by the node's decimal id. It is one half of the enrichment pair
// and is independent of GenerateQuizzes.
func (g *ConceptGraphClient) GenerateSummaries(
	ctx context.Context,
	transcript string,
	nodes []SkeletonNode,
	client ai.ConceptAIClient,
) (map[string]string, error) {
	var res summariesResponse
	err := client.GenerateCompletionWithFormat(
		ctx,
		"write_concept_summaries",
		"Write a study summary for each concept extracted from a transcript.",
		transcript,
		&res,
		ai.WithSystemPrompts(fmt.Sprintf(ai.SummaryPrompt, formatNodeList(nodes))),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: summary stage: %v", ErrGeneration, err)
	}

	summaries := make(map[string]string, len(res.Summaries))
	for _, entry := range res.Summaries {
		summaries[strconv.Itoa(entry.NodeID)] = entry.Summary
	}
	return summaries, nil
}

// GenerateQuizzes produces 3-5 quiz questions for every skeleton node,
// keyed by the node's decimal id. Items with an answer index outside their
// options are dropped rather than failing the stage, and sets are capped
// at maxQuizItems when the model over-delivers.
func (g *ConceptGraphClient) GenerateQuizzes(
	ctx context.Context,
	transcript string,
	nodes []SkeletonNode,
	client ai.ConceptAIClient,
) (map[string][]QuizItem, error) {
	var res quizzesResponse
	err := client.GenerateCompletionWithFormat(
		ctx,
		"write_concept_quizzes",
		"Write multiple-choice quiz questions for each concept extracted from a transcript.",
		transcript,
		&res,
		ai.WithSystemPrompts(fmt.Sprintf(ai.QuizPrompt, formatNodeList(nodes))),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: quiz stage: %v", ErrGeneration, err)
	}

	quizzes := make(map[string][]QuizItem, len(res.Quizzes))
	for _, entry := range res.Quizzes {
		items := make([]QuizItem, 0, len(entry.Items))
		for _, item := range entry.Items {
			if item.AnswerIndex < 0 || item.AnswerIndex >= len(item.Options) {
				continue
			}
			items = append(items, item)
		}
		if len(items) > maxQuizItems {
			items = items[:maxQuizItems]
		}
		quizzes[strconv.Itoa(entry.NodeID)] = items
	}
	return quizzes, nil
}

func formatNodeList(nodes []SkeletonNode) string {
	var sb strings.Builder
	for _, n := range nodes {
		fmt.Fprintf(&sb, "- id %d: %s (weight %d)\n", n.ID, n.Label, n.Weight)
	}
	return sb.String()
}
