package graph

import "time"

// ConceptGraphClient runs the transcript-to-graph pipeline. It holds the
// token budget and per-stage timeouts; the AI client is passed per call so
// tests can substitute fakes.
//
// A ConceptGraphClient should be created using NewConceptGraphClient.
type ConceptGraphClient struct {
	tokenEncoder     string
	maxInputTokens   int
	structureTimeout time.Duration
	enrichTimeout    time.Duration
}

// NewConceptGraphClientParams defines the configuration parameters for
// creating a new ConceptGraphClient.
//
// TokenEncoder names the tiktoken encoding used for the input budget.
// MaxInputTokens bounds transcript size before the structure call.
// StructureTimeout bounds the structure call; EnrichTimeout bounds the
// summary/quiz pair as a whole.
type NewConceptGraphClientParams struct {
	TokenEncoder     string
	MaxInputTokens   int
	StructureTimeout time.Duration
	EnrichTimeout    time.Duration
}

// NewConceptGraphClient creates and returns a new ConceptGraphClient
// configured with the provided parameters. Zero values fall back to
// defaults suitable for lecture-length transcripts.
func NewConceptGraphClient(params NewConceptGraphClientParams) (*ConceptGraphClient, error) {
	encoder := params.TokenEncoder
	if encoder == "" {
		encoder = "cl100k_base"
	}
	maxTokens := params.MaxInputTokens
	if maxTokens <= 0 {
		maxTokens = 16000
	}
	structureTimeout := params.StructureTimeout
	if structureTimeout <= 0 {
		structureTimeout = 2 * time.Minute
	}
	enrichTimeout := params.EnrichTimeout
	if enrichTimeout <= 0 {
		enrichTimeout = 3 * time.Minute
	}

	return &ConceptGraphClient{
		tokenEncoder:     encoder,
		maxInputTokens:   maxTokens,
		structureTimeout: structureTimeout,
		enrichTimeout:    enrichTimeout,
	}, nil
}
