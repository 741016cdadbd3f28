package openai

import (
	"sync"

	"github.com/conceptmap/backend/pkg/ai"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// ConceptOpenAIClient implements ai.ConceptAIClient against any
// OpenAI-compatible chat completion API.
type ConceptOpenAIClient struct {
	completionModel string
	extractionModel string

	chatURL string
	chatKey string

	metricsLock sync.Mutex
	metrics     ai.ModelMetrics

	ChatClient *openai.Client
}

// NewConceptOpenAIClientParams configures a ConceptOpenAIClient.
//
// ExtractionModel is used for structured-output calls (graph structure,
// enrichment); CompletionModel for plain-text calls (translation).
// ChatURL may be empty for the default OpenAI endpoint.
type NewConceptOpenAIClientParams struct {
	CompletionModel string
	ExtractionModel string

	ChatURL string
	ChatKey string
}

// NewConceptOpenAIClient creates a client from explicit parameters. A
// missing API key does not fail construction; calls fail at invocation.
func NewConceptOpenAIClient(
	params NewConceptOpenAIClientParams,
) *ConceptOpenAIClient {
	return &ConceptOpenAIClient{
		completionModel: params.CompletionModel,
		extractionModel: params.ExtractionModel,

		chatURL: params.ChatURL,
		chatKey: params.ChatKey,

		ChatClient: newOpenaiClient(params.ChatURL, params.ChatKey),
	}
}

func newOpenaiClient(baseURL string, apiKey string) *openai.Client {
	options := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		options = append(options, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(options...)
	return &client
}

func (c *ConceptOpenAIClient) modifyMetrics(m ai.ModelMetrics) {
	c.metricsLock.Lock()
	defer c.metricsLock.Unlock()

	c.metrics.InputTokens += m.InputTokens
	c.metrics.OutputTokens += m.OutputTokens
	c.metrics.TotalTokens += m.TotalTokens
	c.metrics.DurationMs += m.DurationMs
}

// GetMetrics returns the accumulated usage metrics.
func (c *ConceptOpenAIClient) GetMetrics() ai.ModelMetrics {
	c.metricsLock.Lock()
	defer c.metricsLock.Unlock()
	return c.metrics
}

// ResetMetrics clears the accumulated usage metrics.
func (c *ConceptOpenAIClient) ResetMetrics() {
	c.metricsLock.Lock()
	defer c.metricsLock.Unlock()
	c.metrics = ai.ModelMetrics{}
}
