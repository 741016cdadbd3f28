package ollama

import (
	"net/http"
	"net/url"
	"sync"

	"github.com/conceptmap/backend/pkg/ai"

	"github.com/ollama/ollama/api"
)

// ConceptOllamaClient implements ai.ConceptAIClient against a locally or
// remotely hosted Ollama server.
type ConceptOllamaClient struct {
	completionModel string
	extractionModel string

	metricsLock sync.Mutex
	metrics     ai.ModelMetrics

	Client *api.Client
}

// NewConceptOllamaClientParams configures a ConceptOllamaClient. BaseURL
// may be empty for the default Ollama address; ApiKey is sent as a bearer
// token for hosted deployments.
type NewConceptOllamaClientParams struct {
	CompletionModel string
	ExtractionModel string

	BaseURL string
	ApiKey  string
}

type headerTransport struct {
	headers map[string]string
	rt      http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// clone so original request isn't modified
	r := req.Clone(req.Context())
	for k, v := range t.headers {
		if r.Header.Get(k) == "" {
			r.Header.Set(k, v)
		}
	}
	return t.rt.RoundTrip(r)
}

// NewConceptOllamaClient creates an Ollama-backed AI client with the given
// configuration.
func NewConceptOllamaClient(
	params NewConceptOllamaClientParams,
) (*ConceptOllamaClient, error) {
	var (
		u   *url.URL
		err error
	)

	if params.BaseURL != "" {
		u, err = url.Parse(params.BaseURL)
		if err != nil {
			return nil, err
		}
	}

	httpClient := &http.Client{
		Transport: &headerTransport{
			headers: map[string]string{
				"Authorization": "Bearer " + params.ApiKey,
			},
			rt: http.DefaultTransport,
		},
	}

	return &ConceptOllamaClient{
		completionModel: params.CompletionModel,
		extractionModel: params.ExtractionModel,

		Client: api.NewClient(u, httpClient),
	}, nil
}

func (c *ConceptOllamaClient) modifyMetrics(m ai.ModelMetrics) {
	c.metricsLock.Lock()
	defer c.metricsLock.Unlock()

	c.metrics.InputTokens += m.InputTokens
	c.metrics.OutputTokens += m.OutputTokens
	c.metrics.TotalTokens += m.TotalTokens
	c.metrics.DurationMs += m.DurationMs
}

// GetMetrics returns the accumulated usage metrics.
func (c *ConceptOllamaClient) GetMetrics() ai.ModelMetrics {
	c.metricsLock.Lock()
	defer c.metricsLock.Unlock()
	return c.metrics
}

// ResetMetrics clears the accumulated usage metrics.
func (c *ConceptOllamaClient) ResetMetrics() {
	c.metricsLock.Lock()
	defer c.metricsLock.Unlock()
	c.metrics = ai.ModelMetrics{}
}
