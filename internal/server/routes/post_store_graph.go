package routes

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/conceptmap/backend/internal/server/middleware"
	"github.com/conceptmap/backend/pkg/graph"
	"github.com/conceptmap/backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

// StoreGraphHandler stores a graph in the cache keyed by content hash.
// A caller may supply a pre-built graph, which is validated and stored
// as-is; otherwise the transcript runs through the pipeline first. Cache
// writes are best-effort: a storage failure is logged and the freshly
// generated graph is still returned.
func StoreGraphHandler(c echo.Context) error {
	type storeGraphBody struct {
		Transcript string       `json:"transcript"`
		Graph      *graph.Graph `json:"graph"`
	}

	type storeGraphResponse struct {
		Hash  string       `json:"hash"`
		Nodes []graph.Node `json:"nodes"`
		Links []graph.Link `json:"links"`
	}

	type errorResponse struct {
		Message string `json:"message"`
		Detail  string `json:"detail,omitempty"`
	}

	data := new(storeGraphBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request body",
		})
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	var (
		result *graph.Graph
		hash   string
	)

	switch {
	case data.Graph != nil:
		if err := data.Graph.Validate(); err != nil {
			return c.JSON(http.StatusUnprocessableEntity, errorResponse{
				Message: "Supplied graph is invalid",
				Detail:  err.Error(),
			})
		}
		data.Graph.Normalize()
		result = data.Graph
		hash = graphFingerprint(data.Transcript, data.Graph)

	case strings.TrimSpace(data.Transcript) != "":
		generated, err := app.GraphClient.ProcessTranscript(ctx, data.Transcript, app.AiClient)
		if err != nil {
			logger.Error("[Store] pipeline failed", "err", err)
			return c.JSON(http.StatusInternalServerError, errorResponse{
				Message: "Graph generation failed",
				Detail:  err.Error(),
			})
		}
		result = generated
		hash = graph.Fingerprint(data.Transcript)

	default:
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{
			Message: "Either transcript or graph is required",
		})
	}

	if err := app.Cache.Put(ctx, hash, data.Transcript, result); err != nil {
		// Cache is advisory: the generated graph is still returned.
		logger.Error("[Store] cache write failed", "hash", hash, "err", err)
	}

	return c.JSON(http.StatusOK, storeGraphResponse{
		Hash:  hash,
		Nodes: result.Nodes,
		Links: result.Links,
	})
}

// graphFingerprint keys a store request. Transcript bytes win when
// present; a pre-built graph without source text is keyed by its own
// canonical JSON so identical payloads land on the same entry.
func graphFingerprint(transcript string, g *graph.Graph) string {
	if transcript != "" {
		return graph.Fingerprint(transcript)
	}
	payload, err := json.Marshal(g)
	if err != nil {
		return graph.Fingerprint("")
	}
	return graph.Fingerprint(string(payload))
}
