package routes

import (
	"net/http"

	"github.com/conceptmap/backend/internal/server/middleware"
	"github.com/conceptmap/backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ExtractGraphHandler runs the full pipeline on a submitted transcript and
// returns the generated graph without persisting it.
func ExtractGraphHandler(c echo.Context) error {
	type extractGraphBody struct {
		Transcript string `json:"transcript" validate:"required"`
	}

	type errorResponse struct {
		Message string `json:"message"`
		Detail  string `json:"detail,omitempty"`
	}

	data := new(extractGraphBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{
			Message: "Transcript is required",
		})
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	graph, err := app.GraphClient.ProcessTranscript(ctx, data.Transcript, app.AiClient)
	if err != nil {
		logger.Error("[Extract] pipeline failed", "err", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Message: "Graph generation failed",
			Detail:  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, graph)
}
