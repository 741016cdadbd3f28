package routes

import (
	"errors"
	"net/http"

	"github.com/conceptmap/backend/internal/server/middleware"
	"github.com/conceptmap/backend/pkg/logger"
	"github.com/conceptmap/backend/pkg/store"

	"github.com/labstack/echo/v4"
)

// GetCachedGraphHandler returns the graph stored under a content hash.
func GetCachedGraphHandler(c echo.Context) error {
	type cachedGraphParams struct {
		Hash string `param:"hash" validate:"required"`
	}

	type errorResponse struct {
		Message string `json:"message"`
	}

	params := new(cachedGraphParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Message: "Invalid request",
		})
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	graph, err := app.Cache.Get(ctx, params.Hash)
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, errorResponse{
			Message: "No graph stored for this hash",
		})
	}
	if err != nil {
		logger.Error("[Cache] read failed", "hash", params.Hash, "err", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Message: "Failed to read cached graph",
		})
	}

	return c.JSON(http.StatusOK, graph)
}
