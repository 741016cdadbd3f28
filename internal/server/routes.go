package server

import (
	"net/http"

	"github.com/conceptmap/backend/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.POST("/extract-graph", routes.ExtractGraphHandler)
	e.POST("/store-graph", routes.StoreGraphHandler)
	e.GET("/get-cached-graph/:hash", routes.GetCachedGraphHandler)

	e.POST("/upload-pdf", routes.UploadPDFHandler)
	e.POST("/upload-docx", routes.UploadDocxHandler)
}
