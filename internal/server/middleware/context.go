package middleware

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	"github.com/conceptmap/backend/pkg/ai"
	"github.com/conceptmap/backend/pkg/graph"
	"github.com/conceptmap/backend/pkg/loader"
	"github.com/conceptmap/backend/pkg/store"
)

// App holds the shared dependencies handlers need. Everything is
// constructed once at startup and injected here, so tests can build an App
// from fakes.
type App struct {
	DBConn      *pgxpool.Pool
	AiClient    ai.ConceptAIClient
	GraphClient *graph.ConceptGraphClient
	Cache       store.GraphCache
	PDFLoader   loader.TextExtractor
	DocLoader   loader.TextExtractor
}

// AppContext wraps the echo context with the application dependencies.
type AppContext struct {
	echo.Context
	App *App
}

// AppContextMiddleware injects the App into every request context.
func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return next(&AppContext{c, app})
		}
	}
}
