package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/conceptmap/backend/internal/db"
	mid "github.com/conceptmap/backend/internal/server/middleware"
	"github.com/conceptmap/backend/internal/util"
	"github.com/conceptmap/backend/pkg/ai"
	oai "github.com/conceptmap/backend/pkg/ai/ollama"
	gai "github.com/conceptmap/backend/pkg/ai/openai"
	"github.com/conceptmap/backend/pkg/graph"
	"github.com/conceptmap/backend/pkg/loader/doc"
	"github.com/conceptmap/backend/pkg/loader/pdf"
	"github.com/conceptmap/backend/pkg/logger"
	pgxcache "github.com/conceptmap/backend/pkg/store/pgx"

	"github.com/go-playground/validator"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	databaseURL := util.GetEnv("DATABASE_URL")
	if migrationsPath := util.GetEnvString("MIGRATIONS_PATH", "migrations"); migrationsPath != "" {
		if err := db.Migrate(databaseURL, migrationsPath); err != nil {
			logger.Fatal("Failed to run migrations", "err", err)
		}
	}

	conn, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", "err", err)
	}
	defer conn.Close()

	aiClient := newAIClient()

	graphClient, err := graph.NewConceptGraphClient(graph.NewConceptGraphClientParams{
		TokenEncoder:     util.GetEnvString("AI_TOKEN_ENCODER", "cl100k_base"),
		MaxInputTokens:   int(util.GetEnvNumeric("AI_MAX_INPUT_TOKENS", 16000)),
		StructureTimeout: time.Duration(util.GetEnvNumeric("AI_STRUCTURE_TIMEOUT_SEC", 120)) * time.Second,
		EnrichTimeout:    time.Duration(util.GetEnvNumeric("AI_ENRICH_TIMEOUT_SEC", 180)) * time.Second,
	})
	if err != nil {
		logger.Fatal("Failed to create graph client", "err", err)
	}

	app := &mid.App{
		DBConn:      conn,
		AiClient:    aiClient,
		GraphClient: graphClient,
		Cache:       pgxcache.NewGraphDBCache(conn),
		PDFLoader:   pdf.NewPDFExtractor(),
		DocLoader:   doc.NewDocExtractor(),
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("64M"))

	RegisterRoutes(e)

	go func() {
		port := util.GetEnvString("PORT", "8080")
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}

func newAIClient() ai.ConceptAIClient {
	switch util.GetEnv("AI_ADAPTER") {
	case "ollama":
		client, err := oai.NewConceptOllamaClient(oai.NewConceptOllamaClientParams{
			CompletionModel: util.GetEnv("AI_COMPLETION_MODEL"),
			ExtractionModel: util.GetEnv("AI_EXTRACTION_MODEL"),

			BaseURL: util.GetEnv("AI_CHAT_URL"),
			ApiKey:  util.GetEnv("AI_CHAT_KEY"),
		})
		if err != nil {
			logger.Fatal("Failed to create Ollama client", "err", err)
		}
		return client
	default:
		return gai.NewConceptOpenAIClient(gai.NewConceptOpenAIClientParams{
			CompletionModel: util.GetEnv("AI_COMPLETION_MODEL"),
			ExtractionModel: util.GetEnv("AI_EXTRACTION_MODEL"),

			ChatURL: util.GetEnv("AI_CHAT_URL"),
			ChatKey: util.GetEnv("AI_CHAT_KEY"),
		})
	}
}
