package routes

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/conceptmap/backend/internal/server/middleware"
	"github.com/conceptmap/backend/internal/timing"
	"github.com/conceptmap/backend/pkg/loader"
	"github.com/conceptmap/backend/pkg/logger"

	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type transcriptResponse struct {
	Transcript string `json:"transcript"`
}

type uploadErrorResponse struct {
	Message string `json:"message"`
}

// UploadPDFHandler extracts the text of an uploaded PDF, translating it to
// English when needed, and returns it as a transcript.
func UploadPDFHandler(c echo.Context) error {
	app := c.(*middleware.AppContext).App
	return handleUpload(c, ".pdf", app.PDFLoader)
}

// UploadDocxHandler extracts the text of an uploaded Word document,
// translating it to English when needed, and returns it as a transcript.
func UploadDocxHandler(c echo.Context) error {
	app := c.(*middleware.AppContext).App
	return handleUpload(c, ".docx", app.DocLoader)
}

func handleUpload(c echo.Context, wantExt string, extractor loader.TextExtractor) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, uploadErrorResponse{
			Message: "No file provided",
		})
	}

	if ext := strings.ToLower(filepath.Ext(file.Filename)); ext != wantExt {
		return c.JSON(http.StatusUnprocessableEntity, uploadErrorResponse{
			Message: "Unsupported file extension, expected " + wantExt,
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, uploadErrorResponse{
			Message: "Could not open file",
		})
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return c.JSON(http.StatusBadRequest, uploadErrorResponse{
			Message: "Could not read file",
		})
	}

	uploadID, err := gonanoid.New()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, uploadErrorResponse{
			Message: "Internal server error",
		})
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	logger.Info("[Upload] Extracting text",
		"upload_id", uploadID, "name", file.Filename, "bytes", len(content))

	extraction := timing.Start("document extraction")
	text, err := extractor.ExtractText(ctx, content)
	if err != nil {
		logger.Error("[Upload] extraction failed", "upload_id", uploadID, "err", err)
		return c.JSON(http.StatusInternalServerError, uploadErrorResponse{
			Message: "Failed to extract text from document",
		})
	}

	extraction.Done("upload_id", uploadID)

	transcript := strings.TrimSpace(string(text))
	if transcript == "" {
		return c.JSON(http.StatusUnprocessableEntity, uploadErrorResponse{
			Message: "Document contains no extractable text",
		})
	}

	transcript, err = loader.EnsureEnglish(ctx, transcript, app.AiClient)
	if err != nil {
		logger.Error("[Upload] translation failed", "upload_id", uploadID, "err", err)
		return c.JSON(http.StatusInternalServerError, uploadErrorResponse{
			Message: "Failed to translate document",
		})
	}

	return c.JSON(http.StatusOK, transcriptResponse{
		Transcript: transcript,
	})
}
