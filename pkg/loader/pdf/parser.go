package pdf

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const parseTimeout = 30 * time.Second

var multiBlank = regexp.MustCompile(`\n{3,}`)

// parsePDF shells out to pdftotext. The binary must be on PATH; it handles
// the long tail of real-world PDFs far better than pure-Go parsers.
func parsePDF(ctx context.Context, input []byte) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "pdfextract-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	pdfPath := filepath.Join(tmpDir, "input.pdf")
	if err := os.WriteFile(pdfPath, input, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write temp PDF: %w", err)
	}

	if _, err := exec.LookPath("pdftotext"); err != nil {
		return nil, fmt.Errorf("pdftotext not found in PATH: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, parseTimeout)
	defer cancel()

	txtPath := filepath.Join(tmpDir, "output.txt")
	cmd := exec.CommandContext(
		ctx,
		"pdftotext",
		"-enc", "UTF-8",
		"-eol", "unix",
		"-nopgbrk",
		"-q",
		pdfPath,
		txtPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("pdftotext failed: %w (%s)", err, strings.TrimSpace(string(out)))
	}

	text, err := os.ReadFile(txtPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read extracted text: %w", err)
	}

	cleaned := multiBlank.ReplaceAllString(string(text), "\n\n")
	return []byte(strings.TrimSpace(cleaned)), nil
}
