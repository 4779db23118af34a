package api

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ledgerlens/statement-insights/internal/analytics"
	"github.com/ledgerlens/statement-insights/internal/config"
	"github.com/ledgerlens/statement-insights/internal/extractor"
	"github.com/ledgerlens/statement-insights/internal/models"
	"github.com/ledgerlens/statement-insights/internal/parser"
)

// StatementResponse is the JSON response from POST /api/statements.
type StatementResponse struct {
	Success      bool                    `json:"success"`
	Error        string                  `json:"error,omitempty"`
	Code         string                  `json:"code,omitempty"`
	StatementID  string                  `json:"statementId,omitempty"`
	Transactions []models.Transaction    `json:"transactions"`
	Summary      *models.ParsingSummary  `json:"summary,omitempty"`
	Analytics    *models.AnalyticsReport `json:"analytics,omitempty"`
}

// Handler holds the HTTP handlers for the API.
type Handler struct {
	parser *parser.StatementParser
	log    zerolog.Logger
	tmpDir string
}

// NewHandler wires the parsing pipeline into HTTP handlers.
func NewHandler(log zerolog.Logger, cfg config.Config) *Handler {
	return &Handler{
		parser: parser.New(),
		log:    log,
		tmpDir: cfg.UploadTempDir,
	}
}

// NewApp builds the fiber application with all routes registered.
func NewApp(log zerolog.Logger, cfg config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: cfg.BodyLimitMB << 20,
	})
	h := NewHandler(log, cfg)
	app.Get("/api/health", h.HandleHealth)
	app.Post("/api/statements", h.HandleStatement)
	return app
}

// HandleHealth reports liveness.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleStatement accepts either a multipart PDF upload (field "file",
// optional "password") or pre-extracted text (field "text") and returns the
// parsed transactions, the parse summary and the analytics report. A
// statement that yields zero transactions is still a 200: deciding whether
// that is a user-facing failure belongs to the caller.
func (h *Handler) HandleStatement(c *fiber.Ctx) error {
	text := c.FormValue("text")

	if text == "" {
		file, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "bad_request",
				"provide a PDF in form field 'file' or raw text in field 'text'")
		}
		if !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
			return writeError(c, fiber.StatusBadRequest, "bad_request", "only PDF uploads are supported")
		}

		tmp, err := os.CreateTemp(h.tmpDir, "statement-*.pdf")
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "internal", "failed to spool upload")
		}
		tmpPath := tmp.Name()
		tmp.Close()
		defer os.Remove(tmpPath)

		if err := c.SaveFile(file, tmpPath); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "internal", "failed to save upload")
		}

		text, err = extractor.ExtractText(tmpPath, c.FormValue("password"))
		if err != nil {
			switch {
			case errors.Is(err, extractor.ErrPasswordRequired):
				return writeError(c, fiber.StatusUnprocessableEntity, "password_required",
					"the PDF is password protected; supply the correct password in field 'password'")
			case errors.Is(err, extractor.ErrUnreadable):
				return writeError(c, fiber.StatusUnprocessableEntity, "unreadable",
					"no readable text could be extracted; the PDF may be scanned or use custom fonts")
			default:
				h.log.Error().Err(err).Str("file", filepath.Base(file.Filename)).Msg("pdf extraction failed")
				return writeError(c, fiber.StatusUnprocessableEntity, "extraction_failed", err.Error())
			}
		}
	}

	statementID := uuid.NewString()
	txns, summary := h.parser.ParseStatement(parser.NormalizeText(text), statementID)
	report := analytics.Compute(statementID, txns, &summary)

	h.log.Info().
		Str("statementId", statementID).
		Int("linesScanned", summary.LinesScanned).
		Int("transactions", summary.TransactionsExtracted).
		Int("skipped", summary.SkippedLines).
		Msg("statement parsed")

	if txns == nil {
		// nil marshals to JSON null, not [].
		txns = []models.Transaction{}
	}
	return c.JSON(StatementResponse{
		Success:      true,
		StatementID:  statementID,
		Transactions: txns,
		Summary:      &summary,
		Analytics:    &report,
	})
}

func writeError(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(StatementResponse{
		Success:      false,
		Error:        msg,
		Code:         code,
		Transactions: []models.Transaction{},
	})
}
