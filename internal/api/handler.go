package api

import (
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/mfigueredo/veritext/internal/analyzer"
	"github.com/mfigueredo/veritext/internal/config"
	"github.com/mfigueredo/veritext/internal/ingest"
	"github.com/mfigueredo/veritext/internal/utils"
)

type Handler struct {
	logger *utils.Logger
	engine *analyzer.Engine
	cfg    *config.Config
}

func NewHandler(logger *utils.Logger, engine *analyzer.Engine, cfg *config.Config) *Handler {
	return &Handler{
		logger: logger,
		engine: engine,
		cfg:    cfg,
	}
}

// @Summary      Service health
// @Description  Liveness probe
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"service": "veritext",
	})
}

// @Summary      Analyze text
// @Description  Score a text for AI authorship likelihood
// @Tags         analyze
// @Accept       json
// @Produce      json
// @Param        request body AnalyzeRequest true "Text to analyze"
// @Success      200 {object} AnalyzeResponse
// @Failure      400 {object} ErrorResponse
// @Failure      413 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/analyze [post]
func (h *Handler) HandleAnalyze(c *gin.Context) {
	logger := h.requestLogger(c)

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("rejecting malformed analyze request", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	if h.cfg.App.RawBodyLog {
		logger.Debug("analyze request body",
			"chars", utf8.RuneCountInString(req.Text),
			"text", utils.Truncate(req.Text, 2000),
		)
	}

	result, err := h.engine.Analyze(c.Request.Context(), req.Text)
	if err != nil {
		h.renderAnalysisError(c, logger, err)
		return
	}

	logger.Info("analysis complete",
		"chars", utf8.RuneCountInString(req.Text),
		"ai_percentage", result.AiPercentage,
		"verdict", result.Verdict,
	)
	c.JSON(http.StatusOK, newAnalyzeResponse(result))
}

// @Summary      Analyze an uploaded document
// @Description  Extract text from a .txt, .md, .pdf or .docx upload and score it
// @Tags         analyze
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Document to analyze"
// @Success      200 {object} AnalyzeFileResponse
// @Failure      400 {object} ErrorResponse
// @Failure      413 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/analyze/file [post]
func (h *Handler) HandleAnalyzeFile(c *gin.Context) {
	logger := h.requestLogger(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Warn("analyze-file request without file field", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "multipart field 'file' is required"})
		return
	}

	if fileHeader.Size > h.cfg.Upload.MaxFileBytes {
		logger.Warn("rejecting oversized upload",
			"filename", fileHeader.Filename,
			"size", fileHeader.Size,
			"limit", h.cfg.Upload.MaxFileBytes,
		)
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
			Error: fmt.Sprintf("file is %d bytes, limit is %d", fileHeader.Size, h.cfg.Upload.MaxFileBytes),
		})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		logger.Error("failed to open upload", "filename", fileHeader.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not read upload"})
		return
	}
	defer f.Close()

	text, err := ingest.ExtractText(fileHeader.Filename, f)
	if err != nil {
		logger.Warn("text extraction failed", "filename", fileHeader.Filename, "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.engine.Analyze(c.Request.Context(), text)
	if err != nil {
		h.renderAnalysisError(c, logger, err)
		return
	}

	logger.Info("file analysis complete",
		"filename", fileHeader.Filename,
		"chars", utf8.RuneCountInString(text),
		"verdict", result.Verdict,
	)
	c.JSON(http.StatusOK, AnalyzeFileResponse{
		AnalyzeResponse: newAnalyzeResponse(result),
		Filename:        fileHeader.Filename,
		Characters:      utf8.RuneCountInString(text),
		Words:           utils.CountWords(text),
	})
}

func (h *Handler) renderAnalysisError(c *gin.Context, logger *utils.Logger, err error) {
	var tooLarge *analyzer.InputTooLargeError
	if errors.As(err, &tooLarge) {
		logger.Warn("input over analysis limit", "length", tooLarge.Length, "limit", tooLarge.Limit)
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: err.Error()})
		return
	}

	logger.Error("analysis failed", "error", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "analysis failed"})
}

func (h *Handler) requestLogger(c *gin.Context) *utils.Logger {
	if id := c.GetString(requestIDKey); id != "" {
		return h.logger.With("req_id", id)
	}
	return h.logger
}
