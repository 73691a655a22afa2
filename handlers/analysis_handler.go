package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"processcheck-backend/decision"
	"processcheck-backend/models"
	"processcheck-backend/render"
	"processcheck-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// AnalysisHandler handles HTTP requests for process analysis
type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// AnalyzeText handles POST /api/analyze and returns the formatted,
// human-reviewable text rendering of each result.
func (h *AnalysisHandler) AnalyzeText(c *gin.Context) {
	procs, _, err := bindProcesses(c)
	if err != nil {
		respondError(c, "INVALID_REQUEST", err)
		return
	}

	results, err := h.analysisService.AnalyzeMany(c.Request.Context(), procs)
	if err != nil {
		respondError(c, errorCode(err), err)
		return
	}

	c.String(http.StatusOK, render.RenderMany(results))
}

// AnalyzeJSON handles POST /api/analyze/json and returns the structured
// result, mirroring the input shape: an object for a single record, an
// array for a list.
func (h *AnalysisHandler) AnalyzeJSON(c *gin.Context) {
	procs, isList, err := bindProcesses(c)
	if err != nil {
		respondError(c, "INVALID_REQUEST", err)
		return
	}

	results, err := h.analysisService.AnalyzeMany(c.Request.Context(), procs)
	if err != nil {
		respondError(c, errorCode(err), err)
		return
	}

	if !isList {
		c.JSON(http.StatusOK, results[0])
		return
	}
	c.JSON(http.StatusOK, results)
}

// bindProcesses accepts either a single raw record or an ordered list of
// records, detected from the leading JSON token.
func bindProcesses(c *gin.Context) ([]models.Process, bool, error) {
	data, err := c.GetRawData()
	if err != nil {
		return nil, false, err
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var procs []models.Process
		if err := binding.JSON.BindBody(data, &procs); err != nil {
			return nil, true, err
		}
		return procs, true, nil
	}

	var proc models.Process
	if err := binding.JSON.BindBody(data, &proc); err != nil {
		return nil, false, err
	}
	return []models.Process{proc}, false, nil
}

// errorCode maps analysis failures to stable response codes.
func errorCode(err error) string {
	var validationErr *models.ValidationError
	var formatErr *decision.FormatError
	switch {
	case errors.As(err, &validationErr):
		return "VALIDATION_ERROR"
	case errors.As(err, &formatErr):
		return "DECISION_FORMAT_ERROR"
	default:
		return "ANALYSIS_FAILED"
	}
}

// respondError reports any failure as a client error carrying the error's
// message; internal details are not exposed.
func respondError(c *gin.Context, code string, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": err.Error(),
		},
	})
}
