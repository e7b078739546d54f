package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appads "github.com/matgen-io/surfgen/internal/application/adsorption"
)

// AnalysisHandler serves adsorption analysis requests.
type AnalysisHandler struct {
	svc appads.Service
}

// NewAnalysisHandler constructs an AnalysisHandler.
func NewAnalysisHandler(svc appads.Service) *AnalysisHandler {
	return &AnalysisHandler{svc: svc}
}

// Analyze handles POST /api/v1/analyses.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req appads.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.svc.Analyze(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}
