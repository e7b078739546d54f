package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appslab "github.com/matgen-io/surfgen/internal/application/slab"
)

// SlabHandler serves slab build requests.
type SlabHandler struct {
	svc appslab.Service
}

// NewSlabHandler constructs a SlabHandler.
func NewSlabHandler(svc appslab.Service) *SlabHandler {
	return &SlabHandler{svc: svc}
}

// Build handles POST /api/v1/slabs.
func (h *SlabHandler) Build(c *gin.Context) {
	var req appslab.BuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.svc.Build(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}
