package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/datasleuth/sleuth/pkg/models"
)

// createAlertHandler handles POST /api/v1/alerts. The alert is validated
// and enqueued as a pending investigation; a worker picks it up later.
func (s *Server) createAlertHandler(c *gin.Context) {
	var req models.CreateInvestigationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.InvestigationID == "" {
		req.InvestigationID = uuid.New().String()
	}

	inv, err := s.store.CreateInvestigation(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, &AlertResponse{
		InvestigationID: inv.ID,
		Status:          string(inv.Status),
		Message:         "Investigation queued",
	})
}
