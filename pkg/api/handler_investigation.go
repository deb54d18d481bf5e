package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	entinvestigation "github.com/datasleuth/sleuth/ent/investigation"
	"github.com/datasleuth/sleuth/pkg/models"
)

// getInvestigationHandler handles GET /api/v1/investigations/:id.
func (s *Server) getInvestigationHandler(c *gin.Context) {
	inv, err := s.store.GetInvestigation(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// getInvestigationEventsHandler handles GET /api/v1/investigations/:id/events.
// Returns the persisted event log of a finished (or failed) run.
func (s *Server) getInvestigationEventsHandler(c *gin.Context) {
	inv, err := s.store.GetInvestigation(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	events := inv.Events
	if events == nil {
		events = []map[string]interface{}{}
	}
	c.JSON(http.StatusOK, gin.H{
		"investigation_id": inv.ID,
		"status":           inv.Status,
		"events":           events,
	})
}

// getInvestigationSignalsHandler handles GET /api/v1/investigations/:id/signals.
func (s *Server) getInvestigationSignalsHandler(c *gin.Context) {
	if s.signals == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "signal endpoints not configured"})
		return
	}

	// 404 for unknown investigations rather than an empty list.
	invID := c.Param("id")
	if _, err := s.store.GetInvestigation(c.Request.Context(), invID); err != nil {
		writeServiceError(c, err)
		return
	}

	signals, err := s.signals.ListByInvestigation(c.Request.Context(), invID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"investigation_id": invID,
		"signals":          signals,
	})
}

// listInvestigationsHandler handles GET /api/v1/investigations.
func (s *Server) listInvestigationsHandler(c *gin.Context) {
	var filters models.InvestigationFilters

	filters.TenantID = c.Query("tenant_id")
	filters.DatasetID = c.Query("dataset_id")
	if v := c.Query("status"); v != "" {
		if err := entinvestigation.StatusValidator(entinvestigation.Status(v)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status: " + v})
			return
		}
		filters.Status = v
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit: must be 1-100"})
			return
		}
		filters.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
			return
		}
		filters.Offset = n
	}
	if v := c.Query("started_after"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid started_after: must be RFC3339"})
			return
		}
		filters.StartedAfter = &t
	}
	if v := c.Query("started_before"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid started_before: must be RFC3339"})
			return
		}
		filters.StartedBefore = &t
	}

	list, err := s.store.ListInvestigations(c.Request.Context(), filters)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// cancelInvestigationHandler handles POST /api/v1/investigations/:id/cancel.
// Cancellation is pod-local: it only works when the run is active here.
func (s *Server) cancelInvestigationHandler(c *gin.Context) {
	if s.workerPool == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "worker pool not running on this pod"})
		return
	}

	invID := c.Param("id")
	if !s.workerPool.CancelInvestigation(invID) {
		c.JSON(http.StatusConflict, gin.H{"error": "investigation is not running on this pod"})
		return
	}

	c.JSON(http.StatusOK, &CancelResponse{
		InvestigationID: invID,
		Message:         "Investigation cancellation requested",
	})
}
