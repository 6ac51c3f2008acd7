package http

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightwave-agency/proposals-service/internal/model"
	"github.com/brightwave-agency/proposals-service/internal/service"
)

type appendEventRequest struct {
	EventType string          `json:"event_type" binding:"required"`
	Metadata  json.RawMessage `json:"metadata"`
}

func (h *Handler) appendEvent(c *gin.Context) {
	id, ok := parseProposalID(c)
	if !ok {
		return
	}

	var req appendEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.AppendEventInput{
		ProposalID: id,
		EventType:  model.EventType(req.EventType),
		Metadata:   req.Metadata,
	}
	if ip := c.ClientIP(); ip != "" {
		input.IPAddress = &ip
	}
	if ua := c.Request.UserAgent(); ua != "" {
		input.UserAgent = &ua
	}

	if _, err := h.events.Append(c.Request.Context(), input); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) listEvents(c *gin.Context) {
	id, ok := parseProposalID(c)
	if !ok {
		return
	}
	events, err := h.events.List(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *Handler) getMetrics(c *gin.Context) {
	id, ok := parseProposalID(c)
	if !ok {
		return
	}
	metrics, err := h.events.Metrics(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) exportEngagement(c *gin.Context) {
	id, ok := parseProposalID(c)
	if !ok {
		return
	}
	result, err := h.events.Export(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, xlsxContentType, result.Content)
}
