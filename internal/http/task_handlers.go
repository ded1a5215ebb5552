package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/http/middleware"
)

func (h *Handler) listTasks(c *gin.Context) {
	var cleanerID *uuid.UUID
	if raw := c.Query("cleaner"); raw != "" {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cleaner"})
			return
		}
		cleanerID = &id
	}

	// Cleaners only ever see their own queue.
	if principal, ok := middleware.MustPrincipal(c); ok && principal.IsCleaner() {
		cleanerID = &principal.UserID
	}

	tasks, err := h.tasks.List(c.Request.Context(), cleanerID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) changeTaskStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.ChangeStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}
