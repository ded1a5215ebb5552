package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/model"
	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/repository"
	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/service"
)

type jobRequest struct {
	CustomerName  string  `json:"customer_name" binding:"required"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	Region        string  `json:"region" binding:"required"`
	ScheduledDate string  `json:"scheduled_date" binding:"required"`
	ScheduledTime string  `json:"scheduled_time"`
	Price         float64 `json:"price"`
	CleanerID     string  `json:"cleaner_id"`
}

func (h *Handler) createJob(c *gin.Context) {
	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	region, err := model.ParseRegion(req.Region)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid region"})
		return
	}
	date, err := parseDate(req.ScheduledDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scheduled_date"})
		return
	}

	input := service.CreateJobInput{
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		Address:       req.Address,
		Region:        region,
		ScheduledDate: date,
		ScheduledTime: req.ScheduledTime,
		Price:         req.Price,
	}
	if strings.TrimSpace(req.CleanerID) != "" {
		cleanerID, err := uuid.Parse(strings.TrimSpace(req.CleanerID))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cleaner_id"})
			return
		}
		input.CleanerID = &cleanerID
	}

	job, err := h.jobs.CreateJob(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *Handler) getJob(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	job, err := h.jobs.GetJob(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *Handler) updateJob(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	region, err := model.ParseRegion(req.Region)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid region"})
		return
	}
	date, err := parseDate(req.ScheduledDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scheduled_date"})
		return
	}

	job, err := h.jobs.UpdateJob(c.Request.Context(), id, service.UpdateJobInput{
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		Address:       req.Address,
		Region:        region,
		ScheduledDate: date,
		ScheduledTime: req.ScheduledTime,
		Price:         req.Price,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *Handler) listJobs(c *gin.Context) {
	var filter repository.JobFilter
	if raw := c.Query("status"); raw != "" {
		status, err := model.ParseJobStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		filter.Status = &status
	}
	if raw := c.Query("region"); raw != "" {
		region, err := model.ParseRegion(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid region"})
			return
		}
		filter.Region = &region
	}
	if raw := c.Query("from"); raw != "" {
		from, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from"})
			return
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := parseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to"})
			return
		}
		filter.To = &to
	}

	jobs, err := h.jobs.ListJobs(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

type changeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) changeJobStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.jobs.ChangeStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

type assignCleanerRequest struct {
	CleanerID string `json:"cleaner_id" binding:"required"`
}

func (h *Handler) assignCleaner(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req assignCleanerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cleanerID, err := uuid.Parse(strings.TrimSpace(req.CleanerID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cleaner_id"})
		return
	}

	job, err := h.jobs.AssignCleaner(c.Request.Context(), id, cleanerID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}
