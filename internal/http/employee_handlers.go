package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/model"
)

type employeeRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Region   string `json:"region" binding:"required"`
	Active   *bool  `json:"active"`
}

func (h *Handler) createEmployee(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	region, err := model.ParseRegion(req.Region)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid region"})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	employee, err := h.employees.Create(c.Request.Context(), model.Employee{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Region:   region,
		Active:   active,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func (h *Handler) getEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	employee, err := h.employees.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *Handler) updateEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	region, err := model.ParseRegion(req.Region)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid region"})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	employee, err := h.employees.Update(c.Request.Context(), model.Employee{
		ID:       id,
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Region:   region,
		Active:   active,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *Handler) deleteEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.employees.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listEmployees(c *gin.Context) {
	employees, err := h.employees.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}
