package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/model"
)

type customerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Region  string `json:"region" binding:"required"`
	Notes   string `json:"notes"`
}

func (h *Handler) createCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	region, err := model.ParseRegion(req.Region)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid region"})
		return
	}

	customer, err := h.customers.Create(c.Request.Context(), model.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		Region:  region,
		Notes:   req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *Handler) getCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	customer, err := h.customers.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) updateCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	region, err := model.ParseRegion(req.Region)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid region"})
		return
	}

	customer, err := h.customers.Update(c.Request.Context(), model.Customer{
		ID:      id,
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		Region:  region,
		Notes:   req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) deleteCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.customers.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listCustomers(c *gin.Context) {
	customers, err := h.customers.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}
