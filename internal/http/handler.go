package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/http/middleware"
	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/service"
)

type Handler struct {
	auth      *service.AuthService
	jobs      *service.JobService
	tasks     *service.TaskService
	customers *service.CustomerService
	employees *service.EmployeeService
	expenses  *service.ExpenseService
	dashboard *service.DashboardService
	reports   *service.ReportService
	log       zerolog.Logger
}

func NewHandler(
	auth *service.AuthService,
	jobs *service.JobService,
	tasks *service.TaskService,
	customers *service.CustomerService,
	employees *service.EmployeeService,
	expenses *service.ExpenseService,
	dashboard *service.DashboardService,
	reports *service.ReportService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		auth:      auth,
		jobs:      jobs,
		tasks:     tasks,
		customers: customers,
		employees: employees,
		expenses:  expenses,
		dashboard: dashboard,
		reports:   reports,
		log:       log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	router.POST("/auth/register", h.register)
	router.POST("/auth/login", h.login)

	protected := router.Group("/")
	protected.Use(authMiddleware)

	// Cleaners see their own task queue and report progress on it.
	protected.GET("/tasks", h.listTasks)
	protected.PATCH("/tasks/:id/status", h.changeTaskStatus)
	protected.GET("/jobs", h.listJobs)
	protected.GET("/jobs/:id", h.getJob)
	protected.PATCH("/jobs/:id/status", h.changeJobStatus)

	admin := protected.Group("/")
	admin.Use(middleware.RequireAdmin())

	admin.POST("/jobs", h.createJob)
	admin.PUT("/jobs/:id", h.updateJob)
	admin.PATCH("/jobs/:id/cleaner", h.assignCleaner)

	admin.GET("/customers", h.listCustomers)
	admin.POST("/customers", h.createCustomer)
	admin.GET("/customers/:id", h.getCustomer)
	admin.PUT("/customers/:id", h.updateCustomer)
	admin.DELETE("/customers/:id", h.deleteCustomer)

	admin.GET("/employees", h.listEmployees)
	admin.POST("/employees", h.createEmployee)
	admin.GET("/employees/:id", h.getEmployee)
	admin.PUT("/employees/:id", h.updateEmployee)
	admin.DELETE("/employees/:id", h.deleteEmployee)

	admin.GET("/expenses", h.listExpenses)
	admin.POST("/expenses", h.createExpense)
	admin.DELETE("/expenses/:id", h.deleteExpense)

	admin.GET("/dashboard/stats", h.dashboardStats)

	admin.POST("/reports/export", h.exportReport)
	admin.POST("/reports/export/pdf", h.exportReportPDF)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}
