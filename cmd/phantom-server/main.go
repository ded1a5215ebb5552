package main

import (
	"fmt"
	"os"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/auth"
	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/config"
	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/db"
	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/excel"
	httphandler "github.com/ShivanshS635/phantom-cleaning-sub000/internal/http"
	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/http/middleware"
	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/ledger"
	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/logger"
	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/pdf"
	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/repository"
	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment, cfg.LogLevel)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	userRepo := repository.NewUserRepository(database)
	jobRepo := repository.NewJobRepository(database)
	taskRepo := repository.NewTaskRepository(database)
	customerRepo := repository.NewCustomerRepository(database)
	employeeRepo := repository.NewEmployeeRepository(database)
	expenseRepo := repository.NewExpenseRepository(database)

	locks := ledger.NewPathLocks()
	upserter := ledger.NewUpserter(cfg.Ledger.Dir, cfg.Ledger.FilePrefix, locks)
	writer := ledger.NewWriter(upserter, cfg.Ledger.QueueSize, cfg.Ledger.WriteTimeout, log)
	writer.Start()
	defer writer.Close()

	tokens := auth.NewManager(cfg.Auth.AccessSecret, cfg.Auth.AccessTTL)

	authService := service.NewAuthService(userRepo, tokens)
	jobService := service.NewJobService(jobRepo, taskRepo, employeeRepo, writer, log)
	taskService := service.NewTaskService(taskRepo, jobService)
	customerService := service.NewCustomerService(customerRepo)
	employeeService := service.NewEmployeeService(employeeRepo)
	expenseService := service.NewExpenseService(expenseRepo)
	dashboardService := service.NewDashboardService(jobRepo, expenseRepo)
	reportService := service.NewReportService(jobRepo, employeeRepo, expenseRepo, excel.NewGenerator(), pdf.NewGenerator())

	handler := httphandler.NewHandler(
		authService,
		jobService,
		taskService,
		customerService,
		employeeService,
		expenseService,
		dashboardService,
		reportService,
		log,
	)
	authMiddleware := middleware.Auth(tokens)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Str("ledger_dir", cfg.Ledger.Dir).Msg("starting phantom cleaning service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
