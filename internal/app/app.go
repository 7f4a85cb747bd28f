package app

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"ecometer/internal/config"
	"ecometer/internal/db"
	httpserver "ecometer/internal/http"
	"ecometer/internal/http/handlers"
	"ecometer/internal/repository"
	"ecometer/internal/service"
)

// App wires ecometer dependencies.
type App struct {
	server *httpserver.Server
	db     *sql.DB
	logger *zap.Logger
}

// New constructs application components.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	sqlDB, err := db.NewPostgres(cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	departmentRepo := repository.NewDepartmentRepository(sqlDB)
	energyRepo := repository.NewEnergyReadingRepository(sqlDB)
	suggestionRepo := repository.NewSuggestionRepository(sqlDB)
	seedStore := repository.NewSeedStore(sqlDB)

	energyService := service.NewEnergyService(energyRepo, logger)
	suggestionService := service.NewSuggestionService(suggestionRepo)
	dashboardService := service.NewDashboardService(energyRepo, suggestionService, logger)
	departmentService := service.NewDepartmentService(departmentRepo)
	adminService := service.NewAdminService(seedStore, logger)

	adminHandler := handlers.NewAdminHandler(adminService, logger)
	routes := httpserver.Routes{
		EnergyData:         handlers.NewEnergyHandler(energyService, logger).ServeHTTP,
		DashboardData:      handlers.NewDashboardHandler(dashboardService, logger).ServeHTTP,
		Suggestions:        handlers.NewSuggestionsHandler(suggestionService, logger).ServeHTTP,
		Departments:        handlers.NewDepartmentsHandler(departmentService, logger).ServeHTTP,
		InitializeTestData: adminHandler.Initialize,
		ResetAndInitialize: adminHandler.ResetAndInitialize,
		DataStatus:         adminHandler.Status,
		Health:             handlers.NewHealthHandler().ServeHTTP,
	}

	router := httpserver.NewRouter(routes, cfg.CORS.AllowedOrigin, logger)
	server := httpserver.NewServer(cfg.HTTPAddress(), router, logger)

	return &App{
		server: server,
		db:     sqlDB,
		logger: logger,
	}, nil
}

// Run starts serving HTTP requests.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases resources.
func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close db", zap.Error(err))
		}
	}
}
