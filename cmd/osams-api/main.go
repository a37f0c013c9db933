package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/Iotonix/osams/api/swagger"
	"github.com/Iotonix/osams/internal/dto"
	"github.com/Iotonix/osams/internal/handler"
	"github.com/Iotonix/osams/internal/middleware"
	"github.com/Iotonix/osams/internal/models"
	"github.com/Iotonix/osams/internal/repository"
	"github.com/Iotonix/osams/internal/service"
	"github.com/Iotonix/osams/pkg/cache"
	"github.com/Iotonix/osams/pkg/config"
	"github.com/Iotonix/osams/pkg/database"
	"github.com/Iotonix/osams/pkg/jobs"
	"github.com/Iotonix/osams/pkg/logger"
	corsmiddleware "github.com/Iotonix/osams/pkg/middleware/cors"
	reqidmiddleware "github.com/Iotonix/osams/pkg/middleware/requestid"
)

// @title OSAMS API
// @version 1.0.0
// @description Operational schedule and master data service for airport flight planning
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, dashboard cache disabled", "error", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	// Repositories.
	airlineRepo := repository.NewAirlineRepository(db)
	airportRepo := repository.NewAirportRepository(db)
	aircraftRepo := repository.NewAircraftTypeRepository(db)
	infraRepo := repository.NewInfrastructureRepository(db)
	seasonalRepo := repository.NewSeasonalFlightRepository(db)
	dailyRepo := repository.NewDailyFlightRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services.
	metricsSvc := service.NewMetricsService()
	airlineSvc := service.NewAirlineService(airlineRepo, nil, logr)
	airportSvc := service.NewAirportService(airportRepo, nil, logr)
	aircraftSvc := service.NewAircraftTypeService(aircraftRepo, nil, logr)
	infraSvc := service.NewInfrastructureService(infraRepo, nil, logr)
	seasonalSvc := service.NewSeasonalFlightService(seasonalRepo, airlineRepo, airportRepo, aircraftRepo, nil, logr)
	dailySvc := service.NewDailyFlightService(dailyRepo, airlineRepo, nil, logr)
	generationSvc := service.NewGenerationService(seasonalRepo, dailyRepo, db, metricsSvc, logr)
	propagationSvc := service.NewPropagationService(seasonalRepo, dailyRepo, db, metricsSvc, logr, cfg.FlightOps.BufferHours)
	authSvc := service.NewAuthService(userRepo, cfg.JWT, nil, logr)

	var dashboardSvc *service.DashboardService
	if redisClient != nil {
		dashboardSvc = service.NewDashboardService(dailyRepo, repository.NewCacheRepository(redisClient), cfg.Dashboard.CacheTTL, logr)
	} else {
		dashboardSvc = service.NewDashboardService(dailyRepo, nil, cfg.Dashboard.CacheTTL, logr)
	}

	// Handlers.
	authHandler := handler.NewAuthHandler(authSvc)
	airlineHandler := handler.NewAirlineHandler(airlineSvc)
	airportHandler := handler.NewAirportHandler(airportSvc)
	aircraftHandler := handler.NewAircraftTypeHandler(aircraftSvc)
	infraHandler := handler.NewInfrastructureHandler(infraSvc)
	seasonalHandler := handler.NewSeasonalFlightHandler(seasonalSvc)
	dailyHandler := handler.NewDailyFlightHandler(dailySvc, dashboardSvc)
	opsHandler := handler.NewFlightOpsHandler(generationSvc, propagationSvc, dashboardSvc, cfg.FlightOps.WindowDays)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metricsSvc.Registry(), promhttp.HandlerOpts{})))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	api.POST("/auth/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.Authenticated(authSvc))
	authed.GET("/auth/profile", authHandler.Profile)

	planners := authed.Group("")
	planners.Use(middleware.RequireRole(models.RolePlanner))

	ops := authed.Group("")
	ops.Use(middleware.RequireRole(models.RolePlanner, models.RoleOps))

	// Master data reads are open, writes need the planner role.
	api.GET("/airlines", airlineHandler.List)
	api.GET("/airlines/:id", airlineHandler.Get)
	planners.POST("/airlines", airlineHandler.Create)
	planners.PUT("/airlines/:id", airlineHandler.Update)
	planners.DELETE("/airlines/:id", airlineHandler.Deactivate)

	api.GET("/airports", airportHandler.List)
	api.GET("/airports/:id", airportHandler.Get)
	planners.POST("/airports", airportHandler.Create)
	planners.PUT("/airports/:id", airportHandler.Update)
	planners.DELETE("/airports/:id", airportHandler.Deactivate)

	api.GET("/aircraft-types", aircraftHandler.List)
	api.GET("/aircraft-types/:id", aircraftHandler.Get)
	planners.POST("/aircraft-types", aircraftHandler.Create)
	planners.PUT("/aircraft-types/:id", aircraftHandler.Update)
	planners.DELETE("/aircraft-types/:id", aircraftHandler.Deactivate)

	api.GET("/infrastructure/terminals", infraHandler.ListTerminals)
	planners.POST("/infrastructure/terminals", infraHandler.CreateTerminal)
	planners.PUT("/infrastructure/terminals/:id", infraHandler.UpdateTerminal)
	api.GET("/infrastructure/gates", infraHandler.ListGates)
	planners.POST("/infrastructure/gates", infraHandler.CreateGate)
	ops.PUT("/infrastructure/gates/:id/availability", infraHandler.SetGateAvailability)
	api.GET("/infrastructure/stands", infraHandler.ListStands)
	planners.POST("/infrastructure/stands", infraHandler.CreateStand)
	ops.PUT("/infrastructure/stands/:id/availability", infraHandler.SetStandAvailability)
	api.GET("/infrastructure/counters", infraHandler.ListCounters)
	planners.POST("/infrastructure/counters", infraHandler.CreateCounter)
	api.GET("/infrastructure/carousels", infraHandler.ListCarousels)
	planners.POST("/infrastructure/carousels", infraHandler.CreateCarousel)
	api.GET("/infrastructure/runways", infraHandler.ListRunways)
	planners.POST("/infrastructure/runways", infraHandler.CreateRunway)

	api.GET("/seasonal-flights", seasonalHandler.List)
	api.GET("/seasonal-flights/:id", seasonalHandler.Get)
	planners.POST("/seasonal-flights", seasonalHandler.Create)
	planners.PUT("/seasonal-flights/:id", seasonalHandler.Update)
	planners.POST("/seasonal-flights/:id/deactivate", seasonalHandler.Deactivate)
	planners.DELETE("/seasonal-flights/:id", seasonalHandler.Delete)

	api.GET("/daily-flights", dailyHandler.List)
	api.GET("/daily-flights/:flight_id", dailyHandler.Get)
	api.GET("/daily-flights/export/csv", dailyHandler.ExportCSV)
	api.GET("/daily-flights/export/pdf", dailyHandler.ExportPDF)
	ops.POST("/daily-flights", dailyHandler.CreateAdhoc)
	ops.PATCH("/daily-flights/:flight_id", dailyHandler.UpdateOperational)
	ops.PUT("/daily-flights/:flight_id/status", dailyHandler.UpdateStatus)

	planners.POST("/flight-ops/generate", opsHandler.Generate)
	planners.POST("/flight-ops/propagate", opsHandler.Propagate)

	if cfg.Dashboard.Enabled {
		api.GET("/dashboard/summary", dashboardHandler.Summary)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var genQueue *jobs.Queue
	if cfg.FlightOps.JobEnabled {
		genQueue = startGenerationJob(ctx, cfg, generationSvc, dashboardSvc, logr)
		defer genQueue.Stop()
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Sugar().Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("graceful shutdown failed", "error", err)
	}
}

// startGenerationJob keeps the rolling daily-flight window topped up by
// re-running incremental generation on a fixed cadence.
func startGenerationJob(ctx context.Context, cfg *config.Config, gen *service.GenerationService, dashboard *service.DashboardService, logr *zap.Logger) *jobs.Queue {
	queue := jobs.NewQueue("flight-generation", func(ctx context.Context, job jobs.Job) error {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		report, err := gen.Run(ctx, dto.GenerateParams{
			WindowStart: today,
			WindowEnd:   today.AddDate(0, 0, cfg.FlightOps.WindowDays-1),
			Mode:        dto.ModeIncremental,
		})
		if err != nil {
			return err
		}
		dashboard.Invalidate(ctx)
		logr.Sugar().Infow("scheduled generation finished",
			"created", report.Created, "skipped", report.Skipped, "errored", report.Errored)
		return nil
	}, jobs.QueueConfig{Workers: 1, Logger: logr})

	queue.Start(ctx)

	go func() {
		ticker := time.NewTicker(cfg.FlightOps.JobInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				err := queue.Enqueue(jobs.Job{ID: uuid.NewString(), Type: "generate-incremental"})
				if err != nil {
					logr.Sugar().Warnw("failed to enqueue generation job", "error", err)
				}
			}
		}
	}()

	return queue
}
