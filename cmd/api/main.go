package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/edusuite/attendance-api/internal/config"
	"github.com/edusuite/attendance-api/internal/database"
	"github.com/edusuite/attendance-api/internal/handler"
	"github.com/edusuite/attendance-api/internal/middleware"
	"github.com/edusuite/attendance-api/internal/models"
	"github.com/edusuite/attendance-api/internal/repository"
	"github.com/edusuite/attendance-api/internal/router"
	"github.com/edusuite/attendance-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Campus{}, &models.Department{}, &models.CampusDepartment{},
		&models.Level{}, &models.Student{}, &models.AttendanceRecord{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	} else {
		logger.Warn().Msg("redis url not configured, dashboard caching disabled")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	rosterRepo := repository.NewRosterRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	referenceRepo := repository.NewReferenceRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	attendanceService := service.NewAttendanceService(rosterRepo, attendanceRepo, studentRepo, validate, logger)
	studentService := service.NewStudentService(studentRepo, validate, logger)
	referenceService := service.NewReferenceService(referenceRepo, logger)
	dashboardService := service.NewDashboardService(statsRepo, redisClient, cfg.DashboardCacheTTL, logger)
	seedService := service.NewSeedService(db, cfg.SeedEnabled, cfg.SeedToken, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})

	var jwtMiddleware fiber.Handler
	if cfg.JWTSecret != "" {
		jwtMiddleware = middleware.JWTProtected(cfg.JWTSecret)
	}

	router.Register(app, cfg, router.Dependencies{
		AttendanceHandler: handler.NewAttendanceHandler(attendanceService, logger),
		StudentHandler:    handler.NewStudentHandler(studentService, logger),
		ReferenceHandler:  handler.NewReferenceHandler(referenceService, logger),
		DashboardHandler:  handler.NewDashboardHandler(dashboardService, logger),
		SeedHandler:       handler.NewSeedHandler(seedService, logger),
		JWTMiddleware:     jwtMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
