package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio.backend/internal/config"
	"portfolio.backend/internal/infrastructure/datasources/postgres"
	"portfolio.backend/internal/infrastructure/jobs"
	"portfolio.backend/internal/infrastructure/mailer"
	"portfolio.backend/internal/infrastructure/media"
	"portfolio.backend/internal/infrastructure/repositories"
	"portfolio.backend/internal/interfaces/http/handlers"
	"portfolio.backend/internal/interfaces/http/middleware"
	"portfolio.backend/internal/usecases"
	"portfolio.backend/pkg/jwt"
	"portfolio.backend/pkg/logger"
	"portfolio.backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = postgres.NewConnection
	migrateDB  = postgres.Migrate
	newServer  = func(addr string, h http.Handler) *http.Server {
		return &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 10 * time.Second}
	}
	metricsRegistry = prometheus.DefaultRegisterer
	waitForSignal   = func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
	}
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()
	if err := cfg.Validate(); err != nil {
		return err
	}

	initLog(cfg.Server.Env)
	defer logger.Sync()
	ctx := context.Background()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	// Redis only backs Idempotency-Key replay; the API runs without it
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Warn(ctx, "Redis unavailable, idempotency keys disabled", zap.Error(err))
	} else {
		logger.Info(ctx, "Redis initialized")
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer closeDB(db)

	if err := migrateDB(db); err != nil {
		return err
	}
	logger.Info(ctx, "Connected to PostgreSQL via GORM")

	app, err := buildApp(ctx, cfg, db, metricsRegistry)
	if err != nil {
		return err
	}

	jobCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go app.dispatcher.Start(jobCtx)

	srv := newServer(":"+cfg.Server.Port, middleware.CORSHandler(cfg.CORS.AllowedOrigins, app.router))
	serveErr := make(chan error, 1)
	go func() {
		logger.Info(ctx, "Portfolio backend starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	signalled := make(chan struct{})
	go func() {
		waitForSignal()
		close(signalled)
	}()

	select {
	case err, ok := <-serveErr:
		if ok && err != nil {
			stopDispatcher(ctx, app.dispatcher)
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-signalled:
		logger.Info(ctx, "Shutting down server")
	}

	shutdownCtx, stop := context.WithTimeout(ctx, shutdownTimeout)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "Server shutdown failed", zap.Error(err))
	}
	stopDispatcher(ctx, app.dispatcher)
	return nil
}

// stopDispatcher flushes queued notifications before the worker context is cancelled
func stopDispatcher(ctx context.Context, dispatcher *jobs.NotificationDispatcher) {
	stopCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := dispatcher.Stop(stopCtx); err != nil {
		logger.Warn(ctx, "Notification queue not fully flushed", zap.Error(err))
	}
}

type application struct {
	router     *gin.Engine
	dispatcher *jobs.NotificationDispatcher
}

// buildApp wires repositories, usecases and handlers onto a router
func buildApp(ctx context.Context, cfg *config.Config, db *gorm.DB, reg prometheus.Registerer) (*application, error) {
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.SessionExpiry)

	skillRepo := repositories.NewSkillRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	educationRepo := repositories.NewEducationRepository(db)
	experienceRepo := repositories.NewExperienceRepository(db)
	certificateRepo := repositories.NewCertificateRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	adminRepo := repositories.NewAdminRepository(db)
	uow := repositories.NewUnitOfWork(db)

	authUsecase := usecases.NewAuthUsecase(adminRepo, jwtService)
	if err := authUsecase.EnsureAdmin(ctx, cfg.Admin); err != nil {
		logger.Warn(ctx, "Admin account not seeded", zap.Error(err))
	}

	notifier := mailer.NewNotifier(cfg.Mail)
	dispatcher := jobs.NewNotificationDispatcher(notifier, cfg.Mail.QueueSize)

	uploader, err := media.NewUploader(cfg.Media)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize media uploader: %w", err)
	}
	if !cfg.Media.Enabled() {
		logger.Warn(ctx, "Cloudinary credentials missing, uploads will fail")
	}

	deps := routeDeps{
		authHandler:        handlers.NewAuthHandler(authUsecase, cfg.JWT.CookieSecure),
		profileHandler:     handlers.NewProfileHandler(usecases.NewProfileUsecase(profileRepo, cfg.Cache.ProfileTTL)),
		skillHandler:       handlers.NewSkillHandler(usecases.NewSkillUsecase(skillRepo, uow)),
		projectHandler:     handlers.NewProjectHandler(usecases.NewProjectUsecase(projectRepo, uow)),
		educationHandler:   handlers.NewEducationHandler(usecases.NewEducationUsecase(educationRepo, uow)),
		experienceHandler:  handlers.NewExperienceHandler(usecases.NewExperienceUsecase(experienceRepo, uow)),
		certificateHandler: handlers.NewCertificateHandler(usecases.NewCertificateUsecase(certificateRepo)),
		messageHandler:     handlers.NewMessageHandler(usecases.NewMessageUsecase(messageRepo, dispatcher)),
		uploadHandler:      handlers.NewUploadHandler(usecases.NewUploadUsecase(uploader)),
		adminAuth:          middleware.AdminAuthMiddleware(jwtService),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.NewMetrics(reg).Middleware())

	registerHealthRoute(r)
	registerMetricsRoute(r, reg)
	registerAPIV1Routes(r, deps)

	for _, route := range r.Routes() {
		logger.Debug(ctx, "Route registered", zap.String("method", route.Method), zap.String("path", route.Path))
	}

	return &application{router: r, dispatcher: dispatcher}, nil
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}
