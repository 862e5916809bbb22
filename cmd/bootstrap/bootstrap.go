package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campus-clinic-scheduler/config"
	deliveryHttp "campus-clinic-scheduler/internal/delivery/http"
	"campus-clinic-scheduler/internal/delivery/http/handler"
	"campus-clinic-scheduler/internal/delivery/http/middleware"
	"campus-clinic-scheduler/internal/infrastructure/cache"
	"campus-clinic-scheduler/internal/infrastructure/database"
	"campus-clinic-scheduler/internal/repository"
	"campus-clinic-scheduler/internal/scheduling"
	"campus-clinic-scheduler/internal/service"
	"campus-clinic-scheduler/internal/usecase"
	"campus-clinic-scheduler/pkg/jwt"
	"campus-clinic-scheduler/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config       *config.Config
	DB           *gorm.DB
	RedisClient  *redis.Client
	SlotCapacity *service.SlotCapacityService
	Server       *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Reject calendars that would close every weekday before anything else
	calendar := scheduling.CalendarConfig{
		HiddenWeekdays:  cfg.Calendar.HiddenDays,
		HalfDayWeekdays: cfg.Calendar.HalfDays,
		Holidays:        cfg.Calendar.Holidays,
	}
	if err := calendar.Validate(); err != nil {
		return nil, fmt.Errorf("invalid calendar config: %w", err)
	}

	// Apply schema migrations before opening the pool
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, err
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server, slotCapacity := initializeServer(cfg, db, redisClient, calendar)
	app.Server = server
	app.SlotCapacity = slotCapacity

	// Rebuild slot counters from the DB before accepting traffic
	syncCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := slotCapacity.SyncOnStartup(syncCtx); err != nil {
		logrus.Warnf("Slot counter sync failed, continuing with stale counters: %v", err)
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, calendar scheduling.CalendarConfig) (*http.Server, *service.SlotCapacityService) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	appointmentRepo := repository.NewAppointmentRepository()
	settingRepo := repository.NewScheduleSettingRepository()
	limitRepo := repository.NewWeeklyLimitRepository()
	campusRepo := repository.NewCampusRepository()
	doctorRepo := repository.NewDoctorRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	slotCapacity := service.NewSlotCapacityService(db, redisClient, log)
	auditService := service.NewAuditService(db, log, auditLogRepo)
	mailClient := service.NewMailClient(cfg.Mail.Endpoint, cfg.Mail.APIKey, cfg.Mail.From, log)

	// Initialize usecases
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, calendar, appointmentRepo, settingRepo, limitRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, calendar, appointmentRepo, campusRepo, doctorRepo, settingRepo, limitRepo, slotCapacity, auditService)
	redistributionUsecase := usecase.NewRedistributionUsecase(db, log, calendar, appointmentRepo, limitRepo, slotCapacity, auditService)
	settingUsecase := usecase.NewScheduleSettingUsecase(db, log, settingRepo, campusRepo, auditService)
	limitUsecase := usecase.NewWeeklyLimitUsecase(db, log, limitRepo, auditService)
	reminderUsecase := usecase.NewReminderUsecase(db, log, appointmentRepo, mailClient, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)
	campusUsecase := usecase.NewCampusUsecase(db, log, campusRepo)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo)

	// Initialize handlers
	availabilityHandler := handler.NewAvailabilityHandler(availabilityUsecase)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	redistributionHandler := handler.NewRedistributionHandler(redistributionUsecase, customValidator)
	settingHandler := handler.NewScheduleSettingHandler(settingUsecase, customValidator)
	limitHandler := handler.NewWeeklyLimitHandler(limitUsecase, customValidator)
	reminderHandler := handler.NewReminderHandler(reminderUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)
	campusHandler := handler.NewCampusHandler(campusUsecase)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		availabilityHandler,
		appointmentHandler,
		redistributionHandler,
		settingHandler,
		limitHandler,
		reminderHandler,
		auditLogHandler,
		campusHandler,
		doctorHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}

	return server, slotCapacity
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Stop background slot capacity goroutines
	if app.SlotCapacity != nil {
		app.SlotCapacity.Stop()
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
