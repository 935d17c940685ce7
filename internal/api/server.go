package api

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/CampusOrbit/mentoring_service/config"
	"github.com/CampusOrbit/mentoring_service/infra/queue"
	"github.com/CampusOrbit/mentoring_service/internal/api/rest/handlers"
	"github.com/CampusOrbit/mentoring_service/internal/api/rest/middleware"
	"github.com/CampusOrbit/mentoring_service/internal/clients/directory"
	"github.com/CampusOrbit/mentoring_service/internal/domain"
	"github.com/CampusOrbit/mentoring_service/internal/helper"
	"github.com/CampusOrbit/mentoring_service/internal/repository"
	"github.com/CampusOrbit/mentoring_service/internal/scheduler"
	"github.com/CampusOrbit/mentoring_service/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.BaseURL,
		AllowHeaders: "Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("database connection error: %v", err)
	}
	logrus.Info("database connected")

	// ---------- MIGRATION (guarded by advisory lock) ----------
	const migrateLockID int64 = 20260415

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		logrus.Fatalf("migration lock error: %v", err)
	}

	if err := db.AutoMigrate(
		&domain.Recruitment{},
		&domain.Application{},
		&domain.Matching{},
		&domain.MatchingMessage{},
	); err != nil {
		logrus.Fatalf("migration error: %v", err)
	}
	if err := db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error; err != nil {
		logrus.Warnf("migration unlock error: %v", err)
	}
	logrus.Info("migration successful")

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)
	directoryClient := directory.New(cfg.DirectoryBaseURL, cfg.DirectoryToken)
	auth := helper.SetupAuth(cfg.AccessSecret)

	// ---------- Repositories ----------
	recruitmentRepo := repository.NewRecruitmentRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	matchingRepo := repository.NewMatchingRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// ---------- Services ----------
	recruitmentSvc := services.NewRecruitmentService(recruitmentRepo, applicationRepo)
	applicationSvc := services.NewApplicationService(applicationRepo, recruitmentRepo, directoryClient, kafkaProducer)
	matchingSvc := services.NewMatchingService(matchingRepo, kafkaProducer)
	threadSvc := services.NewThreadService(matchingRepo, messageRepo)

	// ---------- Scheduler ----------
	lifecycle := scheduler.NewLifecycleScheduler(recruitmentRepo, cfg.SchedulerTick)
	if err := lifecycle.Start(); err != nil {
		logrus.Fatalf("scheduler start error: %v", err)
	}

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Handlers ----------
	api := app.Group("/api", middleware.AuthMiddleware(auth))
	handlers.NewRecruitmentHandler(recruitmentSvc, applicationSvc).SetupRoutes(api)
	handlers.NewApplicationHandler(applicationSvc).SetupRoutes(api)
	handlers.NewMatchingHandler(matchingSvc, threadSvc).SetupRoutes(api)

	// ---------- Shutdown ----------
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logrus.Info("shutting down")
		lifecycle.Stop()
		_ = app.Shutdown()
	}()

	logrus.Infof("listening on %s", cfg.ServerAddr)
	if err := app.Listen(cfg.ServerAddr); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
