package main

import (
	"context"
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/application"
	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/config"
	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/email"
	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/infrastructure/repository"
	handlers "github.com/ChrisDRS-dev/cabanas-marinas-web/internal/interfaces/http"
	"github.com/ChrisDRS-dev/cabanas-marinas-web/internal/scheduler"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDBConnString())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Error pinging database: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Error pinging redis: %v", err)
	}
	defer redisClient.Close()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Length",
		MaxAge:           86400,
	}))

	// Email Client
	emailClient, err := email.NewClient(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPassword,
		cfg.SMTPFromName,
		cfg.SMTPFromEmail,
	)
	if err != nil {
		log.Printf("Warning: Email client initialization failed: %v", err)
		emailClient = nil // Continuar sin email
	}

	// Catálogo
	catalogRepo := repository.NewCatalogRepository(db)
	catalogService := application.NewCatalogService(catalogRepo)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	// Sesiones y confirmaciones (Redis)
	store := repository.NewRedisStore(redisClient)

	// Reservas
	cabinRepo := repository.NewCabinRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	reservationService := application.NewReservationService(cabinRepo, reservationRepo, catalogService, store, profileRepo, emailClient)
	reservationHandler := handlers.NewReservationHandler(reservationService)
	availabilityHandler := handlers.NewAvailabilityHandler(reservationService)
	profileHandler := handlers.NewProfileHandler(reservationService)

	// Asistente de reserva
	formConfigRepo := repository.NewFormConfigRepository(db)
	wizardService := application.NewWizardService(store, formConfigRepo, catalogService)
	wizardHandler := handlers.NewWizardHandler(wizardService, reservationService)

	auth := handlers.NewAuthMiddleware(cfg.JWTSecret)

	api := app.Group("/api")

	// Catálogo y configuración
	api.Get("/catalog", catalogHandler.GetCatalog)
	api.Get("/payment-methods", catalogHandler.GetPaymentMethods)
	api.Get("/config/wizard", wizardHandler.GetConfig)

	// Disponibilidad
	api.Post("/availability", availabilityHandler.CheckAvailability)

	// Sesiones del asistente
	wizard := api.Group("/wizard")
	wizard.Post("/", wizardHandler.CreateSession)
	wizard.Get("/:id", wizardHandler.GetSession)
	wizard.Post("/:id/actions", wizardHandler.DispatchAction)
	wizard.Delete("/:id", wizardHandler.DeleteSession)
	wizard.Post("/:id/submit", auth, wizardHandler.SubmitSession)

	// Reservas
	reservations := api.Group("/reservations")
	reservations.Post("/", auth, reservationHandler.CreateReservation)
	reservations.Get("/active", auth, reservationHandler.GetActiveReservation)

	// Perfil
	api.Post("/profile/phone", auth, profileHandler.UpdatePhone)

	// Cierre automático de reservas vencidas
	reservationScheduler := scheduler.NewReservationScheduler(reservationRepo)
	reservationScheduler.Start()
	defer reservationScheduler.Stop()

	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
