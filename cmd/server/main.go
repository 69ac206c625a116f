package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/AllexanderGM/feeling-sub002/internal/config"
	"github.com/AllexanderGM/feeling-sub002/internal/database"
	"github.com/AllexanderGM/feeling-sub002/internal/handler"
	"github.com/AllexanderGM/feeling-sub002/internal/middleware"
	"github.com/AllexanderGM/feeling-sub002/internal/queue"
	"github.com/AllexanderGM/feeling-sub002/internal/repository"
	"github.com/AllexanderGM/feeling-sub002/internal/router"
	"github.com/AllexanderGM/feeling-sub002/internal/service"
)

const appVersion = "1.0.0"

func main() {
	// .env is optional; real deployments set variables in the environment.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: without it the limiter and cache become pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, rate limiting and caching disabled")
	}

	// Repositories.
	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	tourRepo := repository.NewTourRepo(db)
	availRepo := repository.NewAvailabilityRepo(db)
	accomRepo := repository.NewAccommodationRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)
	bookingRepo := repository.NewBookingRepo(db, availRepo, accomRepo, paymentRepo)

	bookingSvc := service.NewBookingService(tourRepo, availRepo, paymentRepo, bookingRepo, service.PublishBookingCreated)

	// Handlers.
	sysHandler := handler.NewSystemHandler("feeling-api", appVersion, cfg.Env)
	authHandler := handler.NewAuthHandler(cfg, userRepo, tokenRepo)
	tourHandler := handler.NewTourHandler(tourRepo)
	availHandler := handler.NewAvailabilityHandler(bookingSvc)
	bookingHandler := handler.NewBookingHandler(bookingSvc, bookingRepo, tourRepo)
	pmHandler := handler.NewPaymentMethodHandler(paymentRepo)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e, sysHandler)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	// Response caching stays on the public catalog only; authenticated
	// routes carry per-user payloads that must never share a cache entry.
	router.RegisterCatalog(e, tourHandler, availHandler, pmHandler,
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	router.RegisterBookings(e, bookingHandler, availHandler, cfg.JWTSecret)

	// Consume booking events in the background; the consumer reconnects
	// on broker failures, so a startup error only disables the audit log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
