package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"homestay/internal/cache"
	"homestay/internal/config"
	"homestay/internal/database"
	"homestay/internal/domain"
	"homestay/internal/middleware"
	"homestay/internal/modules/booking"
	"homestay/internal/modules/favorite"
	"homestay/internal/modules/listing"
	"homestay/internal/modules/review"
	"homestay/internal/notify"
	"homestay/internal/obs"
	jwtsvc "homestay/internal/pkg/jwt"
	"homestay/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}

	log := obs.NewLogger(cfg.AppEnv)
	slog.SetDefault(log)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Error("database connect", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Listing{},
		&domain.Booking{},
		&domain.Review{},
		&domain.Favorite{},
	); err != nil {
		log.Error("migrate", "err", err)
		os.Exit(1)
	}

	var reads cache.Cache = cache.Noop{}
	if cfg.RedisAddr != "" {
		reads = cache.NewRedis(cfg.RedisAddr, log)
	} else {
		log.Warn("REDIS_ADDR not set, read cache disabled")
	}
	coherent := cache.NewCoherencer(reads, log)

	var notifs notify.Notifier
	if len(cfg.KafkaBrokers) > 0 {
		kafka, err := notify.NewKafka(cfg.KafkaBrokers, cfg.KafkaTopic, log)
		if err != nil {
			log.Error("kafka producer", "err", err)
			os.Exit(1)
		}
		defer kafka.Close()
		notifs = kafka
	} else {
		log.Warn("KAFKA_BROKERS not set, notifications disabled")
	}

	userRepo := repository.NewUserRepository(db)
	listingRepo := repository.NewListingRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, 24*time.Hour)

	bookingService := booking.NewService(
		bookingRepo, listingRepo, userRepo, notifs, coherent, reads,
		cfg.CacheTTL, cfg.ReservationsTTL, cfg.StoreTimeout,
	)
	bookingHandler := booking.NewHandler(bookingService)

	reviewService := review.NewService(
		reviewRepo, bookingRepo, listingRepo, userRepo, coherent, reads,
		cfg.CacheTTL, cfg.StoreTimeout,
	)
	reviewHandler := review.NewHandler(reviewService)

	// Media upload and storage live in a separate service; no adapter is
	// wired here, so listing details carry no photo URLs yet.
	listingService := listing.NewService(
		listingRepo, reviewRepo, userRepo, nil, coherent, reads, cfg.CacheTTL,
	)
	listingHandler := listing.NewHandler(listingService)

	favoriteHandler := favorite.NewHandler(favoriteRepo, coherent, reads, cfg.CacheTTL)

	r := gin.Default()

	v1 := r.Group("/api/v1")
	{
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j), middleware.NotBanned(userRepo))

		listingHandler.RegisterRoutes(v1, protected)
		reviewHandler.RegisterRoutes(v1, protected)
		bookingHandler.RegisterRoutes(protected)
		favoriteHandler.RegisterRoutes(protected)
	}

	log.Info("listening", "addr", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Error("server", "err", err)
		os.Exit(1)
	}
}
