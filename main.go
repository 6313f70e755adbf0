package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-booking-backend/config"
	"hotel-booking-backend/controllers"
	"hotel-booking-backend/pricing"
	"hotel-booking-backend/routes"
	"hotel-booking-backend/services"
)

func decayStrategy(name string) pricing.DecayFunc {
	switch name {
	case "damped":
		return pricing.DampedDecay
	default:
		return pricing.ScaledDecay
	}
}

func popularityStrategy(name string) pricing.PopularityFunc {
	switch name {
	case "linear":
		return pricing.LinearPopularity
	default:
		return pricing.LogPopularity
	}
}

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	settings := config.Load()

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Pricing engine
	model := pricing.NewModel(
		decayStrategy(settings.DecayStrategy),
		settings.PriceJitter,
		rand.New(rand.NewSource(time.Now().UnixNano())),
	)

	// Stores and services
	offerStore := services.NewGormOfferStore(db)
	viewStore := services.NewGormViewStore(db)
	tracker := services.NewPopularityService(viewStore, popularityStrategy(settings.PopularityStrategy))
	bookingService := services.NewBookingService(offerStore, model)
	quoteStream := services.NewQuoteStream(offerStore, tracker, model, settings.StreamInterval)
	userService := services.NewUserService(db)
	hotelService := services.NewHotelService(db)
	favoriteService := services.NewFavoriteService(db)

	// Controllers
	userController := controllers.NewUserController(userService)
	hotelController := controllers.NewHotelController(hotelService)
	offerController := controllers.NewOfferController(bookingService, tracker, quoteStream)
	favoriteController := controllers.NewFavoriteController(favoriteService)

	router := routes.SetupRouter(userController, hotelController, offerController, favoriteController, userService)

	// The refresh job lives exactly as long as the process: started here,
	// cancelled at shutdown.
	jobCtx, stopJob := context.WithCancel(context.Background())
	refreshJob := services.NewPriceRefreshJob(offerStore, tracker, model, settings.RefreshInterval)
	refreshJob.Start(jobCtx)

	addr := ":" + settings.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts; no WriteTimeout so websocket streams stay open
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	stopJob()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
