package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"github.com/stripe/stripe-go/v82"

	"vincanto/internal/api"
	"vincanto/internal/auth"
	"vincanto/internal/metrics"
	"vincanto/internal/repository"
	"vincanto/internal/service"
)

const stalePendingAge = 24 * time.Hour

func main() {
	godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	bookingRepo := repository.NewBookingRepository(db)
	blockedRepo := repository.NewBlockedDateRepository(db)
	pricingRepo := repository.NewPricingRepository(db)
	calendarRepo := repository.NewCalendarRepository(db)
	adminAuthRepo := repository.NewAdminAuthRepository(db)
	jobRepo := repository.NewJobRepository(db)

	stripeService := service.NewStripeService()
	notifyService := service.NewNotifyService()
	bookingService := service.NewBookingService(bookingRepo, blockedRepo, pricingRepo, stripeService, notifyService)
	availabilityService := service.NewAvailabilityService(bookingRepo, blockedRepo)
	contactService := service.NewContactService(notifyService)
	adminService := service.NewAdminService(blockedRepo)
	adminAuthService := service.NewAdminAuthService(adminAuthRepo)
	configService := service.NewConfigService(pricingRepo)
	calendarSyncService := service.NewCalendarSyncService(calendarRepo, blockedRepo, bookingRepo)
	jobService := service.NewJobService(jobRepo)

	bookingHandler := api.NewBookingHandler(bookingService)
	availabilityHandler := api.NewAvailabilityHandler(availabilityService)
	contactHandler := api.NewContactHandler(contactService)
	adminHandler := api.NewAdminHandler(bookingService, adminService)
	adminAuthHandler := api.NewAdminAuthHandler(adminAuthService)
	configHandler := api.NewConfigHandler(configService)
	calendarHandler := api.NewCalendarHandler(calendarSyncService)
	stripeHandler := api.NewStripeWebhookHandler(os.Getenv("STRIPE_WEBHOOK_SECRET"), bookingService)

	m := metrics.New("vincanto")

	r := mux.NewRouter()
	r.Use(api.MetricsMiddleware(m))
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Public endpoints
	r.HandleFunc("/api/booking/quote", bookingHandler.Quote).Methods("POST")
	r.HandleFunc("/api/booking", bookingHandler.CreateBooking).Methods("POST")
	r.HandleFunc("/api/booking/{code}", bookingHandler.GetBooking).Methods("GET")
	r.HandleFunc("/api/availability/check", availabilityHandler.Check).Methods("GET")
	r.HandleFunc("/api/availability/calendar", availabilityHandler.Calendar).Methods("GET")
	r.HandleFunc("/api/availability/next-available", availabilityHandler.NextAvailable).Methods("GET")
	r.HandleFunc("/api/contact", contactHandler.Submit).Methods("POST")
	r.HandleFunc("/api/stripe/webhook", stripeHandler.HandleWebhook).Methods("POST")
	r.HandleFunc("/api/stripe/session", stripeHandler.GetBookingBySessionID).Methods("GET")
	r.HandleFunc("/api/admin/login", adminAuthHandler.Login).Methods("POST")
	r.HandleFunc("/api/admin/users", adminAuthHandler.CreateUserAdmin).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/dashboard", adminHandler.Dashboard).Methods("GET")
	admin.HandleFunc("/bookings", adminHandler.ListBookings).Methods("GET")
	admin.HandleFunc("/bookings/{id}", adminHandler.GetBooking).Methods("GET")
	admin.HandleFunc("/bookings/{id}/status", adminHandler.UpdateBookingStatus).Methods("PUT")
	admin.HandleFunc("/blocked-dates", adminHandler.ListBlockedDates).Methods("GET")
	admin.HandleFunc("/blocked-dates", adminHandler.CreateBlockedDate).Methods("POST")
	admin.HandleFunc("/blocked-dates/{id}", adminHandler.DeleteBlockedDate).Methods("DELETE")
	admin.HandleFunc("/pricing", configHandler.GetPricing).Methods("GET")
	admin.HandleFunc("/pricing", configHandler.UpdatePricing).Methods("PUT")
	admin.HandleFunc("/settings", configHandler.GetSettings).Methods("GET")
	admin.HandleFunc("/calendars", calendarHandler.ListFeeds).Methods("GET")
	admin.HandleFunc("/calendars", calendarHandler.CreateFeed).Methods("POST")
	admin.HandleFunc("/calendars/{id:[0-9]+}", calendarHandler.UpdateFeed).Methods("PUT")
	admin.HandleFunc("/calendars/{id:[0-9]+}", calendarHandler.DeleteFeed).Methods("DELETE")
	admin.HandleFunc("/calendars/{platform}/sync", calendarHandler.ForceSync).Methods("POST")

	c := cron.New()
	c.AddFunc("0 */4 * * *", func() {
		if _, err := calendarSyncService.SyncAll(); err != nil {
			log.Printf("Cron Job: calendar sync failed: %v", err)
		}
	})
	c.AddFunc("0 3 * * *", func() {
		if err := jobService.CompletePastStays(); err != nil {
			log.Printf("Cron Job: %v", err)
		}
		if _, err := jobService.PurgeStalePendingBookings(stalePendingAge); err != nil {
			log.Printf("Cron Job: purging stale pending bookings failed: %v", err)
		}
	})
	c.AddFunc("0 4 * * 0", func() {
		if _, err := calendarSyncService.CleanupExpired(); err != nil {
			log.Printf("Cron Job: cleaning up expired synced blocks failed: %v", err)
		}
	})
	c.Start()
	defer c.Stop()

	corsOrigins := handlers.AllowedOrigins([]string{frontendOrigin()})
	corsMethods := handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	corsHeaders := handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Setup-Token"})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handlers.CORS(corsOrigins, corsMethods, corsHeaders)(r),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server running on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
	db.Close()
	log.Println("Server stopped")
}

func frontendOrigin() string {
	if origin := os.Getenv("FRONTEND_URL"); origin != "" {
		return origin
	}
	return "http://localhost:3000"
}
