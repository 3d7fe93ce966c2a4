package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/restaurant-table-booking/internal/booking" // Booking core service
	"github.com/iliyamo/restaurant-table-booking/internal/config"  // Internal config loader
	"github.com/iliyamo/restaurant-table-booking/internal/handler" // HTTP handlers
	"github.com/iliyamo/restaurant-table-booking/internal/persist" // Snapshot drivers
	"github.com/iliyamo/restaurant-table-booking/internal/queue"   // Reservation event publisher/consumer
	"github.com/iliyamo/restaurant-table-booking/internal/router"  // Internal router setup
	"github.com/iliyamo/restaurant-table-booking/internal/store"   // State store
)

// pickDriver selects the snapshot driver from config.  Unreachable
// redis/mysql backends fall back to the file driver so the floor can
// keep taking reservations.
func pickDriver(cfg config.Config) persist.Driver {
	switch cfg.StoreDriver {
	case "redis":
		if d := persist.NewRedis(); d != nil {
			return d
		}
		log.Println("redis unavailable, falling back to file store")
	case "mysql":
		d, err := persist.NewMySQL(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err == nil {
			return d
		}
		log.Printf("mysql unavailable (%v), falling back to file store", err)
	case "memory":
		return persist.NewMemory()
	}
	return &persist.File{Path: cfg.DataFile}
}

func main() {
	_ = godotenv.Load() // Load .env if present; real env wins

	cfg := config.Load() // Load environment config

	st := store.New(pickDriver(cfg)) // Load snapshot or seed the demo dataset

	var events booking.EventPublisher // stays nil when no broker is configured
	if pub := queue.NewPublisherFromEnv(); pub != nil {
		events = pub
		go func() {
			if err := queue.StartReservationConsumer(); err != nil {
				log.Printf("reservation consumer stopped: %v", err)
			}
		}()
	}

	svc := booking.NewService(st, events)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	router.RegisterRoutes(e)
	router.RegisterBooking(e, handler.NewBookingHandler(svc), cfg.JWTSecret)
	if cfg.JWTSecret != "" {
		router.RegisterAuth(e, handler.NewAuthHandler(cfg, svc), cfg.JWTSecret)
	}

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
