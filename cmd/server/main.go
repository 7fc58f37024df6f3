package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/iliyamo/swim-insights/internal/config"
	"github.com/iliyamo/swim-insights/internal/handler"
	"github.com/iliyamo/swim-insights/internal/middleware"
	"github.com/iliyamo/swim-insights/internal/repository"
	"github.com/iliyamo/swim-insights/internal/router"
	"github.com/iliyamo/swim-insights/internal/service"
	"github.com/iliyamo/swim-insights/internal/store"
)

func main() {
	// Load .env in development; in real deployments the variables come
	// from the environment and the file is absent.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg := config.Load()

	client, db, err := store.Open(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer func() {
		if err := store.Close(client); err != nil {
			log.Printf("store close: %v", err)
		}
	}()

	// Repositories are constructed once and injected explicitly; there is
	// no process-wide store singleton.
	locations := repository.NewLocationRepo(db)
	seasons := repository.NewSeasonRepo(db)
	programs := repository.NewProgramRepo(db)
	bookings := repository.NewBookingRepo(db)
	lessons := repository.NewLessonRepo(db)
	pricing := repository.NewPricingRepo(db)

	insights := service.NewInsights(locations, seasons, programs, bookings, lessons)

	e := echo.New()
	e.HideBanner = true

	limit := middleware.RateLimit(config.LoadRateLimitConfig(), config.NewRedisClient())
	ping := func(ctx context.Context) error { return client.Ping(ctx, readpref.Primary()) }
	router.Register(e,
		handler.NewInsightsHandler(insights),
		handler.NewCatalogHandler(locations, seasons, pricing),
		ping,
		limit,
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
