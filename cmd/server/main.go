package main // Entry point package

import (
	"context"
	"log" // Logging library
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/kamkoum04/CoolifyExample/internal/config" // Internal config loader
	"github.com/kamkoum04/CoolifyExample/internal/router" // Internal router setup
	"github.com/kamkoum04/CoolifyExample/internal/server"
)

func main() {
	cfg := config.Load() // Load environment config

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var rdb *redis.Client
	if cfg.RateLimit.Enabled {
		if rdb = config.NewRedisClient(ctx, cfg.RateLimit.Redis); rdb == nil {
			log.Printf("rate limit: redis at %s unreachable, limiter disabled", cfg.RateLimit.Redis.Addr)
		} else {
			defer rdb.Close()
			log.Printf("rate limit: capacity=%d refill=%d/%s key=%s",
				cfg.RateLimit.Capacity, cfg.RateLimit.RefillTokens, cfg.RateLimit.RefillInterval, cfg.RateLimit.KeyStrategy)
		}
	}

	e := router.New(cfg, rdb, router.Routes()) // Build the responder and its routing table
	srv := server.New(e, cfg.Addr(), cfg.ShutdownTimeout)

	if err := srv.Listen(); err != nil {
		log.Fatal(err) // Port taken or not permitted: exit nonzero
	}
	log.Printf("listening on %s (env=%s)", srv.Addr(), cfg.Env) // Print startup info

	if err := srv.Run(ctx); err != nil {
		log.Fatal(err)
	}
	log.Println("server stopped")
}
