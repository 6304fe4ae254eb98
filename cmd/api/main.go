package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/studio316/booking-api/internal/config"
	"github.com/studio316/booking-api/internal/metrics"
	"github.com/studio316/booking-api/internal/middleware"
	"github.com/studio316/booking-api/internal/routes"
	"github.com/studio316/booking-api/internal/session"
	"github.com/studio316/booking-api/internal/store"
	"github.com/studio316/booking-api/internal/timezone"
)

func main() {

	_ = godotenv.Load()
	cfg := config.Load()

	now := timezone.NowIn(cfg.Timezone)

	st := store.New()
	st.SeedCatalog(now)
	st.SeedAppointments(rand.New(rand.NewSource(cfg.AvailabilitySeed)), now)
	st.Reconcile(now)

	var cache session.Cache = session.NewMemory()
	if cfg.RedisAddr != "" {
		rc := session.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := rc.Ping(context.Background()); err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
		cache = rc
		log.Printf("Session snapshots on redis at %s", cfg.RedisAddr)
	}
	snapshots := session.NewSnapshots(cache, cfg.SessionTTL)

	m := metrics.New("booking-api")

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(m.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))

	routes.RegisterRoutes(r, st, cfg, snapshots, m)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
