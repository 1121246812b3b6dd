package api

import (
	"context"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kadima-pos/config"
	"kadima-pos/middleware"
	"kadima-pos/routes"
)

var (
	router  *gin.Engine
	once    sync.Once
	initErr error
)

// initApp builds the router once per serverless instance. Cart sessions live
// in instance memory, so a deployment with several instances needs sticky
// routing for /carts.
func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)
		ctx := context.Background()

		cfg := config.LoadConfig()
		logger, err := config.NewLogger(cfg)
		if err != nil {
			initErr = err
			return
		}

		db, err := config.ConnectDB(ctx, cfg, logger)
		if err != nil {
			initErr = err
			return
		}
		if err := config.RunMigrations(cfg, logger); err != nil {
			initErr = err
			return
		}
		rdb := config.ConnectRedis(ctx, cfg, logger)

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.RequestLogger(logger))
		router.Use(middleware.Metrics())
		router.Use(middleware.CORSMiddleware(cfg.OriginURL))

		routes.SetupRoutes(router, routes.Deps{Config: cfg, DB: db, Redis: rdb, Logger: logger})
		logger.Info("serverless handler ready", zap.String("env", cfg.AppEnv))
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		log.Printf("init failed: %v", initErr)
		http.Error(w, `{"success":false,"message":"service unavailable"}`, http.StatusServiceUnavailable)
		return
	}
	router.ServeHTTP(w, r)
}
