package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mfigueredo/veritext/internal/analyzer"
	"github.com/mfigueredo/veritext/internal/api"
	"github.com/mfigueredo/veritext/internal/config"
	"github.com/mfigueredo/veritext/internal/huggingface"
	"github.com/mfigueredo/veritext/internal/utils"
)

// @title          VeriText API
// @version        1.0
// @description    Detects whether a text is AI-generated or human-written

// @host     localhost:8080
// @BasePath /

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.NewLogger("error").Fatal("failed to load configuration", "error", err)
	}
	if err := cfg.Validate(); err != nil {
		utils.NewLogger("error").Fatal("invalid configuration", "error", err)
	}

	logger := utils.NewLogger(cfg.App.LogLevel)
	logger.Info("starting veritext",
		"env", cfg.App.Env,
		"log_level", cfg.App.LogLevel,
		"max_input_chars", cfg.Analysis.MaxInputChars,
	)

	// Without a token the engine runs on heuristics alone.
	var classifier analyzer.Classifier
	hf, err := huggingface.NewClient(cfg, logger)
	if err != nil {
		logger.Info("remote classifier disabled", "reason", err)
	} else {
		classifier = hf
		logger.Info("remote classifier enabled", "model", cfg.HuggingFace.Model)
	}

	engine := analyzer.NewEngine(classifier, &cfg.Analysis, logger)
	handler := api.NewHandler(logger, engine, cfg)

	if cfg.App.Env == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", api.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(api.RequestID())

	api.RegisterRoutes(router, handler)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.App.ServerPort,
		Handler: router,
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr)
		logger.Info("endpoints",
			"health", "GET /health",
			"analyze", "POST /api/analyze",
			"analyze_file", "POST /api/analyze/file",
			"docs", "GET /docs/index.html",
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", "error", err)
	}

	logger.Info("server exited")
}
