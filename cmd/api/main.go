package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "portfoliomaker/docs"
	"portfoliomaker/internal/auth"
	"portfoliomaker/internal/config"
	"portfoliomaker/internal/handler"
	"portfoliomaker/internal/jd"
	"portfoliomaker/internal/llm"
	"portfoliomaker/internal/metrics"
	"portfoliomaker/internal/middleware"
	"portfoliomaker/internal/session"
	"portfoliomaker/internal/storage"
)

const sessionSweepInterval = 10 * time.Minute

// @title           Portfolio Maker API
// @version         1.0
// @description     AI resume, cover letter and portfolio builder backend.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
// @description     Type "Bearer" followed by a space and the JWT from /auth/login.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	store, err := storage.Connect(context.Background(), cfg.Mongo.URI, cfg.Mongo.DBName, cfg.Mongo.Collection)
	if err != nil {
		log.Fatalf("connect storage: %v", err)
	}
	defer store.Close(context.Background())

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret)
	sessions := session.NewManager(cfg.Auth.SessionTTL)
	go sessions.SweepLoop(context.Background(), sessionSweepInterval)

	client := llm.NewClient(cfg.LLM.BaseURL, cfg.LLM.Token,
		llm.WithModel(cfg.LLM.Model),
		llm.WithMaxTokens(cfg.LLM.MaxTokens),
		llm.WithTemperature(cfg.LLM.Temperature),
		llm.WithHTTPClient(&http.Client{Timeout: cfg.LLM.Timeout}),
		llm.WithLogger(logger),
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry, sessions.Count)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	h := handler.New(store, tokens, sessions, client, jd.NewFetcher(), m)
	h.Routes(router, cfg.Limit.RPS, cfg.Limit.Burst)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logger.Info("server starting", "addr", cfg.Server.Addr, "model", cfg.LLM.Model)
	log.Fatal(router.Run(cfg.Server.Addr))
}
