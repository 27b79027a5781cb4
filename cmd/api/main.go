package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/diniz2025/nadjair-diniz-barbosa/internal/config"
	"github.com/diniz2025/nadjair-diniz-barbosa/internal/dashboard"
	"github.com/diniz2025/nadjair-diniz-barbosa/internal/handler"
	"github.com/diniz2025/nadjair-diniz-barbosa/pkg/llm"
	"github.com/diniz2025/nadjair-diniz-barbosa/pkg/news"
	"github.com/gin-gonic/gin"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	ctx := context.Background()

	geminiClient, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, nil)
	if err != nil {
		log.Fatalf("error creating gemini client: %v", err)
	}

	gateway := news.NewGateway(geminiClient, cfg.Models, cfg.RequestTimeout)
	controller := dashboard.NewController(gateway)

	go func() {
		if err := controller.Start(ctx); err != nil {
			slog.Error("initial dashboard load failed", "error", err)
		}
	}()

	gin.SetMode(gin.ReleaseMode)
	allowedOrigins := cfg.AllowedOrigins()
	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r := handler.NewRouter(handler.NewDashboardHandler(controller), allowedOrigins)

	slog.Info("starting server", "addr", cfg.ListenAddr, "fast_model", cfg.Models.Fast)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
