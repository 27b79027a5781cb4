package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/diniz2025/nadjair-diniz-barbosa/internal/cli"
	"github.com/diniz2025/nadjair-diniz-barbosa/internal/config"
	"github.com/diniz2025/nadjair-diniz-barbosa/internal/dashboard"
	"github.com/diniz2025/nadjair-diniz-barbosa/pkg/llm"
	"github.com/diniz2025/nadjair-diniz-barbosa/pkg/news"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	newGateway := func(ctx context.Context) (dashboard.Gateway, error) {
		cfg, err := config.FromEnv()
		if err != nil {
			return nil, err
		}

		client, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, nil)
		if err != nil {
			return nil, err
		}
		return news.NewGateway(client, cfg.Models, cfg.RequestTimeout), nil
	}

	if err := cli.NewRootCommand(newGateway).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
