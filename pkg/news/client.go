package news

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/diniz2025/nadjair-diniz-barbosa/pkg/llm"
)

var ErrFetchFailed = errors.New("fetch failed")

// FetchError reports a failed call to the generative backend. It matches
// ErrFetchFailed under errors.Is.
type FetchError struct {
	Kind llm.RequestKind
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrFetchFailed, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() []error {
	return []error{ErrFetchFailed, e.Err}
}

type Models struct {
	Fast           string
	Complex        string
	Lite           string
	ThinkingBudget int32
}

func DefaultModels() Models {
	return Models{
		Fast:           "gemini-2.5-flash",
		Complex:        "gemini-3-pro-preview",
		Lite:           "gemini-flash-lite-latest",
		ThinkingBudget: 32768,
	}
}

type Gateway struct {
	client  llm.LLMClient
	models  Models
	timeout time.Duration
}

// NewGateway wraps client with the dashboard's model and tool selection. A
// zero timeout leaves the caller's deadline in charge.
func NewGateway(client llm.LLMClient, models Models, timeout time.Duration) *Gateway {
	return &Gateway{
		client:  client,
		models:  models,
		timeout: timeout,
	}
}

func (g *Gateway) FetchNews(ctx context.Context, keywords, sources, query string) (llm.QueryResult, error) {
	query = strings.TrimSpace(query)

	input := llm.GenerateInput{
		Model:  g.models.Fast,
		Prompt: newsPrompt(keywords, sources, query),
		Tools:  []llm.Tool{llm.ToolWebSearch},
	}
	if query != "" {
		input.Model = g.models.Complex
		input.ThinkingBudget = g.models.ThinkingBudget
	}

	resp, err := g.generate(ctx, llm.NewsQuery, input)
	if err != nil {
		return llm.QueryResult{}, err
	}
	return llm.Normalize(llm.NewsQuery, resp), nil
}

func (g *Gateway) FetchLocations(ctx context.Context, query string) (llm.QueryResult, error) {
	input := llm.GenerateInput{
		Model:  g.models.Fast,
		Prompt: locationsPrompt(query),
		// Places covers addresses; search fills phone numbers and opening hours.
		Tools: []llm.Tool{llm.ToolPlaces, llm.ToolWebSearch},
	}

	resp, err := g.generate(ctx, llm.LocationQuery, input)
	if err != nil {
		return llm.QueryResult{}, err
	}
	return llm.Normalize(llm.LocationQuery, resp), nil
}

// FetchTicker never fails: when the backend is unavailable it returns
// FallbackHeadlines.
func (g *Gateway) FetchTicker(ctx context.Context) []string {
	input := llm.GenerateInput{
		Model:  g.models.Lite,
		Prompt: tickerPrompt,
		Tools:  []llm.Tool{llm.ToolWebSearch},
	}

	resp, err := g.generate(ctx, llm.TickerQuery, input)
	if err != nil {
		slog.Warn("ticker unavailable, using fallback headlines", "error", err)
		return FallbackHeadlines()
	}

	return ParseTicker(llm.Normalize(llm.TickerQuery, resp).Markdown)
}

func (g *Gateway) generate(ctx context.Context, kind llm.RequestKind, input llm.GenerateInput) (*llm.Response, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := g.client.Generate(ctx, input)
	if err == nil && resp == nil {
		err = errors.New("empty response")
	}
	if err != nil {
		slog.Error("generate request failed", "kind", kind.String(), "model", input.Model, "duration", time.Since(start), "error", err)
		return nil, &FetchError{Kind: kind, Err: err}
	}

	slog.Info("generate request completed", "kind", kind.String(), "model", input.Model, "duration", time.Since(start), "text_length", len(resp.Text))
	return resp, nil
}
