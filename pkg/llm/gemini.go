package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient builds a client for the Gemini API. A nil httpClient gets a
// default one without a timeout; callers bound each call through ctx.
func NewGeminiClient(ctx context.Context, apiKey string, httpClient *http.Client) (*GeminiClient, error) {
	if httpClient == nil {
		httpClient = defaultHTTPClient()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	return &GeminiClient{client: client}, nil
}

func (c *GeminiClient) Generate(ctx context.Context, input GenerateInput) (*Response, error) {
	config := &genai.GenerateContentConfig{
		Tools: geminiTools(input.Tools),
	}
	if input.ThinkingBudget > 0 {
		config.ThinkingConfig = &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(input.ThinkingBudget),
		}
	}

	resp, err := c.client.Models.GenerateContent(ctx, input.Model, genai.Text(input.Prompt), config)
	if err != nil {
		return nil, fmt.Errorf("gemini API error: %w", err)
	}

	if resp == nil {
		return nil, fmt.Errorf("no response from gemini")
	}

	return fromGemini(resp)
}

func defaultHTTPClient() *http.Client {
	return &http.Client{Transport: http.DefaultTransport}
}

func geminiTools(tools []Tool) []*genai.Tool {
	out := make([]*genai.Tool, 0, len(tools))
	for _, t := range tools {
		switch t {
		case ToolWebSearch:
			out = append(out, &genai.Tool{GoogleSearch: &genai.GoogleSearch{}})
		case ToolPlaces:
			out = append(out, &genai.Tool{GoogleMaps: &genai.GoogleMaps{}})
		}
	}
	return out
}

// fromGemini re-reads the SDK response through its JSON form. Only fields the
// SDK structs carry survive the round trip.
func fromGemini(resp *genai.GenerateContentResponse) (*Response, error) {
	payload, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to encode response: %w", err)
	}

	var out Response
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	out.Text = resp.Text()
	return &out, nil
}
