package llm

import "context"

type Tool int

const (
	ToolWebSearch Tool = iota
	ToolPlaces
)

func (t Tool) String() string {
	switch t {
	case ToolWebSearch:
		return "web_search"
	case ToolPlaces:
		return "places"
	default:
		return "unknown"
	}
}

type GenerateInput struct {
	Model  string
	Prompt string
	Tools  []Tool
	// ThinkingBudget enables extended reasoning when positive.
	ThinkingBudget int32
}

type LLMClient interface {
	Generate(ctx context.Context, input GenerateInput) (*Response, error)
}
