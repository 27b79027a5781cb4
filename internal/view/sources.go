package view

import "github.com/diniz2025/nadjair-diniz-barbosa/pkg/llm"

type MapCard struct {
	Title   string
	URI     string
	Snippet string
}

// WebSources returns the web citations worth listing: non-empty URI and
// title, deduplicated by URI keeping the first occurrence.
func WebSources(chunks []llm.GroundingChunk) []llm.WebChunk {
	seen := make(map[string]bool)
	var out []llm.WebChunk
	for _, c := range chunks {
		web, ok := c.(llm.WebChunk)
		if !ok || web.URI == "" || web.Title == "" || seen[web.URI] {
			continue
		}
		seen[web.URI] = true
		out = append(out, web)
	}
	return out
}

func MapCards(chunks []llm.GroundingChunk) []MapCard {
	var out []MapCard
	for _, c := range chunks {
		place, ok := c.(llm.MapChunk)
		if !ok || place.Title == "" || place.URI == "" {
			continue
		}
		card := MapCard{Title: place.Title, URI: place.URI}
		if len(place.ReviewSnippets) > 0 {
			card.Snippet = place.ReviewSnippets[0].Content
		}
		out = append(out, card)
	}
	return out
}
