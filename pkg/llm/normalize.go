package llm

import "strings"

// SourcesMarker separates the provider analysis from the suggested data
// sources in a location report. Any drift in the model output (translation,
// different heading level) means no sources section is detected.
const SourcesMarker = "### Fontes de Dados"

const (
	emptyNewsText      = "Não foi possível carregar as notícias no momento."
	emptyLocationsText = "Nenhum local encontrado."
)

func placeholder(kind RequestKind) string {
	switch kind {
	case NewsQuery:
		return emptyNewsText
	case LocationQuery:
		return emptyLocationsText
	default:
		return ""
	}
}

func Normalize(kind RequestKind, resp *Response) QueryResult {
	result := QueryResult{Markdown: placeholder(kind)}
	if resp == nil {
		return result
	}

	if resp.Text != "" {
		result.Markdown = resp.Text
	}

	for _, raw := range resp.groundingChunks() {
		if chunk, ok := classify(raw); ok {
			result.Chunks = append(result.Chunks, chunk)
		}
	}

	return result
}

func classify(raw RawChunk) (GroundingChunk, bool) {
	if m := raw.Maps; m != nil && m.Title != "" && m.URI != "" {
		chunk := MapChunk{
			PlaceID: m.PlaceID,
			Title:   m.Title,
			URI:     m.URI,
		}
		if m.PlaceAnswerSources != nil {
			for _, s := range m.PlaceAnswerSources.ReviewSnippets {
				if snippet, ok := reviewSnippet(s); ok {
					chunk.ReviewSnippets = append(chunk.ReviewSnippets, snippet)
				}
			}
		}
		return chunk, true
	}

	if w := raw.Web; w != nil && w.URI != "" && w.Title != "" {
		return WebChunk{URI: w.URI, Title: w.Title}, true
	}

	return nil, false
}

func reviewSnippet(raw RawReviewSnippet) (ReviewSnippet, bool) {
	snippet := ReviewSnippet{Content: raw.Content, Author: raw.Author}
	if snippet.Content == "" {
		snippet.Content = raw.Title
	}
	if snippet.Author == "" && raw.AuthorAttribution != nil {
		snippet.Author = raw.AuthorAttribution.DisplayName
	}
	return snippet, snippet.Content != ""
}

// SplitSources cuts a location report at the first SourcesMarker. ok is false
// when the marker is missing or nothing but whitespace follows it.
func SplitSources(body string) (analysis, sources string, ok bool) {
	before, after, found := strings.Cut(body, SourcesMarker)
	if !found {
		return body, "", false
	}
	if strings.TrimSpace(after) == "" {
		return before, "", false
	}
	return before, after, true
}
