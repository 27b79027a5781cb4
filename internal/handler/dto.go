package handler

import (
	"github.com/diniz2025/nadjair-diniz-barbosa/internal/dashboard"
	"github.com/diniz2025/nadjair-diniz-barbosa/internal/model"
	"github.com/diniz2025/nadjair-diniz-barbosa/pkg/llm"
)

type StateResponse struct {
	SelectedCategory string          `json:"selected_category"`
	SearchQuery      string          `json:"search_query"`
	LoadingState     string          `json:"loading_state"`
	Result           *ResultResponse `json:"result"`
	Ticker           []string        `json:"ticker"`
	Error            string          `json:"error,omitempty"`
}

type ResultResponse struct {
	Markdown        string          `json:"markdown"`
	GroundingChunks []ChunkResponse `json:"grounding_chunks"`
}

type ChunkResponse struct {
	Type           string                  `json:"type"`
	URI            string                  `json:"uri"`
	Title          string                  `json:"title"`
	PlaceID        string                  `json:"place_id,omitempty"`
	ReviewSnippets []ReviewSnippetResponse `json:"review_snippets,omitempty"`
}

type ReviewSnippetResponse struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

type CategoryResponse struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Icon     string `json:"icon"`
	Keywords string `json:"keywords,omitempty"`
	Sources  string `json:"sources,omitempty"`
}

type SearchRequest struct {
	Query string `form:"q" json:"query"`
}

func toStateResponse(s dashboard.ViewState) StateResponse {
	res := StateResponse{
		SelectedCategory: s.SelectedCategoryID,
		SearchQuery:      s.SearchQuery,
		LoadingState:     string(s.Loading),
		Ticker:           s.Ticker,
		Error:            s.Err,
	}
	if res.Ticker == nil {
		res.Ticker = []string{}
	}
	if s.Result != nil {
		result := toResultResponse(*s.Result)
		res.Result = &result
	}
	return res
}

func toResultResponse(r llm.QueryResult) ResultResponse {
	res := ResultResponse{
		Markdown:        r.Markdown,
		GroundingChunks: make([]ChunkResponse, 0, len(r.Chunks)),
	}
	for _, c := range r.Chunks {
		switch chunk := c.(type) {
		case llm.WebChunk:
			res.GroundingChunks = append(res.GroundingChunks, ChunkResponse{
				Type:  "web",
				URI:   chunk.URI,
				Title: chunk.Title,
			})
		case llm.MapChunk:
			item := ChunkResponse{
				Type:    "maps",
				URI:     chunk.URI,
				Title:   chunk.Title,
				PlaceID: chunk.PlaceID,
			}
			for _, s := range chunk.ReviewSnippets {
				item.ReviewSnippets = append(item.ReviewSnippets, ReviewSnippetResponse{Content: s.Content, Author: s.Author})
			}
			res.GroundingChunks = append(res.GroundingChunks, item)
		}
	}
	return res
}

func toCategoryResponse(c model.Category) CategoryResponse {
	return CategoryResponse{
		ID:       c.ID,
		Label:    c.Label,
		Icon:     c.Icon.String(),
		Keywords: c.Keywords,
		Sources:  c.Sources,
	}
}
