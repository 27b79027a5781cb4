package llm

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func responseWithChunks(text string, chunks ...RawChunk) *Response {
	return &Response{
		Text: text,
		Candidates: []Candidate{
			{GroundingMetadata: &GroundingMetadata{GroundingChunks: chunks}},
		},
	}
}

func TestNormalize_Placeholders(t *testing.T) {
	tests := []struct {
		name string
		kind RequestKind
		resp *Response
		want string
	}{
		{name: "news without text", kind: NewsQuery, resp: &Response{}, want: emptyNewsText},
		{name: "locations without text", kind: LocationQuery, resp: &Response{}, want: emptyLocationsText},
		{name: "nil response", kind: LocationQuery, resp: nil, want: emptyLocationsText},
		{name: "ticker without text", kind: TickerQuery, resp: &Response{}, want: ""},
		{name: "text kept", kind: NewsQuery, resp: &Response{Text: "### Manchete"}, want: "### Manchete"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.kind, tt.resp)
			assert.Equal(t, tt.want, got.Markdown)
			assert.Equal(t, 0, len(got.Chunks))
		})
	}
}

func TestNormalize_NoGroundingMetadata(t *testing.T) {
	resp := &Response{Text: "texto", Candidates: []Candidate{{}}}

	got := Normalize(NewsQuery, resp)

	assert.Equal(t, "texto", got.Markdown)
	assert.Equal(t, 0, len(got.Chunks))
}

func TestNormalize_ClassifiesChunks(t *testing.T) {
	resp := responseWithChunks("texto",
		RawChunk{Web: &RawWeb{URI: "https://ans.gov.br/a", Title: "ANS"}},
		RawChunk{Maps: &RawMaps{Title: "Hospital Albert Einstein", URI: "https://maps.google.com/?cid=1"}},
		RawChunk{Web: &RawWeb{URI: "https://valor.com.br/b"}},
		RawChunk{Maps: &RawMaps{PlaceID: "places/abc"}},
		RawChunk{},
	)

	got := Normalize(LocationQuery, resp)

	assert.Equal(t, 2, len(got.Chunks))
	assert.Equal(t, WebChunk{URI: "https://ans.gov.br/a", Title: "ANS"}, got.Chunks[0])

	place, ok := got.Chunks[1].(MapChunk)
	assert.Equal(t, true, ok)
	assert.Equal(t, "Hospital Albert Einstein", place.Title)
	assert.Equal(t, "https://maps.google.com/?cid=1", place.URI)

	assert.Equal(t, 1, len(got.WebChunks()))
	assert.Equal(t, 1, len(got.MapChunks()))
}

func TestNormalize_ReviewSnippets(t *testing.T) {
	payload := `{
		"candidates": [{
			"groundingMetadata": {
				"groundingChunks": [{
					"maps": {
						"placeId": "places/xyz",
						"title": "Fleury Paulista",
						"uri": "https://maps.google.com/?cid=2",
						"placeAnswerSources": {
							"reviewSnippets": [
								{"content": "Atendimento rápido", "author": "Ana"},
								{"title": "Ótima estrutura", "review": "places/xyz/reviews/1", "authorAttribution": {"displayName": "Bruno"}},
								{"review": "places/xyz/reviews/2", "authorAttribution": {"displayName": "Carla"}},
								{"author": "sem texto"}
							]
						}
					}
				}]
			}
		}]
	}`

	var resp Response
	err := json.Unmarshal([]byte(payload), &resp)
	assert.Equal(t, nil, err)

	got := Normalize(LocationQuery, &resp)
	places := got.MapChunks()

	assert.Equal(t, 1, len(places))
	assert.Equal(t, "places/xyz", places[0].PlaceID)
	assert.Equal(t, []ReviewSnippet{
		{Content: "Atendimento rápido", Author: "Ana"},
		{Content: "Ótima estrutura", Author: "Bruno"},
	}, places[0].ReviewSnippets)
}

func TestSplitSources(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantAnalysis string
		wantSources  string
		wantOK       bool
	}{
		{
			name:         "no marker",
			body:         "- **Nome do Prestador** Hospital X",
			wantAnalysis: "- **Nome do Prestador** Hospital X",
		},
		{
			name:         "marker splits once",
			body:         "análise\n### Fontes de Dados\n- CNES",
			wantAnalysis: "análise\n",
			wantSources:  "\n- CNES",
			wantOK:       true,
		},
		{
			name:         "only first marker splits",
			body:         "a### Fontes de Dadosb### Fontes de Dadosc",
			wantAnalysis: "a",
			wantSources:  "b### Fontes de Dadosc",
			wantOK:       true,
		},
		{
			name:         "nothing after marker",
			body:         "análise\n### Fontes de Dados\n  ",
			wantAnalysis: "análise\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis, sources, ok := SplitSources(tt.body)
			assert.Equal(t, tt.wantAnalysis, analysis)
			assert.Equal(t, tt.wantSources, sources)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, false, strings.Contains(analysis, SourcesMarker))

			again, rest, found := SplitSources(analysis)
			assert.Equal(t, analysis, again)
			assert.Equal(t, "", rest)
			assert.Equal(t, false, found)
		})
	}
}
