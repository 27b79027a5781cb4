package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/diniz2025/nadjair-diniz-barbosa/internal/dashboard"
	"github.com/diniz2025/nadjair-diniz-barbosa/internal/model"
	"github.com/diniz2025/nadjair-diniz-barbosa/pkg/llm"
	"github.com/go-playground/assert/v2"
)

func render(t *testing.T, p Page) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Templates().ExecuteTemplate(&buf, DashboardTemplate, p); err != nil {
		t.Fatalf("execute template: %v", err)
	}
	return buf.String()
}

func TestBuild_NewsCategory(t *testing.T) {
	state := dashboard.ViewState{
		SelectedCategoryID: "destaques",
		Loading:            model.StateSuccess,
		Result: &llm.QueryResult{
			Markdown: "### Manchete\n**Fonte:** CNSeg | **Data:** Hoje",
			Chunks: []llm.GroundingChunk{
				llm.WebChunk{URI: "https://cnseg.org.br", Title: "CNSeg"},
				llm.WebChunk{URI: "https://cnseg.org.br", Title: "CNSeg de novo"},
			},
		},
		Ticker: []string{"ANS em foco"},
	}

	p := Build(state)

	assert.Equal(t, false, p.MapMode)
	assert.Equal(t, "Destaques Gerais", p.Title)
	assert.Equal(t, "Cobertura em tempo real das principais fontes: Valor Econômico, InfoMoney, CNSeg e mais.", p.Subtitle)
	assert.Equal(t, 1, len(p.Sources))
	assert.Equal(t, 0, len(p.MapCards))
	assert.Equal(t, false, p.HasReport)
	assert.Equal(t, true, strings.Contains(string(p.NewsHTML), "Manchete"))
	assert.Equal(t, 6, len(p.Categories))
	assert.Equal(t, true, p.Categories[0].Active)
	assert.Equal(t, false, p.MapLink.Active)

	html := render(t, p)
	assert.Equal(t, true, strings.Contains(html, "Fontes Citadas"))
	assert.Equal(t, true, strings.Contains(html, "Últimas do Mercado"))
	assert.Equal(t, false, strings.Contains(html, "Dados dos Prestadores"))
}

func TestBuild_NewsWithoutResult(t *testing.T) {
	p := Build(dashboard.ViewState{SelectedCategoryID: "regulacao", Loading: model.StateIdle})

	assert.Equal(t, true, strings.Contains(string(p.NewsHTML), "Nenhuma notícia encontrada para este período."))
	assert.Equal(t, 0, len(p.Sources))
}

func TestBuild_Search(t *testing.T) {
	p := Build(dashboard.ViewState{SelectedCategoryID: "regulacao", SearchQuery: "Rol da ANS", Loading: model.StateSuccess})

	assert.Equal(t, `Resultados para "Rol da ANS"`, p.Title)
	assert.Equal(t, "Buscando em todas as fontes monitoradas...", p.Subtitle)
}

func TestBuild_MapMode(t *testing.T) {
	state := dashboard.ViewState{
		SelectedCategoryID: model.MapCategoryID,
		Loading:            model.StateSuccess,
		Result: &llm.QueryResult{
			Markdown: "- **Nome do Prestador** Hospital X\n\n### Fontes de Dados\n- CNES",
			Chunks: []llm.GroundingChunk{
				llm.MapChunk{Title: "Hospital X", URI: "https://maps.google.com/?cid=7"},
				llm.WebChunk{URI: "https://cnes.datasus.gov.br", Title: "CNES"},
			},
		},
	}

	p := Build(state)

	assert.Equal(t, true, p.MapMode)
	assert.Equal(t, "Mapa da Rede de Saúde", p.Title)
	assert.Equal(t, true, p.MapLink.Active)
	assert.Equal(t, true, p.HasReport)
	assert.Equal(t, 1, len(p.MapCards))
	assert.Equal(t, 0, len(p.Sources))
	assert.Equal(t, false, strings.Contains(string(p.AnalysisHTML), "Fontes de Dados"))
	assert.Equal(t, true, strings.Contains(string(p.SuggestedHTML), "CNES"))

	html := render(t, p)
	assert.Equal(t, true, strings.Contains(html, "Dados dos Prestadores"))
	assert.Equal(t, true, strings.Contains(html, "Fontes de Dados Sugeridas"))
	assert.Equal(t, true, strings.Contains(html, "Ver no Google Maps"))
	assert.Equal(t, true, strings.Contains(html, `href="/report"`))
}

func TestBuild_MapModeWithoutMarker(t *testing.T) {
	state := dashboard.ViewState{
		SelectedCategoryID: model.MapCategoryID,
		SearchQuery:        "Fleury SP",
		Loading:            model.StateSuccess,
		Result:             &llm.QueryResult{Markdown: "- **Nome do Prestador** Fleury"},
	}

	p := Build(state)

	assert.Equal(t, `Locais encontrados: "Fleury SP"`, p.Title)
	assert.Equal(t, "", string(p.SuggestedHTML))
	assert.Equal(t, false, strings.Contains(render(t, p), "Fontes de Dados Sugeridas"))
}

func TestBuild_Loading(t *testing.T) {
	state := dashboard.ViewState{
		SelectedCategoryID: "destaques",
		Loading:            model.StateLoading,
		Result:             &llm.QueryResult{Markdown: "anterior"},
	}

	p := Build(state)

	assert.Equal(t, true, p.Loading)
	assert.Equal(t, "", string(p.NewsHTML))

	html := render(t, p)
	assert.Equal(t, true, strings.Contains(html, `http-equiv="refresh"`))
	assert.Equal(t, true, strings.Contains(html, "skeleton-card"))
}

func TestBuild_ErrorShowsRetry(t *testing.T) {
	state := dashboard.ViewState{
		SelectedCategoryID: "destaques",
		Loading:            model.StateError,
		Result:             &llm.QueryResult{Markdown: "anterior"},
	}

	p := Build(state)

	assert.Equal(t, true, p.Failed)

	html := render(t, p)
	assert.Equal(t, true, strings.Contains(html, "Ocorreu um erro ao carregar os dados."))
	assert.Equal(t, true, strings.Contains(html, "Tentar Novamente"))
	assert.Equal(t, false, strings.Contains(html, "anterior"))
}

func TestBuild_NoTickerHidesStrip(t *testing.T) {
	p := Build(dashboard.ViewState{SelectedCategoryID: "destaques", Loading: model.StateIdle})

	assert.Equal(t, false, strings.Contains(render(t, p), "Últimas do Mercado"))
}
