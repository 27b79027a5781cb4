package view

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/diniz2025/nadjair-diniz-barbosa/internal/dashboard"
	"github.com/diniz2025/nadjair-diniz-barbosa/internal/model"
	"github.com/diniz2025/nadjair-diniz-barbosa/pkg/llm"
)

const (
	emptyNewsText  = "Nenhuma notícia encontrada para este período."
	mapSubtitle    = "Busque por hospitais, clínicas e prestadores por região. Dados fornecidos por Google Maps."
	searchSubtitle = "Buscando em todas as fontes monitoradas..."
)

var markdown = NewMarkdown()

type CategoryLink struct {
	ID     string
	Label  string
	Icon   template.HTML
	Active bool
}

// Page is everything the dashboard template needs. It is derived from a
// ViewState and holds no behaviour of its own.
type Page struct {
	Title       string
	Subtitle    string
	MapMode     bool
	Loading     bool
	Failed      bool
	SearchQuery string
	Placeholder string

	MapLink    CategoryLink
	Categories []CategoryLink
	Ticker     []string

	NewsHTML template.HTML
	Sources  []llm.WebChunk

	MapCards      []MapCard
	AnalysisHTML  template.HTML
	SuggestedHTML template.HTML
	HasReport     bool
}

func Build(state dashboard.ViewState) Page {
	category, ok := model.FindCategory(state.SelectedCategoryID)
	if !ok {
		category = model.Categories()[0]
	}

	p := Page{
		MapMode:     category.IsNetworkMap(),
		Loading:     state.Loading == model.StateLoading,
		Failed:      state.Loading == model.StateError,
		SearchQuery: state.SearchQuery,
		Ticker:      state.Ticker,
		MapLink:     link(model.NetworkMap, category.ID),
	}
	for _, c := range model.Categories() {
		p.Categories = append(p.Categories, link(c, category.ID))
	}

	p.Title, p.Subtitle = headings(category, state.SearchQuery)

	if p.MapMode {
		p.Placeholder = "Ex: Hospitais Rede D'Or no RJ, Laboratórios em SP..."
	} else {
		p.Placeholder = "Pesquisar por empresa, lei ou tema..."
	}

	if p.Loading || p.Failed {
		return p
	}

	if p.MapMode {
		fillMap(&p, state.Result)
	} else {
		fillNews(&p, state.Result)
	}
	return p
}

func link(c model.Category, selected string) CategoryLink {
	return CategoryLink{
		ID:     c.ID,
		Label:  c.Label,
		Icon:   IconSVG(c.Icon),
		Active: c.ID == selected,
	}
}

func headings(c model.Category, query string) (title, subtitle string) {
	switch {
	case c.IsNetworkMap() && query != "":
		return fmt.Sprintf(`Locais encontrados: "%s"`, query), mapSubtitle
	case c.IsNetworkMap():
		return "Mapa da Rede de Saúde", mapSubtitle
	case query != "":
		return fmt.Sprintf(`Resultados para "%s"`, query), searchSubtitle
	default:
		return c.Label, fmt.Sprintf("Cobertura em tempo real das principais fontes: %s e mais.", strings.Join(c.LeadSources(3), ", "))
	}
}

func fillNews(p *Page, result *llm.QueryResult) {
	if result == nil {
		p.NewsHTML = markdown.Render(emptyNewsText)
		return
	}
	p.NewsHTML = markdown.Render(result.Markdown)
	p.Sources = WebSources(result.Chunks)
}

func fillMap(p *Page, result *llm.QueryResult) {
	if result == nil {
		return
	}
	analysis, suggested, ok := llm.SplitSources(result.Markdown)
	p.AnalysisHTML = markdown.Render(analysis)
	if ok {
		p.SuggestedHTML = markdown.Render(suggested)
	}
	p.MapCards = MapCards(result.Chunks)
	p.HasReport = true
}
