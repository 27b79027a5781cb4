package news

import "strings"

var fallbackHeadlines = []string{
	"Mercado de Seguros em alta",
	"ANS divulga novos dados",
	"Setor de saúde suplementar cresce",
	"Tecnologia impulsiona seguradoras",
	"Novas regras para planos de saúde",
}

func FallbackHeadlines() []string {
	out := make([]string, len(fallbackHeadlines))
	copy(out, fallbackHeadlines)
	return out
}

// ParseTicker splits a pipe-delimited headline list, trimming each fragment
// and dropping empty ones.
func ParseTicker(text string) []string {
	headlines := []string{}
	for _, part := range strings.Split(text, "|") {
		if h := strings.TrimSpace(part); h != "" {
			headlines = append(headlines, h)
		}
	}
	return headlines
}
