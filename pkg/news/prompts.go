package news

import (
	"fmt"
	"strings"

	"github.com/diniz2025/nadjair-diniz-barbosa/pkg/llm"
)

const newsPromptTemplate = `Atue como um jornalista sênior especializado no mercado de seguros e saúde suplementar.
Busque e compile as notícias mais recentes (priorize as últimas 24 a 48 horas) sobre o tema abaixo.

TEMA/CATEGORIA: %s
FONTES PRIORITÁRIAS: %s
%s
Instruções de formatação:
1. Liste de 5 a 7 notícias, as mais relevantes e recentes encontradas.
2. Use exatamente este formato Markdown para cada notícia:
   ### [Título da Manchete]
   **Fonte:** [Nome da Fonte] | **Data:** [Data ou "Hoje"]

   [Resumo de 2 a 3 parágrafos com o impacto para o setor, números relevantes e empresas envolvidas.]

3. Cite explicitamente vídeos do YouTube, jornais ou revistas relevantes que aparecerem na busca.
4. Mantenha um tom profissional, analítico e imparcial.
5. Sem notícias urgentes nas últimas 24 horas, traga as mais relevantes da semana.`

const locationsPromptTemplate = `Liste os principais hospitais, laboratórios e redes de prestadores para a busca: "%s".

Para cada local encontrado, monte um relatório com os campos:
- **Nome do Prestador**
- **Endereço Completo** (Rua, Número, Bairro, Cidade e CEP quando disponível)
- **Telefone de Contato** (oficial)
- **Horário de Funcionamento** (se disponível)
- **Principais Especialidades/Serviços**

Formate os campos como listas Markdown com bullets.
Quando um dado não estiver disponível, escreva "Não informado".

Termine com uma seção separada intitulada "%s" listando as fontes oficiais consultadas.`

const tickerPrompt = "Gere 5 manchetes curtíssimas, no estilo ticker de bolsa, sobre o mercado de saúde e seguros no Brasil hoje. Responda apenas com texto puro, manchetes separadas por pipe '|'."

func newsPrompt(keywords, sources, query string) string {
	var userQuery string
	if query != "" {
		userQuery = fmt.Sprintf("BUSCA ESPECÍFICA DO USUÁRIO: %s\n", query)
	}
	return fmt.Sprintf(newsPromptTemplate, keywords, sources, userQuery)
}

func locationsPrompt(query string) string {
	return fmt.Sprintf(locationsPromptTemplate, strings.TrimSpace(query), llm.SourcesMarker)
}
