package view

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestMarkdownRender(t *testing.T) {
	m := NewMarkdown()

	got := string(m.Render("### ANS aprova reajuste\n**Fonte:** Valor | **Data:** Hoje\n\nResumo com [link](https://ans.gov.br)."))

	assert.Equal(t, true, strings.Contains(got, "<h3"))
	assert.Equal(t, true, strings.Contains(got, "ANS aprova reajuste"))
	assert.Equal(t, true, strings.Contains(got, "<strong>Fonte:</strong>"))
	assert.Equal(t, true, strings.Contains(got, `href="https://ans.gov.br"`))
	assert.Equal(t, true, strings.Contains(got, `target="_blank"`))
}

func TestMarkdownRender_Sanitizes(t *testing.T) {
	m := NewMarkdown()

	got := string(m.Render("texto <script>alert(1)</script> [x](javascript:alert)"))

	assert.Equal(t, false, strings.Contains(got, "<script"))
	assert.Equal(t, false, strings.Contains(got, "javascript:"))
}
