// Package priority derives an urgency level from complaint text.
// It is pure: same text in, same level out, no side effects.
package priority

import (
	"strings"

	"vozurbana/backend/internal/config"
)

// Classify maps a report's title and description to a level in {1, 2, 3},
// 3 being most urgent. Levels are checked in strict precedence order 3 -> 2
// -> 1, so a text containing both "incendio" and "lixo" classifies as 3.
// Matching is substring containment on the lowercased concatenation; no
// tokenization, no word boundaries. Texts matching nothing default to 1:
// every report has a priority.
func Classify(titulo, descricao string) int {
	text := strings.ToLower(titulo + " " + descricao)

	if containsAny(text, config.PalavrasCriticas) {
		return config.PrioridadeCritica
	}
	if containsAny(text, config.PalavrasMedias) {
		return config.PrioridadeMedia
	}
	if containsAny(text, config.PalavrasBaixas) {
		return config.PrioridadeBaixa
	}
	return config.PrioridadeBaixa
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
