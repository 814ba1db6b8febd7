package recommender

import "strings"

// Stop words comunes en inglés (las sinopsis del dataset vienen en inglés).
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "has": true, "he": true,
	"in": true, "is": true, "it": true, "its": true, "of": true, "on": true,
	"that": true, "the": true, "to": true, "was": true, "were": true, "will": true,
	"with": true, "this": true, "but": true, "they": true, "have": true,
	"had": true, "what": true, "when": true, "where": true, "who": true, "which": true,
	"why": true, "how": true, "all": true, "any": true, "both": true, "each": true,
	"few": true, "more": true, "most": true, "other": true, "some": true, "such": true,
	"no": true, "nor": true, "not": true, "only": true, "own": true, "same": true,
	"so": true, "than": true, "too": true, "very": true, "can": true, "did": true,
	"do": true, "does": true, "her": true, "his": true, "him": true, "she": true,
}

// Tokenize normaliza una sinopsis a términos: minúsculas, split por
// whitespace, recorte de puntuación y filtro de stop words. Texto vacío
// o solo stop words devuelve nil (la vectorización lo mapea a vector cero).
func Tokenize(text string) []string {
	text = strings.ToLower(text)

	var result []string
	for _, word := range strings.Fields(text) {
		word = strings.Trim(word, ".,!?()[]{}:;\"'")
		if word == "" || stopWords[word] {
			continue
		}
		result = append(result, word)
	}
	return result
}
