package recommender

import (
	"math"
	"sort"
)

// BuildVectors construye el vocabulario global y los vectores TF-IDF de
// cada documento. El vocabulario se ordena lexicográficamente para que la
// dimensión k siempre signifique el mismo término, sin importar el orden
// de iteración de los maps: misma entrada ⇒ mismos vectores, siempre.
//
// Pesos: tf = freq/totalTokens, idf = ln((1+n)/(1+df)) + 1 (idf suavizado,
// nunca negativo, así el coseno queda en [0,1]). Un documento vacío
// produce un vector cero, nunca un error.
func BuildVectors(docs []string) (vectors [][]float64, vocab []string) {
	n := len(docs)

	tokenized := make([][]string, n)
	df := make(map[string]int)

	for i, doc := range docs {
		tokens := Tokenize(doc)
		tokenized[i] = tokens

		seen := make(map[string]bool, len(tokens))
		for _, t := range tokens {
			if !seen[t] {
				seen[t] = true
				df[t]++
			}
		}
	}

	vocab = make([]string, 0, len(df))
	for t := range df {
		vocab = append(vocab, t)
	}
	sort.Strings(vocab)

	dim := make(map[string]int, len(vocab))
	for k, t := range vocab {
		dim[t] = k
	}

	idf := make([]float64, len(vocab))
	for k, t := range vocab {
		idf[k] = math.Log(float64(1+n)/float64(1+df[t])) + 1
	}

	vectors = make([][]float64, n)
	for i, tokens := range tokenized {
		vec := make([]float64, len(vocab))
		vectors[i] = vec
		if len(tokens) == 0 {
			continue
		}

		counts := make(map[string]int, len(tokens))
		for _, t := range tokens {
			counts[t]++
		}
		total := float64(len(tokens))
		for t, c := range counts {
			k := dim[t]
			vec[k] = (float64(c) / total) * idf[k]
		}
	}

	return vectors, vocab
}
