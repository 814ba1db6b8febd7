package recommender

import "math"

// BuildSimilarityMatrix calcula la similitud coseno entre todos los pares
// de vectores. La matriz es simétrica, con entradas en [0,1].
//
// Regla de norma cero: sim(a,b) = 0 si cualquiera de las dos normas es 0.
// Eso incluye la diagonal: un anime con sinopsis vacía tiene
// auto-similitud 0 (decisión deliberada, consistente con la regla de
// división; para vectores no nulos la diagonal es 1).
func BuildSimilarityMatrix(vectors [][]float64) [][]float64 {
	n := len(vectors)

	norms := make([]float64, n)
	for i, v := range vectors {
		norms[i] = norm(v)
	}

	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		if norms[i] == 0 {
			continue // toda la fila queda en 0
		}
		matrix[i][i] = 1
		for j := i + 1; j < n; j++ {
			if norms[j] == 0 {
				continue
			}
			sim := dot(vectors[i], vectors[j]) / (norms[i] * norms[j])
			// el error de redondeo puede empujar apenas fuera de [0,1]
			if sim > 1 {
				sim = 1
			} else if sim < 0 {
				sim = 0
			}
			matrix[i][j] = sim
			matrix[j][i] = sim
		}
	}

	return matrix
}

func dot(a, b []float64) float64 {
	var sum float64
	for k := range a {
		sum += a[k] * b[k]
	}
	return sum
}

func norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
