package recommender

import (
	"math"
	"testing"
)

func buildTestMatrix(t *testing.T, docs []string) [][]float64 {
	t.Helper()
	vectors, _ := BuildVectors(docs)
	return BuildSimilarityMatrix(vectors)
}

func TestMatrixSymmetryAndBounds(t *testing.T) {
	matrix := buildTestMatrix(t, []string{
		"space robots fighting",
		"robots cooking in space",
		"cooking competition show",
		"",
	})

	n := len(matrix)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			s := matrix[i][j]
			if math.IsNaN(s) {
				t.Fatalf("NaN at (%d,%d)", i, j)
			}
			if s < 0 || s > 1 {
				t.Errorf("Similarity out of [0,1] at (%d,%d): %v", i, j, s)
			}
			if s != matrix[j][i] {
				t.Errorf("Matrix not symmetric at (%d,%d): %v vs %v", i, j, s, matrix[j][i])
			}
		}
	}
}

func TestMatrixSelfSimilarity(t *testing.T) {
	matrix := buildTestMatrix(t, []string{
		"space robots fighting",
		"cooking competition show",
	})

	for i := range matrix {
		if matrix[i][i] != 1 {
			t.Errorf("Self-similarity of non-zero vector must be 1, got %v", matrix[i][i])
		}
	}
}

func TestMatrixZeroVectorSelfSimilarity(t *testing.T) {
	// política documentada: sinopsis vacía ⇒ vector cero ⇒ auto-similitud 0
	matrix := buildTestMatrix(t, []string{
		"space robots fighting",
		"",
	})

	if matrix[1][1] != 0 {
		t.Errorf("Self-similarity of zero vector must be 0, got %v", matrix[1][1])
	}
	if matrix[0][1] != 0 || matrix[1][0] != 0 {
		t.Errorf("Similarity against zero vector must be 0, got %v / %v", matrix[0][1], matrix[1][0])
	}
}

func TestMatrixIdenticalDescriptions(t *testing.T) {
	matrix := buildTestMatrix(t, []string{
		"space robots fighting",
		"space robots fighting",
	})

	if math.Abs(matrix[0][1]-1) > 1e-9 {
		t.Errorf("Identical descriptions must have similarity 1, got %v", matrix[0][1])
	}
}
