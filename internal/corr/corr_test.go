package corr

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestMatrixPerfectlyOpposed(t *testing.T) {
	// cat: [2 1 0], dog: [0 1 2]
	counts := mat.NewDense(3, 2, []float64{
		2, 0,
		1, 1,
		0, 2,
	})

	cm := Matrix(counts)

	if got := cm.At(0, 1); math.Abs(got-(-1.0)) > 1e-12 {
		t.Errorf("Expected correlation -1.0 between opposed columns, got %v", got)
	}
	for i := 0; i < 2; i++ {
		if got := cm.At(i, i); got != 1 {
			t.Errorf("Expected diagonal 1 at %d, got %v", i, got)
		}
	}
}

func TestMatrixSymmetryAndRange(t *testing.T) {
	counts := mat.NewDense(4, 3, []float64{
		3, 0, 1,
		1, 2, 0,
		0, 5, 2,
		2, 1, 4,
	})

	cm := Matrix(counts)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := cm.At(i, j)
			if v != cm.At(j, i) {
				t.Errorf("Asymmetry at (%d,%d): %v vs %v", i, j, v, cm.At(j, i))
			}
			if math.IsNaN(v) || v < -1-1e-12 || v > 1+1e-12 {
				t.Errorf("Correlation out of range at (%d,%d): %v", i, j, v)
			}
		}
	}
}

func TestMatrixZeroVarianceFallback(t *testing.T) {
	// Middle column is constant, last column is all zero.
	counts := mat.NewDense(3, 3, []float64{
		2, 1, 0,
		1, 1, 0,
		0, 1, 0,
	})

	cm := Matrix(counts)

	for _, j := range []int{1, 2} {
		for i := 0; i < 3; i++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if got := cm.At(i, j); got != want {
				t.Errorf("Degenerate column %d: expected %v at row %d, got %v", j, want, i, got)
			}
		}
	}
}

func TestMatrixSingleDocument(t *testing.T) {
	cm := Matrix(mat.NewDense(1, 2, []float64{3, 5}))

	if got := cm.At(0, 1); got != 0 {
		t.Errorf("Expected 0 correlation with a single document, got %v", got)
	}
	if got := cm.At(0, 0); got != 1 {
		t.Errorf("Expected diagonal 1, got %v", got)
	}
}
