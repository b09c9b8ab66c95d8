package corr

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Matrix computes the term × term Pearson correlation of the columns of a
// document × term count matrix, over the document dimension.
//
// Zero-variance policy: a column that is constant across all documents
// (including all-zero columns, or any column when there are fewer than two
// documents) has no defined correlation under the standard formula. Such a
// column correlates as 0 with every other column and keeps 1 on the
// diagonal, so the result is always symmetric and free of NaN.
func Matrix(counts *mat.Dense) *mat.SymDense {
	d, n := counts.Dims()

	cols := make([][]float64, n)
	varies := make([]bool, n)
	for j := 0; j < n; j++ {
		cols[j] = mat.Col(nil, j, counts)
		varies[j] = d > 1 && stat.Variance(cols[j], nil) > 0
	}

	cm := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		cm.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			if varies[i] && varies[j] {
				cm.SetSym(i, j, stat.Correlation(cols[i], cols[j], nil))
			}
		}
	}
	return cm
}
