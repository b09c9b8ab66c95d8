package freq

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a document × term occurrence-count table.
// Rows follow the document input order so row labels reattach correctly;
// columns follow the sorted vocabulary so indexing is stable across runs.
type Matrix struct {
	Docs  []string
	Terms []string
	// Counts holds non-negative integer counts as float64, one row per
	// document and one column per term. A document with no retained terms
	// is an all-zero row, never an omitted one.
	Counts *mat.Dense
}

// Build constructs the count matrix from per-document term multisets.
//
// When vocab is non-empty it acts as an allow-list: counts for terms outside
// it are dropped silently, and allow-listed terms absent from every document
// keep an all-zero column. When vocab is empty the vocabulary is every term
// appearing in at least minDocs documents (minDocs below 1 means 1).
func Build(docs []string, bags []map[string]int, vocab []string, minDocs int) *Matrix {
	terms := vocabulary(bags, vocab, minDocs)

	if len(docs) == 0 || len(terms) == 0 {
		// Degenerate corpus; callers reject it before using Counts.
		return &Matrix{Docs: docs, Terms: terms}
	}

	index := make(map[string]int, len(terms))
	for j, t := range terms {
		index[t] = j
	}

	counts := mat.NewDense(len(docs), len(terms), nil)
	for i, bag := range bags {
		for term, n := range bag {
			if j, ok := index[term]; ok {
				counts.Set(i, j, float64(n))
			}
		}
	}

	return &Matrix{Docs: docs, Terms: terms, Counts: counts}
}

// RowTotal returns the sum of the counts in document row i.
func (m *Matrix) RowTotal(i int) float64 {
	total := 0.0
	for j := range m.Terms {
		total += m.Counts.At(i, j)
	}
	return total
}

// Column copies out the count vector of term column j, one entry per document.
func (m *Matrix) Column(j int) []float64 {
	return mat.Col(nil, j, m.Counts)
}

func vocabulary(bags []map[string]int, vocab []string, minDocs int) []string {
	if len(vocab) > 0 {
		terms := make([]string, 0, len(vocab))
		seen := make(map[string]bool, len(vocab))
		for _, t := range vocab {
			if !seen[t] {
				seen[t] = true
				terms = append(terms, t)
			}
		}
		sort.Strings(terms)
		return terms
	}

	if minDocs < 1 {
		minDocs = 1
	}
	df := make(map[string]int)
	for _, bag := range bags {
		for term, n := range bag {
			if n > 0 {
				df[term]++
			}
		}
	}
	var terms []string
	for term, n := range df {
		if n >= minDocs {
			terms = append(terms, term)
		}
	}
	sort.Strings(terms)
	return terms
}
