package textthemes

import (
	"fmt"
	"sort"

	"github.com/cheefelix/textthemes/internal/freq"
	"gonum.org/v1/gonum/mat"
)

// buildThemes groups terms by their cluster id and attaches labels.
// assign maps term index to a theme id in 1..k; the clusterer guarantees the
// ids partition the vocabulary.
func buildThemes(terms []string, assign []int, k int, labels map[int]string) ([]Theme, map[string]int) {
	themes := make([]Theme, k)
	for i := range themes {
		themes[i] = Theme{ID: i + 1, Label: themeLabel(labels, i+1)}
	}

	assignments := make(map[string]int, len(terms))
	for i, term := range terms {
		id := assign[i]
		themes[id-1].Terms = append(themes[id-1].Terms, term)
		assignments[term] = id
	}
	return themes, assignments
}

func themeLabel(labels map[int]string, id int) string {
	if label, ok := labels[id]; ok {
		return label
	}
	return fmt.Sprintf("Theme %d", id)
}

// aggregate sums each document's term counts into its theme totals,
// producing the theme × document matrix. Every term contributes to exactly
// one theme, so per-document totals are conserved.
func aggregate(fm *freq.Matrix, assign []int, k int) *mat.Dense {
	totals := mat.NewDense(k, len(fm.Docs), nil)
	for i := range fm.Docs {
		for j := range fm.Terms {
			id := assign[j]
			totals.Set(id-1, i, totals.At(id-1, i)+fm.Counts.At(i, j))
		}
	}
	return totals
}

// rank computes each document's theme distribution, sorted by descending
// share with ties broken by ascending theme id. A zero-total document is
// flagged NoData instead of dividing by zero.
func rank(docs []string, themeCounts *mat.Dense, themes []Theme) []DocumentThemes {
	rankings := make([]DocumentThemes, len(docs))
	for i, name := range docs {
		total := 0
		for t := range themes {
			total += int(themeCounts.At(t, i))
		}

		ranking := DocumentThemes{Document: name, Total: total}
		if total == 0 {
			ranking.NoData = true
			rankings[i] = ranking
			continue
		}

		weights := make([]ThemeWeight, len(themes))
		for t, theme := range themes {
			count := int(themeCounts.At(t, i))
			weights[t] = ThemeWeight{
				ThemeID: theme.ID,
				Label:   theme.Label,
				Count:   count,
				Share:   float64(count) / float64(total),
			}
		}
		sort.SliceStable(weights, func(a, b int) bool {
			if weights[a].Count != weights[b].Count {
				return weights[a].Count > weights[b].Count
			}
			return weights[a].ThemeID < weights[b].ThemeID
		})

		ranking.Themes = weights
		rankings[i] = ranking
	}
	return rankings
}
