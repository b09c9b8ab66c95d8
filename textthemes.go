// Package textthemes performs exploratory theme analysis on a small corpus of
// documents: it builds a document × term frequency matrix, correlates terms
// across documents, groups correlated terms into themes with hierarchical
// clustering, and reports how strongly each theme shows up in each document.
package textthemes

import (
	"errors"
	"fmt"

	"github.com/cheefelix/textthemes/internal/cluster"
	"github.com/cheefelix/textthemes/internal/corr"
	"github.com/cheefelix/textthemes/internal/freq"
	"github.com/cheefelix/textthemes/internal/text"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNoDocuments is returned when the corpus is empty.
	ErrNoDocuments = errors.New("no documents to analyze")
	// ErrEmptyVocabulary is returned when no term survives cleaning and filtering.
	ErrEmptyVocabulary = errors.New("no terms retained")
	// ErrInvalidThemeCount is returned when NumThemes is outside [1, number of terms].
	ErrInvalidThemeCount = errors.New("theme count out of range")
)

// Document is one corpus entry: an identifier (e.g. a region name) and its
// raw text. The name persists through the whole pipeline as a row label, and
// is also removed from the document's own text during cleaning.
type Document struct {
	Name string
	Text string
}

// Synonym folds a list of variant terms into one canonical term during
// cleaning. Folding runs after stemming, so canonical terms should be given
// in stemmed form.
type Synonym struct {
	Canonical string
	Variants  []string
}

// Options configures an analysis run.
type Options struct {
	// NumThemes is the number of themes (clusters) to cut the vocabulary
	// into. Required; must be between 1 and the number of retained terms.
	NumThemes int

	// Vocabulary is an optional explicit allow-list of terms. When set,
	// counts for any other term are dropped silently and MinDocs is ignored.
	Vocabulary []string

	// MinDocs drops terms appearing in fewer than MinDocs documents.
	// Zero or one keeps every term.
	MinDocs int

	// Synonyms are folding rules applied in order during cleaning.
	Synonyms []Synonym

	// Labels maps a theme id (1..NumThemes) to a human-readable name,
	// assigned after inspecting the clustering output. Unlabeled themes
	// render as "Theme N".
	Labels map[int]string

	// KeepStopwords disables stop-word removal during cleaning.
	KeepStopwords bool

	// KeepInflections disables stemming during cleaning.
	KeepInflections bool
}

// Merge is one step of the clustering merge history. A and B are dendrogram
// node ids: ids below the term count are terms (in Result.Terms order), and
// the merge at index m creates node termCount+m. Distance is the
// complete-linkage distance at which the two clusters merged.
type Merge struct {
	A, B     int
	Distance float64
}

// Theme is one cluster of terms, identified by an id in 1..NumThemes and an
// optional human label.
type Theme struct {
	ID    int
	Label string
	Terms []string
}

// ThemeWeight is one theme's share of a document's total term count.
type ThemeWeight struct {
	ThemeID int
	Label   string
	Count   int
	Share   float64
}

// DocumentThemes ranks the themes of one document by descending share.
// A document whose retained terms sum to zero has no defined distribution:
// NoData is set and Themes is empty.
type DocumentThemes struct {
	Document string
	Total    int
	NoData   bool
	Themes   []ThemeWeight
}

// Result holds every artifact of one analysis run.
type Result struct {
	// Documents are the row labels, in input order.
	Documents []string
	// Terms is the retained vocabulary, sorted, matching matrix columns.
	Terms []string
	// Frequencies is the document × term count matrix.
	Frequencies *mat.Dense
	// Correlations is the term × term Pearson correlation matrix.
	Correlations *mat.SymDense
	// Dendrogram is the full merge history (len(Terms)-1 merges).
	Dendrogram []Merge
	// Assignments maps every term to its theme id.
	Assignments map[string]int
	// Themes are the clusters cut from the dendrogram, ordered by id.
	Themes []Theme
	// ThemeCounts is the theme × document aggregated count matrix.
	ThemeCounts *mat.Dense
	// Rankings holds one ranked theme distribution per document, in
	// document order.
	Rankings []DocumentThemes
}

// Analyze cleans the raw documents and runs the full pipeline.
func Analyze(docs []Document, opts Options) (*Result, error) {
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}

	names := make([]string, len(docs))
	for i, d := range docs {
		names[i] = d.Name
	}

	cfg := text.Config{
		Names:           names,
		Synonyms:        cleanerSynonyms(opts.Synonyms),
		KeepStopwords:   opts.KeepStopwords,
		KeepInflections: opts.KeepInflections,
	}

	bags := make([]map[string]int, len(docs))
	for i, d := range docs {
		bag := make(map[string]int)
		for _, token := range text.Clean(d.Text, cfg) {
			bag[token]++
		}
		bags[i] = bag
	}

	return AnalyzeCounts(names, bags, opts)
}

// AnalyzeCounts runs the pipeline on pre-cleaned per-document term multisets,
// bypassing the text cleaner. Cleaning-related options are ignored.
func AnalyzeCounts(names []string, counts []map[string]int, opts Options) (*Result, error) {
	if len(names) == 0 {
		return nil, ErrNoDocuments
	}
	if len(names) != len(counts) {
		return nil, fmt.Errorf("%d document names for %d count sets", len(names), len(counts))
	}

	fm := freq.Build(names, counts, opts.Vocabulary, opts.MinDocs)
	if len(fm.Terms) == 0 {
		return nil, ErrEmptyVocabulary
	}
	if opts.NumThemes < 1 || opts.NumThemes > len(fm.Terms) {
		return nil, fmt.Errorf("%w: NumThemes=%d with %d terms", ErrInvalidThemeCount, opts.NumThemes, len(fm.Terms))
	}

	correlations := corr.Matrix(fm.Counts)
	dendrogram := cluster.Agglomerate(cluster.Distances(correlations))
	assign, err := dendrogram.Cut(opts.NumThemes)
	if err != nil {
		return nil, err
	}

	themes, assignments := buildThemes(fm.Terms, assign, opts.NumThemes, opts.Labels)
	themeCounts := aggregate(fm, assign, opts.NumThemes)
	rankings := rank(fm.Docs, themeCounts, themes)

	return &Result{
		Documents:    fm.Docs,
		Terms:        fm.Terms,
		Frequencies:  fm.Counts,
		Correlations: correlations,
		Dendrogram:   merges(dendrogram),
		Assignments:  assignments,
		Themes:       themes,
		ThemeCounts:  themeCounts,
		Rankings:     rankings,
	}, nil
}

func cleanerSynonyms(rules []Synonym) []text.Synonym {
	out := make([]text.Synonym, len(rules))
	for i, r := range rules {
		out[i] = text.Synonym{Canonical: r.Canonical, Variants: r.Variants}
	}
	return out
}

func merges(dg *cluster.Dendrogram) []Merge {
	out := make([]Merge, len(dg.Merges))
	for i, m := range dg.Merges {
		out[i] = Merge{A: m.A, B: m.B, Distance: m.Dist}
	}
	return out
}
