package freq

import (
	"reflect"
	"testing"
)

func TestBuild(t *testing.T) {
	docs := []string{"doc1", "doc2", "doc3"}
	bags := []map[string]int{
		{"cat": 2},
		{"cat": 1, "dog": 1},
		{"dog": 2},
	}

	m := Build(docs, bags, nil, 0)

	if !reflect.DeepEqual(m.Terms, []string{"cat", "dog"}) {
		t.Fatalf("Expected terms [cat dog], got %v", m.Terms)
	}
	if !reflect.DeepEqual(m.Docs, docs) {
		t.Fatalf("Expected docs in input order, got %v", m.Docs)
	}

	want := [][]float64{{2, 0}, {1, 1}, {0, 2}}
	for i, row := range want {
		for j, v := range row {
			if got := m.Counts.At(i, j); got != v {
				t.Errorf("Counts[%d][%d]: expected %v, got %v", i, j, v, got)
			}
		}
	}
}

func TestBuildVocabularyAllowList(t *testing.T) {
	bags := []map[string]int{
		{"castle": 3, "noise": 7},
		{"beach": 2},
	}

	// "cliff" appears in no document; "noise" is outside the allow-list.
	m := Build([]string{"a", "b"}, bags, []string{"castle", "cliff", "beach", "castle"}, 0)

	if !reflect.DeepEqual(m.Terms, []string{"beach", "castle", "cliff"}) {
		t.Fatalf("Expected deduplicated sorted allow-list, got %v", m.Terms)
	}
	if got := m.Counts.At(0, 1); got != 3 {
		t.Errorf("Expected castle count 3 for doc a, got %v", got)
	}
	for i := 0; i < 2; i++ {
		if got := m.Counts.At(i, 2); got != 0 {
			t.Errorf("Expected all-zero column for cliff, got %v in row %d", got, i)
		}
	}
}

func TestBuildEmptyDocumentKeepsRow(t *testing.T) {
	m := Build([]string{"full", "empty"}, []map[string]int{{"cat": 1}, {}}, nil, 0)

	r, _ := m.Counts.Dims()
	if r != 2 {
		t.Fatalf("Expected 2 rows, got %d", r)
	}
	if got := m.RowTotal(1); got != 0 {
		t.Errorf("Expected zero row total for empty document, got %v", got)
	}
}

func TestBuildMinDocs(t *testing.T) {
	bags := []map[string]int{
		{"shared": 1, "rare": 4},
		{"shared": 2},
		{"shared": 1, "ghost": 0},
	}

	m := Build([]string{"a", "b", "c"}, bags, nil, 2)

	if !reflect.DeepEqual(m.Terms, []string{"shared"}) {
		t.Fatalf("Expected only the shared term to survive, got %v", m.Terms)
	}
}

func TestColumn(t *testing.T) {
	m := Build([]string{"a", "b", "c"}, []map[string]int{
		{"cat": 2}, {"cat": 1, "dog": 1}, {"dog": 2},
	}, nil, 0)

	if got := m.Column(0); !reflect.DeepEqual(got, []float64{2, 1, 0}) {
		t.Errorf("Expected cat column [2 1 0], got %v", got)
	}
	if got := m.Column(1); !reflect.DeepEqual(got, []float64{0, 1, 2}) {
		t.Errorf("Expected dog column [0 1 2], got %v", got)
	}
}
