package cluster

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// fourLeafDist has two tight pairs {0,1} and {2,3} far from each other.
// The two pair merges are equidistant, exercising the tie-break.
func fourLeafDist() *mat.SymDense {
	d := mat.NewSymDense(4, nil)
	d.SetSym(0, 1, 1)
	d.SetSym(2, 3, 1)
	d.SetSym(0, 2, 10)
	d.SetSym(0, 3, 11)
	d.SetSym(1, 2, 9)
	d.SetSym(1, 3, 10)
	return d
}

func TestAgglomerate(t *testing.T) {
	dg := Agglomerate(fourLeafDist())

	if dg.Leaves != 4 {
		t.Fatalf("Expected 4 leaves, got %d", dg.Leaves)
	}
	if len(dg.Merges) != 3 {
		t.Fatalf("Expected 3 merges, got %d", len(dg.Merges))
	}

	// Tie at distance 1: (0,1) must merge before (2,3).
	want := []Merge{
		{A: 0, B: 1, Dist: 1},
		{A: 2, B: 3, Dist: 1},
		{A: 4, B: 5, Dist: 11}, // complete linkage takes the farthest pair (0,3)
	}
	if !reflect.DeepEqual(dg.Merges, want) {
		t.Errorf("Expected merges %v, got %v", want, dg.Merges)
	}
}

func TestAgglomerateDeterminism(t *testing.T) {
	a := Agglomerate(fourLeafDist())
	b := Agglomerate(fourLeafDist())
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Two runs on identical input diverged: %v vs %v", a, b)
	}
}

func TestCut(t *testing.T) {
	dg := Agglomerate(fourLeafDist())

	testCases := []struct {
		name string
		k    int
		want []int
	}{
		{name: "two clusters", k: 2, want: []int{1, 1, 2, 2}},
		{name: "one cluster", k: 1, want: []int{1, 1, 1, 1}},
		{name: "all singletons", k: 4, want: []int{1, 2, 3, 4}},
		{name: "three clusters", k: 3, want: []int{1, 1, 2, 3}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := dg.Cut(tc.k)
			if err != nil {
				t.Fatalf("Cut(%d) returned an error: %v", tc.k, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Cut(%d): expected %v, got %v", tc.k, tc.want, got)
			}
		})
	}
}

func TestCutPartition(t *testing.T) {
	dg := Agglomerate(fourLeafDist())
	assign, err := dg.Cut(3)
	if err != nil {
		t.Fatalf("Cut(3) returned an error: %v", err)
	}

	seen := make(map[int]int)
	for leaf, id := range assign {
		if id < 1 || id > 3 {
			t.Errorf("Leaf %d assigned out-of-range cluster %d", leaf, id)
		}
		seen[id]++
	}
	if len(seen) != 3 {
		t.Errorf("Expected all 3 cluster ids in use, got %v", seen)
	}
}

func TestCutInvalidK(t *testing.T) {
	dg := Agglomerate(fourLeafDist())

	for _, k := range []int{0, -1, 5} {
		if _, err := dg.Cut(k); !errors.Is(err, ErrInvalidK) {
			t.Errorf("Cut(%d): expected ErrInvalidK, got %v", k, err)
		}
	}
}

func TestDistances(t *testing.T) {
	corr := mat.NewSymDense(2, nil)
	corr.SetSym(0, 0, 1)
	corr.SetSym(1, 1, 1)
	corr.SetSym(0, 1, -1)

	dist := Distances(corr)

	// Rows [1 -1] and [-1 1] are 2*sqrt(2) apart.
	want := 2 * math.Sqrt2
	if got := dist.At(0, 1); math.Abs(got-want) > 1e-12 {
		t.Errorf("Expected distance %v, got %v", want, got)
	}
	if got := dist.At(0, 0); got != 0 {
		t.Errorf("Expected zero self-distance, got %v", got)
	}
	if dist.At(0, 1) != dist.At(1, 0) {
		t.Errorf("Distance matrix not symmetric")
	}
}
