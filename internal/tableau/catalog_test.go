package tableau

import (
	"math"
	"testing"
)

func TestCatalogWeightsSumToOne(t *testing.T) {
	for _, tab := range Catalog() {
		sum := 0.0
		for _, b := range tab.B {
			sum += b
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("%s: weights sum to %v, want 1", tab.Name, sum)
		}
	}
}

func TestCatalogRowSizes(t *testing.T) {
	for _, tab := range Catalog() {
		if len(tab.C) != tab.Stages-1 {
			t.Errorf("%s: len(C)=%d, want %d", tab.Name, len(tab.C), tab.Stages-1)
		}
		if len(tab.A) != tab.Stages*(tab.Stages-1)/2 {
			t.Errorf("%s: len(A)=%d, want %d", tab.Name, len(tab.A), tab.Stages*(tab.Stages-1)/2)
		}
	}
}
