package methods

import (
	"testing"

	"github.com/arletty-bit/rkapp/internal/ivp"
)

func noopRHS(t float64, y, fOut ivp.State, parm any) bool {
	copy(fOut, y)
	return true
}

func TestCatalogNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, h := range Catalog() {
		if seen[h.Name] {
			t.Errorf("duplicate handle name %q", h.Name)
		}
		seen[h.Name] = true
	}
}

func TestCatalogHandlesConstructUsableMethods(t *testing.T) {
	for _, h := range Catalog() {
		m := h.New(noopRHS)
		y := ivp.State{1}
		out := ivp.State{0}
		if !m.Step(0, y, 0.1, out, nil) {
			t.Errorf("%s: Step failed on a trivial RHS", h.Name)
		}
		if m.SupportsInterpolation() != h.SupportsInterpolation {
			t.Errorf("%s: SupportsInterpolation() = %v, handle says %v",
				h.Name, m.SupportsInterpolation(), h.SupportsInterpolation)
		}
	}
}

func TestLookupUnknownNameFails(t *testing.T) {
	if _, err := Lookup("not_a_real_method"); err == nil {
		t.Fatal("expected an error for an unknown method name")
	}
}

func TestLookupEverhartByName(t *testing.T) {
	h, err := Lookup("everhart_9")
	if err != nil {
		t.Fatalf("Lookup(everhart_9): %v", err)
	}
	if !h.SupportsInterpolation {
		t.Error("Everhart handles must report interpolation support")
	}
}

func TestEverhartOrderRejectsOutOfRange(t *testing.T) {
	if _, err := EverhartOrder(33); err != ivp.ErrInvalidOrder {
		t.Errorf("got %v, want ErrInvalidOrder", err)
	}
}
