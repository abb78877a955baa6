package invariant_test

import (
	"strings"
	"testing"

	"github.com/smasher164/nbe/internal/invariant"
)

func TestViolated(t *testing.T) {
	type pair struct{ Car, Cdr int }
	err := invariant.Violated("car", pair{1, 2})
	if err.Op != "car" {
		t.Errorf("unexpected op %q", err.Op)
	}
	msg := err.Error()
	for _, want := range []string{"internal error in car", "invariant_test.pair", "Car: (int) 1"} {
		if !strings.Contains(msg, want) {
			t.Errorf("%q is missing %q", msg, want)
		}
	}
}
