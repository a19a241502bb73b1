//go:build go1.18
// +build go1.18

package stepcalc_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/stepcalc"
)

func FuzzEval(f *testing.F) {
	f.Add("1")
	f.Add("-5+2")
	f.Add("1×2")
	f.Add("5/0")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := stepcalc.ParseString(s)
		if err != nil {
			return
		}
		r, err := a.Eval()
		if err != nil {
			if !errors.Is(err, stepcalc.ErrEvaluation) {
				t.Errorf("%q: evaluation error %v is not an evaluation error", s, err)
			}
			return
		}
		if len(r.Steps) != a.Ops() {
			t.Errorf("%q: %d steps for %d operators", s, len(r.Steps), a.Ops())
		}
	})
}
