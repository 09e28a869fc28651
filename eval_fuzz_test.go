package abacus_test

import (
	"errors"
	"testing"

	"abacus"
)

func FuzzEvalString(f *testing.F) {
	f.Add("2+3*4")
	f.Add("sqrt(2)")
	f.Add("2**3**2")
	f.Add("1/(2-2)")
	f.Fuzz(func(t *testing.T, s string) {
		_, err := abacus.EvalString(s)
		if err == nil {
			return
		}
		if !errors.Is(err, abacus.ErrInvalidExpression) && !errors.Is(err, abacus.ErrDivisionByZero) {
			t.Errorf("evaluating %q gave unclassified error %v", s, err)
		}
	})
}
