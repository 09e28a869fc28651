package display

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		name string
		v    float64
		want string
	}{
		{"zero", 0, "0"},
		{"whole", 4, "4"},
		{"whole-from-division", 20.0 / 5.0, "4"},
		{"negative-whole", -17, "-17"},
		{"fraction", 2.5, "2.5"},
		{"negative-fraction", -0.25, "-0.25"},
		{"trims-trailing-zeros", 1.50, "1.5"},
		{"third", 1.0 / 3.0, "0.3333333333"},
		{"two-thirds", 2.0 / 3.0, "0.6666666666"},
		{"long-whole-goes-scientific", 1e16, "1.000000000e+16"},
		{"tiny-truncates-to-zero", 1e-11, "0"},
		{"nan", math.NaN(), "Error"},
		{"pos-inf", math.Inf(1), "Error"},
		{"neg-inf", math.Inf(-1), "Error"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Format(c.v))
		})
	}
}

func TestFormatLength(t *testing.T) {
	// Fixed-notation renderings never exceed the display width. Scientific
	// fallbacks may add a sign and a three-digit exponent on top of the ten
	// significant digits.
	for _, v := range []float64{math.Pi, -math.Pi, 1e300, -1e300, 123456789012345, 0.1234567890123, 987654321.123456789} {
		s := Format(v)
		limit := maxPlainLen
		if strings.ContainsAny(s, "eE") {
			limit = maxPlainLen + 3
		}
		assert.LessOrEqual(t, len(s), limit, "Format(%g) = %q too long", v, s)
	}
}
