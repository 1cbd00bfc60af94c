package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := map[string]float64{
		"1/2":        0.5,
		"3/4":        0.75,
		" 1 / 4":     0.25,
		"2":          2,
		"1.5":        1.5,
		".5":         0.5,
		"5.":         5,
		"2 tablets":  2,
		"  10ml":     10,
		"1e1":        10,
		"1e":         1,
		"1/0":        1,
		"1/2/3":      1,
		"a/2":        0,
		"":           0,
		"abc":        0,
		".":          0,
		"-":          0,
		"one pill":   0,
	}

	for input, want := range cases {
		assert.InDelta(t, want, Parse(input), 1e-9, "Parse(%q)", input)
	}
}
