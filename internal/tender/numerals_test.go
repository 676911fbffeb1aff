package tender

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumeral(t *testing.T) {
	cases := map[string]int{
		"":     0,
		"4":    4,
		"５":    5,
		"12":   12,
		"四":    4,
		"五":    5,
		"十":    10,
		"十二":   12,
		"二十五":  25,
		"一百":   100,
		"一百零三": 103,
		"abc":  0,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseNumeral(in), "input %q", in)
	}
}

func TestFormatNumeral(t *testing.T) {
	assert.Equal(t, "一", FormatNumeral(1))
	assert.Equal(t, "八", FormatNumeral(8))
	assert.Equal(t, "十", FormatNumeral(10))
	assert.Equal(t, "十一", FormatNumeral(11))
	assert.Equal(t, "21", FormatNumeral(21))
}
