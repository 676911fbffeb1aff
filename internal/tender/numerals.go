package tender

import (
	"regexp"
	"strconv"
	"strings"
)

var cjkDigits = map[rune]int{
	'零': 0, '〇': 0,
	'一': 1, '二': 2, '三': 3, '四': 4, '五': 5,
	'六': 6, '七': 7, '八': 8, '九': 9,
}

var arabicRe = regexp.MustCompile(`^[0-9０-９]+$`)

// ParseNumeral converts a chapter numeral to an int. It accepts Arabic digits
// (half or full width) and CJK numerals up to the hundreds ("一", "十二",
// "二十五", "一百零三"). Unrecognized input yields 0.
func ParseNumeral(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if arabicRe.MatchString(s) {
		var b strings.Builder
		for _, r := range s {
			if r >= '０' && r <= '９' {
				r = '0' + (r - '０')
			}
			b.WriteRune(r)
		}
		n, err := strconv.Atoi(b.String())
		if err != nil {
			return 0
		}
		return n
	}

	total := 0
	if i := strings.IndexRune(s, '百'); i >= 0 {
		left := 1
		if i > 0 {
			left = cjkDigit(s[:i])
		}
		total += left * 100
		s = s[i+len("百"):]
		if s == "" {
			return total
		}
		// "一百零三" style zero filler
		s = strings.TrimPrefix(s, "零")
		s = strings.TrimPrefix(s, "〇")
	}
	if i := strings.IndexRune(s, '十'); i >= 0 {
		left := 1
		if i > 0 {
			left = cjkDigit(s[:i])
		}
		total += left * 10
		s = s[i+len("十"):]
	}
	if s != "" {
		total += cjkDigit(s)
	}
	return total
}

func cjkDigit(s string) int {
	for r, n := range cjkDigits {
		if s == string(r) {
			return n
		}
	}
	return 0
}

var cjkOrder = []rune("零一二三四五六七八九十")

// FormatNumeral renders 1..20 as the CJK numeral used for section headings
// ("一", "十", "十一"). Larger values fall back to Arabic digits.
func FormatNumeral(n int) string {
	switch {
	case n >= 0 && n <= 10:
		return string(cjkOrder[n])
	case n > 10 && n < 20:
		return "十" + string(cjkOrder[n-10])
	case n == 20:
		return "二十"
	default:
		return strconv.Itoa(n)
	}
}
