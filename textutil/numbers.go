package textutil

import (
	"strconv"
	"strings"
)

var cardinalFirstTwenty = []string{
	"zero",
	"one", "two", "three", "four", "five",
	"six", "seven", "eight", "nine", "ten",
	"eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var ordinalFirstTwenty = []string{
	"zeroth",
	"first", "second", "third", "fourth", "fifth",
	"sixth", "seventh", "eighth", "ninth", "tenth",
	"eleventh", "twelfth", "thirteenth", "fourteenth", "fifteenth",
	"sixteenth", "seventeenth", "eighteenth", "nineteenth",
}

var tensWords = []string{
	"", "", "twenty", "thirty", "forty", "fifty",
	"sixty", "seventy", "eighty", "ninety",
}

type quantity struct {
	threshold int64
	word      string
}

// quantities below one quintillion; original_source's table continues
// up to vigintillion (10**63), which this port does not carry — see
// DESIGN.md for the scope cut.
var quantities = []quantity{
	{1_000_000_000_000_000, " quadrillion"},
	{1_000_000_000_000, " trillion"},
	{1_000_000_000, " billion"},
	{1_000_000, " million"},
	{1_000, " thousand"},
	{100, " hundred"},
}

// IntToWords converts i to its English spelling. When flowery is
// true, commas and "and" are inserted the way a reader expects
// (matching what the inflect package's number_to_words produces);
// when ordinal is true, the result describes position ("first")
// rather than quantity ("one"). Magnitudes at or beyond 10**18 fall
// back to strconv.FormatInt, mirroring original_source's "only
// converted using str(i)" escape hatch for numbers beyond its table.
func IntToWords(i int64, flowery, ordinal bool) string {
	const ceiling = 1_000_000_000_000_000_000
	if i >= ceiling || i <= -ceiling {
		return strconv.FormatInt(i, 10)
	}

	isNegative := i < 0
	if isNegative {
		i = -i
	}

	firstTwenty := cardinalFirstTwenty
	if ordinal {
		firstTwenty = ordinalFirstTwenty
	}

	var parts []string
	spacer := ""

	if i >= 100 {
		for _, q := range quantities {
			if i >= q.threshold {
				upper := i / q.threshold
				i = i % q.threshold
				parts = append(parts, spacer, IntToWords(upper, flowery, false), q.word)
				if flowery {
					spacer = ", "
				} else {
					spacer = " "
				}
			}
		}
	}

	if len(parts) > 0 {
		if flowery {
			spacer = " and "
		} else {
			spacer = " "
		}
	}

	if i >= 20 {
		t := i / 10
		parts = append(parts, spacer, tensWords[t])
		spacer = "-"
		i = i % 10
	}

	if i != 0 || len(parts) == 0 {
		parts = append(parts, spacer, firstTwenty[i])
	} else if ordinal && len(parts) > 0 {
		last := parts[len(parts)-1]
		if strings.HasSuffix(last, "y") {
			parts[len(parts)-1] = strings.TrimSuffix(last, "y") + "ie"
		}
		parts = append(parts, "th")
	}

	result := strings.Join(parts, "")
	if isNegative {
		result = "negative " + result
	}
	return result
}
