package paneltext

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// RewriteDecimalSeparator rewrites the numeric prefix of input to use sep
// as its decimal separator, leaving any suffix such as a unit untouched:
//
//	RewriteDecimalSeparator("21.5 °C", ',') // "21,5 °C"
//
// With sep '.' the input is returned unchanged. The numeric prefix is the
// leading run of digits, '.', '-', and ','; it is rewritten only when it
// parses in full as a floating-point number. Anything else — no numeric
// prefix, or a malformed one — returns input unchanged.
func RewriteDecimalSeparator(input string, sep rune) string {
	if sep == '.' {
		return input
	}

	end := numericPrefixLen(input)
	if end == 0 {
		return input
	}

	numeric := input[:end]
	if _, err := strconv.ParseFloat(numeric, 64); err != nil {
		// Out-of-range values still consume the whole prefix and count
		// as numeric; only syntax errors disqualify the candidate.
		if !errors.Is(err, strconv.ErrRange) {
			return input
		}
	}

	dot := strings.IndexByte(numeric, '.')
	if dot < 0 {
		return input
	}

	var sb strings.Builder
	sb.Grow(len(input) + utf8.RuneLen(sep))
	sb.WriteString(numeric[:dot])
	sb.WriteRune(sep)
	sb.WriteString(numeric[dot+1:])
	sb.WriteString(input[end:])
	return sb.String()
}

// numericPrefixLen returns the length of the leading run of characters
// that can appear in a numeric readout.
func numericPrefixLen(s string) int {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && c != '.' && c != '-' && c != ',' {
			return i
		}
	}
	return len(s)
}
