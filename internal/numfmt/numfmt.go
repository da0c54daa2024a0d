// Package numfmt formats page numbers in arabic, alphabetic and Roman styles.
package numfmt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for page number formatting.
var (
	ErrNonPositive  = errors.New("page number must be positive")
	ErrUnknownStyle = errors.New("unknown page number style")
)

// Style selects how a page number is rendered.
type Style string

// Numbering styles. Values match the short tokens accepted on the command line.
const (
	Arabic     Style = "1"
	AlphaLower Style = "a"
	AlphaUpper Style = "A"
	RomanLower Style = "i"
	RomanUpper Style = "I"
)

// styleNames maps long style names to their token.
var styleNames = map[string]Style{
	"arabic":      Arabic,
	"alpha-lower": AlphaLower,
	"alpha-upper": AlphaUpper,
	"roman-lower": RomanLower,
	"roman-upper": RomanUpper,
}

// ParseStyle accepts a short token (1, a, A, i, I) or a long name
// (arabic, alpha-lower, ...). Tokens are case-sensitive, names are not.
// An empty string yields Arabic.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case "":
		return Arabic, nil
	case Arabic, AlphaLower, AlphaUpper, RomanLower, RomanUpper:
		return Style(s), nil
	}
	if st, ok := styleNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStyle, s)
}

// Names returns the long style names, for help and completion output.
func Names() []string {
	return []string{"arabic", "alpha-lower", "alpha-upper", "roman-lower", "roman-upper"}
}

// Format renders n in the given style.
// Alphabetic styles are base-36 (digits 0-9 then a-z), so 10 renders as "a".
func Format(n int, style Style) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("%w: %d", ErrNonPositive, n)
	}

	switch style {
	case Arabic:
		return strconv.Itoa(n), nil
	case AlphaLower:
		return strconv.FormatInt(int64(n), 36), nil
	case AlphaUpper:
		return strings.ToUpper(strconv.FormatInt(int64(n), 36)), nil
	case RomanLower:
		return strings.ToLower(Roman(n)), nil
	case RomanUpper:
		return Roman(n), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}
}

var (
	romanHundreds = [10]string{"", "C", "CC", "CCC", "CD", "D", "DC", "DCC", "DCCC", "CM"}
	romanTens     = [10]string{"", "X", "XX", "XXX", "XL", "L", "LX", "LXX", "LXXX", "XC"}
	romanOnes     = [10]string{"", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX"}
)

// Roman returns the upper-case subtractive Roman numeral for n.
// Thousands are written as repeated "M" with no upper bound.
// Returns "" for n < 1.
func Roman(n int) string {
	if n < 1 {
		return ""
	}
	rest := n % 1000
	return strings.Repeat("M", n/1000) +
		romanHundreds[rest/100] +
		romanTens[rest/10%10] +
		romanOnes[rest%10]
}
