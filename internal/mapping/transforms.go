package mapping

import (
	"regexp"
	"strings"
)

var nonPriceChars = regexp.MustCompile(`[^\d,.]`)

// TrimSpace is the default transform: identity plus whitespace trim.
func TrimSpace(s string) string {
	return strings.TrimSpace(s)
}

// CleanPrice reduces a raw price label to a plain decimal string.
// Handles both "349.99 AZN" and "1.899,99 ₼", where a comma marks the
// decimal point and dots are thousands separators.
func CleanPrice(s string) string {
	s = nonPriceChars.ReplaceAllString(s, "")
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	// A stray thousands dot can survive ("1.899.99"): keep only the last.
	if parts := strings.Split(s, "."); len(parts) > 2 {
		s = strings.Join(parts[:len(parts)-1], "") + "." + parts[len(parts)-1]
	}
	return strings.TrimSpace(s)
}

// CanonBool canonicalizes stock/availability flags to the literal strings
// "True"/"False". Values it cannot recognize pass through trimmed, and the
// empty string stays empty.
func CanonBool(s string) string {
	t := strings.TrimSpace(s)
	switch strings.ToLower(t) {
	case "":
		return ""
	case "true", "1", "yes", "var", "in stock", "instock":
		return "True"
	case "false", "0", "no", "yox", "out of stock", "outofstock":
		return "False"
	default:
		return t
	}
}
