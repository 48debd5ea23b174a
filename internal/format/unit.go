package format

import "strings"

const currencySymbols = "€£$¥₹₽₩₺₫₴฿₦₱₪₭₡₲₵₸₮₤₯₠₢₣₥₨"

// WithUnit attaches unit to an already formatted number. Currency units are
// prefixed, "#" and blank units are dropped, anything else is suffixed.
func WithUnit(formatted, unit string) string {
	unit = strings.TrimSpace(unit)
	switch {
	case unit == "" || unit == "#":
		return formatted
	case isCurrency(unit):
		return unit + formatted
	default:
		return formatted + " " + unit
	}
}

func isCurrency(unit string) bool {
	for _, r := range unit {
		if !strings.ContainsRune(currencySymbols, r) {
			return false
		}
	}
	return unit != ""
}
