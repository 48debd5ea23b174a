package format

import (
	"regexp"
	"strings"
)

var (
	separatorPattern = regexp.MustCompile(`[_.-]+`)
	wordStartPattern = regexp.MustCompile(`\b\w`)
)

// Prettify turns a metric identifier such as "active_trials" into "Active Trials".
// Only the first letter of each word is touched, so "MRR" stays "MRR".
func Prettify(id string) string {
	spaced := separatorPattern.ReplaceAllString(id, " ")
	titled := wordStartPattern.ReplaceAllStringFunc(spaced, strings.ToUpper)
	return strings.TrimSpace(titled)
}
