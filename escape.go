package dlm

import "strings"

// escaper rewrites the three characters the output grammar reserves:
// "|" separates namespaces, " " separates features, ":" separates a feature
// name from its value. The replacement sets are disjoint, so application
// order does not matter.
var escaper = strings.NewReplacer(
	"|", "///",
	" ", "___",
	":", ";;;",
)

// Escape rewrites reserved delimiter characters so free-form text can be
// embedded as a feature name without corrupting the output grammar.
func Escape(feature string) string {
	return escaper.Replace(feature)
}
