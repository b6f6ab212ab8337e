package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var placeholderRegex = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

// Substitute replaces each {{name}} in tmpl with fmt.Sprint(params[name]).
// Placeholders without a matching param are kept as written. Substituted
// values are not scanned again.
func Substitute(tmpl string, params map[string]any) string {
	if len(params) == 0 || !strings.Contains(tmpl, "{{") {
		return tmpl
	}
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := strings.TrimSpace(match[2 : len(match)-2])
		if v, ok := params[name]; ok {
			return fmt.Sprint(v)
		}
		return match
	})
}
