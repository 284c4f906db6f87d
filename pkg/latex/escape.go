package latex

import (
	"regexp"
	"strings"
)

var escaper = strings.NewReplacer(
	`\`, `$\backslash$`,
	`}`, `\}`,
	`{`, `\{`,
	`&`, `\&`,
	`#`, `\#`,
	`%`, `\%`,
	`_`, `\_`,
)

var quoted = regexp.MustCompile(`"([^"]+)"`)

// Escape returns s with LaTeX active characters escaped. Paired double quotes
// become ``typographic'' quotes.
func Escape(s string) string {
	return quoted.ReplaceAllString(escaper.Replace(s), "``${1}''")
}
