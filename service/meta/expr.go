package meta

import (
	"os"
	"strings"
	"unicode"
)

// expandEnvExpr replaces every ${env.KEY} occurrence in value with the
// environment variable KEY (empty when unset). Malformed expressions are
// kept as literal text.
func expandEnvExpr(value string) string {
	const prefix = "${env."
	var b strings.Builder
	for {
		idx := strings.Index(value, prefix)
		if idx < 0 {
			b.WriteString(value)
			return b.String()
		}
		b.WriteString(value[:idx])
		rest := value[idx+len(prefix):]
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			// no closing brace - the rest is literal
			b.WriteString(value[idx:])
			return b.String()
		}
		key := rest[:end]
		if isEnvKey(key) {
			b.WriteString(os.Getenv(key))
			value = rest[end+1:]
			continue
		}
		// keep the prefix literal and rescan the remainder, so nested
		// expressions after an invalid one are still expanded
		b.WriteString(prefix)
		value = rest
	}
}

func isEnvKey(key string) bool {
	for _, r := range key {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
