package ontology

import (
	"strings"
	"unicode"
)

// Slugify derives a stable class or property id from a display name:
// lower-cased, runs of non-alphanumerics collapsed to single hyphens.
func Slugify(name string) string {
	var sb strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				sb.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}
