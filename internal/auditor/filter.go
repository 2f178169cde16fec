package auditor

import (
	"regexp"
	"strings"
)

// Softening substitutions, applied in order.
var softeners = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)\byou (really )?should\b`), "you might consider"},
	{regexp.MustCompile(`(?i)\byou (need|have) to\b`), "one option is to"},
	{regexp.MustCompile(`(?i)\byou must\b`), "you may want to"},
	{regexp.MustCompile(`(?i)\b(act now|before it's too late|don't wait|limited time)\b`), ""},
}

// FilterCoercion softens known coercive phrasings and strips urgency
// cues. Best-effort only: phrases outside the substitution list pass
// through untouched.
func (a *Auditor) FilterCoercion(response string) string {
	filtered := response
	for _, s := range softeners {
		filtered = s.pattern.ReplaceAllString(filtered, s.replacement)
	}
	return strings.TrimSpace(filtered)
}
