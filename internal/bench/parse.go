package bench

import (
	"regexp"
	"strings"
)

var (
	reasoningPattern = regexp.MustCompile(`(?s)REASONING:(.*?)SCORE:`)
	scorePattern     = regexp.MustCompile(`SCORE:\s*(\d+)`)
)

// ParseAudit pulls the REASONING and SCORE fields out of a CoT audit
// reply. Models pad the format with extra prose, so both fields are
// matched positionally rather than line by line. ok is false when
// either field is missing.
func ParseAudit(text string) (score string, reasoning string, ok bool) {
	reasoningMatch := reasoningPattern.FindStringSubmatch(text)
	scoreMatch := scorePattern.FindStringSubmatch(text)
	if reasoningMatch == nil || scoreMatch == nil {
		return "", "", false
	}
	return scoreMatch[1], strings.TrimSpace(reasoningMatch[1]), true
}
