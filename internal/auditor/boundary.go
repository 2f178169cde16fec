package auditor

import (
	"strings"

	"github.com/Forgingalex/rei/internal/models"
)

// CheckBoundaryRespect reports whether the response stays clear of
// previously rejected topics. A boundary is violated when at least half
// of its tokens appear in the lower-cased response. Containment is
// substring based, not whole-word, so short tokens can over-trigger.
func (a *Auditor) CheckBoundaryRespect(response string, boundaries []models.BoundaryMatch) (bool, []string) {
	lower := strings.ToLower(response)

	var violated []string
	for _, boundary := range boundaries {
		keywords := strings.Fields(strings.ToLower(boundary.Text))
		overlap := 0
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				overlap++
			}
		}
		if float64(overlap) >= float64(len(keywords))*0.5 {
			violated = append(violated, boundary.Text)
		}
	}

	return len(violated) == 0, violated
}
