package council

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/Forgingalex/rei/internal/models"
)

// FallbackResponse is returned when no member produced a usable answer.
const FallbackResponse = "both models failed to respond. try again?"

// Synthesizer deterministically reduces one dispatch round to a single
// text. Pure, no side effects.
type Synthesizer struct {
	primary string
	logger  *zerolog.Logger
}

// NewSynthesizer builds a synthesizer preferring the member named
// primary when several answers survive.
func NewSynthesizer(primary string, logger *zerolog.Logger) *Synthesizer {
	return &Synthesizer{
		primary: primary,
		logger:  logger,
	}
}

// Synthesize drops error and timeout tagged responses, then picks the
// primary member's answer when present, else the first survivor in
// list order.
func (s *Synthesizer) Synthesize(responses []models.ProviderResponse) string {
	valid := make([]models.ProviderResponse, 0, len(responses))
	for _, response := range responses {
		if strings.HasPrefix(response.Response, "error") || strings.HasPrefix(response.Response, "timeout") {
			continue
		}
		valid = append(valid, response)
	}

	if len(valid) == 0 {
		s.logger.Warn().Int("responses", len(responses)).Msg("no valid responses to synthesize")
		return FallbackResponse
	}

	if len(valid) == 1 {
		return valid[0].Response
	}

	for _, response := range valid {
		if response.Provider == s.primary {
			return response.Response
		}
	}

	return valid[0].Response
}
