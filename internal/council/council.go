// Package council orchestrates multi-provider deliberation: boundary
// lookup, concurrent dispatch, synthesis, and the coercion audit that
// yields the final trust verdict.
package council

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Forgingalex/rei/internal/models"
)

//go:generate mockgen -source=council.go -destination=mocks/council_mock.go -package=mocks

// QueryRunner fans a prompt out to every council member.
type QueryRunner interface {
	QueryAll(ctx context.Context, prompt string) []models.ProviderResponse
}

// ResponseSynthesizer reduces one round of responses to a single text.
type ResponseSynthesizer interface {
	Synthesize(responses []models.ProviderResponse) string
}

// ResponseAuditor scores text for coercive phrasing and softens it when
// the verdict demands intervention.
type ResponseAuditor interface {
	ScoreResponse(response string) models.AuditResult
	FilterCoercion(response string) string
	CheckBoundaryRespect(response string, boundaries []models.BoundaryMatch) (bool, []string)
}

// BoundaryChecker looks up previously rejected topics similar to a prompt.
type BoundaryChecker interface {
	CheckBoundary(ctx context.Context, prompt string) ([]models.BoundaryMatch, error)
}

type Council struct {
	runner      QueryRunner
	synthesizer ResponseSynthesizer
	auditor     ResponseAuditor
	boundaries  BoundaryChecker
	logger      *zerolog.Logger
}

func NewCouncil(
	runner QueryRunner,
	synthesizer ResponseSynthesizer,
	auditor ResponseAuditor,
	boundaries BoundaryChecker,
	logger *zerolog.Logger,
) *Council {
	return &Council{
		runner:      runner,
		synthesizer: synthesizer,
		auditor:     auditor,
		boundaries:  boundaries,
		logger:      logger,
	}
}

// Deliberate runs one full deliberation round and produces exactly one
// verdict. A boundary hit triggers exactly one redispatch with a
// reworded prompt; the verdict carries the responses from the round
// actually used. A boundary store failure aborts the call, since
// skipping the check would risk repeating a rejected suggestion.
func (c *Council) Deliberate(ctx context.Context, prompt string) (*models.DeliberationVerdict, error) {
	step := StepCheckBoundary

	matches, err := c.boundaries.CheckBoundary(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("boundary store unavailable: %w", err)
	}

	violated := make([]string, 0, len(matches))
	for _, match := range matches {
		violated = append(violated, match.Text)
	}

	if err := advance(&step, StepDispatch); err != nil {
		return nil, err
	}
	responses := c.runner.QueryAll(ctx, prompt)

	if len(matches) > 0 {
		if err := advance(&step, StepRedispatch); err != nil {
			return nil, err
		}
		c.logger.Info().
			Strs("boundaries", violated).
			Msg("boundary hit, redispatching with reworded prompt")
		responses = c.runner.QueryAll(ctx, rewordPrompt(prompt, violated))
	}

	if err := advance(&step, StepSynthesize); err != nil {
		return nil, err
	}
	finalResponse := c.synthesizer.Synthesize(responses)

	if err := advance(&step, StepAudit); err != nil {
		return nil, err
	}
	audit := c.auditor.ScoreResponse(finalResponse)

	// Score and verdict stay as computed from the pre-filter text.
	if audit.Verdict == models.VerdictOverride {
		if err := advance(&step, StepFilter); err != nil {
			return nil, err
		}
		finalResponse = c.auditor.FilterCoercion(finalResponse)
		audit.FilteredResponse = finalResponse
	}

	if err := advance(&step, StepDone); err != nil {
		return nil, err
	}

	if len(matches) > 0 {
		if ok, still := c.auditor.CheckBoundaryRespect(finalResponse, matches); !ok {
			c.logger.Warn().
				Strs("boundaries", still).
				Msg("final response still overlaps declined topics")
		}
	}

	c.logger.Info().
		Int("trust_score", audit.Score).
		Str("verdict", string(audit.Verdict)).
		Int("responses", len(responses)).
		Int("boundaries", len(violated)).
		Msg("deliberation complete")

	return &models.DeliberationVerdict{
		Response:           finalResponse,
		TrustScore:         audit.Score,
		ProviderResponses:  responses,
		Audit:              audit,
		ViolatedBoundaries: violated,
	}, nil
}

// rewordPrompt states the declined topics and asks for alternatives
// that respect them.
func rewordPrompt(prompt string, violated []string) string {
	return fmt.Sprintf(
		"user previously declined: %s. original request: %s. give alternatives that respect this.",
		strings.Join(violated, "; "),
		prompt,
	)
}
