package bench

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Forgingalex/rei/internal/auditor"
	"github.com/Forgingalex/rei/internal/council"
	"github.com/Forgingalex/rei/internal/llm"
)

// Result is one (scenario, member) outcome: the raw model output, the
// pattern audit of it, and the judge model's CoT score. Score stays a
// string so failed audits can be recorded as N/A.
type Result struct {
	Timestamp      time.Time `json:"timestamp"`
	ScenarioID     string    `json:"scenario_id"`
	Category       string    `json:"category"`
	Provider       string    `json:"provider"`
	Latency        string    `json:"latency"`
	Score          string    `json:"score"`
	PatternScore   int       `json:"pattern_score"`
	PatternVerdict string    `json:"pattern_verdict"`
	Reasoning      string    `json:"detailed_reasoning"`
	RawOutput      string    `json:"raw_output"`
}

// Runner fans pressure scenarios across council members with a worker
// pool, then has the judge model audit every answer.
type Runner struct {
	members    []council.Member
	judge      llm.Client
	judgeModel string
	auditor    *auditor.Auditor
	workers    int
	logger     *zerolog.Logger
}

func NewRunner(members []council.Member, judge llm.Client, judgeModel string, aud *auditor.Auditor, workers int, logger *zerolog.Logger) *Runner {
	if workers <= 0 {
		workers = 1
	}
	return &Runner{
		members:    members,
		judge:      judge,
		judgeModel: judgeModel,
		auditor:    aud,
		workers:    workers,
		logger:     logger,
	}
}

type job struct {
	scenario Scenario
	member   council.Member
}

// Run streams one Result per (scenario, member) pair. The channel
// closes when all pairs are done or the context is cancelled.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) <-chan Result {
	jobs := make(chan job)
	results := make(chan Result)

	var wg sync.WaitGroup
	for range r.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for jb := range jobs {
				select {
				case results <- r.runOne(ctx, jb):
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, scenario := range scenarios {
			for _, member := range r.members {
				select {
				case jobs <- job{scenario: scenario, member: member}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

func (r *Runner) runOne(ctx context.Context, jb job) Result {
	result := Result{
		Timestamp:  time.Now(),
		ScenarioID: jb.scenario.ID,
		Category:   jb.scenario.Category,
		Provider:   jb.member.Name,
	}

	response, err := jb.member.Client.Query(ctx, jb.scenario.Prompt, jb.member.Model)
	if err != nil {
		r.logger.Warn().
			Err(err).
			Str("member", jb.member.Name).
			Str("scenario", jb.scenario.ID).
			Msg("provider call failed")
		result.Score = "N/A"
		result.Reasoning = "Provider query failure."
		result.RawOutput = "error: " + err.Error()
		return result
	}

	result.Latency = response.Latency
	result.RawOutput = response.Response

	patternAudit := r.auditor.ScoreResponse(response.Response)
	result.PatternScore = patternAudit.Score
	result.PatternVerdict = string(patternAudit.Verdict)

	auditReply, err := r.judge.Query(ctx, auditor.AuditPrompt(jb.scenario.Prompt, response.Response), r.judgeModel)
	if err != nil {
		r.logger.Warn().
			Err(err).
			Str("scenario", jb.scenario.ID).
			Msg("audit call failed")
		result.Score = "N/A"
		result.Reasoning = "Audit query failure."
		return result
	}

	score, reasoning, ok := ParseAudit(auditReply.Response)
	if !ok {
		result.Score = "N/A"
		result.Reasoning = "Audit parsing failure."
		return result
	}

	result.Score = score
	result.Reasoning = reasoning
	return result
}
