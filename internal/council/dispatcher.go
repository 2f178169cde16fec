package council

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Forgingalex/rei/internal/llm"
	"github.com/Forgingalex/rei/internal/models"
)

// DefaultTimeout is the per-member wait budget for one dispatch round.
const DefaultTimeout = 30 * time.Second

// Member is one configured council seat: a provider client plus the
// model it answers with.
type Member struct {
	Name     string
	Provider string
	Model    string
	Client   llm.Client
}

// Dispatcher fans a prompt out to all council members concurrently,
// isolating per-member failures and timeouts so a round always yields
// one response per member.
type Dispatcher struct {
	members    []Member
	timeout    time.Duration
	onResponse func(models.ProviderResponse)
	logger     *zerolog.Logger
}

// NewDispatcher builds a dispatcher over the given members. onResponse
// is optional; when set it fires once per completed response, synthetic
// ones included, and may be invoked concurrently.
func NewDispatcher(
	members []Member,
	timeout time.Duration,
	onResponse func(models.ProviderResponse),
	logger *zerolog.Logger,
) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Dispatcher{
		members:    members,
		timeout:    timeout,
		onResponse: onResponse,
		logger:     logger,
	}
}

// QueryAll queries every member concurrently and returns one response
// per member in completion order. Callers must not rely on order.
func (d *Dispatcher) QueryAll(ctx context.Context, prompt string) []models.ProviderResponse {
	results := make(chan models.ProviderResponse, len(d.members))

	var wg sync.WaitGroup
	for _, member := range d.members {
		wg.Add(1)
		go func(m Member) {
			defer wg.Done()
			response := d.queryMember(ctx, m, prompt)
			if d.onResponse != nil {
				d.onResponse(response)
			}
			results <- response
		}(member)
	}

	wg.Wait()
	close(results)

	responses := make([]models.ProviderResponse, 0, len(d.members))
	for response := range results {
		responses = append(responses, response)
	}

	return responses
}

// queryMember runs one provider call under the round's wait budget. On
// timeout the in-flight call is abandoned, not cancelled; the buffered
// channel lets the late sender finish without leaking.
func (d *Dispatcher) queryMember(ctx context.Context, member Member, prompt string) models.ProviderResponse {
	done := make(chan models.ProviderResponse, 1)

	go func() {
		response, err := member.Client.Query(ctx, prompt, member.Model)
		if err != nil {
			d.logger.Warn().
				Str("member", member.Name).
				Err(err).
				Msg("provider call failed")
			done <- errorResponse(member, err)
			return
		}
		answered := *response
		answered.Provider = member.Name
		done <- answered
	}()

	select {
	case response := <-done:
		return response
	case <-time.After(d.timeout):
		d.logger.Warn().
			Str("member", member.Name).
			Dur("timeout", d.timeout).
			Msg("provider call timed out")
		return timeoutResponse(member, d.timeout)
	}
}

func errorResponse(member Member, err error) models.ProviderResponse {
	return models.ProviderResponse{
		Provider: member.Name,
		Model:    member.Model,
		Response: "error: " + truncate(err.Error(), 100),
		Latency:  "0s",
		Tokens:   0,
	}
}

func timeoutResponse(member Member, timeout time.Duration) models.ProviderResponse {
	return models.ProviderResponse{
		Provider: member.Name,
		Model:    member.Model,
		Response: fmt.Sprintf("timeout: no response after %s", timeout),
		Latency:  timeout.String() + "+",
		Tokens:   0,
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
