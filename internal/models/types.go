package models

import (
	"time"
)

type Verdict string

const (
	VerdictSafe     Verdict = "safe"
	VerdictWarning  Verdict = "warning"
	VerdictOverride Verdict = "override"
)

type Severity string

const (
	SeveritySoft     Severity = "soft"
	SeverityFirm     Severity = "firm"
	SeverityAbsolute Severity = "absolute"
)

// ProviderResponse is one council member's answer from a dispatch round.
// Error and timeout outcomes are carried in Response with an "error:" or
// "timeout:" prefix so a round always yields one entry per member.
type ProviderResponse struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Response string `json:"response"`
	Latency  string `json:"latency"`
	Tokens   int    `json:"tokens"`
}

// AuditResult is the coercion scorer's output. Immutable once produced.
type AuditResult struct {
	Score            int      `json:"score"`
	Verdict          Verdict  `json:"verdict"`
	Flags            []string `json:"flags"`
	Reasoning        string   `json:"reasoning"`
	FilteredResponse string   `json:"filtered_response,omitempty"`
}

// BoundaryMatch is a read-only view into the boundary store: a previously
// rejected topic that resembles the current prompt.
type BoundaryMatch struct {
	ID         string            `json:"id"`
	Text       string            `json:"text"`
	Similarity float64           `json:"similarity"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// Boundary is a stored rejected topic, as listed by the memory store.
type Boundary struct {
	ID           string    `json:"id"`
	Text         string    `json:"text"`
	Context      string    `json:"context,omitempty"`
	Severity     Severity  `json:"severity"`
	CreatedAt    time.Time `json:"created_at"`
	TimesChecked int       `json:"times_checked"`
}

// DeliberationVerdict is the final output of one deliberation round.
// ProviderResponses holds the dispatch round actually used for synthesis.
type DeliberationVerdict struct {
	Response           string             `json:"response"`
	TrustScore         int                `json:"trust_score"`
	ProviderResponses  []ProviderResponse `json:"provider_responses"`
	Audit              AuditResult        `json:"audit"`
	ViolatedBoundaries []string           `json:"violated_boundaries,omitempty"`
}

// Input message

type DeliberationRequest struct {
	RequestID string    `json:"request_id"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"created_at"`
}

// Final output published to the results stream
type DeliberationResult struct {
	RequestID   string              `json:"request_id"`
	Verdict     DeliberationVerdict `json:"verdict"`
	CompletedAt time.Time           `json:"completed_at"`
}
