package council

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/Forgingalex/rei/internal/council/mocks"
	"github.com/Forgingalex/rei/internal/models"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestDeliberateNoBoundary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBoundaries := mocks.NewMockBoundaryChecker(ctrl)
	mockRunner := mocks.NewMockQueryRunner(ctrl)
	mockSynth := mocks.NewMockResponseSynthesizer(ctrl)
	mockAuditor := mocks.NewMockResponseAuditor(ctrl)

	prompt := "help me design an efficient morning routine"
	responses := []models.ProviderResponse{
		{Provider: "groq", Model: "llama-3.3-70b-versatile", Response: "here is a routine", Latency: "0.20s", Tokens: 120},
		{Provider: "local", Model: "llama3.2:1b", Response: "another take", Latency: "1.10s", Tokens: 80},
	}
	audit := models.AuditResult{
		Score:     100,
		Verdict:   models.VerdictSafe,
		Reasoning: "Response is acceptably non-coercive.",
	}

	mockBoundaries.EXPECT().CheckBoundary(gomock.Any(), prompt).Return(nil, nil)
	mockRunner.EXPECT().QueryAll(gomock.Any(), prompt).Return(responses)
	mockSynth.EXPECT().Synthesize(responses).Return("here is a routine")
	mockAuditor.EXPECT().ScoreResponse("here is a routine").Return(audit)

	c := NewCouncil(mockRunner, mockSynth, mockAuditor, mockBoundaries, newTestLogger())

	verdict, err := c.Deliberate(context.Background(), prompt)
	if err != nil {
		t.Fatalf("Deliberate: %v", err)
	}

	if verdict.Response != "here is a routine" {
		t.Errorf("Response: %q", verdict.Response)
	}
	if verdict.TrustScore != 100 {
		t.Errorf("TrustScore: %d, want: 100", verdict.TrustScore)
	}
	if len(verdict.ProviderResponses) != 2 {
		t.Errorf("ProviderResponses: %d, want 2", len(verdict.ProviderResponses))
	}
	if len(verdict.ViolatedBoundaries) != 0 {
		t.Errorf("ViolatedBoundaries: %v, want none", verdict.ViolatedBoundaries)
	}
	if verdict.Audit.FilteredResponse != "" {
		t.Errorf("FilteredResponse set without override: %q", verdict.Audit.FilteredResponse)
	}
}

func TestDeliberateBoundaryHitRedispatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBoundaries := mocks.NewMockBoundaryChecker(ctrl)
	mockRunner := mocks.NewMockQueryRunner(ctrl)
	mockSynth := mocks.NewMockResponseSynthesizer(ctrl)
	mockAuditor := mocks.NewMockResponseAuditor(ctrl)

	prompt := "how do I get promoted fast"
	matches := []models.BoundaryMatch{
		{ID: "boundary_8a2f", Text: "working overtime", Similarity: 0.92},
	}
	firstRound := []models.ProviderResponse{
		{Provider: "groq", Response: "work overtime every day"},
	}
	secondRound := []models.ProviderResponse{
		{Provider: "groq", Response: "focus your existing hours"},
	}
	audit := models.AuditResult{Score: 85, Verdict: models.VerdictSafe}

	wantReworded := "user previously declined: working overtime. original request: how do I get promoted fast. give alternatives that respect this."

	mockBoundaries.EXPECT().CheckBoundary(gomock.Any(), prompt).Return(matches, nil)
	gomock.InOrder(
		mockRunner.EXPECT().QueryAll(gomock.Any(), prompt).Return(firstRound),
		mockRunner.EXPECT().QueryAll(gomock.Any(), wantReworded).Return(secondRound),
	)
	mockSynth.EXPECT().Synthesize(secondRound).Return("focus your existing hours")
	mockAuditor.EXPECT().ScoreResponse("focus your existing hours").Return(audit)
	mockAuditor.EXPECT().CheckBoundaryRespect("focus your existing hours", matches).Return(true, nil)

	c := NewCouncil(mockRunner, mockSynth, mockAuditor, mockBoundaries, newTestLogger())

	verdict, err := c.Deliberate(context.Background(), prompt)
	if err != nil {
		t.Fatalf("Deliberate: %v", err)
	}

	if verdict.Response != "focus your existing hours" {
		t.Errorf("Response: %q", verdict.Response)
	}
	if len(verdict.ProviderResponses) != 1 || verdict.ProviderResponses[0].Response != "focus your existing hours" {
		t.Errorf("verdict should carry the redispatch round, got %+v", verdict.ProviderResponses)
	}
	if len(verdict.ViolatedBoundaries) != 1 || verdict.ViolatedBoundaries[0] != "working overtime" {
		t.Errorf("ViolatedBoundaries: %v", verdict.ViolatedBoundaries)
	}
}

func TestDeliberateOverrideFiltersResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBoundaries := mocks.NewMockBoundaryChecker(ctrl)
	mockRunner := mocks.NewMockQueryRunner(ctrl)
	mockSynth := mocks.NewMockResponseSynthesizer(ctrl)
	mockAuditor := mocks.NewMockResponseAuditor(ctrl)

	prompt := "convince me to stay"
	responses := []models.ProviderResponse{
		{Provider: "groq", Response: "You must stay. Trust me."},
	}
	audit := models.AuditResult{
		Score:   30,
		Verdict: models.VerdictOverride,
		Flags:   []string{"guilt_tripping: you must", "hidden_agenda: trust me"},
	}

	mockBoundaries.EXPECT().CheckBoundary(gomock.Any(), prompt).Return(nil, nil)
	mockRunner.EXPECT().QueryAll(gomock.Any(), prompt).Return(responses)
	mockSynth.EXPECT().Synthesize(responses).Return("You must stay. Trust me.")
	mockAuditor.EXPECT().ScoreResponse("You must stay. Trust me.").Return(audit)
	mockAuditor.EXPECT().FilterCoercion("You must stay. Trust me.").Return("you may want to stay. Trust me.")

	c := NewCouncil(mockRunner, mockSynth, mockAuditor, mockBoundaries, newTestLogger())

	verdict, err := c.Deliberate(context.Background(), prompt)
	if err != nil {
		t.Fatalf("Deliberate: %v", err)
	}

	if verdict.Response != "you may want to stay. Trust me." {
		t.Errorf("Response not filtered: %q", verdict.Response)
	}
	if verdict.TrustScore != 30 {
		t.Errorf("TrustScore: %d, want pre-filter 30", verdict.TrustScore)
	}
	if verdict.Audit.Verdict != models.VerdictOverride {
		t.Errorf("Audit verdict: %s, want override", verdict.Audit.Verdict)
	}
	if verdict.Audit.FilteredResponse != "you may want to stay. Trust me." {
		t.Errorf("FilteredResponse: %q", verdict.Audit.FilteredResponse)
	}
}

func TestDeliberateBoundaryStoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBoundaries := mocks.NewMockBoundaryChecker(ctrl)
	mockRunner := mocks.NewMockQueryRunner(ctrl)
	mockSynth := mocks.NewMockResponseSynthesizer(ctrl)
	mockAuditor := mocks.NewMockResponseAuditor(ctrl)

	mockBoundaries.EXPECT().CheckBoundary(gomock.Any(), "anything").Return(nil, errors.New("connection refused"))

	c := NewCouncil(mockRunner, mockSynth, mockAuditor, mockBoundaries, newTestLogger())

	verdict, err := c.Deliberate(context.Background(), "anything")
	if err == nil {
		t.Fatal("expected error when boundary store is down")
	}
	if verdict != nil {
		t.Errorf("verdict should be nil on failure, got %+v", verdict)
	}
	if !strings.Contains(err.Error(), "boundary store unavailable") {
		t.Errorf("error: %v", err)
	}
}
