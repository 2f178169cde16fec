package api

import (
	"fmt"
	"strings"

	"github.com/Forgingalex/rei/internal/api/middleware"
	"github.com/Forgingalex/rei/internal/memory"
	"github.com/Forgingalex/rei/internal/models"
)

type DeliberateRequest struct {
	RequestID string `json:"request_id,omitempty" description:"Correlation id (generated when empty)"`
	Prompt    string `json:"prompt" description:"The prompt to put before the council"`
}

type AuditRequest struct {
	Response string `json:"response" description:"Response text to score for coercion"`
}

type AddBoundaryRequest struct {
	Text     string `json:"text" description:"The suggestion the user rejected"`
	Context  string `json:"context,omitempty" description:"Situation in which it was rejected"`
	Severity string `json:"severity,omitempty" description:"soft, firm or absolute (default: firm)"`
}

type AddBoundaryResponse struct {
	ID string `json:"id" description:"Stable boundary id"`
}

type BoundariesResponse struct {
	Boundaries []models.Boundary `json:"boundaries" description:"All stored boundaries"`
}

type HealthResponse struct {
	Status  string `json:"status" description:"Service status"`
	Version string `json:"version" description:"API version"`
}

func (r *DeliberateRequest) Validate() error {
	if strings.TrimSpace(r.Prompt) == "" {
		return middleware.ErrEmptyPrompt
	}
	return nil
}

func (r *AuditRequest) Validate() error {
	if strings.TrimSpace(r.Response) == "" {
		return middleware.ErrEmptyResponse
	}
	return nil
}

func (r *AddBoundaryRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return middleware.ErrEmptyBoundaryText
	}
	if r.Severity != "" && !memory.ValidSeverity(models.Severity(r.Severity)) {
		return fmt.Errorf("invalid severity: %q", r.Severity)
	}
	return nil
}
