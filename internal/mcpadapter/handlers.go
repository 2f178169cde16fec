package mcpadapter

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Forgingalex/rei/internal/auditor"
	"github.com/Forgingalex/rei/internal/council"
	"github.com/Forgingalex/rei/internal/memory"
	"github.com/Forgingalex/rei/internal/models"
)

// DeliberateInput is the MCP tool input schema for a full deliberation
// (matches HTTP API field names).
type DeliberateInput struct {
	RequestID string `json:"request_id,omitempty" jsonschema:"optional correlation id"`
	Prompt    string `json:"prompt" jsonschema:"the prompt to put before the council"`
}

// AuditInput is the MCP tool input schema for scoring a single text.
type AuditInput struct {
	Response string `json:"response" jsonschema:"response text to score for coercive patterns"`
}

// AddBoundaryInput is the MCP tool input schema for recording a boundary.
type AddBoundaryInput struct {
	Text     string `json:"text" jsonschema:"the suggestion the user rejected"`
	Context  string `json:"context,omitempty" jsonschema:"situation in which it was rejected"`
	Severity string `json:"severity,omitempty" jsonschema:"soft, firm or absolute (default: firm)"`
}

type AddBoundaryOutput struct {
	ID string `json:"id"`
}

type ListBoundariesInput struct{}

type ListBoundariesOutput struct {
	Boundaries []models.Boundary `json:"boundaries"`
}

// NewDeliberateHandler returns a tool handler over the given council.
// Pass the returned function to mcp.AddTool.
func NewDeliberateHandler(c *council.Council) func(context.Context, *mcp.CallToolRequest, DeliberateInput) (*mcp.CallToolResult, models.DeliberationVerdict, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input DeliberateInput) (*mcp.CallToolResult, models.DeliberationVerdict, error) {
		return Deliberate(ctx, c, req, input)
	}
}

// Deliberate runs the full deliberation pipeline and returns the verdict.
func Deliberate(
	ctx context.Context,
	c *council.Council,
	req *mcp.CallToolRequest,
	input DeliberateInput,
) (*mcp.CallToolResult, models.DeliberationVerdict, error) {
	if strings.TrimSpace(input.Prompt) == "" {
		return nil, models.DeliberationVerdict{}, errEmptyPrompt
	}

	verdict, err := c.Deliberate(ctx, input.Prompt)
	if err != nil {
		return nil, models.DeliberationVerdict{}, err
	}
	return nil, *verdict, nil
}

// NewAuditHandler returns a tool handler over the given auditor.
// Pass the returned function to mcp.AddTool.
func NewAuditHandler(aud *auditor.Auditor) func(context.Context, *mcp.CallToolRequest, AuditInput) (*mcp.CallToolResult, models.AuditResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AuditInput) (*mcp.CallToolResult, models.AuditResult, error) {
		return AuditText(ctx, aud, req, input)
	}
}

// AuditText scores a response text for coercive patterns.
func AuditText(
	ctx context.Context,
	aud *auditor.Auditor,
	req *mcp.CallToolRequest,
	input AuditInput,
) (*mcp.CallToolResult, models.AuditResult, error) {
	if strings.TrimSpace(input.Response) == "" {
		return nil, models.AuditResult{}, errEmptyResponse
	}

	return nil, aud.ScoreResponse(input.Response), nil
}

// NewAddBoundaryHandler returns a tool handler over the given store.
// Pass the returned function to mcp.AddTool.
func NewAddBoundaryHandler(store memory.Store) func(context.Context, *mcp.CallToolRequest, AddBoundaryInput) (*mcp.CallToolResult, AddBoundaryOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AddBoundaryInput) (*mcp.CallToolResult, AddBoundaryOutput, error) {
		return AddBoundary(ctx, store, req, input)
	}
}

// AddBoundary records a rejected suggestion in the boundary store.
func AddBoundary(
	ctx context.Context,
	store memory.Store,
	req *mcp.CallToolRequest,
	input AddBoundaryInput,
) (*mcp.CallToolResult, AddBoundaryOutput, error) {
	id, err := store.AddBoundary(ctx, input.Text, input.Context, models.Severity(input.Severity))
	if err != nil {
		return nil, AddBoundaryOutput{}, err
	}
	return nil, AddBoundaryOutput{ID: id}, nil
}

// NewListBoundariesHandler returns a tool handler over the given store.
// Pass the returned function to mcp.AddTool.
func NewListBoundariesHandler(store memory.Store) func(context.Context, *mcp.CallToolRequest, ListBoundariesInput) (*mcp.CallToolResult, ListBoundariesOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListBoundariesInput) (*mcp.CallToolResult, ListBoundariesOutput, error) {
		return ListBoundaries(ctx, store, req, input)
	}
}

// ListBoundaries returns every stored boundary.
func ListBoundaries(
	ctx context.Context,
	store memory.Store,
	req *mcp.CallToolRequest,
	input ListBoundariesInput,
) (*mcp.CallToolResult, ListBoundariesOutput, error) {
	boundaries, err := store.AllBoundaries(ctx)
	if err != nil {
		return nil, ListBoundariesOutput{}, err
	}
	return nil, ListBoundariesOutput{Boundaries: boundaries}, nil
}
