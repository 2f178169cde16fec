package memory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Forgingalex/rei/internal/models"
)

// HTTPStore talks to an external boundary service, for deployments
// that share one embedding-backed store across processes.
type HTTPStore struct {
	baseURL    string
	httpClient *http.Client
	logger     *zerolog.Logger
}

func NewHTTPStore(baseURL string, logger *zerolog.Logger) (*HTTPStore, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("boundary service url is required")
	}
	return &HTTPStore{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}, nil
}

type addBoundaryRequest struct {
	Text     string `json:"text"`
	Context  string `json:"context,omitempty"`
	Severity string `json:"severity,omitempty"`
}

type addBoundaryResponse struct {
	ID string `json:"id"`
}

type checkBoundaryRequest struct {
	Prompt string `json:"prompt"`
}

type checkBoundaryResponse struct {
	Matches []models.BoundaryMatch `json:"matches"`
}

type allBoundariesResponse struct {
	Boundaries []models.Boundary `json:"boundaries"`
}

func (s *HTTPStore) AddBoundary(ctx context.Context, text, situation string, severity models.Severity) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("boundary text is required")
	}
	if severity != "" && !ValidSeverity(severity) {
		return "", fmt.Errorf("invalid severity: %q", severity)
	}

	var out addBoundaryResponse
	err := s.do(ctx, http.MethodPost, "/boundaries", addBoundaryRequest{
		Text:     text,
		Context:  situation,
		Severity: string(severity),
	}, &out)
	if err != nil {
		return "", err
	}
	return out.ID, nil
}

func (s *HTTPStore) CheckBoundary(ctx context.Context, prompt string) ([]models.BoundaryMatch, error) {
	var out checkBoundaryResponse
	if err := s.do(ctx, http.MethodPost, "/boundaries/check", checkBoundaryRequest{Prompt: prompt}, &out); err != nil {
		return nil, err
	}
	return out.Matches, nil
}

func (s *HTTPStore) AllBoundaries(ctx context.Context) ([]models.Boundary, error) {
	var out allBoundariesResponse
	if err := s.do(ctx, http.MethodGet, "/boundaries", nil, &out); err != nil {
		return nil, err
	}
	return out.Boundaries, nil
}

func (s *HTTPStore) RemoveBoundary(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "/boundaries/"+id, nil, nil)
}

func (s *HTTPStore) Stats(ctx context.Context) (*Stats, error) {
	var out Stats
	if err := s.do(ctx, http.MethodGet, "/boundaries/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *HTTPStore) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("boundary service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrBoundaryNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("boundary service returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
