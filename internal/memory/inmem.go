package memory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/Forgingalex/rei/internal/models"
)

const (
	// matchThreshold is the minimum similarity for a boundary to count
	// as relevant to a prompt.
	matchThreshold = 0.7
	// maxMatches caps how many boundaries a single check reports.
	maxMatches = 5
)

// InMemoryStore keeps boundaries in process memory and matches prompts
// by token overlap: distance = 1 - |boundary tokens in prompt| / |boundary tokens|.
type InMemoryStore struct {
	mu         sync.Mutex
	boundaries map[string]*models.Boundary
	logger     *zerolog.Logger
}

func NewInMemoryStore(logger *zerolog.Logger) *InMemoryStore {
	return &InMemoryStore{
		boundaries: make(map[string]*models.Boundary),
		logger:     logger,
	}
}

func (s *InMemoryStore) AddBoundary(ctx context.Context, text, situation string, severity models.Severity) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("boundary text is required")
	}
	if severity == "" {
		severity = models.SeverityFirm
	}
	if !ValidSeverity(severity) {
		return "", fmt.Errorf("invalid severity: %q", severity)
	}

	id := BoundaryID(text)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Same text upserts: the record is refreshed, not duplicated.
	s.boundaries[id] = &models.Boundary{
		ID:        id,
		Text:      text,
		Context:   situation,
		Severity:  severity,
		CreatedAt: time.Now(),
	}

	s.logger.Info().Str("boundary_id", id).Str("severity", string(severity)).Msg("Boundary stored")
	return id, nil
}

func (s *InMemoryStore) CheckBoundary(ctx context.Context, prompt string) ([]models.BoundaryMatch, error) {
	promptTokens := tokenSet(prompt)

	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []models.BoundaryMatch
	for _, boundary := range s.boundaries {
		tokens := tokenSet(boundary.Text)
		if len(tokens) == 0 {
			continue
		}
		hits := 0
		for token := range tokens {
			if _, ok := promptTokens[token]; ok {
				hits++
			}
		}
		overlap := float64(hits) / float64(len(tokens))
		similarity := 1 / (1 + (1 - overlap))
		if similarity < matchThreshold {
			continue
		}
		boundary.TimesChecked++
		matches = append(matches, models.BoundaryMatch{
			ID:         boundary.ID,
			Text:       boundary.Text,
			Similarity: similarity,
			Metadata:   metadataFor(boundary),
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Similarity != matches[j].Similarity {
			return matches[i].Similarity > matches[j].Similarity
		}
		return matches[i].ID < matches[j].ID
	})
	if len(matches) > maxMatches {
		matches = matches[:maxMatches]
	}
	return matches, nil
}

func (s *InMemoryStore) AllBoundaries(ctx context.Context) ([]models.Boundary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]models.Boundary, 0, len(s.boundaries))
	for _, boundary := range s.boundaries {
		all = append(all, *boundary)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})
	return all, nil
}

func (s *InMemoryStore) RemoveBoundary(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.boundaries[id]; !ok {
		return ErrBoundaryNotFound
	}
	delete(s.boundaries, id)
	s.logger.Info().Str("boundary_id", id).Msg("Boundary removed")
	return nil
}

func (s *InMemoryStore) Stats(ctx context.Context) (*Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &Stats{TotalBoundaries: len(s.boundaries)}, nil
}

func metadataFor(b *models.Boundary) map[string]string {
	return map[string]string{
		"context":       b.Context,
		"severity":      string(b.Severity),
		"timestamp":     b.CreatedAt.Format(time.RFC3339),
		"times_checked": strconv.Itoa(b.TimesChecked),
	}
}

func tokenSet(text string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	set := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		set[field] = struct{}{}
	}
	return set
}
