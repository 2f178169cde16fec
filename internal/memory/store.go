// Package memory stores user boundaries: suggestions the user has
// rejected, which future deliberations must never repeat.
package memory

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/Forgingalex/rei/internal/models"
)

var ErrBoundaryNotFound = errors.New("boundary not found")

// Store persists boundaries and answers nearest-neighbor lookups over
// them. Similarity is reported as 1/(1+distance).
type Store interface {
	AddBoundary(ctx context.Context, text, situation string, severity models.Severity) (string, error)
	CheckBoundary(ctx context.Context, prompt string) ([]models.BoundaryMatch, error)
	AllBoundaries(ctx context.Context) ([]models.Boundary, error)
	RemoveBoundary(ctx context.Context, id string) error
	Stats(ctx context.Context) (*Stats, error)
}

type Stats struct {
	TotalBoundaries int `json:"total_boundaries"`
}

// BoundaryID derives the stable id for a boundary text, so declaring
// the same rejection twice upserts instead of duplicating.
func BoundaryID(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "boundary_" + hex.EncodeToString(sum[:])[:16]
}

func ValidSeverity(severity models.Severity) bool {
	switch severity {
	case models.SeveritySoft, models.SeverityFirm, models.SeverityAbsolute:
		return true
	}
	return false
}
