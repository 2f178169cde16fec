package memory

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Store kinds selectable from configuration.
const (
	KindInMemory = "inmem"
	KindHTTP     = "http"
)

// NewStore builds the boundary store named by kind. An empty kind
// falls back to the in-memory store.
func NewStore(kind, endpoint string, logger *zerolog.Logger) (Store, error) {
	switch kind {
	case KindInMemory, "":
		return NewInMemoryStore(logger), nil
	case KindHTTP:
		return NewHTTPStore(endpoint, logger)
	default:
		return nil, fmt.Errorf("unknown boundary store kind: %q", kind)
	}
}
