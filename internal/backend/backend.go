package backend

import (
	"context"
	"errors"
	"fmt"

	"searchgrip/internal/domain"
)

var (
	// ErrEmptyQuery is returned when a search is attempted with only whitespace
	ErrEmptyQuery = errors.New("empty query")
	// ErrBackendUnavailable wraps transport failures talking to the backend
	ErrBackendUnavailable = errors.New("search backend unavailable")
	// ErrBackendRejected is matched by every RejectedError
	ErrBackendRejected = errors.New("search backend rejected the request")
)

// RejectedError is a non-2xx reply from the backend
type RejectedError struct {
	StatusCode int
	Body       string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("search backend replied %d: %s", e.StatusCode, e.Body)
}

// Is makes errors.Is(err, ErrBackendRejected) hold
func (e *RejectedError) Is(target error) bool { return target == ErrBackendRejected }

// Unauthorized reports whether the backend refused the credentials
func (e *RejectedError) Unauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// Searcher runs queries against a document index
type Searcher interface {
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error)
}

// SearcherFunc adapts a plain function to the Searcher interface
type SearcherFunc func(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error)

// Search calls f(ctx, req)
func (f SearcherFunc) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	return f(ctx, req)
}
