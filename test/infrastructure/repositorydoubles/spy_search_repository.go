//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/gitmod-io/gitmod/internal/domain/entities"
	"github.com/gitmod-io/gitmod/internal/domain/repositories"
)

// SpySearchRepository implements repositories.SearchRepository as a
// configurable spy.
type SpySearchRepository struct {
	Results   []entities.SearchResult
	SearchErr error

	Terms     []string
	Languages []string
}

var _ repositories.SearchRepository = (*SpySearchRepository)(nil)

func (s *SpySearchRepository) Search(
	_ context.Context,
	term, language string,
) ([]entities.SearchResult, error) {
	if s.SearchErr != nil {
		return nil, s.SearchErr
	}
	s.Terms = append(s.Terms, term)
	s.Languages = append(s.Languages, language)
	return s.Results, nil
}
