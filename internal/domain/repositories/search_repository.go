package repositories

import (
	"context"

	"github.com/gitmod-io/gitmod/internal/domain/entities"
)

// SearchRepository abstracts the remote repository search collaborator.
type SearchRepository interface {
	// Search queries the configured search host for repositories matching
	// term, optionally restricted to a language.
	Search(ctx context.Context, term, language string) ([]entities.SearchResult, error)
}
