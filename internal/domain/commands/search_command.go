package commands

import (
	"context"
	"fmt"

	"github.com/gitmod-io/gitmod/internal/domain/entities"
	"github.com/gitmod-io/gitmod/internal/domain/repositories"
)

// Search is the interface for the search command.
type Search interface {
	Execute(ctx context.Context, term, language string) ([]entities.SearchResult, error)
}

// SearchCommand queries the configured search host for repositories.
type SearchCommand struct {
	search repositories.SearchRepository
}

// NewSearchCommand creates a new SearchCommand.
func NewSearchCommand(search repositories.SearchRepository) *SearchCommand {
	return &SearchCommand{search: search}
}

// Execute returns the repositories matching term, optionally restricted to a
// language.
func (it *SearchCommand) Execute(
	ctx context.Context,
	term, language string,
) ([]entities.SearchResult, error) {
	results, err := it.search.Search(ctx, term, language)
	if err != nil {
		return nil, fmt.Errorf("search for %q failed: %w", term, err)
	}
	return results, nil
}
