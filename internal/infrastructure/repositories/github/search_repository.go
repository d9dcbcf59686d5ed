// Package github implements the repository search collaborator against the
// GitHub search API (or a compatible enterprise host).
package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v66/github"

	"github.com/gitmod-io/gitmod/internal/domain/entities"
	"github.com/gitmod-io/gitmod/internal/domain/repositories"
)

const (
	publicAPIHost = "api.github.com"
	maxResults    = 10
)

// SearchRepository implements repositories.SearchRepository with go-github.
type SearchRepository struct {
	client *gh.Client
}

// NewSearchRepository creates a search client for the configured host.
func NewSearchRepository(settings *entities.Settings) (repositories.SearchRepository, error) {
	client := gh.NewClient(nil)
	if settings.SearchAPIHost != publicAPIHost {
		base := "https://" + settings.SearchAPIHost + "/"
		enterprise, err := client.WithEnterpriseURLs(base, base)
		if err != nil {
			return nil, fmt.Errorf("invalid search host %q: %w", settings.SearchAPIHost, err)
		}
		client = enterprise
	}
	return &SearchRepository{client: client}, nil
}

// Search queries for repositories matching term, sorted by stars. The
// language qualifier narrows the result set when given.
func (it *SearchRepository) Search(
	ctx context.Context,
	term, language string,
) ([]entities.SearchResult, error) {
	query := term
	if language != "" {
		query += " language:" + language
	}

	result, _, err := it.client.Search.Repositories(ctx, query, &gh.SearchOptions{
		Sort:        "stars",
		Order:       "desc",
		ListOptions: gh.ListOptions{PerPage: maxResults},
	})
	if err != nil {
		return nil, fmt.Errorf("repository search failed: %w", err)
	}

	results := make([]entities.SearchResult, 0, len(result.Repositories))
	for _, repo := range result.Repositories {
		results = append(results, entities.SearchResult{
			FullName:    repo.GetFullName(),
			Description: repo.GetDescription(),
			Stars:       repo.GetStargazersCount(),
		})
	}
	return results, nil
}
