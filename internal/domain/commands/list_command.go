package commands

import (
	"context"
	"fmt"

	"github.com/gitmod-io/gitmod/internal/domain/entities"
	"github.com/gitmod-io/gitmod/internal/domain/repositories"
)

// List is the interface for the list command.
type List interface {
	Execute(ctx context.Context, projectDir string) ([]entities.Submodule, error)
}

// ListCommand enumerates every submodule registered in the project,
// recursively. The order is the tool's own depth-first traversal; no sorting
// is applied. An empty result is a normal state, not an error.
type ListCommand struct {
	project repositories.ProjectRepository
}

// NewListCommand creates a new ListCommand.
func NewListCommand(project repositories.ProjectRepository) *ListCommand {
	return &ListCommand{project: project}
}

// Execute returns the registered submodules of the project.
func (it *ListCommand) Execute(
	ctx context.Context,
	projectDir string,
) ([]entities.Submodule, error) {
	submodules, err := it.project.Submodules(ctx, projectDir)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate submodules: %w", err)
	}
	return submodules, nil
}
