package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gitmod-io/gitmod/internal/domain/entities"
	"github.com/gitmod-io/gitmod/internal/domain/repositories"
)

// WorkingTreeGuard verifies that the host project is safe to mutate: the
// working tree must be clean, and .gitignore must hide the tool's log file.
type WorkingTreeGuard struct {
	project repositories.ProjectRepository
}

// NewWorkingTreeGuard creates a new WorkingTreeGuard.
func NewWorkingTreeGuard(project repositories.ProjectRepository) *WorkingTreeGuard {
	return &WorkingTreeGuard{project: project}
}

// CheckClean aborts with entities.ErrDirtyWorkingTree when the project has
// uncommitted changes. On a clean tree it then ensures the log-file entry in
// .gitignore; that append is the only mutation and rides along with the
// install commit. The check runs first so a dirty tree is never touched.
func (it *WorkingTreeGuard) CheckClean(ctx context.Context, projectDir string) error {
	clean, err := it.project.IsClean(ctx, projectDir)
	if err != nil {
		return fmt.Errorf("failed to check working tree: %w", err)
	}
	if !clean {
		return fmt.Errorf("%w: commit or stash your changes first", entities.ErrDirtyWorkingTree)
	}

	if ignoreErr := ensureIgnoreEntry(projectDir, entities.LogFileName); ignoreErr != nil {
		return fmt.Errorf("failed to update .gitignore: %w", ignoreErr)
	}

	return nil
}

// ensureIgnoreEntry appends entry to the project's .gitignore unless an
// identical line is already present. Repeated runs never duplicate it.
func ensureIgnoreEntry(projectDir, entry string) error {
	path := filepath.Join(projectDir, ".gitignore")

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == entry {
			return nil
		}
	}

	content := string(data)
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += entry + "\n"

	return os.WriteFile(path, []byte(content), 0o644)
}
