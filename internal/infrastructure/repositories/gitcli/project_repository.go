// Package gitcli implements the project-side version-control operations by
// wrapping the git binary. Submodule porcelain (add, deinit, foreach) is not
// something go-git offers, so these calls shell out, always with an explicit
// working directory and with every raw result mapped onto a typed error.
package gitcli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gitmod-io/gitmod/internal/domain/entities"
	"github.com/gitmod-io/gitmod/internal/domain/repositories"
)

// ProjectRepository implements repositories.ProjectRepository via the git
// CLI. All subprocess output is copied to the injected sink.
type ProjectRepository struct {
	sink *entities.OutputSink
}

// NewProjectRepository creates the git CLI wrapper. A missing git binary is
// an environment failure detected up front, before any command runs.
func NewProjectRepository(sink *entities.OutputSink) (repositories.ProjectRepository, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return nil, entities.ErrMissingGit
	}
	return &ProjectRepository{sink: sink}, nil
}

// run executes git with the given arguments inside dir, never the process
// working directory. It returns the combined output for classification.
func (it *ProjectRepository) run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var output bytes.Buffer
	cmd.Stdout = io.MultiWriter(&output, it.sink)
	cmd.Stderr = io.MultiWriter(&output, it.sink)

	err := cmd.Run()
	return output.String(), err
}

// IsClean reports whether the working tree at dir has no uncommitted changes.
// The tool's own log file does not count even before it is ignored.
func (it *ProjectRepository) IsClean(ctx context.Context, dir string) (bool, error) {
	output, err := it.run(ctx, dir, "status", "--porcelain")
	if err != nil {
		if strings.Contains(output, "not a git repository") {
			return false, fmt.Errorf("%w: %s", entities.ErrNotARepository, dir)
		}
		return false, fmt.Errorf("git status failed: %w", err)
	}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasSuffix(line, entities.LogFileName) {
			continue
		}
		return false, nil
	}
	return true, nil
}

// SetSubmoduleIgnoreDirty marks the submodule at path so its internal state
// never dirties the parent project's status.
func (it *ProjectRepository) SetSubmoduleIgnoreDirty(ctx context.Context, dir, path string) error {
	output, err := it.run(ctx, dir,
		"config", "-f", ".gitmodules", "submodule."+path+".ignore", "dirty")
	if err != nil {
		return fmt.Errorf("git config failed: %s: %w", strings.TrimSpace(output), err)
	}
	return nil
}

// SubmoduleAdd registers a new submodule. A path git already tracks is the
// typed entities.ErrAlreadyRegistered signal, not a failure.
func (it *ProjectRepository) SubmoduleAdd(ctx context.Context, dir, path, source, branch string) error {
	output, err := it.run(ctx, dir,
		"-c", "protocol.file.allow=always",
		"submodule", "add", "-b", branch, "--", source, path)
	if err == nil {
		return nil
	}
	if strings.Contains(output, "already exists in the index") ||
		strings.Contains(output, "already exists and is not a valid git repo") {
		return entities.ErrAlreadyRegistered
	}
	return fmt.Errorf("git submodule add failed: %s: %w", strings.TrimSpace(output), err)
}

// SubmoduleUpdate synchronizes path (or everything when path is "")
// recursively against the registered sources.
func (it *ProjectRepository) SubmoduleUpdate(ctx context.Context, dir, path string) error {
	args := []string{
		"-c", "protocol.file.allow=always",
		"submodule", "update", "--init", "--recursive",
	}
	if path != "" {
		args = append(args, "--", path)
	}
	output, err := it.run(ctx, dir, args...)
	if err != nil {
		return fmt.Errorf("git submodule update failed: %s: %w", strings.TrimSpace(output), err)
	}
	return nil
}

// SubmoduleDeinit forcibly deinitializes path, discarding submodule-local
// changes.
func (it *ProjectRepository) SubmoduleDeinit(ctx context.Context, dir, path string) error {
	output, err := it.run(ctx, dir, "submodule", "deinit", "-f", "--", path)
	if err != nil {
		return fmt.Errorf("git submodule deinit failed: %s: %w", strings.TrimSpace(output), err)
	}
	return nil
}

// SubmoduleDeregister drops the gitlink and .gitmodules entry for path and
// removes the submodule's internal metadata from the project git directory.
func (it *ProjectRepository) SubmoduleDeregister(ctx context.Context, dir, path string) error {
	output, err := it.run(ctx, dir, "rm", "-f", "--", path)
	if err != nil {
		return fmt.Errorf("git rm failed: %s: %w", strings.TrimSpace(output), err)
	}

	metadata := filepath.Join(dir, ".git", "modules", filepath.FromSlash(path))
	if removeErr := os.RemoveAll(metadata); removeErr != nil {
		return fmt.Errorf("failed to remove submodule metadata %s: %w", metadata, removeErr)
	}
	return nil
}

// Submodules enumerates the registered submodules depth-first, as git itself
// traverses them, with each one's currently checked-out branch.
func (it *ProjectRepository) Submodules(ctx context.Context, dir string) ([]entities.Submodule, error) {
	// $name and $displaypath are provided by git for each visited submodule.
	output, err := it.run(ctx, dir,
		"submodule", "foreach", "--recursive", "--quiet", `echo "$name:$displaypath"`)
	if err != nil {
		if strings.Contains(output, "not a git repository") {
			return nil, fmt.Errorf("%w: %s", entities.ErrNotARepository, dir)
		}
		return nil, fmt.Errorf("git submodule foreach failed: %w", err)
	}

	var submodules []entities.Submodule
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, path, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		submodules = append(submodules, entities.Submodule{
			Name:   name,
			Path:   path,
			Branch: it.currentBranch(ctx, filepath.Join(dir, filepath.FromSlash(path))),
		})
	}

	return submodules, nil
}

// currentBranch resolves the checked-out branch of the repository at dir.
// A detached head is shown as the literal "HEAD".
func (it *ProjectRepository) currentBranch(ctx context.Context, dir string) string {
	output, err := it.run(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(output)
}

// CommitAll stages every change and commits. A clean tree maps to the typed
// entities.ErrNothingToCommit signal.
func (it *ProjectRepository) CommitAll(ctx context.Context, dir, message string) error {
	if output, err := it.run(ctx, dir, "add", "--all"); err != nil {
		return fmt.Errorf("git add failed: %s: %w", strings.TrimSpace(output), err)
	}

	output, err := it.run(ctx, dir, "commit", "-m", message)
	if err == nil {
		return nil
	}
	if strings.Contains(output, "nothing to commit") ||
		strings.Contains(output, "nothing added to commit") {
		return entities.ErrNothingToCommit
	}
	return fmt.Errorf("git commit failed: %s: %w", strings.TrimSpace(output), err)
}
