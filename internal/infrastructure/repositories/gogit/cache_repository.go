// Package gogit implements the cache-side version-control operations on top
// of go-git, so the cache needs no external binary at all.
package gogit

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"golang.org/x/mod/semver"

	"github.com/gitmod-io/gitmod/internal/domain/entities"
	"github.com/gitmod-io/gitmod/internal/domain/repositories"
)

// CacheRepository implements repositories.CacheRepository with go-git.
// Progress output of network operations goes to the injected sink.
type CacheRepository struct {
	sink *entities.OutputSink
}

// NewCacheRepository creates a new go-git backed cache repository.
func NewCacheRepository(sink *entities.OutputSink) repositories.CacheRepository {
	return &CacheRepository{sink: sink}
}

// CloneShallow clones url into dir with depth 1, resolving nested submodules
// recursively. On failure no partial clone is left behind.
func (it *CacheRepository) CloneShallow(ctx context.Context, url, dir string) error {
	_, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:               url,
		Depth:             1,
		RecurseSubmodules: git.DefaultSubmoduleRecursionDepth,
		Tags:              git.AllTags,
		Progress:          it.sink,
	})
	if err == nil {
		return nil
	}

	// A half-written clone would shadow the real repository forever.
	if removeErr := os.RemoveAll(dir); removeErr != nil {
		return fmt.Errorf("clone failed (%w) and cleanup of %s failed: %w", err, dir, removeErr)
	}

	if isUnreachable(err) {
		return fmt.Errorf("%w: %s", entities.ErrUnreachableRepository, url)
	}
	return fmt.Errorf("clone of %s failed: %w", url, err)
}

// Refresh pulls the default remote into the clone at dir. Already-up-to-date
// is a success.
func (it *CacheRepository) Refresh(ctx context.Context, dir string) error {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return fmt.Errorf("%w: %s", entities.ErrNotARepository, dir)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree of %s: %w", dir, err)
	}

	pullErr := worktree.PullContext(ctx, &git.PullOptions{
		RemoteName: git.DefaultRemoteName,
		Progress:   it.sink,
	})
	if pullErr != nil && !errors.Is(pullErr, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("pull in %s failed: %w", dir, pullErr)
	}
	return nil
}

// TrackRemoteBranches creates a local tracking branch for every remote branch
// of the clone at dir. The symbolic default pointer (a symbolic reference)
// and the literal HEAD marker are skipped. Existing branches are left alone.
func (it *CacheRepository) TrackRemoteBranches(dir string) ([]string, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", entities.ErrNotARepository, dir)
	}

	refs, err := repo.References()
	if err != nil {
		return nil, fmt.Errorf("failed to list references of %s: %w", dir, err)
	}

	remotePrefix := git.DefaultRemoteName + "/"
	var created []string

	forEachErr := refs.ForEach(func(ref *plumbing.Reference) error {
		if ref.Type() != plumbing.HashReference || !ref.Name().IsRemote() {
			return nil
		}
		branch := strings.TrimPrefix(ref.Name().Short(), remotePrefix)
		if branch == "HEAD" {
			return nil
		}

		local := plumbing.NewBranchReferenceName(branch)
		if _, lookupErr := repo.Reference(local, false); lookupErr == nil {
			return nil
		}

		if setErr := repo.Storer.SetReference(plumbing.NewHashReference(local, ref.Hash())); setErr != nil {
			return setErr
		}
		branchErr := repo.CreateBranch(&gitconfig.Branch{
			Name:   branch,
			Remote: git.DefaultRemoteName,
			Merge:  local,
		})
		if branchErr != nil && !errors.Is(branchErr, git.ErrBranchExists) {
			return branchErr
		}

		created = append(created, branch)
		return nil
	})
	if forEachErr != nil {
		return created, fmt.Errorf("failed to track branches in %s: %w", dir, forEachErr)
	}

	return created, nil
}

// IsRepository reports whether dir itself is a repository root. Parent
// directories are not consulted: a namespace folder inside the cache must
// not inherit its project's repository.
func (it *CacheRepository) IsRepository(dir string) bool {
	_, err := git.PlainOpen(dir)
	return err == nil
}

// LatestTag returns the highest semver tag of the clone at dir, or "".
func (it *CacheRepository) LatestTag(dir string) (string, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %s", entities.ErrNotARepository, dir)
	}

	tags, err := repo.Tags()
	if err != nil {
		return "", fmt.Errorf("failed to list tags of %s: %w", dir, err)
	}

	best := ""
	forEachErr := tags.ForEach(func(ref *plumbing.Reference) error {
		version := ref.Name().Short()
		if !strings.HasPrefix(version, "v") {
			version = "v" + version
		}
		if !semver.IsValid(version) {
			return nil
		}
		if best == "" || semver.Compare(version, best) > 0 {
			best = version
		}
		return nil
	})
	if forEachErr != nil {
		return "", forEachErr
	}

	return best, nil
}

// isUnreachable classifies a clone failure as "repository could not be
// reached": missing remote, rejected access, or a network-level failure.
func isUnreachable(err error) bool {
	if errors.Is(err, transport.ErrRepositoryNotFound) ||
		errors.Is(err, transport.ErrAuthenticationRequired) ||
		errors.Is(err, transport.ErrAuthorizationFailed) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}
