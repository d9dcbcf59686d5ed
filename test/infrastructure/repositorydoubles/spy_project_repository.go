//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/gitmod-io/gitmod/internal/domain/entities"
	"github.com/gitmod-io/gitmod/internal/domain/repositories"
)

// SpyProjectRepository implements repositories.ProjectRepository as a
// configurable spy.
type SpyProjectRepository struct {
	// --- IsClean ---
	Clean    bool
	CleanErr error

	// --- SetSubmoduleIgnoreDirty ---
	IgnoreErr   error
	IgnorePaths []string

	// --- SubmoduleAdd ---
	AddErr        error
	AddedPaths    []string
	AddedSources  []string
	AddedBranches []string

	// --- SubmoduleUpdate ---
	UpdateErr    error
	UpdatedPaths []string

	// --- SubmoduleDeinit ---
	DeinitErr   error
	DeinitPaths []string

	// --- SubmoduleDeregister ---
	DeregisterErr   error
	DeregisterPaths []string

	// --- Submodules ---
	SubmodulesList []entities.Submodule
	SubmodulesErr  error

	// --- CommitAll ---
	CommitErr      error
	CommitMessages []string
}

var _ repositories.ProjectRepository = (*SpyProjectRepository)(nil)

func (p *SpyProjectRepository) IsClean(_ context.Context, _ string) (bool, error) {
	return p.Clean, p.CleanErr
}

func (p *SpyProjectRepository) SetSubmoduleIgnoreDirty(_ context.Context, _, path string) error {
	if p.IgnoreErr != nil {
		return p.IgnoreErr
	}
	p.IgnorePaths = append(p.IgnorePaths, path)
	return nil
}

func (p *SpyProjectRepository) SubmoduleAdd(_ context.Context, _, path, source, branch string) error {
	if p.AddErr != nil {
		return p.AddErr
	}
	p.AddedPaths = append(p.AddedPaths, path)
	p.AddedSources = append(p.AddedSources, source)
	p.AddedBranches = append(p.AddedBranches, branch)
	return nil
}

func (p *SpyProjectRepository) SubmoduleUpdate(_ context.Context, _, path string) error {
	if p.UpdateErr != nil {
		return p.UpdateErr
	}
	p.UpdatedPaths = append(p.UpdatedPaths, path)
	return nil
}

func (p *SpyProjectRepository) SubmoduleDeinit(_ context.Context, _, path string) error {
	if p.DeinitErr != nil {
		return p.DeinitErr
	}
	p.DeinitPaths = append(p.DeinitPaths, path)
	return nil
}

func (p *SpyProjectRepository) SubmoduleDeregister(_ context.Context, _, path string) error {
	if p.DeregisterErr != nil {
		return p.DeregisterErr
	}
	p.DeregisterPaths = append(p.DeregisterPaths, path)
	return nil
}

func (p *SpyProjectRepository) Submodules(_ context.Context, _ string) ([]entities.Submodule, error) {
	return p.SubmodulesList, p.SubmodulesErr
}

func (p *SpyProjectRepository) CommitAll(_ context.Context, _, message string) error {
	if p.CommitErr != nil {
		return p.CommitErr
	}
	p.CommitMessages = append(p.CommitMessages, message)
	return nil
}
