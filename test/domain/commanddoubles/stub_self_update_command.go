//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/gitmod-io/gitmod/internal/domain/commands"
	"github.com/gitmod-io/gitmod/internal/domain/entities"
)

// StubSelfUpdateCommand is a stub implementation of commands.SelfUpdate.
type StubSelfUpdateCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastVersion      string
}

var _ commands.SelfUpdate = (*StubSelfUpdateCommand)(nil)

func (s *StubSelfUpdateCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	currentVersion string,
) error {
	s.ExecuteCallCount++
	s.LastVersion = currentVersion
	return s.ExecuteErr
}
