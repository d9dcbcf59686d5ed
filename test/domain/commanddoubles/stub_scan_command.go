//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/gitmod-io/gitmod/internal/domain/commands"
	"github.com/gitmod-io/gitmod/internal/domain/entities"
)

// StubScanCommand is a stub implementation of commands.Scan.
type StubScanCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Report           entities.ScanReport
	LastRefresh      bool
}

var _ commands.Scan = (*StubScanCommand)(nil)

func (s *StubScanCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	refresh bool,
) (entities.ScanReport, error) {
	s.ExecuteCallCount++
	s.LastRefresh = refresh
	return s.Report, s.ExecuteErr
}
