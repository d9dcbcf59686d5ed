package controllers

import (
	"context"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/gitmod-io/gitmod/internal/domain/entities"
)

// operationContext bounds an operation by the configured network timeout.
// A zero timeout leaves the operation unbounded.
func operationContext(settings *entities.Settings) (context.Context, context.CancelFunc) {
	timeout := settings.NetworkTimeout()
	if timeout == 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}

// redirectSink points the external-tool output sink at its destination: the
// project log file normally, stderr when verbose. Verbose also raises the
// log level.
func redirectSink(sink *entities.OutputSink, projectDir string, verbose bool) {
	if verbose {
		logger.SetLevel(logger.DebugLevel)
		sink.RedirectTo(os.Stderr)
		return
	}
	if err := sink.RedirectToFile(projectDir); err != nil {
		logger.Warnf("Could not open %s, tool output will be discarded: %v",
			entities.LogFileName, err)
	}
}

// projectDir resolves the host project directory for this invocation.
func projectDir() (string, error) {
	return os.Getwd()
}
