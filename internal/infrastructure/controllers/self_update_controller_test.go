//go:build unit

package controllers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitmod-io/gitmod/internal/domain/entities"
	"github.com/gitmod-io/gitmod/internal/infrastructure/controllers"
	doubles "github.com/gitmod-io/gitmod/test/domain/commanddoubles"
)

func TestSelfUpdateControllerExecute(t *testing.T) {
	t.Run("should pass the running version to the command", func(t *testing.T) {
		// given
		command := &doubles.StubSelfUpdateCommand{}
		controller := controllers.NewSelfUpdateController(
			controllerSettings(), entities.NewOutputSink(), command, controllers.Version("1.2.3"))

		// when
		err := controller.Execute(nil, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, command.ExecuteCallCount)
		assert.Equal(t, "1.2.3", command.LastVersion)
	})
}
