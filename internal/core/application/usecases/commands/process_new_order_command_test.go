package commands_test

import (
	"testing"

	"logix/internal/core/application/usecases/commands"
	"logix/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcessNewOrderCommand(t *testing.T) {
	t.Run("should create command with valid order id", func(t *testing.T) {
		id := kernel.NewUUID()
		cmd, err := commands.NewProcessNewOrderCommand(id)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
	})

	t.Run("should fail with empty order id", func(t *testing.T) {
		_, err := commands.NewProcessNewOrderCommand(kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("should reject zero-value command", func(t *testing.T) {
		var cmd commands.ProcessNewOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrProcessNewOrderCommandIsNotConstructed)
	})
}
