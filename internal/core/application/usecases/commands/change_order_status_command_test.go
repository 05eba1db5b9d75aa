package commands_test

import (
	"testing"

	"logix/internal/core/application/usecases/commands"
	"logix/internal/core/domain/model/kernel"
	"logix/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand(t *testing.T) {
	t.Run("should create command with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		cmd, err := commands.NewChangeOrderStatusCommand(id, order.StatusProcessing)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
		assert.Equal(t, order.StatusProcessing, cmd.To())
	})

	t.Run("should fail with empty order id", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(kernel.UUID{}, order.StatusProcessing)
		require.Error(t, err)
	})

	t.Run("should fail with unknown status", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.StatusUnknown)
		require.Error(t, err)
	})

	t.Run("should reject zero-value command", func(t *testing.T) {
		var cmd commands.ChangeOrderStatusCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrChangeOrderStatusCommandIsNotConstructed)
	})
}
