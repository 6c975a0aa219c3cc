package commands_test

import (
	"testing"

	"ratefinder/internal/core/application/usecases/commands"
	"ratefinder/internal/core/domain/model/kernel"
	"ratefinder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateBookingCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewCreateBookingCommand(id, " Germany ", 2.2, " DHL ", "Express", "Asha Rao", "Asha@Example.com")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.BookingID().IsEqual(id))
		assert.Equal(t, "Germany", cmd.Country())
		assert.InDelta(t, 2.2, cmd.Weight().Kilograms(), 1e-9)
		assert.Equal(t, "DHL", cmd.Carrier())
		assert.Equal(t, "Express", cmd.ServiceType())
		assert.Equal(t, "asha@example.com", cmd.Customer().Email())
	})

	t.Run("collects every invalid field", func(t *testing.T) {
		_, err := commands.NewCreateBookingCommand(kernel.UUID{}, " ", -1, "", "", "", "not-an-email")

		require.Error(t, err)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("struct literal is rejected", func(t *testing.T) {
		cmd := commands.CreateBookingCommand{}

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateBookingCommandIsNotConstructed)
	})
}
