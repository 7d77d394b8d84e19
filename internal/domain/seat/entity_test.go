//go:build unit

package seat_test

import (
	"testing"

	"flight-onboard/internal/domain/seat"
	"flight-onboard/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTier(t *testing.T) {
	for _, label := range []string{"Básico", "Topázio", "Safira", "Diamante"} {
		tier, err := seat.NewTier(label)
		require.NoError(t, err, label)
		assert.Equal(t, label, tier.String())
	}

	_, err := seat.NewTier("Ouro")
	assert.ErrorIs(t, err, seat.ErrInvalidTier)

	assert.True(t, seat.TierBasic.HasSnackQuota())
	assert.False(t, seat.TierTopaz.HasSnackQuota())
	assert.False(t, seat.TierSapphire.HasSnackQuota())
	assert.False(t, seat.TierDiamond.HasSnackQuota())
}

func TestSeat(t *testing.T) {
	t.Run("new seat starts without orders", func(t *testing.T) {
		s, err := seat.NewSeat(10, seat.TierBasic)
		require.NoError(t, err)
		assert.Equal(t, 10, s.ID())
		assert.Equal(t, 0, s.Orders())
		assert.True(t, s.CanOrder())
	})

	t.Run("validation", func(t *testing.T) {
		_, err := builder.NewSeatBuilder().WithID(0).BuildDomain()
		assert.ErrorIs(t, err, seat.ErrInvalidSeatID)

		_, err = builder.NewSeatBuilder().WithOrders(-1).BuildDomain()
		assert.ErrorIs(t, err, seat.ErrNegativeOrders)

		_, err = builder.NewSeatBuilder().WithTier("").BuildDomain()
		assert.ErrorIs(t, err, seat.ErrInvalidTier)
	})

	t.Run("basic tier allows a single order", func(t *testing.T) {
		s := builder.NewSeatBuilder().AsBasic().MustBuildDomain()

		require.NoError(t, s.PlaceOrder())
		assert.Equal(t, 1, s.Orders())

		assert.ErrorIs(t, s.PlaceOrder(), seat.ErrQuotaExceeded)
		assert.Equal(t, 1, s.Orders())
		assert.False(t, s.CanOrder())
	})

	t.Run("other tiers order without limit", func(t *testing.T) {
		for _, tier := range []string{"Topázio", "Safira", "Diamante"} {
			s := builder.NewSeatBuilder().WithTier(tier).MustBuildDomain()
			for i := 1; i <= 5; i++ {
				require.NoError(t, s.PlaceOrder(), tier)
				assert.Equal(t, i, s.Orders(), tier)
			}
		}
	})

	t.Run("clone is independent", func(t *testing.T) {
		s := builder.NewSeatBuilder().MustBuildDomain()
		c := s.Clone()
		require.NoError(t, c.PlaceOrder())
		assert.Equal(t, 0, s.Orders())
		assert.Equal(t, 1, c.Orders())
	})
}
