package services_test

import (
	"testing"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/services"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateHorizon(t *testing.T) {
	t.Run("should create a horizon with consecutive days", func(t *testing.T) {
		horizon, err := services.NewDateHorizon(day(t, "2025-03-10"), 3)

		require.NoError(t, err)
		require.NoError(t, horizon.Validate())
		assert.Equal(t, day(t, "2025-03-10"), horizon.Start())
		assert.Equal(t, 3, horizon.Length())
		assert.Equal(t, days(t, "2025-03-10", "2025-03-11", "2025-03-12"), horizon.Days())
	})

	t.Run("should span month boundaries", func(t *testing.T) {
		horizon, err := services.NewDateHorizon(day(t, "2025-03-31"), 2)

		require.NoError(t, err)
		assert.Equal(t, days(t, "2025-03-31", "2025-04-01"), horizon.Days())
	})

	t.Run("should report containment", func(t *testing.T) {
		horizon, err := services.NewDateHorizon(day(t, "2025-03-10"), 3)
		require.NoError(t, err)

		assert.True(t, horizon.Contains(day(t, "2025-03-10")))
		assert.True(t, horizon.Contains(day(t, "2025-03-12")))
		assert.False(t, horizon.Contains(day(t, "2025-03-09")))
		assert.False(t, horizon.Contains(day(t, "2025-03-13")))

		var zeroDay kernel.Day
		assert.False(t, horizon.Contains(zeroDay))
	})

	t.Run("should reject out of range lengths", func(t *testing.T) {
		for _, length := range []int{0, -1, 61, 365} {
			_, err := services.NewDateHorizon(day(t, "2025-03-10"), length)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}

		_, err := services.NewDateHorizon(day(t, "2025-03-10"), 60)
		require.NoError(t, err)
	})

	t.Run("should reject an unconstructed start day", func(t *testing.T) {
		var zeroDay kernel.Day

		_, err := services.NewDateHorizon(zeroDay, 5)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrDayIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value horizon", func(t *testing.T) {
		var horizon services.DateHorizon

		err := horizon.Validate()

		require.Error(t, err)
		assert.Equal(t, services.ErrDateHorizonIsNotConstructed, err)
	})
}
