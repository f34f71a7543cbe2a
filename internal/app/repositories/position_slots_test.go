package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alumconnect/backend/internal/app/models"
)

func TestConsumesSlot(t *testing.T) {
	assert.True(t, consumesSlot(models.StatusPending))
	assert.True(t, consumesSlot(models.StatusDeclined))
	assert.False(t, consumesSlot(models.StatusAccepted), "re-accepting must not take a second slot")
}

func TestFreesSlot(t *testing.T) {
	assert.True(t, freesSlot(models.StatusAccepted))
	assert.False(t, freesSlot(models.StatusPending))
	assert.False(t, freesSlot(models.StatusDeclined))
}

func TestHasOpenSlot(t *testing.T) {
	assert.True(t, hasOpenSlot(0, 1))
	assert.True(t, hasOpenSlot(1, 2))
	assert.False(t, hasOpenSlot(2, 2), "a full position has no open slot")
	assert.False(t, hasOpenSlot(3, 2), "an overfull position has no open slot")
}

func TestFillSlotDeactivatesWhenFull(t *testing.T) {
	filled, active := fillSlot(0, 2)
	assert.Equal(t, 1, filled)
	assert.True(t, active)

	filled, active = fillSlot(filled, 2)
	assert.Equal(t, 2, filled)
	assert.False(t, active, "filling the last slot closes the position")
}

func TestReleaseSlotReopens(t *testing.T) {
	filled, active := releaseSlot(2)
	assert.Equal(t, 1, filled)
	assert.True(t, active)

	filled, active = releaseSlot(0)
	assert.Equal(t, 0, filled, "releasing an empty position stays at zero")
	assert.True(t, active)
}

// Accepting a second pending application into a one-slot position must be
// refused, not pushed past the capacity.
func TestSecondAcceptIntoFullPositionRefused(t *testing.T) {
	filled, active := fillSlot(0, 1)
	assert.Equal(t, 1, filled)
	assert.False(t, active)

	assert.True(t, consumesSlot(models.StatusPending))
	assert.False(t, hasOpenSlot(filled, 1))
}

func TestAcceptThenDeclineRoundTrip(t *testing.T) {
	const count = 3

	filled, active := fillSlot(1, count)
	assert.Equal(t, 2, filled)
	assert.True(t, active)

	filled, active = releaseSlot(filled)
	assert.Equal(t, 1, filled)
	assert.True(t, active)
}
