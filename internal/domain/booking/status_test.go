package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"PENDING", "CONFIRMED", "CANCELLED"} {
		status, err := ParseStatus(raw)
		assert.NoError(t, err)
		assert.Equal(t, Status(raw), status)
	}

	_, err := ParseStatus("DONE")
	assert.Error(t, err)

	_, err = ParseStatus("pending")
	assert.Error(t, err, "status values are uppercase")
}

func TestCanTransition(t *testing.T) {
	assert.NoError(t, CanTransition(StatusPending, StatusConfirmed))
	assert.NoError(t, CanTransition(StatusPending, StatusCancelled))
	assert.NoError(t, CanTransition(StatusConfirmed, StatusCancelled))

	assert.Error(t, CanTransition(StatusConfirmed, StatusPending))
	assert.Error(t, CanTransition(StatusCancelled, StatusPending))
	assert.Error(t, CanTransition(StatusCancelled, StatusConfirmed))
	assert.Error(t, CanTransition(StatusPending, StatusPending))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}
