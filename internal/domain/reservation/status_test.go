package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jihedaidrive/razor-spark-book/internal/httperr"
)

func TestCanTransition(t *testing.T) {
	legal := []struct{ from, to Status }{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusCompleted},
		{StatusConfirmed, StatusCancelled},
	}

	for _, tt := range legal {
		assert.NoError(t, CanTransition(tt.from, tt.to), "%s -> %s should be legal", tt.from, tt.to)
	}

	illegal := []struct{ from, to Status }{
		{StatusPending, StatusCompleted},
		{StatusPending, StatusPending},
		{StatusConfirmed, StatusPending},
		{StatusConfirmed, StatusConfirmed},
	}

	for _, tt := range illegal {
		err := CanTransition(tt.from, tt.to)
		assert.True(t, httperr.IsBusiness(err, "invalid_transition"), "%s -> %s should be rejected", tt.from, tt.to)
	}
}

func TestTerminalStatesStayTerminal(t *testing.T) {
	all := []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted}

	for _, terminal := range []Status{StatusCancelled, StatusCompleted} {
		assert.True(t, IsTerminal(terminal))
		for _, to := range all {
			err := CanTransition(terminal, to)
			assert.True(t, httperr.IsBusiness(err, "invalid_transition"),
				"%s -> %s should be rejected", terminal, to)
		}
	}
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	err := CanTransition(StatusPending, Status("archived"))
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestIsBlocking(t *testing.T) {
	assert.True(t, IsBlocking(StatusPending))
	assert.True(t, IsBlocking(StatusConfirmed))
	assert.False(t, IsBlocking(StatusCancelled))
	assert.False(t, IsBlocking(StatusCompleted))
}
