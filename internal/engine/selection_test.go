package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSelectionZeroValueIsResting(t *testing.T) {
	var s Selection
	assert.Equal(t, PhaseAwaitingStart, s.Phase)
	assert.True(t, s.PendingStart.IsZero())
}

func TestSelectionTwoClickProtocol(t *testing.T) {
	var s Selection

	s, committed := s.Click(date(2025, time.January, 10))
	assert.Nil(t, committed, "first click must not commit")
	assert.Equal(t, PhaseAwaitingEnd, s.Phase)
	assert.True(t, SameDay(date(2025, time.January, 10), s.PendingStart))

	// Earlier click resets the pending start instead of committing an
	// inverted range.
	s, committed = s.Click(date(2025, time.January, 5))
	assert.Nil(t, committed, "backward click must not commit")
	assert.Equal(t, PhaseAwaitingEnd, s.Phase)
	assert.True(t, SameDay(date(2025, time.January, 5), s.PendingStart))

	s, committed = s.Click(date(2025, time.January, 20))
	require.NotNil(t, committed)
	assert.True(t, SameDay(date(2025, time.January, 5), committed.Start))
	assert.True(t, SameDay(date(2025, time.January, 20), committed.End))
	assert.Equal(t, PhaseAwaitingStart, s.Phase)
	assert.True(t, s.PendingStart.IsZero(), "pending start cleared on commit")
}

func TestSelectionSameDayCommitsSingleDayRange(t *testing.T) {
	var s Selection
	d := date(2025, time.March, 15)

	s, _ = s.Click(d)
	s, committed := s.Click(d)

	require.NotNil(t, committed)
	assert.True(t, SameDay(d, committed.Start))
	assert.True(t, SameDay(d, committed.End))
	assert.Equal(t, PhaseAwaitingStart, s.Phase)
}

func TestSelectionCommitNeverInverted(t *testing.T) {
	starts := []time.Time{
		date(2025, time.January, 1),
		date(2025, time.June, 30),
		date(2024, time.December, 31),
	}
	ends := []time.Time{
		date(2024, time.January, 1),
		date(2025, time.June, 30),
		date(2026, time.February, 10),
	}

	for _, start := range starts {
		for _, end := range ends {
			var s Selection
			s, _ = s.Click(start)
			_, committed := s.Click(end)
			if committed != nil {
				assert.False(t, AfterDay(committed.Start, committed.End),
					"committed %s from clicks %s then %s", committed, start, end)
			}
		}
	}
}

func TestSelectionAbortDiscardsPendingStart(t *testing.T) {
	var s Selection
	s, _ = s.Click(date(2025, time.May, 5))
	require.Equal(t, PhaseAwaitingEnd, s.Phase)

	s = s.Abort()
	assert.Equal(t, PhaseAwaitingStart, s.Phase)
	assert.True(t, s.PendingStart.IsZero())

	// Abort in the resting phase stays resting.
	s = s.Abort()
	assert.Equal(t, PhaseAwaitingStart, s.Phase)
}

func TestSelectionClickTruncatesTimeOfDay(t *testing.T) {
	var s Selection
	s, _ = s.Click(time.Date(2025, time.April, 3, 17, 45, 12, 0, time.Local))
	assert.True(t, SameDay(date(2025, time.April, 3), s.PendingStart))
	assert.Equal(t, 0, s.PendingStart.Hour())
}
