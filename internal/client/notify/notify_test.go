package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/folioadmin/internal/testutil"
)

func newDisplay() *DisplayMock {
	return &DisplayMock{
		ShowFunc: func(n Notification) {},
		HideFunc: func() {},
	}
}

func TestCenter_Notify(t *testing.T) {
	display := newDisplay()
	sched := testutil.NewManualScheduler()
	c := NewCenter(display, sched, 0)

	c.Success("Skill added.")

	require.Len(t, display.ShowCalls(), 1)
	assert.Equal(t, Notification{Message: "Skill added.", Kind: KindSuccess}, display.ShowCalls()[0].N)
	assert.Equal(t, []time.Duration{DefaultDuration}, sched.Delays())

	cur, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "Skill added.", cur.Message)

	sched.FireAll(false)
	assert.Len(t, display.HideCalls(), 1)
	_, ok = c.Current()
	assert.False(t, ok)
}

// TestCenter_LatestWins: a newer notification replaces the old one and restarts the timer.
func TestCenter_LatestWins(t *testing.T) {
	display := newDisplay()
	sched := testutil.NewManualScheduler()
	c := NewCenter(display, sched, time.Second)

	c.Success("first")
	c.Error("second")

	assert.Len(t, display.ShowCalls(), 2)
	assert.Equal(t, 1, sched.Pending())

	cur, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, Notification{Message: "second", Kind: KindError}, cur)

	// первый таймер гонится со Stop и срабатывает: он не должен скрыть второе уведомление
	sched.FireAll(true)
	assert.Len(t, display.HideCalls(), 1)
	_, ok = c.Current()
	assert.False(t, ok)
}

func TestCenter_StaleTimerIsNoop(t *testing.T) {
	display := newDisplay()
	sched := testutil.NewManualScheduler()
	c := NewCenter(display, sched, time.Second)

	c.Success("first")
	stale := sched.Scheduled()
	c.Success("second")

	require.Equal(t, 1, stale)
	// только таймер первого уведомления
	c.dismiss(1)
	cur, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "second", cur.Message)
	assert.Empty(t, display.HideCalls())
}

func TestCenter_DefaultKind(t *testing.T) {
	c := NewCenter(nil, testutil.NewManualScheduler(), 0)
	c.Notify("hello", "")
	cur, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, KindSuccess, cur.Kind)
}
