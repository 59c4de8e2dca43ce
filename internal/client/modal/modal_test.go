package modal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/folioadmin/internal/client/form"
)

func newPresenter() *PresenterMock {
	return &PresenterMock{
		ShowFunc: func(title string, f *form.Form) {},
		HideFunc: func() {},
	}
}

func TestController_OpenReplacesInPlace(t *testing.T) {
	p := newPresenter()
	c := New(p)

	first := form.New(nil, "Add Skill")
	second := form.New(nil, "Update Skill")
	c.Open("Add New Skill", first, nil)
	c.Open("Edit Skill", second, nil)

	assert.True(t, c.IsOpen())
	assert.Equal(t, "Edit Skill", c.Title())
	assert.Same(t, second, c.Form())
	assert.Len(t, p.ShowCalls(), 2)
	assert.Empty(t, p.HideCalls())
}

func TestController_Trigger(t *testing.T) {
	c := New(newPresenter())

	assert.False(t, c.Trigger(context.Background()), "closed modal has nothing to trigger")

	calls := 0
	c.Open("Add New Skill", form.New(nil, "Add Skill"), func(ctx context.Context) { calls++ })
	assert.True(t, c.Trigger(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestController_HandleEvent(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		wantOpen bool
	}{
		{name: "close button", event: EventClose, wantOpen: false},
		{name: "backdrop", event: EventBackdrop, wantOpen: false},
		{name: "native submit is swallowed", event: EventSubmit, wantOpen: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPresenter()
			c := New(p)
			c.Open("Edit Skill", form.New(nil, "Update Skill"), func(ctx context.Context) {
				t.Fatal("action must not run on chrome events")
			})

			c.HandleEvent(tt.event)
			assert.Equal(t, tt.wantOpen, c.IsOpen())
		})
	}
}

func TestController_SubmitSuppressed(t *testing.T) {
	c := New(newPresenter())
	assert.False(t, c.Submit())
}

// TestController_CloseFormAfterDismiss: a late result for a dismissed form must not close a newer modal.
func TestController_CloseFormAfterDismiss(t *testing.T) {
	p := newPresenter()
	c := New(p)

	stale := form.New(nil, "Add Skill")
	c.Open("Add New Skill", stale, nil)
	c.Close()
	require.Len(t, p.HideCalls(), 1)

	current := form.New(nil, "Add Project")
	c.Open("Add New Project", current, nil)

	c.CloseForm(stale)
	assert.True(t, c.IsOpen())
	assert.Same(t, current, c.Form())

	c.CloseForm(current)
	assert.False(t, c.IsOpen())
	assert.Nil(t, c.Form())
	assert.Len(t, p.HideCalls(), 2)

	// повторное закрытие ничего не делает
	c.Close()
	assert.Len(t, p.HideCalls(), 2)
}
