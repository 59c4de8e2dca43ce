package notify

import (
	"sync"
	"time"

	"github.com/iudanet/folioadmin/internal/clock"
)

// Kind is the visual class of a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"

	// DefaultDuration is how long a notification stays visible.
	DefaultDuration = 3 * time.Second
)

//go:generate moq -out notify_mock.go . Display

// Display рендерит единственный слот уведомлений
type Display interface {
	Show(n Notification)
	Hide()
}

// Notification is the content of the single notification slot.
type Notification struct {
	Message string
	Kind    Kind
}

// Center holds at most one visible notification. The newest one pre-empts the
// previous one and restarts the dismissal timer; nothing is queued.
type Center struct {
	display   Display
	scheduler clock.Scheduler
	timer     clock.Timer
	current   *Notification
	duration  time.Duration
	gen       uint64
	mu        sync.Mutex
}

// NewCenter создает центр уведомлений
func NewCenter(display Display, scheduler clock.Scheduler, duration time.Duration) *Center {
	if scheduler == nil {
		scheduler = clock.Real{}
	}
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Center{
		display:   display,
		scheduler: scheduler,
		duration:  duration,
	}
}

// Notify replaces whatever is shown and schedules its dismissal.
func (c *Center) Notify(message string, kind Kind) {
	if kind == "" {
		kind = KindSuccess
	}
	n := Notification{Message: message, Kind: kind}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
	}
	c.gen++
	gen := c.gen
	c.current = &n

	if c.display != nil {
		c.display.Show(n)
	}
	c.timer = c.scheduler.AfterFunc(c.duration, func() {
		c.dismiss(gen)
	})
}

// Success is shorthand for Notify(message, KindSuccess).
func (c *Center) Success(message string) {
	c.Notify(message, KindSuccess)
}

// Error is shorthand for Notify(message, KindError).
func (c *Center) Error(message string) {
	c.Notify(message, KindError)
}

// Current возвращает видимое уведомление
func (c *Center) Current() (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return Notification{}, false
	}
	return *c.current, true
}

// dismiss скрывает уведомление, только если за это время не пришло новое
func (c *Center) dismiss(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen || c.current == nil {
		return
	}
	c.current = nil
	c.timer = nil
	if c.display != nil {
		c.display.Hide()
	}
}
