package ui

import (
	"context"
	"fmt"
	"sync"
)

// Action names a delegated card affordance.
type Action string

const (
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	ActionView   Action = "view"
	ActionToggle Action = "toggle"
	ActionCreate Action = "create"
	// ActionRefresh перезагружает регион списка
	ActionRefresh Action = "refresh"
)

// Event carries the data attributes of the element the operator activated.
type Event struct {
	Action Action
	Kind   string
	ID     string
	// Read is the current read state, only meaningful for ActionToggle.
	Read bool
}

// Handler обрабатывает делегированное событие
type Handler func(ctx context.Context, ev Event)

// Dispatcher is the explicit dispatch table: one delegated handler per (action, kind).
type Dispatcher struct {
	handlers map[Action]map[string]Handler
	mu       sync.RWMutex
}

// NewDispatcher создает пустую таблицу диспетчеризации
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[Action]map[string]Handler)}
}

// Bind registers h for action on records of kind. Rebinding replaces the handler.
func (d *Dispatcher) Bind(action Action, kind string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	byKind, ok := d.handlers[action]
	if !ok {
		byKind = make(map[string]Handler)
		d.handlers[action] = byKind
	}
	byKind[kind] = h
}

// Dispatch routes ev to its handler. It returns an error when nothing is bound.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) error {
	d.mu.RLock()
	h := d.handlers[ev.Action][ev.Kind]
	d.mu.RUnlock()

	if h == nil {
		return fmt.Errorf("no handler for %s on %s", ev.Action, ev.Kind)
	}
	h(ctx, ev)
	return nil
}

// Bound reports whether a handler exists for action on kind.
func (d *Dispatcher) Bound(action Action, kind string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.handlers[action][kind]
	return ok
}
