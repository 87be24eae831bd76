// Package navigator owns the single source of truth for the active week.
// Managers subscribe to week changes instead of being called by name, so
// the navigator stays ignorant of the concrete manager set.
package navigator

import (
	"weeklog/internal/weekkey"
)

// Handler receives the new week key after every transition.
type Handler func(weekkey.Key)

// Navigator holds the current week and broadcasts transitions to every
// subscriber in registration order. It is built for a single UI context;
// callers serialize access themselves.
type Navigator struct {
	currentWeek weekkey.Key
	handlers    []Handler
}

func New(start weekkey.Key) *Navigator {
	return &Navigator{currentWeek: start}
}

// CurrentWeek returns the active week key.
func (n *Navigator) CurrentWeek() weekkey.Key {
	return n.currentWeek
}

// Subscribe registers a handler for week changes. Subscribing does not
// fire the handler with the current week; callers load initial state
// themselves.
func (n *Navigator) Subscribe(h Handler) {
	n.handlers = append(n.handlers, h)
}

// Next moves one week forward and notifies all subscribers.
func (n *Navigator) Next() weekkey.Key {
	return n.GoTo(n.currentWeek.Next())
}

// Previous moves one week back and notifies all subscribers.
func (n *Navigator) Previous() weekkey.Key {
	return n.GoTo(n.currentWeek.Previous())
}

// GoTo jumps straight to the given week. Every subscriber has been
// notified by the time it returns, so no manager still holds the old
// week's data afterwards.
func (n *Navigator) GoTo(key weekkey.Key) weekkey.Key {
	n.currentWeek = key
	for _, h := range n.handlers {
		h(key)
	}
	return key
}
