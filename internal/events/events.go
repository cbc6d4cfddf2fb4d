package events

import "sync"

type Kind string

const (
	KindSignup     Kind = "signup"
	KindUnregister Kind = "unregister"
)

// Change describes an enrollment mutation that has been committed.
type Change struct {
	Kind     Kind
	Activity string
	Email    string
}

type Listener func(Change)

// Bus fans committed changes out to listeners. The zero value is ready to use.
type Bus struct {
	mu        sync.RWMutex
	listeners []Listener
}

func (b *Bus) Subscribe(l Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, l)
}

// Publish calls every listener synchronously in subscription order.
func (b *Bus) Publish(c Change) {
	b.mu.RLock()
	ls := b.listeners
	b.mu.RUnlock()
	for _, l := range ls {
		l(c)
	}
}
