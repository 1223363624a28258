// Package refresh fans out "something changed" signals to an account's
// open event streams.
package refresh

import "sync"

// Event names the kind of resource that changed and its id
type Event struct {
	Resource string `json:"resource"`
	ID       string `json:"id,omitempty"`
}

// Bus delivers events to the subscribers of one account. Slow subscribers
// miss events instead of blocking the publisher.
type Bus struct {
	mu   sync.RWMutex
	subs map[string]map[chan Event]struct{}
}

func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[chan Event]struct{})}
}

// Subscribe returns a buffered channel receiving the account's events.
func (b *Bus) Subscribe(accountID string) chan Event {
	ch := make(chan Event, 16)
	b.mu.Lock()
	if b.subs[accountID] == nil {
		b.subs[accountID] = make(map[chan Event]struct{})
	}
	b.subs[accountID][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (b *Bus) Unsubscribe(accountID string, ch chan Event) {
	b.mu.Lock()
	if subs, ok := b.subs[accountID]; ok {
		if _, ok := subs[ch]; ok {
			delete(subs, ch)
			close(ch)
		}
		if len(subs) == 0 {
			delete(b.subs, accountID)
		}
	}
	b.mu.Unlock()
}

// Publish sends e to every subscriber of accountID.
func (b *Bus) Publish(accountID string, e Event) {
	b.mu.RLock()
	for ch := range b.subs[accountID] {
		select {
		case ch <- e:
		default:
		}
	}
	b.mu.RUnlock()
}

// Subscribers counts the open subscriptions of an account
func (b *Bus) Subscribers(accountID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[accountID])
}
