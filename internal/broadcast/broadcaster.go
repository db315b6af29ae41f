package broadcast

import (
	"sync"

	"github.com/conectVagas/ConectaVagas/internal/model"
)

// Event types pushed to live-update subscribers.
const (
	EventNewJob    = "new-job"
	EventDeleteJob = "delete-job"
)

// Event is a change notification. It is a "something changed, refetch"
// signal: new-job carries the full created record, delete-job only the
// removed id.
type Event struct {
	Type string     `json:"type"`
	Job  *model.Job `json:"job,omitempty"`
	ID   string     `json:"id,omitempty"`
}

// NewJob builds a new-job event carrying the created record
func NewJob(job *model.Job) Event {
	return Event{Type: EventNewJob, Job: job}
}

// DeleteJob builds a delete-job event carrying the removed id
func DeleteJob(id string) Event {
	return Event{Type: EventDeleteJob, ID: id}
}

// Broadcaster fans events out to every subscribed live connection.
//
// Delivery is best-effort: a subscriber whose buffer is full is
// skipped, never blocks delivery to others, and there is no replay.
// The subscriber set is mutated from concurrent request handlers, so
// every access holds the mutex.
type Broadcaster struct {
	mu          sync.Mutex
	subscribers map[chan Event]struct{}
	buffer      int
	closed      bool
}

// Config holds broadcaster configuration
type Config struct {
	Buffer int // Per-subscriber channel buffer (default 8)
}

// New creates a new broadcaster
func New(cfg Config) *Broadcaster {
	if cfg.Buffer <= 0 {
		cfg.Buffer = 8
	}
	return &Broadcaster{
		subscribers: make(map[chan Event]struct{}),
		buffer:      cfg.Buffer,
	}
}

// Subscribe registers a new live connection and returns its channel.
// The channel is closed by Unsubscribe or Close; the caller must not
// close it.
func (b *Broadcaster) Subscribe() chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, b.buffer)
	if b.closed {
		close(ch)
		return ch
	}
	b.subscribers[ch] = struct{}{}
	return ch
}

// Unsubscribe removes a live connection on disconnect and closes its
// channel. Safe to call for a channel that was already removed.
func (b *Broadcaster) Unsubscribe(ch chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subscribers[ch]; ok {
		delete(b.subscribers, ch)
		close(ch)
	}
}

// Broadcast pushes an event to every currently-registered subscriber.
// A slow subscriber misses the event; it reconnects and refetches.
func (b *Broadcaster) Broadcast(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			// Buffer full: skip, never abort delivery to others.
		}
	}
}

// Len reports the number of currently-registered subscribers
func (b *Broadcaster) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers)
}

// Close removes and closes every subscriber channel. Subsequent
// Subscribe calls return an already-closed channel and Broadcast
// becomes a no-op.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for ch := range b.subscribers {
		delete(b.subscribers, ch)
		close(ch)
	}
}
