package managed

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const defaultEventBuffer = 64

// Broadcaster fans events out to subscribers on behalf of one emitting
// object. Implementations of Emitter typically embed a Broadcaster and call
// Emit from their observation paths:
//
//	type memory struct {
//	    *managed.Broadcaster
//	}
//
//	func newMemory(name managed.Name) *memory {
//	    return &memory{Broadcaster: managed.NewBroadcaster(name)}
//	}
//
// Publishing is non-blocking: when a subscriber's buffer is full the event is
// dropped for that subscriber. Subscribers detect drops through gaps in
// Event.Sequence.
type Broadcaster struct {
	source     Name
	seq        atomic.Uint64
	mu         sync.RWMutex
	subs       map[chan Event]struct{}
	done       chan struct{}
	bufferSize int
}

// NewBroadcaster creates a broadcaster for the given source name with the
// default per-subscriber buffer (64 events).
func NewBroadcaster(source Name) *Broadcaster {
	return NewBroadcasterWithBuffer(source, defaultEventBuffer)
}

// NewBroadcasterWithBuffer creates a broadcaster with a custom per-subscriber
// buffer size.
func NewBroadcasterWithBuffer(source Name, size int) *Broadcaster {
	if size < 1 {
		size = 1
	}
	return &Broadcaster{
		source:     source,
		subs:       make(map[chan Event]struct{}),
		done:       make(chan struct{}),
		bufferSize: size,
	}
}

// ObjectName returns the source name the broadcaster stamps on its events.
// Embedding a Broadcaster therefore satisfies the Object contract.
func (b *Broadcaster) ObjectName() Name {
	return b.source
}

// Subscribe creates a new subscription channel.
// The channel is closed when ctx is cancelled or the broadcaster is closed.
func (b *Broadcaster) Subscribe(ctx context.Context) <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	select {
	case <-b.done:
		ch := make(chan Event)
		close(ch)
		return ch
	default:
	}

	sub := make(chan Event, b.bufferSize)
	b.subs[sub] = struct{}{}

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		defer b.mu.Unlock()

		select {
		case <-b.done:
			return // Close already tore the channel down
		default:
		}

		delete(b.subs, sub)
		close(sub)
	}()

	return sub
}

// Emit publishes an event to all subscribers. The sequence number is
// assigned here, so it increases even when every subscriber drops the event.
func (b *Broadcaster) Emit(eventType, message string, payload any) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	select {
	case <-b.done:
		return
	default:
	}

	event := Event{
		Source:    b.source,
		Type:      eventType,
		Message:   message,
		Sequence:  b.seq.Add(1),
		Timestamp: time.Now(),
		Payload:   payload,
	}

	for sub := range b.subs {
		select {
		case sub <- event:
			// Delivered
		default:
			// Buffer full - drop rather than block the emitter
		}
	}
}

// Close shuts down the broadcaster and closes all subscriber channels.
// Emit and Subscribe become no-ops afterwards.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	select {
	case <-b.done:
		return
	default:
	}

	close(b.done)
	for sub := range b.subs {
		close(sub)
	}
	b.subs = nil
}

// SubscriberCount returns the number of active subscribers.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
