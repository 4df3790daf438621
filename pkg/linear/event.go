package linear

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// EventKind classifies wrapper lifecycle events.
type EventKind uint8

const (
	EventCreated EventKind = iota
	EventConsumed
	EventViolated
)

func (k EventKind) String() string {
	switch k {
	case EventCreated:
		return "created"
	case EventConsumed:
		return "consumed"
	case EventViolated:
		return "violated"
	default:
		return "unknown"
	}
}

// Event describes one lifecycle transition of a wrapper.
type Event struct {
	Kind     EventKind
	ID       uuid.UUID
	TypeName string
	Origin   string
	At       time.Time
}

// Observer receives wrapper lifecycle events. Observers are called
// synchronously on the goroutine performing the operation (the runtime
// cleanup goroutine for violations) and must not block.
type Observer interface {
	OnLinearEvent(Event)
}

var (
	obsMu    sync.RWMutex
	obsList  []Observer
	obsCount atomic.Int32
)

// Subscribe registers an observer for lifecycle events.
func Subscribe(o Observer) {
	obsMu.Lock()
	defer obsMu.Unlock()
	obsList = append(obsList, o)
	obsCount.Store(int32(len(obsList)))
}

// Unsubscribe removes a previously registered observer.
func Unsubscribe(o Observer) {
	obsMu.Lock()
	defer obsMu.Unlock()
	for i, obs := range obsList {
		if obs == o {
			obsList = append(obsList[:i], obsList[i+1:]...)
			break
		}
	}
	obsCount.Store(int32(len(obsList)))
}

func emit(e Event) {
	if obsCount.Load() == 0 {
		return
	}
	obsMu.RLock()
	defer obsMu.RUnlock()
	for _, o := range obsList {
		o.OnLinearEvent(e)
	}
}
