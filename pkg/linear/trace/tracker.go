package trace

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dzmitry-lahoda-forks/linear-type/pkg/linear"
)

// Tracker observes wrapper lifecycle events, logging them and keeping the
// live set of unconsumed wrappers.
type Tracker struct {
	logger *zap.Logger

	mu         sync.Mutex
	live       map[uuid.UUID]linear.Event
	violations int
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger attaches a zap logger. Without it the Tracker logs nowhere.
func WithLogger(l *zap.Logger) Option {
	return func(t *Tracker) {
		if l != nil {
			t.logger = l
		}
	}
}

// New creates a Tracker. It does not observe anything until Install is
// called.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		logger: zap.NewNop(),
		live:   make(map[uuid.UUID]linear.Event),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Install subscribes the Tracker to wrapper lifecycle events.
func (t *Tracker) Install() {
	linear.Subscribe(t)
}

// Remove unsubscribes the Tracker.
func (t *Tracker) Remove() {
	linear.Unsubscribe(t)
}

// OnLinearEvent implements linear.Observer.
func (t *Tracker) OnLinearEvent(e linear.Event) {
	fields := []zap.Field{
		zap.String("id", e.ID.String()),
		zap.String("type", e.TypeName),
		zap.String("origin", e.Origin),
		zap.Time("at", e.At),
	}

	t.mu.Lock()
	switch e.Kind {
	case linear.EventCreated:
		t.live[e.ID] = e
	case linear.EventConsumed:
		delete(t.live, e.ID)
	case linear.EventViolated:
		delete(t.live, e.ID)
		t.violations++
	}
	t.mu.Unlock()

	switch e.Kind {
	case linear.EventCreated:
		t.logger.Debug("linear value created", fields...)
	case linear.EventConsumed:
		t.logger.Debug("linear value consumed", fields...)
	case linear.EventViolated:
		t.logger.Error("linear value dropped without being consumed", fields...)
	}
}

// Live returns the number of wrappers created but not yet consumed.
func (t *Tracker) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.live)
}

// Check returns nil when every observed wrapper has been consumed and no
// violation was reported. Otherwise it returns an error enumerating the
// outstanding obligations, one line per live wrapper.
func (t *Tracker) Check() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.live) == 0 && t.violations == 0 {
		return nil
	}

	lines := make([]string, 0, len(t.live))
	for _, e := range t.live {
		lines = append(lines, fmt.Sprintf("%s %s created at %s", e.ID, e.TypeName, e.Origin))
	}
	sort.Strings(lines)

	var b strings.Builder
	fmt.Fprintf(&b, "trace: %d live linear value(s), %d violation(s)", len(t.live), t.violations)
	for _, line := range lines {
		b.WriteString("\n\t")
		b.WriteString(line)
	}
	return fmt.Errorf("%s", b.String())
}
