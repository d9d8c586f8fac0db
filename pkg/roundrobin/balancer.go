package roundrobin

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/peter-kozarec/cyclic/pkg/circular"
)

var ErrNoSlots = errors.New("roundrobin: no slots")

// Slot is one entry of the rotation, tagged with a stable id so callers can
// correlate selections across the lifetime of the balancer.
type Slot[T any] struct {
	ID    uuid.UUID
	Value T
}

// Balancer hands out slots in strict rotation. It wraps a circular.Buffer
// with a mutex, so Next is safe to call from multiple goroutines.
type Balancer[T any] struct {
	logger *zap.Logger

	mu   sync.Mutex
	ring *circular.Buffer[Slot[T]]
}

func New[T any](logger *zap.Logger, values ...T) (*Balancer[T], error) {
	if len(values) == 0 {
		return nil, ErrNoSlots
	}

	slots := make([]Slot[T], len(values))
	for i, v := range values {
		slots[i] = Slot[T]{ID: uuid.Must(uuid.NewV7()), Value: v}
	}

	logger.Info("balancer created", zap.Int("slots", len(slots)))
	return &Balancer[T]{
		logger: logger,
		ring:   circular.FromSlice(slots),
	}, nil
}

// Next returns the slot under the cursor and rotates to the following one.
func (b *Balancer[T]) Next() Slot[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Advance cannot fail here, New rejects an empty slot set.
	s, _ := b.ring.Advance()
	return s
}

func (b *Balancer[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ring.Len()
}

// Reset moves the rotation back to the first slot.
func (b *Balancer[T]) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.ring.ResetCursor(0); err != nil {
		b.logger.Warn("unable to reset rotation", zap.Error(err))
		return
	}
	b.logger.Debug("rotation reset")
}
