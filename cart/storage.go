package cart

import (
	"context"
	"sync"
)

// Storage is the durable key-value persistence behind one cart: read
// once at startup, written on every mutation.
type Storage interface {
	Load(ctx context.Context) ([]Line, error)
	Save(ctx context.Context, lines []Line) error
}

// Watcher is the optional change-broadcast side of a Storage: other
// sessions of the same cart receive the whole saved list and converge
// on it.
type Watcher interface {
	Watch(ctx context.Context) (<-chan []Line, func(), error)
}

// MemoryStorage keeps the cart in process memory. Two carts sharing
// one MemoryStorage behave like two tabs of the same browser profile.
type MemoryStorage struct {
	mu       sync.Mutex
	lines    []Line
	watchers []chan []Line
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Load(context.Context) ([]Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]Line, len(s.lines))
	copy(cp, s.lines)
	return cp, nil
}

func (s *MemoryStorage) Save(_ context.Context, lines []Line) error {
	s.mu.Lock()
	s.lines = make([]Line, len(lines))
	copy(s.lines, lines)
	watchers := append([]chan []Line(nil), s.watchers...)
	s.mu.Unlock()

	for _, ch := range watchers {
		snapshot := make([]Line, len(lines))
		copy(snapshot, lines)
		select {
		case ch <- snapshot:
		default:
		}
	}
	return nil
}

func (s *MemoryStorage) Watch(context.Context) (<-chan []Line, func(), error) {
	ch := make(chan []Line, 4)
	s.mu.Lock()
	s.watchers = append(s.watchers, ch)
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, c := range s.watchers {
			if c == ch {
				s.watchers = append(s.watchers[:i], s.watchers[i+1:]...)
				close(ch)
				return
			}
		}
	}
	return ch, cancel, nil
}
