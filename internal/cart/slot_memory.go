package cart

import (
	"context"
	"sync"
)

// MemorySlot slot en proceso; se pierde al reiniciar.
type MemorySlot struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewMemorySlot crea un slot vacío.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{m: map[string]string{}}
}

func (s *MemorySlot) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *MemorySlot) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}
