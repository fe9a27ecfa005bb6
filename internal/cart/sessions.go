package cart

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"
)

const (
	// MaxLiveSessions carritos abiertos que se mantienen en memoria.
	MaxLiveSessions = 10_000
	// SessionIdleTTL tiempo sin uso tras el que un carrito se descarta de memoria;
	// el siguiente Open lo rehidrata desde el slot.
	SessionIdleTTL = 30 * time.Minute
)

// Sessions abre el carrito de cada sesión sobre un slot compartido. La clave de
// cada sesión es "<base>:<sessionID>"; el slot nunca se comparte entre sesiones.
//
// Todas las peticiones de una misma sesión reciben el mismo *Store, de modo que
// sus mutaciones se serializan con el mutex del carrito y ninguna pisa a otra.
type Sessions struct {
	slot Slot
	base string
	log  zerolog.Logger

	mu   sync.Mutex
	live *expirable.LRU[string, *Store]
}

// NewSessions construye el proveedor de carritos por sesión.
func NewSessions(slot Slot, baseKey string, log zerolog.Logger) *Sessions {
	return newSessions(slot, baseKey, log, MaxLiveSessions, SessionIdleTTL)
}

func newSessions(slot Slot, baseKey string, log zerolog.Logger, size int, ttl time.Duration) *Sessions {
	if baseKey == "" {
		baseKey = DefaultKey
	}
	return &Sessions{
		slot: slot,
		base: baseKey,
		log:  log,
		live: expirable.NewLRU[string, *Store](size, nil, ttl),
	}
}

// Open devuelve el carrito vivo de la sesión o lo rehidrata desde el slot.
func (m *Sessions) Open(ctx context.Context, sessionID string) *Store {
	key := m.Key(sessionID)

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.live.Get(key); ok {
		return s
	}
	s := Open(ctx, m.slot, key, m.log)
	m.live.Add(key, s)
	return s
}

// Key clave del slot para la sesión.
func (m *Sessions) Key(sessionID string) string {
	if sessionID == "" {
		return m.base
	}
	return m.base + ":" + sessionID
}
