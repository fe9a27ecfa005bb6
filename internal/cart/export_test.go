package cart

import (
	"time"

	"github.com/rs/zerolog"
)

// NewSessionsWithLimits expone los límites de la caché de sesiones a los tests.
func NewSessionsWithLimits(slot Slot, baseKey string, size int, ttl time.Duration) *Sessions {
	return newSessions(slot, baseKey, zerolog.Nop(), size, ttl)
}
