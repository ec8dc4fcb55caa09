// Package memory implementa el registro de sesiones revocadas en memoria del proceso.
// Es el valor por defecto (SESSION_STORE=memory); no se comparte entre réplicas.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/panel-admin/internal/domain/repository"
)

var _ repository.RevokedSessionRepository = (*SessionStore)(nil)

// DefaultSweepInterval período de limpieza de entradas vencidas.
const DefaultSweepInterval = time.Minute

// SessionStore mapa huella → vencimiento protegido por mutex, con un janitor que descarta
// las entradas vencidas.
type SessionStore struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
	now     func() time.Time

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// NewSessionStore crea el registro y arranca el janitor. Llamar Close para detenerlo.
func NewSessionStore(sweepInterval time.Duration) *SessionStore {
	if sweepInterval <= 0 {
		sweepInterval = DefaultSweepInterval
	}
	s := &SessionStore{
		revoked: make(map[string]time.Time),
		now:     time.Now,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go s.janitor(sweepInterval)
	return s
}

func (s *SessionStore) janitor(every time.Duration) {
	defer close(s.done)
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			s.sweep()
		case <-s.stop:
			return
		}
	}
}

func (s *SessionStore) sweep() {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for fp, exp := range s.revoked {
		if !exp.After(now) {
			delete(s.revoked, fp)
		}
	}
}

// Revoke registra la huella hasta expiresAt.
func (s *SessionStore) Revoke(_ context.Context, fingerprint string, expiresAt time.Time) error {
	s.mu.Lock()
	s.revoked[fingerprint] = expiresAt
	s.mu.Unlock()
	return nil
}

// IsRevoked indica si la huella está revocada y vigente.
func (s *SessionStore) IsRevoked(_ context.Context, fingerprint string) (bool, error) {
	s.mu.RLock()
	exp, ok := s.revoked[fingerprint]
	s.mu.RUnlock()
	return ok && exp.After(s.now()), nil
}

// Len cantidad de entradas (incluye vencidas aún no barridas).
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.revoked)
}

// Close detiene el janitor y espera a que termine. Es seguro llamarlo varias veces.
func (s *SessionStore) Close() error {
	s.once.Do(func() {
		close(s.stop)
	})
	<-s.done
	return nil
}
