package session

import (
	"context"
	"sync"
	"time"

	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
	"github.com/Pixoll/db-uni-project-api/internal/domain/repository"
)

var _ repository.SessionStore = (*MemoryStore)(nil)

type memoryEntry struct {
	session   entity.Session
	expiresAt time.Time
}

// MemoryStore registro en memoria del proceso. Se pierde al reiniciar; solo desarrollo y tests.
type MemoryStore struct {
	mu        sync.Mutex
	sessions  map[string]memoryEntry
	employees map[string]string
	now       func() time.Time
}

// NewMemoryStore registro vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions:  make(map[string]memoryEntry),
		employees: make(map[string]string),
		now:       time.Now,
	}
}

// Save registra la sesión hasta now+ttl y la asocia al empleado. Purga antes todas las expiradas,
// se hayan leído o no.
func (m *MemoryStore) Save(_ context.Context, s entity.Session, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.purgeExpiredLocked(now)
	m.sessions[s.ID] = memoryEntry{session: s, expiresAt: now.Add(ttl)}
	m.employees[employeeKey(s.Role, s.Rut)] = s.ID
	return nil
}

// Get (nil, nil) si la sesión no existe o expiró; una expirada se borra al leerla.
func (m *MemoryStore) Get(_ context.Context, id string) (*entity.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	if !m.now().Before(e.expiresAt) {
		m.deleteLocked(id)
		return nil, nil
	}
	s := e.session
	return &s, nil
}

// Revoke borra la sesión; no falla si no existe.
func (m *MemoryStore) Revoke(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteLocked(id)
	return nil
}

// RevokeEmployee borra la sesión vigente del empleado, si la hay.
func (m *MemoryStore) RevokeEmployee(_ context.Context, role, rut string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.employees[employeeKey(role, rut)]; ok {
		m.deleteLocked(id)
	}
	return nil
}

// Close no libera nada; existe para cumplir SessionStore.
func (m *MemoryStore) Close() error {
	return nil
}

func (m *MemoryStore) deleteLocked(id string) {
	e, ok := m.sessions[id]
	if !ok {
		return
	}
	delete(m.sessions, id)
	ekey := employeeKey(e.session.Role, e.session.Rut)
	if m.employees[ekey] == id {
		delete(m.employees, ekey)
	}
}

func (m *MemoryStore) purgeExpiredLocked(now time.Time) {
	for id, e := range m.sessions {
		if !now.Before(e.expiresAt) {
			m.deleteLocked(id)
		}
	}
}
