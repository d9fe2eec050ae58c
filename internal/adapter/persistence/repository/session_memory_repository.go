package repository

import (
	"context"
	"sync"

	"delivery_hub/internal/domain/entities"
	"delivery_hub/internal/usecase/interfaces"
)

// SessionMemoryRepository holds all live sessions in process memory.
//
// Concurrency model: one mutex per session serializes actions against it;
// a mutator runs on a working copy that is only committed when it returns
// nil, so a rejected action leaves no partial state behind. This is the
// single-actor "apply one action atomically before the next" discipline the
// session model requires.
type SessionMemoryRepository struct {
	mu    sync.RWMutex
	slots map[string]*sessionSlot
}

type sessionSlot struct {
	mu   sync.Mutex
	data entities.Session
}

var _ interfaces.ISessionRepository = (*SessionMemoryRepository)(nil)

func NewSessionMemoryRepository() *SessionMemoryRepository {
	return &SessionMemoryRepository{slots: make(map[string]*sessionSlot)}
}

func (r *SessionMemoryRepository) Create(_ context.Context, s entities.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[s.ID] = &sessionSlot{data: cloneSession(s)}
	return nil
}

func (r *SessionMemoryRepository) Get(_ context.Context, id string) (entities.Session, error) {
	slot := r.slot(id)
	if slot == nil {
		return entities.Session{}, nil
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()
	return cloneSession(slot.data), nil
}

func (r *SessionMemoryRepository) Update(_ context.Context, id string, mutate interfaces.SessionMutator) (entities.Session, error) {
	slot := r.slot(id)
	if slot == nil {
		return entities.Session{}, nil
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	working := cloneSession(slot.data)
	if err := mutate(&working); err != nil {
		return entities.Session{}, err
	}
	slot.data = working
	return cloneSession(working), nil
}

// Delete is idempotent: removing an unknown session is not an error.
func (r *SessionMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, id)
	return nil
}

func (r *SessionMemoryRepository) slot(id string) *sessionSlot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.slots[id]
}

// cloneSession deep-copies everything a mutator may touch.
func cloneSession(s entities.Session) entities.Session {
	out := s
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	if s.Weather != nil {
		w := *s.Weather
		out.Weather = &w
	}
	if s.Location != nil {
		l := *s.Location
		out.Location = &l
	}
	out.Bookings = append([]entities.Booking(nil), s.Bookings...)
	out.Notifications = append([]entities.Notification(nil), s.Notifications...)
	return out
}
