package interfaces

import (
	"context"

	"delivery_hub/internal/domain/entities"
)

// SessionMutator is applied to a working copy of the session. Returning an
// error aborts the update and leaves the stored session untouched.
type SessionMutator func(s *entities.Session) error

// ISessionRepository abstracts the in-memory session store.
//
// Update must apply one mutator at a time per session and commit its effects
// atomically: concurrent actions against the same session are serialized,
// and a failed mutator must not leave partial state visible.
//
// Get and Update return a zero-ID session when the id is unknown.
type ISessionRepository interface {
	Create(ctx context.Context, s entities.Session) error
	Get(ctx context.Context, id string) (entities.Session, error)
	Update(ctx context.Context, id string, mutate SessionMutator) (entities.Session, error)
	Delete(ctx context.Context, id string) error
}
