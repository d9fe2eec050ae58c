package interfaces

import (
	"context"

	"delivery_hub/internal/domain/entities"
)

// ISupportPointRepository exposes the read-only support point catalog.
//
// In this design the catalog is fixed seed data; the interface matches the
// backend directory service that would supply it in a real deployment.
//
// GetByID returns a zero-ID point when the id is unknown.
type ISupportPointRepository interface {
	List(ctx context.Context) ([]entities.SupportPoint, error)
	GetByID(ctx context.Context, id int) (entities.SupportPoint, error)
}
