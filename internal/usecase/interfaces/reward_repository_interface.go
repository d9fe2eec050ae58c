package interfaces

import (
	"context"

	"delivery_hub/internal/domain/entities"
)

// IRewardRepository exposes the read-only rewards catalog and the
// points-earning table.
//
// GetByID returns a zero-ID reward when the id is unknown.
type IRewardRepository interface {
	List(ctx context.Context) ([]entities.Reward, error)
	GetByID(ctx context.Context, id string) (entities.Reward, error)
	EarningRules(ctx context.Context) ([]entities.PointsRule, error)
}
