package interfaces

import (
	"context"

	"delivery_hub/internal/domain/entities"
)

// IWeatherGateway supplies the one-shot weather snapshot fetched when a
// session starts.
type IWeatherGateway interface {
	Current(ctx context.Context, loc entities.Coordinates) (entities.Weather, error)
}

// ILocationGateway resolves the courier's position during session bootstrap.
type ILocationGateway interface {
	Locate(ctx context.Context) (entities.Coordinates, error)
}
