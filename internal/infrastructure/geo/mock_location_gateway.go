package geo

import (
	"context"

	"delivery_hub/internal/domain/entities"
	"delivery_hub/internal/infrastructure/logger"
	"delivery_hub/internal/usecase/interfaces"
)

// MockLocationGateway pins every courier to a fixed position in São Paulo.
type MockLocationGateway struct{}

var _ interfaces.ILocationGateway = (*MockLocationGateway)(nil)

func NewMockLocationGateway() *MockLocationGateway {
	logger.S().Infof("[geo][gateway] mock mode enabled")
	return &MockLocationGateway{}
}

func (g *MockLocationGateway) Locate(_ context.Context) (entities.Coordinates, error) {
	return entities.Coordinates{Lat: -23.5630, Lng: -46.6525}, nil
}
