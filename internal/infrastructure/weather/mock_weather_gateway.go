package weather

import (
	"context"

	"delivery_hub/internal/domain/entities"
	"delivery_hub/internal/infrastructure/logger"
	"delivery_hub/internal/usecase/interfaces"
)

// MockWeatherGateway returns a fixed forecast regardless of location. A real
// provider would be keyed by the coordinates it receives.
type MockWeatherGateway struct{}

var _ interfaces.IWeatherGateway = (*MockWeatherGateway)(nil)

func NewMockWeatherGateway() *MockWeatherGateway {
	logger.S().Infof("[weather][gateway] mock mode enabled")
	return &MockWeatherGateway{}
}

func (g *MockWeatherGateway) Current(_ context.Context, loc entities.Coordinates) (entities.Weather, error) {
	logger.S().Infof("[weather][gateway] mock snapshot lat=%v lng=%v", loc.Lat, loc.Lng)
	return entities.Weather{
		Temperature: 28,
		Condition:   "Parcialmente nublado",
		Humidity:    65,
		WindSpeed:   12,
		FeelsLike:   30,
	}, nil
}
