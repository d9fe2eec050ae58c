package repository

import (
	"context"

	"delivery_hub/internal/domain/entities"
	"delivery_hub/internal/usecase/interfaces"
)

// SupportPointMemoryRepository serves the fixed support point catalog.
// The catalog is read-only after construction, so no locking is needed.
type SupportPointMemoryRepository struct {
	points []entities.SupportPoint
}

var _ interfaces.ISupportPointRepository = (*SupportPointMemoryRepository)(nil)

func NewSupportPointMemoryRepository() *SupportPointMemoryRepository {
	return &SupportPointMemoryRepository{points: seedSupportPoints()}
}

func (r *SupportPointMemoryRepository) List(_ context.Context) ([]entities.SupportPoint, error) {
	out := make([]entities.SupportPoint, len(r.points))
	copy(out, r.points)
	return out, nil
}

func (r *SupportPointMemoryRepository) GetByID(_ context.Context, id int) (entities.SupportPoint, error) {
	for _, p := range r.points {
		if p.ID == id {
			return p, nil
		}
	}
	return entities.SupportPoint{}, nil
}

func seedSupportPoints() []entities.SupportPoint {
	return []entities.SupportPoint{
		{
			ID:          1,
			Name:        "Ponto Vila",
			Address:     "Av. Princesa Isabel, 123 - Vila",
			Distance:    "0.8 km",
			Coordinates: entities.Coordinates{Lat: -23.7781, Lng: -45.3581},
			Services: []entities.ServiceTag{
				entities.ServiceBanho, entities.ServiceWifi, entities.ServiceAgua,
				entities.ServiceProtetor, entities.ServiceCapa, entities.ServiceMassagem,
				entities.ServiceEletricidade,
			},
			Available:    true,
			WaitTime:     5,
			Rating:       4.8,
			TotalReviews: 124,
			OpeningHours: "06:00 - 22:00",
			Phone:        "(12) 3896-1234",
			Amenities: entities.Amenities{
				Showers:   4,
				Parking:   true,
				Restrooms: true,
				Charging:  true,
				Lounge:    true,
			},
		},
		{
			ID:          2,
			Name:        "Ponto Perequê",
			Address:     "Av. Pedro Paula de Moraes, 456 - Perequê",
			Distance:    "1.2 km",
			Coordinates: entities.Coordinates{Lat: -23.7892, Lng: -45.3642},
			Services: []entities.ServiceTag{
				entities.ServiceBanho, entities.ServiceWifi, entities.ServiceAgua,
				entities.ServiceProtetor, entities.ServiceMicroondas, entities.ServiceEletricidade,
			},
			Available:    true,
			WaitTime:     12,
			Rating:       4.5,
			TotalReviews: 87,
			OpeningHours: "07:00 - 23:00",
			Phone:        "(12) 3896-5678",
			Amenities: entities.Amenities{
				Showers:   3,
				Parking:   true,
				Restrooms: true,
				Charging:  true,
			},
		},
		{
			ID:          3,
			Name:        "Ponto Barra Velha",
			Address:     "Estrada da Barra Velha, 789 - Barra Velha",
			Distance:    "2.1 km",
			Coordinates: entities.Coordinates{Lat: -23.8123, Lng: -45.3789},
			Services: []entities.ServiceTag{
				entities.ServiceBanho, entities.ServiceWifi, entities.ServiceAgua,
				entities.ServiceCapa, entities.ServiceMassagem, entities.ServiceEletricidade,
			},
			Available:    false,
			WaitTime:     0,
			Rating:       4.2,
			TotalReviews: 56,
			OpeningHours: "08:00 - 20:00",
			Phone:        "(12) 3896-9012",
			Amenities: entities.Amenities{
				Showers:   2,
				Restrooms: true,
				Charging:  true,
			},
		},
		{
			ID:          4,
			Name:        "Ponto Praia Grande Premium",
			Address:     "Av. Força Expedicionária Brasileira, 1254 - Praia Grande",
			Distance:    "0.5 km",
			Coordinates: entities.Coordinates{Lat: -23.7654, Lng: -45.3456},
			Services: []entities.ServiceTag{
				entities.ServiceBanho, entities.ServiceWifi, entities.ServiceAgua,
				entities.ServiceProtetor, entities.ServiceCapa, entities.ServiceMassagem,
				entities.ServiceMicroondas, entities.ServiceEletricidade, entities.ServiceLanche,
			},
			Available:    true,
			WaitTime:     3,
			Rating:       4.9,
			TotalReviews: 203,
			OpeningHours: "24 horas",
			Phone:        "(12) 3896-3456",
			Amenities: entities.Amenities{
				Showers:   6,
				Parking:   true,
				Restrooms: true,
				Charging:  true,
				Lounge:    true,
				Cafe:      true,
			},
		},
	}
}
