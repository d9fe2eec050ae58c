package response

import (
	"delivery_hub/internal/domain/entities"
)

type SupportPointResponse struct {
	ID           int                  `json:"id"`
	Name         string               `json:"name"`
	Address      string               `json:"address"`
	Distance     string               `json:"distance"`
	Coordinates  entities.Coordinates `json:"coordinates"`
	Services     []string             `json:"services"`
	Available    bool                 `json:"available"`
	WaitTime     int                  `json:"wait_time"`
	Rating       float64              `json:"rating"`
	TotalReviews int                  `json:"total_reviews"`
	OpeningHours string               `json:"opening_hours"`
	Phone        string               `json:"phone"`
	Amenities    entities.Amenities   `json:"amenities"`
}

func FromSupportPoint(p entities.SupportPoint) SupportPointResponse {
	services := make([]string, 0, len(p.Services))
	for _, s := range p.Services {
		services = append(services, string(s))
	}
	return SupportPointResponse{
		ID:           p.ID,
		Name:         p.Name,
		Address:      p.Address,
		Distance:     p.Distance,
		Coordinates:  p.Coordinates,
		Services:     services,
		Available:    p.Available,
		WaitTime:     p.WaitTime,
		Rating:       p.Rating,
		TotalReviews: p.TotalReviews,
		OpeningHours: p.OpeningHours,
		Phone:        p.Phone,
		Amenities:    p.Amenities,
	}
}

func FromSupportPoints(points []entities.SupportPoint) []SupportPointResponse {
	out := make([]SupportPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, FromSupportPoint(p))
	}
	return out
}

type NavigationResponse struct {
	Provider string `json:"provider"`
	URL      string `json:"url"`
}
