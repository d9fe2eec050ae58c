package entities

// ServiceTag identifies a service offered at a support point.
type ServiceTag string

const (
	ServiceBanho        ServiceTag = "banho"
	ServiceWifi         ServiceTag = "wifi"
	ServiceAgua         ServiceTag = "agua"
	ServiceProtetor     ServiceTag = "protetor"
	ServiceCapa         ServiceTag = "capa"
	ServiceMassagem     ServiceTag = "massagem"
	ServiceMicroondas   ServiceTag = "microondas"
	ServiceEletricidade ServiceTag = "eletricidade"
	ServiceLanche       ServiceTag = "lanche"
)

// ServiceFilterAll is the catalog filter value that matches every point.
const ServiceFilterAll = "all"

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Amenities struct {
	Showers   int  `json:"showers"`
	Parking   bool `json:"parking"`
	Restrooms bool `json:"restrooms"`
	Charging  bool `json:"charging"`
	Lounge    bool `json:"lounge"`
	Cafe      bool `json:"cafe,omitempty"`
}

// SupportPoint is one physical rest stop in the courier support network.
//
// Domain notes:
//   - The catalog is read-only seed data for the process lifetime; a real
//     deployment would source it from a backend directory service.
//   - WaitTime is only meaningful while Available is true.
type SupportPoint struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Address      string       `json:"address"`
	Distance     string       `json:"distance"`
	Coordinates  Coordinates  `json:"coordinates"`
	Services     []ServiceTag `json:"services"`
	Available    bool         `json:"available"`
	WaitTime     int          `json:"wait_time"`
	Rating       float64      `json:"rating"`
	TotalReviews int          `json:"total_reviews"`
	OpeningHours string       `json:"opening_hours"`
	Phone        string       `json:"phone"`
	Amenities    Amenities    `json:"amenities"`
}

// Offers reports whether the point provides the given service.
func (p SupportPoint) Offers(tag ServiceTag) bool {
	for _, s := range p.Services {
		if s == tag {
			return true
		}
	}
	return false
}
