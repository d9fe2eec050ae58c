package geo

import (
	"errors"
	"fmt"

	"delivery_hub/internal/domain/entities"
	"delivery_hub/internal/usecase/interfaces"
)

var ErrUnsupportedNavigationProvider = errors.New("unsupported navigation provider")

// NavigationGateway builds deep links into external navigation apps. The
// link is handed to the client as-is; nothing is fetched from the provider.
type NavigationGateway struct{}

var _ interfaces.INavigationGateway = (*NavigationGateway)(nil)

func NewNavigationGateway() *NavigationGateway {
	return &NavigationGateway{}
}

func (g *NavigationGateway) RouteURL(provider string, dest entities.Coordinates) (string, error) {
	switch provider {
	case "waze":
		return fmt.Sprintf("https://waze.com/ul?ll=%v,%v&navigate=yes", dest.Lat, dest.Lng), nil
	case "googlemaps":
		return fmt.Sprintf("https://www.google.com/maps/dir/?api=1&destination=%v,%v", dest.Lat, dest.Lng), nil
	}
	return "", ErrUnsupportedNavigationProvider
}
