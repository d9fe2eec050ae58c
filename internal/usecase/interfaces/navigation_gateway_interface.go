package interfaces

import "delivery_hub/internal/domain/entities"

// INavigationGateway builds the external turn-by-turn navigation URL for a
// destination. Fire-and-forget: no response from the provider is consumed.
type INavigationGateway interface {
	RouteURL(provider string, dest entities.Coordinates) (string, error)
}
