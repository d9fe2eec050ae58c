package usecase

import (
	"context"
	"errors"
	"strings"

	"delivery_hub/internal/domain/entities"
	"delivery_hub/internal/usecase/interfaces"
)

var (
	ErrSupportPointNotFound      = errors.New("support point not found")
	ErrUnknownNavigationProvider = errors.New("unknown navigation provider")
)

// Supported turn-by-turn navigation targets.
const (
	NavigationProviderWaze       = "waze"
	NavigationProviderGoogleMaps = "googlemaps"
)

// ICatalogUseCase exposes the read-only support point directory.
//
// Filter is a pure view over (catalog, term, service): it is re-derived on
// every call and never cached, so it cannot drift from the catalog.

type ICatalogUseCase interface {
	List(ctx context.Context) ([]entities.SupportPoint, error)
	Filter(ctx context.Context, term, service string) ([]entities.SupportPoint, error)
	GetByID(ctx context.Context, id int) (entities.SupportPoint, error)
	NavigationURL(ctx context.Context, id int, provider string) (string, error)
}

type CatalogUseCase struct {
	points interfaces.ISupportPointRepository
	nav    interfaces.INavigationGateway
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(points interfaces.ISupportPointRepository, nav interfaces.INavigationGateway) *CatalogUseCase {
	return &CatalogUseCase{points: points, nav: nav}
}

func (u *CatalogUseCase) List(ctx context.Context) ([]entities.SupportPoint, error) {
	return u.points.List(ctx)
}

// Filter keeps a point when its name or address contains the term
// (case-insensitive) and it offers the service, "all" or empty matching
// every service. Catalog order is preserved.
func (u *CatalogUseCase) Filter(ctx context.Context, term, service string) ([]entities.SupportPoint, error) {
	all, err := u.points.List(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	service = strings.TrimSpace(service)
	matchAll := service == "" || service == entities.ServiceFilterAll

	out := make([]entities.SupportPoint, 0, len(all))
	for _, p := range all {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Address), term) {
			continue
		}
		if !matchAll && !p.Offers(entities.ServiceTag(service)) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (u *CatalogUseCase) GetByID(ctx context.Context, id int) (entities.SupportPoint, error) {
	p, err := u.points.GetByID(ctx, id)
	if err != nil {
		return entities.SupportPoint{}, err
	}
	if p.ID == 0 {
		return entities.SupportPoint{}, ErrSupportPointNotFound
	}
	return p, nil
}

// NavigationURL builds the external navigation link for a point.
// Fire-and-forget: the provider's response is never consumed.
func (u *CatalogUseCase) NavigationURL(ctx context.Context, id int, provider string) (string, error) {
	if provider != NavigationProviderWaze && provider != NavigationProviderGoogleMaps {
		return "", ErrUnknownNavigationProvider
	}

	p, err := u.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return u.nav.RouteURL(provider, p.Coordinates)
}
