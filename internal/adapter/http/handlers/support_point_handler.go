package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"delivery_hub/internal/adapter/http/dto/response"
	"delivery_hub/internal/usecase"
	"delivery_hub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPointID = pkg.NewDomainErrorSimple("INVALID_POINT_ID", "Invalid support point id", http.StatusBadRequest)

// SupportPointHandler serves the read-only catalog endpoints.

type SupportPointHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewSupportPointHandler(uc usecase.ICatalogUseCase) *SupportPointHandler {
	return &SupportPointHandler{usecase: uc}
}

// List returns the catalog, filtered by the optional search and service
// query parameters. With neither present it is the full directory.
func (h *SupportPointHandler) List(c *gin.Context) {
	points, err := h.usecase.Filter(c.Request.Context(), c.Query("search"), c.Query("service"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSupportPoints(points))
}

func (h *SupportPointHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidPointID.HTTPStatus, errInvalidPointID.ToHTTPError())
		return
	}

	point, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSupportPoint(point))
}

// Navigation builds the external deep link for the requested provider.
func (h *SupportPointHandler) Navigation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidPointID.HTTPStatus, errInvalidPointID.ToHTTPError())
		return
	}

	provider := c.DefaultQuery("provider", usecase.NavigationProviderWaze)
	url, err := h.usecase.NavigationURL(c.Request.Context(), id, provider)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NavigationResponse{Provider: provider, URL: url})
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownNavigationProvider):
		return pkg.NewDomainErrorSimple("UNKNOWN_NAVIGATION_PROVIDER", "Unknown navigation provider", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSupportPointNotFound):
		return pkg.NewDomainErrorSimple("SUPPORT_POINT_NOT_FOUND", "Support point not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
