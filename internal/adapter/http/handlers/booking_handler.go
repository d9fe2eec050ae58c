package handlers

import (
	"errors"
	"net/http"

	"delivery_hub/internal/adapter/http/dto/request"
	"delivery_hub/internal/adapter/http/dto/response"
	"delivery_hub/internal/adapter/http/middleware"
	"delivery_hub/internal/domain/entities"
	"delivery_hub/internal/usecase"
	"delivery_hub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)

// BookingHandler drives the reservation workflow endpoints: the draft steps,
// confirmation and the booking list.

type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

func (h *BookingHandler) SelectPoint(c *gin.Context) {
	var payload request.SelectPointRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.SelectPoint(c.Request.Context(), c.GetString(middleware.SessionIDKey), payload.PointID)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookingDraft(draft))
}

func (h *BookingHandler) ChooseService(c *gin.Context) {
	var payload request.ChooseServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.ChooseService(c.Request.Context(), c.GetString(middleware.SessionIDKey), entities.ServiceTag(payload.Service))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookingDraft(draft))
}

func (h *BookingHandler) SetSchedule(c *gin.Context) {
	var payload request.ScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.SetSchedule(c.Request.Context(), c.GetString(middleware.SessionIDKey), payload.Date, payload.Time)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookingDraft(draft))
}

func (h *BookingHandler) GetDraft(c *gin.Context) {
	draft, err := h.usecase.Draft(c.Request.Context(), c.GetString(middleware.SessionIDKey))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookingDraft(draft))
}

func (h *BookingHandler) ClearDraft(c *gin.Context) {
	if err := h.usecase.ClearDraft(c.Request.Context(), c.GetString(middleware.SessionIDKey)); err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Seleção descartada"})
}

// Confirm turns the draft into a booking.
func (h *BookingHandler) Confirm(c *gin.Context) {
	booking, err := h.usecase.Confirm(c.Request.Context(), c.GetString(middleware.SessionIDKey))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.ConfirmedBookingResponse{
		Booking: response.FromBooking(booking),
		Message: "Reserva confirmada com sucesso!",
	})
}

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.usecase.List(c.Request.Context(), c.GetString(middleware.SessionIDKey))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

// Cancel is idempotent: cancelling an id that is not there still succeeds.
func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.usecase.Cancel(c.Request.Context(), c.GetString(middleware.SessionIDKey), c.Param("id")); err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Reserva cancelada com sucesso!"})
}

// ConfirmPending promotes a pending booking to confirmed.
func (h *BookingHandler) ConfirmPending(c *gin.Context) {
	booking, err := h.usecase.ConfirmPending(c.Request.Context(), c.GetString(middleware.SessionIDKey), c.Param("id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(booking))
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingDate),
		errors.Is(err, usecase.ErrPastBookingDate),
		errors.Is(err, usecase.ErrInvalidTimeSlot):
		return pkg.NewDomainErrorSimple("INVALID_SCHEDULE", "Invalid booking date or time", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Sessão expirada. Faça login novamente.", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrSupportPointNotFound), errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_TARGET_NOT_FOUND", "Resource not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSupportPointUnavailable):
		return pkg.NewDomainErrorSimple("SUPPORT_POINT_UNAVAILABLE", "Este ponto está indisponível no momento", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoPointSelected),
		errors.Is(err, usecase.ErrNoServiceChosen),
		errors.Is(err, usecase.ErrServiceNotOffered),
		errors.Is(err, usecase.ErrIncompleteBooking),
		errors.Is(err, usecase.ErrInvalidBookingTransition):
		return pkg.NewDomainErrorSimple("BOOKING_STATE_CONFLICT", "Booking workflow out of order", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
