package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"delivery_hub/internal/adapter/http/dto/response"
	"delivery_hub/internal/adapter/http/middleware"
	"delivery_hub/internal/usecase"
	"delivery_hub/pkg"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the notification center endpoints.

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

func (h *NotificationHandler) List(c *gin.Context) {
	notes, unread, err := h.usecase.List(c.Request.Context(), c.GetString(middleware.SessionIDKey))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNotifications(notes, unread))
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	note, err := h.usecase.MarkRead(c.Request.Context(), c.GetString(middleware.SessionIDKey), c.Param("id"))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNotification(note))
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	flipped, err := h.usecase.MarkAllRead(c.Request.Context(), c.GetString(middleware.SessionIDKey))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{
		Message: fmt.Sprintf("Todas as notificações marcadas como lidas (%d)", flipped),
	})
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Sessão expirada. Faça login novamente.", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
