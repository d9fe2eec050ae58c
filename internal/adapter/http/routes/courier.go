package routes

import (
	"delivery_hub/internal/adapter/http/handlers"
	"delivery_hub/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth          = "/auth"
	PathSupportPoints = "/support-points"
	PathBookingDraft  = "/booking-draft"
	PathBookings      = "/bookings"
	PathRewards       = "/rewards"
	PathNotifications = "/notifications"
)

type courierHandlers struct {
	auth          *handlers.AuthHandler
	points        *handlers.SupportPointHandler
	bookings      *handlers.BookingHandler
	rewards       *handlers.RewardsHandler
	notifications *handlers.NotificationHandler
}

func addCourierRoutes(rg *gin.RouterGroup, jwtSecret string, h courierHandlers) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", h.auth.Login)
		auth.POST("/register", h.auth.Register)
		auth.POST("/logout", middleware.RequireSession(jwtSecret), h.auth.Logout)
	}

	// Everything below requires an open session.
	private := rg.Group("")
	private.Use(middleware.RequireSession(jwtSecret))

	private.GET("/me", h.auth.Profile)
	private.GET("/weather", h.auth.Weather)

	points := private.Group(PathSupportPoints)
	{
		points.GET("", h.points.List)
		points.GET("/:id", h.points.GetByID)
		points.GET("/:id/navigation", h.points.Navigation)
	}

	draft := private.Group(PathBookingDraft)
	{
		draft.GET("", h.bookings.GetDraft)
		draft.DELETE("", h.bookings.ClearDraft)
		draft.PUT("/point", h.bookings.SelectPoint)
		draft.PUT("/service", h.bookings.ChooseService)
		draft.PUT("/schedule", h.bookings.SetSchedule)
	}

	bookings := private.Group(PathBookings)
	{
		bookings.POST("", h.bookings.Confirm)
		bookings.GET("", h.bookings.List)
		bookings.DELETE("/:id", h.bookings.Cancel)
		bookings.PATCH("/:id/confirm", h.bookings.ConfirmPending)
	}

	rewards := private.Group(PathRewards)
	{
		rewards.GET("", h.rewards.Overview)
		rewards.POST("/:id/redeem", h.rewards.Redeem)
	}
	private.POST("/credits/sunscreen/redeem", h.rewards.RedeemSunscreen)
	private.POST("/rentals/raincoat", h.rewards.BorrowRaincoat)

	notifications := private.Group(PathNotifications)
	{
		notifications.GET("", h.notifications.List)
		notifications.PATCH("/read-all", h.notifications.MarkAllRead)
		notifications.PATCH("/:id/read", h.notifications.MarkRead)
	}
}
