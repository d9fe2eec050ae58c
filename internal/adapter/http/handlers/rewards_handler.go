package handlers

import (
	"errors"
	"net/http"

	"delivery_hub/internal/adapter/http/dto/response"
	"delivery_hub/internal/adapter/http/middleware"
	"delivery_hub/internal/usecase"
	"delivery_hub/pkg"

	"github.com/gin-gonic/gin"
)

// RewardsHandler serves the rewards screen and the redemption actions.

type RewardsHandler struct {
	usecase usecase.IRewardsUseCase
}

func NewRewardsHandler(uc usecase.IRewardsUseCase) *RewardsHandler {
	return &RewardsHandler{usecase: uc}
}

func (h *RewardsHandler) Overview(c *gin.Context) {
	overview, err := h.usecase.Overview(c.Request.Context(), c.GetString(middleware.SessionIDKey))
	if err != nil {
		appErr := mapRewardsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRewardsOverview(overview))
}

func (h *RewardsHandler) Redeem(c *gin.Context) {
	redemption, err := h.usecase.Redeem(c.Request.Context(), c.GetString(middleware.SessionIDKey), c.Param("id"))
	if err != nil {
		appErr := mapRewardsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRedemption(redemption))
}

// RedeemSunscreen spends one sunscreen credit.
func (h *RewardsHandler) RedeemSunscreen(c *gin.Context) {
	redemption, err := h.usecase.RedeemSunscreenCredit(c.Request.Context(), c.GetString(middleware.SessionIDKey))
	if err != nil {
		appErr := mapRewardsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRedemption(redemption))
}

// BorrowRaincoat hands out the free raincoat loan code.
func (h *RewardsHandler) BorrowRaincoat(c *gin.Context) {
	redemption, err := h.usecase.BorrowRaincoat(c.Request.Context(), c.GetString(middleware.SessionIDKey))
	if err != nil {
		appErr := mapRewardsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRedemption(redemption))
}

func mapRewardsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Sessão expirada. Faça login novamente.", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrRewardNotFound):
		return pkg.NewDomainErrorSimple("REWARD_NOT_FOUND", "Reward not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRewardUnavailable):
		return pkg.NewDomainErrorSimple("REWARD_UNAVAILABLE", "Este item ainda não está disponível", http.StatusConflict)
	case errors.Is(err, usecase.ErrInsufficientPoints):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_POINTS", "Você não tem pontos suficientes", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInsufficientCredits):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_CREDITS", "Você não tem créditos suficientes", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
