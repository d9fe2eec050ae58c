package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"delivery_hub/internal/adapter/http/handlers/mocks"
	"delivery_hub/internal/domain/entities"
	"delivery_hub/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRewardsHandler_Overview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIRewardsUseCase(ctrl)
	h := NewRewardsHandler(uc)

	r := gin.New()
	r.GET("/v1/rewards", withSession("sess-1"), h.Overview)

	uc.EXPECT().Overview(gomock.Any(), "sess-1").Return(entities.RewardsOverview{
		Rewards: []entities.Reward{{ID: "massagem", Name: "Sessão de Massagem", Cost: 500, Available: true}},
		Rules:   []entities.PointsRule{{Action: "Entrega completada", Points: 10}},
		Points:  1250,
		Credits: 3,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/rewards", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["points"] != float64(1250) || body["credits"] != float64(3) {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestRewardsHandler_Redeem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("insufficient points", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRewardsUseCase(ctrl)
		h := NewRewardsHandler(uc)

		r := gin.New()
		r.POST("/v1/rewards/:id/redeem", withSession("sess-1"), h.Redeem)

		uc.EXPECT().Redeem(gomock.Any(), "sess-1", "massagem").
			Return(entities.Redemption{}, usecase.ErrInsufficientPoints)

		req := httptest.NewRequest(http.MethodPost, "/v1/rewards/massagem/redeem", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("unavailable reward", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRewardsUseCase(ctrl)
		h := NewRewardsHandler(uc)

		r := gin.New()
		r.POST("/v1/rewards/:id/redeem", withSession("sess-1"), h.Redeem)

		uc.EXPECT().Redeem(gomock.Any(), "sess-1", "kit-lanche").
			Return(entities.Redemption{}, usecase.ErrRewardUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/rewards/kit-lanche/redeem", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRewardsUseCase(ctrl)
		h := NewRewardsHandler(uc)

		r := gin.New()
		r.POST("/v1/rewards/:id/redeem", withSession("sess-1"), h.Redeem)

		uc.EXPECT().Redeem(gomock.Any(), "sess-1", "massagem").Return(entities.Redemption{
			RewardID: "massagem",
			Code:     "#RELAX789",
			Message:  "Massagem resgatada! Código: #RELAX789. Válida por 7 dias.",
			Points:   750,
			Credits:  3,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/rewards/massagem/redeem", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "#RELAX789" || body["points"] != float64(750) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestRewardsHandler_RedeemSunscreen(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no credits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRewardsUseCase(ctrl)
		h := NewRewardsHandler(uc)

		r := gin.New()
		r.POST("/v1/credits/sunscreen/redeem", withSession("sess-1"), h.RedeemSunscreen)

		uc.EXPECT().RedeemSunscreenCredit(gomock.Any(), "sess-1").
			Return(entities.Redemption{}, usecase.ErrInsufficientCredits)

		req := httptest.NewRequest(http.MethodPost, "/v1/credits/sunscreen/redeem", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "Você não tem créditos suficientes" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRewardsUseCase(ctrl)
		h := NewRewardsHandler(uc)

		r := gin.New()
		r.POST("/v1/credits/sunscreen/redeem", withSession("sess-1"), h.RedeemSunscreen)

		uc.EXPECT().RedeemSunscreenCredit(gomock.Any(), "sess-1").Return(entities.Redemption{
			Message: "Protetor solar liberado! Retire no ponto de apoio selecionado.",
			Points:  1250,
			Credits: 2,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/credits/sunscreen/redeem", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRewardsHandler_BorrowRaincoat(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIRewardsUseCase(ctrl)
	h := NewRewardsHandler(uc)

	r := gin.New()
	r.POST("/v1/rentals/raincoat", withSession("sess-1"), h.BorrowRaincoat)

	uc.EXPECT().BorrowRaincoat(gomock.Any(), "sess-1").Return(entities.Redemption{
		Code:    "#CHUVA123",
		Message: "Capa de chuva liberada! Código: #CHUVA123. Retire no ponto selecionado.",
		Points:  1250,
		Credits: 3,
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/rentals/raincoat", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["code"] != "#CHUVA123" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}
