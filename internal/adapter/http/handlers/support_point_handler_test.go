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

func TestSupportPointHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewSupportPointHandler(uc)

	r := gin.New()
	r.GET("/v1/support-points", h.List)

	uc.EXPECT().Filter(gomock.Any(), "praia", "massagem").Return([]entities.SupportPoint{
		{ID: 4, Name: "Ponto Praia Grande Premium", Available: true, Services: []entities.ServiceTag{entities.ServiceMassagem}},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/support-points?search=praia&service=massagem", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["id"] != float64(4) {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestSupportPointHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non-numeric id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewSupportPointHandler(uc)

		r := gin.New()
		r.GET("/v1/support-points/:id", h.GetByID)

		req := httptest.NewRequest(http.MethodGet, "/v1/support-points/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown point", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewSupportPointHandler(uc)

		r := gin.New()
		r.GET("/v1/support-points/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), 99).Return(entities.SupportPoint{}, usecase.ErrSupportPointNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/support-points/99", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewSupportPointHandler(uc)

		r := gin.New()
		r.GET("/v1/support-points/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), 1).Return(entities.SupportPoint{ID: 1, Name: "Ponto Vila", Available: true}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/support-points/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["name"] != "Ponto Vila" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestSupportPointHandler_Navigation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("defaults to waze", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewSupportPointHandler(uc)

		r := gin.New()
		r.GET("/v1/support-points/:id/navigation", h.Navigation)

		uc.EXPECT().NavigationURL(gomock.Any(), 1, "waze").
			Return("https://waze.com/ul?ll=-23.7781,-45.3581&navigate=yes", nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/support-points/1/navigation", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["provider"] != "waze" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewSupportPointHandler(uc)

		r := gin.New()
		r.GET("/v1/support-points/:id/navigation", h.Navigation)

		uc.EXPECT().NavigationURL(gomock.Any(), 1, "apple").
			Return("", usecase.ErrUnknownNavigationProvider)

		req := httptest.NewRequest(http.MethodGet, "/v1/support-points/1/navigation?provider=apple", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
