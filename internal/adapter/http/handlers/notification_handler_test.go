package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"delivery_hub/internal/adapter/http/handlers/mocks"
	"delivery_hub/internal/domain/entities"
	"delivery_hub/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNotificationHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockINotificationUseCase(ctrl)
	h := NewNotificationHandler(uc)

	r := gin.New()
	r.GET("/v1/notifications", withSession("sess-1"), h.List)

	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	uc.EXPECT().List(gomock.Any(), "sess-1").Return([]entities.Notification{
		{ID: "n1", Title: "Novo ponto disponível", Type: entities.NotificationInfo, Timestamp: now},
	}, 1, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/notifications", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["unread_count"] != float64(1) {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/notifications/:id/read", withSession("sess-1"), h.MarkRead)

		uc.EXPECT().MarkRead(gomock.Any(), "sess-1", "nope").
			Return(entities.Notification{}, usecase.ErrNotificationNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/notifications/nope/read", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/notifications/:id/read", withSession("sess-1"), h.MarkRead)

		uc.EXPECT().MarkRead(gomock.Any(), "sess-1", "n1").
			Return(entities.Notification{ID: "n1", Read: true}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/notifications/n1/read", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["read"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestNotificationHandler_MarkAllRead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockINotificationUseCase(ctrl)
	h := NewNotificationHandler(uc)

	r := gin.New()
	r.PATCH("/v1/notifications/read-all", withSession("sess-1"), h.MarkAllRead)

	uc.EXPECT().MarkAllRead(gomock.Any(), "sess-1").Return(2, nil)

	req := httptest.NewRequest(http.MethodPatch, "/v1/notifications/read-all", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["message"] != "Todas as notificações marcadas como lidas (2)" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}
