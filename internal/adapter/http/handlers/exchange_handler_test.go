package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"swapcred/internal/adapter/http/handlers/mocks"
	"swapcred/internal/adapter/http/middleware"
	"swapcred/internal/domain/entities"
	"swapcred/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func authedRouter(callerID string) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetCallerID(c, callerID)
		c.Next()
	})
	return r
}

func TestExchangeHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExchangeUseCase(ctrl)
		h := NewExchangeHandler(uc)

		r := authedRouter("owner-1")
		r.POST("/v1/exchanges", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/exchanges", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExchangeUseCase(ctrl)
		h := NewExchangeHandler(uc)

		r := authedRouter("owner-1")
		r.POST("/v1/exchanges", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/exchanges", bytes.NewBufferString(`{"productName":"Headphones"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExchangeUseCase(ctrl)
		h := NewExchangeHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "owner-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, ownerID string, in usecase.CreateExchangeInput) (entities.ExchangeRequest, error) {
				if in.ProductName != "Headphones" || len(in.Images) != 1 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.ExchangeRequest{ID: "ex-1", OwnerID: ownerID, Status: entities.ExchangeStatusPending, ProductName: in.ProductName}, nil
			})

		r := authedRouter("owner-1")
		r.POST("/v1/exchanges", h.Create)

		body := `{"productName":"Headphones","brand":"Sonica","condition":"like new","description":"boxed","images":[{"url":"https://img.example/1.jpg"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/exchanges", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["status"] != "pending" || resp["ownerId"] != "owner-1" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})
}

func TestExchangeHandler_SubmitShipping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad shipping date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExchangeUseCase(ctrl)
		h := NewExchangeHandler(uc)

		r := authedRouter("owner-1")
		r.PATCH("/v1/exchanges/:id/shipping", h.SubmitShipping)

		body := `{"carrierName":"BlueDart","trackingNumber":"BD1","shippingDate":"21/08/2026"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/exchanges/ex-1/shipping", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not approved yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExchangeUseCase(ctrl)
		h := NewExchangeHandler(uc)

		uc.EXPECT().SubmitShipping(gomock.Any(), "owner-1", "ex-1", gomock.Any()).
			Return(entities.ExchangeRequest{}, &usecase.StateError{Field: "status", Current: "pending", Required: "approved"})

		r := authedRouter("owner-1")
		r.PATCH("/v1/exchanges/:id/shipping", h.SubmitShipping)

		body := `{"carrierName":"BlueDart","trackingNumber":"BD1","shippingDate":"2026-08-21"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/exchanges/ex-1/shipping", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExchangeUseCase(ctrl)
		h := NewExchangeHandler(uc)

		uc.EXPECT().SubmitShipping(gomock.Any(), "owner-1", "ex-1", usecase.ShippingInput{
			CarrierName: "BlueDart", TrackingNumber: "BD1", ShippingDate: "2026-08-21",
		}).Return(entities.ExchangeRequest{ID: "ex-1", TransitStatus: entities.TransitStatusShipped}, nil)

		r := authedRouter("owner-1")
		r.PATCH("/v1/exchanges/:id/shipping", h.SubmitShipping)

		body := `{"carrierName":"BlueDart","trackingNumber":"BD1","shippingDate":"2026-08-21"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/exchanges/ex-1/shipping", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestExchangeHandler_Cancel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExchangeUseCase(ctrl)
		h := NewExchangeHandler(uc)

		uc.EXPECT().Cancel(gomock.Any(), "owner-2", "ex-1").Return(usecase.ErrNotOwner)

		r := authedRouter("owner-2")
		r.DELETE("/v1/exchanges/:id", h.Cancel)

		req := httptest.NewRequest(http.MethodDelete, "/v1/exchanges/ex-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("no content on success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExchangeUseCase(ctrl)
		h := NewExchangeHandler(uc)

		uc.EXPECT().Cancel(gomock.Any(), "owner-1", "ex-1").Return(nil)

		r := authedRouter("owner-1")
		r.DELETE("/v1/exchanges/:id", h.Cancel)

		req := httptest.NewRequest(http.MethodDelete, "/v1/exchanges/ex-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestMapExchangeError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", &usecase.ValidationError{Field: "images", Reason: "required"}, http.StatusBadRequest, "INVALID_REQUEST"},
		{"invalid id", usecase.ErrInvalidExchangeID, http.StatusBadRequest, "INVALID_REQUEST"},
		{"not owner", usecase.ErrNotOwner, http.StatusForbidden, "FORBIDDEN"},
		{"admin required", usecase.ErrAdminRequired, http.StatusForbidden, "FORBIDDEN"},
		{"exchange missing", usecase.ErrExchangeNotFound, http.StatusNotFound, "EXCHANGE_NOT_FOUND"},
		{"warehouse missing", usecase.ErrWarehouseNotFound, http.StatusNotFound, "WAREHOUSE_NOT_FOUND"},
		{"user missing", usecase.ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
		{"state", &usecase.StateError{Field: "status", Current: "pending", Required: "approved"}, http.StatusConflict, "ILLEGAL_STATE"},
		{"concurrent", usecase.ErrConcurrentUpdate, http.StatusConflict, "CONFLICT"},
		{"gateway", usecase.ErrGatewayUnavailable, http.StatusBadGateway, "LEDGER_UNAVAILABLE"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := mapExchangeError(tc.err)
			if appErr.HTTPStatus != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, appErr.HTTPStatus)
			}
			if appErr.Code != tc.wantCode {
				t.Fatalf("expected code %s, got %s", tc.wantCode, appErr.Code)
			}
		})
	}
}
