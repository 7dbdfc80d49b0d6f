package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/adapter/http/handlers/mocks"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/domain/entities"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/domain/pricing"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validQuoteBody = `{
	"location": {"address": "123 Pine Rd, Brooksville FL"},
	"service": "mulching",
	"acreage": 2.5,
	"density": "moderate",
	"terrain": "rolling",
	"accessibility": 6,
	"property": "residential",
	"urgency": "standard"
}`

func newQuoteRouter(uc *mocks.MockIQuoteUseCase) *gin.Engine {
	h := NewQuoteHandler(uc)
	r := gin.New()
	r.POST("/v1/quotes", h.ComputeQuote)
	return r
}

func postQuote(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuoteHandler_ComputeQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)

		w := postQuote(newQuoteRouter(uc), "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation failure carries field detail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)

		uc.EXPECT().ComputeQuote(gomock.Any(), gomock.Any()).Return(entities.PricedQuote{}, &pricing.ValidationError{
			Violations: []pricing.FieldViolation{{Field: "acreage", Message: "must be between 0.1 and 1000"}},
		})

		w := postQuote(newQuoteRouter(uc), validQuoteBody)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "VALIDATION_FAILED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if _, ok := body["fields"]; !ok {
			t.Fatalf("expected field violations in the body: %s", w.Body.String())
		}
	})

	t.Run("unknown enum maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)

		uc.EXPECT().ComputeQuote(gomock.Any(), gomock.Any()).Return(entities.PricedQuote{}, pricing.ErrUnknownEnum)

		w := postQuote(newQuoteRouter(uc), validQuoteBody)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("unresolved location maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)

		uc.EXPECT().ComputeQuote(gomock.Any(), gomock.Any()).Return(entities.PricedQuote{}, interfaces.ErrLocationUnresolved)

		w := postQuote(newQuoteRouter(uc), validQuoteBody)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)

		uc.EXPECT().ComputeQuote(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, req entities.QuoteRequest) (entities.PricedQuote, error) {
				if req.Service != entities.ServiceMulching || req.Acreage != 2.5 {
					t.Fatalf("unexpected domain request: %+v", req)
				}
				return entities.PricedQuote{ID: "q-1", Service: req.Service, Acreage: req.Acreage, FinalPrice: 7575}, nil
			},
		)

		w := postQuote(newQuoteRouter(uc), validQuoteBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["quote_id"] != "q-1" || body["final_price"] != 7575.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
