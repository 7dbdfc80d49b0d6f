package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/adapter/http/handlers/mocks"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/domain/entities"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/usecase"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const testWebhookSecret = "hook-secret"

func newApprovalRouter(uc *mocks.MockIProposalUseCase) *gin.Engine {
	h := NewApprovalHandler(uc, testWebhookSecret)
	r := gin.New()
	r.GET("/v1/proposals/:proposal_id/approval", h.ViewProposal)
	r.POST("/v1/proposals/:proposal_id/approval", h.AcceptProposal)
	r.POST("/v1/webhooks/payments", h.ConfirmPayment)
	return r
}

func TestApprovalHandler_ViewProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)

		w := doJSON(newApprovalRouter(uc), http.MethodGet, "/v1/proposals/prop-1/approval", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)

		uc.EXPECT().View(gomock.Any(), "prop-1", "bad").Return(entities.Proposal{}, interfaces.ErrTokenInvalid)

		w := doJSON(newApprovalRouter(uc), http.MethodGet, "/v1/proposals/prop-1/approval?token=bad", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)

		uc.EXPECT().View(gomock.Any(), "prop-1", "tok").Return(entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusViewed}, nil)

		w := doJSON(newApprovalRouter(uc), http.MethodGet, "/v1/proposals/prop-1/approval?token=tok", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "viewed" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestApprovalHandler_AcceptProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	acceptBody := `{"token": "tok", "full_name": "Jordan Pratt", "consent": true}`

	t.Run("missing token in payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)

		w := doJSON(newApprovalRouter(uc), http.MethodPost, "/v1/proposals/prop-1/approval", `{"full_name": "Jordan"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("second accept maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)

		uc.EXPECT().Accept(gomock.Any(), "prop-1", "tok", "Jordan Pratt", true).Return(usecase.AcceptResult{}, interfaces.ErrTokenAlreadyUsed)

		w := doJSON(newApprovalRouter(uc), http.MethodPost, "/v1/proposals/prop-1/approval", acceptBody)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("expired link maps to 410", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)

		uc.EXPECT().Accept(gomock.Any(), "prop-1", "tok", "Jordan Pratt", true).Return(usecase.AcceptResult{}, interfaces.ErrTokenExpired)

		w := doJSON(newApprovalRouter(uc), http.MethodPost, "/v1/proposals/prop-1/approval", acceptBody)
		if w.Code != http.StatusGone {
			t.Fatalf("expected 410, got %d", w.Code)
		}
	})

	t.Run("success carries the payment redirect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)

		uc.EXPECT().Accept(gomock.Any(), "prop-1", "tok", "Jordan Pratt", true).Return(usecase.AcceptResult{
			Proposal:         entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusAccepted},
			PaymentInitiated: true,
			PaymentReference: "mp-123",
			PaymentRedirect:  "https://pay.example.com/mp-123",
		}, nil)

		w := doJSON(newApprovalRouter(uc), http.MethodPost, "/v1/proposals/prop-1/approval", acceptBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_initiated"] != true || body["payment_redirect"] != "https://pay.example.com/mp-123" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestApprovalHandler_ConfirmPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	webhookBody := `{"proposal_id": "prop-1", "amount": 1337.5, "payment_reference": "mp-123"}`

	postWebhook := func(r *gin.Engine, secret, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		if secret != "" {
			req.Header.Set(WebhookSecretHeader, secret)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("missing secret", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)

		w := postWebhook(newApprovalRouter(uc), "", webhookBody)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)

		w := postWebhook(newApprovalRouter(uc), "guess", webhookBody)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unconfigured secret rejects everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)

		h := NewApprovalHandler(uc, "")
		r := gin.New()
		r.POST("/v1/webhooks/payments", h.ConfirmPayment)

		w := postWebhook(r, "", webhookBody)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)

		w := postWebhook(newApprovalRouter(uc), testWebhookSecret, `{"proposal_id": "prop-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("premature confirmation maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)

		uc.EXPECT().ConfirmPayment(gomock.Any(), "prop-1", 1337.5, "mp-123").Return(entities.Proposal{}, usecase.ErrProposalState)

		w := postWebhook(newApprovalRouter(uc), testWebhookSecret, webhookBody)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)

		uc.EXPECT().ConfirmPayment(gomock.Any(), "prop-1", 1337.5, "mp-123").Return(entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusPaid}, nil)

		w := postWebhook(newApprovalRouter(uc), testWebhookSecret, webhookBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "paid" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
