package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/adapter/http/handlers/mocks"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/domain/entities"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/usecase"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validProposalBody = `{
	"customer": {"name": "Jordan Pratt", "email": "jordan@example.com", "phone": "352-555-0114"},
	"inputs": {"acreage": 2.5, "service": "mulching", "address": "123 Pine Rd"},
	"items": [{"name": "Forestry mulching", "quantity": 2.5, "rate": 2500}]
}`

func newProposalRouter(uc *mocks.MockIProposalUseCase) *gin.Engine {
	h := NewProposalHandler(uc)
	r := gin.New()
	r.POST("/v1/proposals", h.CreateProposal)
	r.GET("/v1/proposals/:proposal_id", h.GetProposal)
	r.POST("/v1/proposals/:proposal_id/send", h.SendProposal)
	r.POST("/v1/proposals/:proposal_id/cancel", h.CancelProposal)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProposalHandler_CreateProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)

		w := doJSON(newProposalRouter(uc), http.MethodPost, "/v1/proposals", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing items fail binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)

		body := `{"customer": {"name": "a", "email": "a@b.c", "phone": "1"}, "inputs": {"acreage": 1, "service": "mulching", "address": "x"}, "items": []}`
		w := doJSON(newProposalRouter(uc), http.MethodPost, "/v1/proposals", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success defaults line totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, customer entities.Customer, inputs entities.ProposalInputs, items []entities.LineItem) (entities.Proposal, error) {
				if customer.Email != "jordan@example.com" {
					t.Fatalf("unexpected customer: %+v", customer)
				}
				if inputs.Service != entities.ServiceMulching {
					t.Fatalf("unexpected inputs: %+v", inputs)
				}
				if len(items) != 1 || items[0].Total != 6250 {
					t.Fatalf("expected defaulted line total, got %+v", items)
				}
				return entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusDraft, CreatedAt: time.Now()}, nil
			},
		)

		w := doJSON(newProposalRouter(uc), http.MethodPost, "/v1/proposals", validProposalBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["proposal_id"] != "prop-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestProposalHandler_GetProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Proposal{}, usecase.ErrProposalNotFound)

		w := doJSON(newProposalRouter(uc), http.MethodGet, "/v1/proposals/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)

		uc.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusSent}, nil)

		w := doJSON(newProposalRouter(uc), http.MethodGet, "/v1/proposals/prop-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "sent" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestProposalHandler_SendProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("state conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)

		uc.EXPECT().Send(gomock.Any(), "prop-1").Return(entities.Proposal{}, "", usecase.ErrProposalState)

		w := doJSON(newProposalRouter(uc), http.MethodPost, "/v1/proposals/prop-1/send", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("expired proposal maps to 410", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)

		uc.EXPECT().Send(gomock.Any(), "prop-1").Return(entities.Proposal{}, "", usecase.ErrProposalExpired)

		w := doJSON(newProposalRouter(uc), http.MethodPost, "/v1/proposals/prop-1/send", "")
		if w.Code != http.StatusGone {
			t.Fatalf("expected 410, got %d", w.Code)
		}
	})

	t.Run("success carries the approval token once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)

		uc.EXPECT().Send(gomock.Any(), "prop-1").Return(entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusSent}, "signed-token", nil)

		w := doJSON(newProposalRouter(uc), http.MethodPost, "/v1/proposals/prop-1/send", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["approval_token"] != "signed-token" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestProposalHandler_CancelProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("terminal proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)

		uc.EXPECT().Cancel(gomock.Any(), "prop-1").Return(entities.Proposal{}, usecase.ErrProposalState)

		w := doJSON(newProposalRouter(uc), http.MethodPost, "/v1/proposals/prop-1/cancel", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)

		uc.EXPECT().Cancel(gomock.Any(), "prop-1").Return(entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusCancelled}, nil)

		w := doJSON(newProposalRouter(uc), http.MethodPost, "/v1/proposals/prop-1/cancel", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapProposalError_TokenCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code string
		http int
	}{
		{name: "mismatch", err: usecase.ErrTokenProposalMismatch, code: "TOKEN_PROPOSAL_MISMATCH", http: http.StatusUnauthorized},
		{name: "expired", err: interfaces.ErrTokenExpired, code: "TOKEN_EXPIRED", http: http.StatusGone},
		{name: "already used", err: interfaces.ErrTokenAlreadyUsed, code: "TOKEN_ALREADY_USED", http: http.StatusConflict},
		{name: "invalid", err: interfaces.ErrTokenInvalid, code: "TOKEN_INVALID", http: http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := mapProposalError(tc.err)
			if appErr.Code != tc.code || appErr.HTTPStatus != tc.http {
				t.Fatalf("expected %s/%d, got %s/%d", tc.code, tc.http, appErr.Code, appErr.HTTPStatus)
			}
		})
	}
}
