package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"estimatepro/internal/adapter/http/handlers/mocks"
	"estimatepro/internal/domain/entities"
	"estimatepro/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func leadRouter(uc *mocks.MockILeadUseCase) *gin.Engine {
	h := NewLeadHandler(uc)
	r := newTestRouter(testBuilder)
	r.GET("/v1/leads", h.ListLeads)
	r.GET("/v1/leads/:id", h.GetLead)
	r.PATCH("/v1/leads/:id/status", h.UpdateLeadStatus)
	r.PATCH("/v1/leads/:id/notes", h.UpdateLeadNotes)
	r.DELETE("/v1/leads/:id", h.DeleteLead)
	return r
}

func TestLeadHandler_ListLeads(t *testing.T) {
	t.Run("status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		now := time.Now().UTC()
		uc.EXPECT().List(gomock.Any(), "b-1", entities.LeadStatusQuoteSent).Return([]entities.Lead{
			{ID: "l-2", BuilderID: "b-1", Status: entities.LeadStatusQuoteSent, SubmittedAt: now},
		}, nil)

		w := doJSON(leadRouter(uc), http.MethodGet, "/v1/leads?status=Quote+Sent", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String()[0] != '[' {
			t.Fatalf("expected a json array: %s", w.Body.String())
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		uc.EXPECT().List(gomock.Any(), "b-1", entities.LeadStatus("Won")).Return(nil, usecase.ErrInvalidLeadStatus)

		if w := doJSON(leadRouter(uc), http.MethodGet, "/v1/leads?status=Won", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		uc.EXPECT().List(gomock.Any(), "b-1", entities.LeadStatus("")).Return(nil, nil)

		w := doJSON(leadRouter(uc), http.MethodGet, "/v1/leads", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestLeadHandler_GetLead(t *testing.T) {
	cases := []struct {
		name string
		lead entities.Lead
		err  error
		want int
	}{
		{"found", entities.Lead{ID: "l-1", BuilderID: "b-1", Status: entities.LeadStatusNew}, nil, http.StatusOK},
		{"other builder", entities.Lead{}, usecase.ErrLeadNotFound, http.StatusNotFound},
		{"store error", entities.Lead{}, errors.New("timeout"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockILeadUseCase(ctrl)
			uc.EXPECT().Get(gomock.Any(), "b-1", "l-1").Return(tc.lead, tc.err)

			w := doJSON(leadRouter(uc), http.MethodGet, "/v1/leads/l-1", "")
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestLeadHandler_Updates(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		uc.EXPECT().UpdateStatus(gomock.Any(), "b-1", "l-1", entities.LeadStatusContacted).
			Return(entities.Lead{ID: "l-1", Status: entities.LeadStatusContacted}, nil)

		w := doJSON(leadRouter(uc), http.MethodPatch, "/v1/leads/l-1/status", `{"status":"Contacted"}`)
		if w.Code != http.StatusOK || decodeBody(t, w)["status"] != "Contacted" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("status missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		if w := doJSON(leadRouter(mocks.NewMockILeadUseCase(ctrl)), http.MethodPatch, "/v1/leads/l-1/status", `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("notes too long", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		uc.EXPECT().UpdateNotes(gomock.Any(), "b-1", "l-1", "long").Return(entities.Lead{}, usecase.ErrLeadNotesTooLong)

		w := doJSON(leadRouter(uc), http.MethodPatch, "/v1/leads/l-1/notes", `{"notes":"long"}`)
		if w.Code != http.StatusBadRequest || decodeBody(t, w)["code"] != "NOTES_TOO_LONG" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		uc.EXPECT().Delete(gomock.Any(), "b-1", "l-1").Return(nil)

		if w := doJSON(leadRouter(uc), http.MethodDelete, "/v1/leads/l-1", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
