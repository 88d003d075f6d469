package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	id "pbmledger/pkg/domain"
	dErrors "pbmledger/pkg/domain-errors"
	"pbmledger/pkg/platform/httputil"
	"pbmledger/pkg/requestcontext"
)

// Service defines the interface for role-registry administration.
type Service interface {
	SetDepository(ctx context.Context, identity id.Identity) error
	SetCustodianBank(ctx context.Context, identity id.Identity, isBank bool) error
	IsCustodianBank(ctx context.Context, identity id.Identity) (bool, error)
}

// Handler handles the owner-gated administrative endpoints.
type Handler struct {
	logger *slog.Logger
	policy Service
}

func New(policy Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, policy: policy}
}

// Register mounts the administrative routes. The owner capability itself is
// checked in the service, not here; the routes only require authentication.
func (h *Handler) Register(r chi.Router) {
	r.Put("/admin/depository", h.handleSetDepository)
	r.Put("/admin/custodians/{identity}", h.handleSetCustodianBank)
	r.Get("/admin/custodians/{identity}", h.handleIsCustodianBank)
}

func (h *Handler) handleSetDepository(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SetDepositoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid set depository request",
			"request_id", requestcontext.RequestID(ctx), "error", err.Error())
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	identity, err := id.ParseIdentity(req.Identity)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.policy.SetDepository(ctx, identity); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, DepositoryResponse{Depository: identity.String()})
}

func (h *Handler) handleSetCustodianBank(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, err := id.ParseIdentity(chi.URLParam(r, "identity"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req SetCustodianRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid set custodian request",
			"request_id", requestcontext.RequestID(ctx), "error", err.Error())
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	if err := h.policy.SetCustodianBank(ctx, identity, req.IsBank); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, CustodianResponse{Identity: identity.String(), IsBank: req.IsBank})
}

func (h *Handler) handleIsCustodianBank(w http.ResponseWriter, r *http.Request) {
	identity, err := id.ParseIdentity(chi.URLParam(r, "identity"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	isBank, err := h.policy.IsCustodianBank(r.Context(), identity)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, CustodianResponse{Identity: identity.String(), IsBank: isBank})
}
