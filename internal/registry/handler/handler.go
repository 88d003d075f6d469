package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	ledgermodels "pbmledger/internal/ledger/models"
	"pbmledger/internal/registry/models"
	id "pbmledger/pkg/domain"
	dErrors "pbmledger/pkg/domain-errors"
	"pbmledger/pkg/platform/httputil"
	"pbmledger/pkg/requestcontext"
)

// Service defines the interface for type-registry operations.
type Service interface {
	CreateType(ctx context.Context, category id.Category, settlementAt time.Time, faceValue uint64) (*models.PBMType, error)
	Get(ctx context.Context, typeID id.TypeID) (*models.PBMType, error)
}

// Supplies exposes the per-type issuance figures shown alongside a type.
type Supplies interface {
	Supply(ctx context.Context, typeID id.TypeID) (ledgermodels.Supply, error)
}

// Handler handles type-registry endpoints.
type Handler struct {
	logger   *slog.Logger
	registry Service
	supplies Supplies
}

func New(registry Service, supplies Supplies, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, registry: registry, supplies: supplies}
}

// Register mounts the registry routes.
func (h *Handler) Register(r chi.Router) {
	r.Post("/types", h.handleCreateType)
	r.Get("/types/{typeID}", h.handleGetType)
}

func (h *Handler) handleCreateType(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid create type request",
			"request_id", requestcontext.RequestID(ctx), "error", err.Error())
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	category, err := id.ParseCategory(req.Category)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	entry, err := h.registry.CreateType(ctx, category, req.SettlementAt, req.FaceValue)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, newTypeResponse(entry, nil))
}

func (h *Handler) handleGetType(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	typeID, err := parseTypeID(chi.URLParam(r, "typeID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	entry, err := h.registry.Get(ctx, typeID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	supply, err := h.supplies.Supply(ctx, typeID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, newTypeResponse(entry, &supply))
}

func parseTypeID(raw string) (id.TypeID, error) {
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		return 0, dErrors.Newf(dErrors.CodeBadRequest, "invalid type id %q", raw)
	}
	return id.TypeID(parsed), nil
}
