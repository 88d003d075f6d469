package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pbmledger/internal/ledger/models"
	id "pbmledger/pkg/domain"
	dErrors "pbmledger/pkg/domain-errors"
	"pbmledger/pkg/platform/httputil"
	"pbmledger/pkg/requestcontext"
)

// Service defines the interface for ledger operations.
type Service interface {
	Mint(ctx context.Context, to id.Identity, typeID id.TypeID, quantity uint64) (*models.MintReceipt, error)
	Redeem(ctx context.Context, from id.Identity, typeID id.TypeID, quantity uint64) (*models.RedeemReceipt, error)
	ConvertFrozenToSettlement(ctx context.Context, frozenTypeID, settlementTypeID id.TypeID, quantity uint64) (*models.ConvertReceipt, error)
	Transfer(ctx context.Context, to id.Identity, movements []models.Movement) (*models.TransferReceipt, error)
	BalancesOf(ctx context.Context, holder id.Identity) ([]models.Balance, error)
}

// Handler handles ledger endpoints.
type Handler struct {
	logger *slog.Logger
	ledger Service
}

func New(ledger Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, ledger: ledger}
}

// Register mounts the ledger routes.
func (h *Handler) Register(r chi.Router) {
	r.Post("/ledger/mint", h.handleMint)
	r.Post("/ledger/redeem", h.handleRedeem)
	r.Post("/ledger/convert", h.handleConvert)
	r.Post("/ledger/transfer", h.handleTransfer)
	r.Get("/ledger/balances/{identity}", h.handleBalances)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.WarnContext(r.Context(), "invalid request body",
			"request_id", requestcontext.RequestID(r.Context()),
			"path", r.URL.Path,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return false
	}
	return true
}

func (h *Handler) handleMint(w http.ResponseWriter, r *http.Request) {
	var req MintRequest
	if !h.decode(w, r, &req) {
		return
	}

	to, err := id.ParseIdentity(req.To)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	receipt, err := h.ledger.Mint(r.Context(), to, id.TypeID(req.TypeID), req.Quantity)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, newMintResponse(receipt))
}

func (h *Handler) handleRedeem(w http.ResponseWriter, r *http.Request) {
	var req RedeemRequest
	if !h.decode(w, r, &req) {
		return
	}

	from, err := id.ParseIdentity(req.From)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	receipt, err := h.ledger.Redeem(r.Context(), from, id.TypeID(req.TypeID), req.Quantity)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, newRedeemResponse(receipt))
}

func (h *Handler) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if !h.decode(w, r, &req) {
		return
	}

	receipt, err := h.ledger.ConvertFrozenToSettlement(r.Context(),
		id.TypeID(req.FrozenTypeID), id.TypeID(req.SettlementTypeID), req.Quantity)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, newConvertResponse(receipt))
}

func (h *Handler) handleTransfer(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if !h.decode(w, r, &req) {
		return
	}

	to, err := id.ParseIdentity(req.To)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	movements := make([]models.Movement, len(req.Movements))
	for i, mv := range req.Movements {
		movements[i] = models.Movement{TypeID: id.TypeID(mv.TypeID), Quantity: mv.Quantity}
	}

	receipt, err := h.ledger.Transfer(r.Context(), to, movements)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, newTransferResponse(receipt))
}

func (h *Handler) handleBalances(w http.ResponseWriter, r *http.Request) {
	holder, err := id.ParseIdentity(chi.URLParam(r, "identity"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	balances, err := h.ledger.BalancesOf(r.Context(), holder)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, newBalancesResponse(holder, balances))
}
