package ledger

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/dto"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/service/ledgerservice"
	pkgauth "github.com/mohamed-arshad-ch/aq-pay-api/pkg/auth"
	"github.com/mohamed-arshad-ch/aq-pay-api/pkg/utils"
)

type Service interface {
	GetByOrderID(ctx context.Context, orderID string, requester uuid.UUID, role domain.Role) (*domain.AllTransaction, error)
	ListForUser(ctx context.Context, userID uuid.UUID, entryType *domain.LedgerEntryType, limit, offset int) ([]domain.AllTransaction, int, error)
	ListAll(ctx context.Context, entryType *domain.LedgerEntryType, limit, offset int) ([]domain.AllTransaction, int, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// GetByOrderID godoc
//
//	@Summary	Get one ledger entry by order id
//	@Tags		Ledger
//	@Produce	json
//	@Security	BearerAuth
//	@Param		orderId	path		string	true	"Order ID"
//	@Success	200		{object}	dto.LedgerEntryResponse
//	@Failure	400		{object}	utils.Response	"Invalid order id"
//	@Failure	403		{object}	utils.Response	"Belongs to another user"
//	@Failure	404		{object}	utils.Response	"Entry not found"
//	@Router		/api/all-transactions/{orderId} [get]
func (h *LedgerHandler) GetByOrderID(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := pkgauth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	entry, err := h.ledgerService.GetByOrderID(r.Context(), chi.URLParam(r, "orderId"), userID, domain.Role(role))
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrInvalidOrderID):
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		case errors.Is(err, ledgerservice.ErrEntryNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Entry not found")
		case errors.Is(err, ledgerservice.ErrForbidden):
			utils.RespondWithError(w, http.StatusForbidden, "Entry belongs to another user")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLedgerEntryResponse(entry))
}

// List godoc
//
//	@Summary	List own ledger entries
//	@Tags		Ledger
//	@Produce	json
//	@Security	BearerAuth
//	@Param		type	query		string	false	"DEPOSIT or WITHDRAWAL"
//	@Param		limit	query		int		false	"Page size"
//	@Param		offset	query		int		false	"Page offset"
//	@Success	200		{object}	dto.ListResponse[dto.LedgerEntryResponse]
//	@Failure	401		{object}	utils.Response	"Unauthorized"
//	@Router		/api/all-transactions [get]
func (h *LedgerHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := pkgauth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	entryType, ok := typeFilter(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid type filter")
		return
	}
	limit, offset := utils.Pagination(r)

	entries, total, err := h.ledgerService.ListForUser(r.Context(), userID, entryType, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondList(w, entries, total, limit, offset)
}

// ListAll godoc
//
//	@Summary	List ledger entries across all users
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		type	query		string	false	"DEPOSIT or WITHDRAWAL"
//	@Param		limit	query		int		false	"Page size"
//	@Param		offset	query		int		false	"Page offset"
//	@Success	200		{object}	dto.ListResponse[dto.LedgerEntryResponse]
//	@Failure	401		{object}	utils.Response	"Unauthorized"
//	@Router		/api/admin/all-transactions [get]
func (h *LedgerHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	entryType, ok := typeFilter(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid type filter")
		return
	}
	limit, offset := utils.Pagination(r)

	entries, total, err := h.ledgerService.ListAll(r.Context(), entryType, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondList(w, entries, total, limit, offset)
}

func respondList(w http.ResponseWriter, entries []domain.AllTransaction, total, limit, offset int) {
	items := make([]dto.LedgerEntryResponse, 0, len(entries))
	for i := range entries {
		items = append(items, dto.NewLedgerEntryResponse(&entries[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ListResponse[dto.LedgerEntryResponse]{
		Items: items, Total: total, Limit: limit, Offset: offset,
	})
}

func typeFilter(r *http.Request) (*domain.LedgerEntryType, bool) {
	raw := r.URL.Query().Get("type")
	if raw == "" {
		return nil, true
	}
	entryType := domain.LedgerEntryType(raw)
	switch entryType {
	case domain.LedgerDeposit, domain.LedgerWithdrawal:
		return &entryType, true
	}
	return nil, false
}
