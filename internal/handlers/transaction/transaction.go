package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/dto"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/service/mpinservice"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/service/transactionservice"
	pkgauth "github.com/mohamed-arshad-ch/aq-pay-api/pkg/auth"
	"github.com/mohamed-arshad-ch/aq-pay-api/pkg/utils"
)

type Service interface {
	CreateAddMoney(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, location, description *string) (*domain.AddMoneyTransaction, error)
	GetAddMoney(ctx context.Context, id, requester uuid.UUID, role domain.Role) (*domain.AddMoneyTransaction, error)
	ListAddMoney(ctx context.Context, userID *uuid.UUID, status *domain.TransactionStatus, limit, offset int) ([]domain.AddMoneyTransaction, int, error)
	AcceptAddMoney(ctx context.Context, id uuid.UUID, refID *string) (*domain.AddMoneyTransaction, error)
	ApproveAddMoney(ctx context.Context, id uuid.UUID) (*domain.AddMoneyTransaction, error)
	RejectAddMoney(ctx context.Context, id uuid.UUID, reason string) (*domain.AddMoneyTransaction, error)

	CreateTransfer(ctx context.Context, userID, accountID uuid.UUID, amount decimal.Decimal, pin string, description *string) (*domain.TransferMoneyTransaction, error)
	GetTransfer(ctx context.Context, id, requester uuid.UUID, role domain.Role) (*domain.TransferMoneyTransaction, error)
	ListTransfers(ctx context.Context, userID *uuid.UUID, status *domain.TransactionStatus, limit, offset int) ([]domain.TransferMoneyTransaction, int, error)
	AcceptTransfer(ctx context.Context, id uuid.UUID, bankTransactionID *string) (*domain.TransferMoneyTransaction, error)
	ApproveTransfer(ctx context.Context, id uuid.UUID) (*domain.TransferMoneyTransaction, error)
	RejectTransfer(ctx context.Context, id uuid.UUID, reason string) (*domain.TransferMoneyTransaction, error)

	ListFeed(ctx context.Context, userID *uuid.UUID, status *domain.TransactionStatus, limit, offset int) ([]transactionservice.FeedItem, int, error)
}

type TransactionHandler struct {
	transactionService Service
}

func New(transactionService Service) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateAddMoney godoc
//
//	@Summary	Request a wallet top up
//	@Tags		AddMoney
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.AddMoneyRequest	true	"Amount and optional context"
//	@Success	201		{object}	dto.AddMoneyResponse
//	@Failure	400		{object}	utils.Response	"Invalid amount"
//	@Failure	401		{object}	utils.Response	"Unauthorized"
//	@Router		/api/add-money [post]
func (h *TransactionHandler) CreateAddMoney(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := pkgauth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.AddMoneyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tx, err := h.transactionService.CreateAddMoney(r.Context(), userID, req.Amount, req.Location, req.Description)
	if err != nil {
		respondTxError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewAddMoneyResponse(tx))
}

// GetAddMoney godoc
//
//	@Summary	Get one add money request
//	@Tags		AddMoney
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Transaction ID"
//	@Success	200	{object}	dto.AddMoneyResponse
//	@Failure	403	{object}	utils.Response	"Belongs to another user"
//	@Failure	404	{object}	utils.Response	"Transaction not found"
//	@Router		/api/add-money/{id} [get]
func (h *TransactionHandler) GetAddMoney(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := pkgauth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	tx, err := h.transactionService.GetAddMoney(r.Context(), id, userID, domain.Role(role))
	if err != nil {
		respondTxError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAddMoneyResponse(tx))
}

// ListAddMoney godoc
//
//	@Summary	List own add money requests
//	@Tags		AddMoney
//	@Produce	json
//	@Security	BearerAuth
//	@Param		status	query		string	false	"Filter by status"
//	@Param		limit	query		int		false	"Page size"
//	@Param		offset	query		int		false	"Page offset"
//	@Success	200		{object}	dto.ListResponse[dto.AddMoneyResponse]
//	@Failure	401		{object}	utils.Response	"Unauthorized"
//	@Router		/api/add-money [get]
func (h *TransactionHandler) ListAddMoney(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := pkgauth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	status, ok := statusFilter(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status filter")
		return
	}
	limit, offset := utils.Pagination(r)

	txs, total, err := h.transactionService.ListAddMoney(r.Context(), &userID, status, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	items := make([]dto.AddMoneyResponse, 0, len(txs))
	for i := range txs {
		items = append(items, dto.NewAddMoneyResponse(&txs[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ListResponse[dto.AddMoneyResponse]{
		Items: items, Total: total, Limit: limit, Offset: offset,
	})
}

// CreateTransfer godoc
//
//	@Summary		Request a transfer to a bank account
//	@Description	Requires a valid mpin; the amount is held from the wallet immediately
//	@Tags			TransferMoney
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.TransferRequest	true	"Transfer details"
//	@Success		201		{object}	dto.TransferResponse
//	@Failure		400		{object}	utils.Response	"Invalid amount or insufficient funds"
//	@Failure		403		{object}	utils.Response	"MPin verification failed"
//	@Failure		404		{object}	utils.Response	"Account or wallet not found"
//	@Router			/api/transfer-money [post]
func (h *TransactionHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := pkgauth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tx, err := h.transactionService.CreateTransfer(r.Context(), userID, req.AccountID, req.Amount, req.MPin, req.Description)
	if err != nil {
		if isMPinError(err) {
			respondMPinError(w, err)
			return
		}
		respondTxError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewTransferResponse(tx))
}

// GetTransfer godoc
//
//	@Summary	Get one transfer request
//	@Tags		TransferMoney
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Transaction ID"
//	@Success	200	{object}	dto.TransferResponse
//	@Failure	403	{object}	utils.Response	"Belongs to another user"
//	@Failure	404	{object}	utils.Response	"Transaction not found"
//	@Router		/api/transfer-money/{id} [get]
func (h *TransactionHandler) GetTransfer(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := pkgauth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	tx, err := h.transactionService.GetTransfer(r.Context(), id, userID, domain.Role(role))
	if err != nil {
		respondTxError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransferResponse(tx))
}

// ListTransfers godoc
//
//	@Summary	List own transfer requests
//	@Tags		TransferMoney
//	@Produce	json
//	@Security	BearerAuth
//	@Param		status	query		string	false	"Filter by status"
//	@Param		limit	query		int		false	"Page size"
//	@Param		offset	query		int		false	"Page offset"
//	@Success	200		{object}	dto.ListResponse[dto.TransferResponse]
//	@Failure	401		{object}	utils.Response	"Unauthorized"
//	@Router		/api/transfer-money [get]
func (h *TransactionHandler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := pkgauth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	status, ok := statusFilter(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status filter")
		return
	}
	limit, offset := utils.Pagination(r)

	txs, total, err := h.transactionService.ListTransfers(r.Context(), &userID, status, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	items := make([]dto.TransferResponse, 0, len(txs))
	for i := range txs {
		items = append(items, dto.NewTransferResponse(&txs[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ListResponse[dto.TransferResponse]{
		Items: items, Total: total, Limit: limit, Offset: offset,
	})
}

// ListFeed godoc
//
//	@Summary	List own requests of both kinds
//	@Tags		Transactions
//	@Produce	json
//	@Security	BearerAuth
//	@Param		status	query		string	false	"Filter by status"
//	@Param		limit	query		int		false	"Page size"
//	@Param		offset	query		int		false	"Page offset"
//	@Success	200		{object}	dto.ListResponse[dto.FeedItemResponse]
//	@Failure	401		{object}	utils.Response	"Unauthorized"
//	@Router		/api/transactions [get]
func (h *TransactionHandler) ListFeed(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := pkgauth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	status, ok := statusFilter(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status filter")
		return
	}
	limit, offset := utils.Pagination(r)

	feed, total, err := h.transactionService.ListFeed(r.Context(), &userID, status, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	items := make([]dto.FeedItemResponse, 0, len(feed))
	for _, item := range feed {
		items = append(items, dto.NewFeedItemResponse(item))
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ListResponse[dto.FeedItemResponse]{
		Items: items, Total: total, Limit: limit, Offset: offset,
	})
}

func statusFilter(r *http.Request) (*domain.TransactionStatus, bool) {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		return nil, true
	}
	status := domain.TransactionStatus(raw)
	switch status {
	case domain.StatusPending, domain.StatusProcessing, domain.StatusCompleted, domain.StatusRejected:
		return &status, true
	}
	return nil, false
}

func respondTxError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, transactionservice.ErrTransactionNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Transaction not found")
	case errors.Is(err, transactionservice.ErrAccountNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Account not found")
	case errors.Is(err, transactionservice.ErrWalletNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Wallet not found")
	case errors.Is(err, transactionservice.ErrInvalidStateTransition):
		utils.RespondWithError(w, http.StatusConflict, "Invalid state transition")
	case errors.Is(err, transactionservice.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusBadRequest, "Amount must be positive")
	case errors.Is(err, transactionservice.ErrInvalidRefID):
		utils.RespondWithError(w, http.StatusBadRequest, "Transaction ref id must be 12 digits")
	case errors.Is(err, transactionservice.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusBadRequest, "Insufficient funds")
	case errors.Is(err, transactionservice.ErrNotOwner):
		utils.RespondWithError(w, http.StatusForbidden, "Transaction belongs to another user")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func isMPinError(err error) bool {
	return errors.Is(err, mpinservice.ErrMPinFormat) ||
		errors.Is(err, mpinservice.ErrMPinNotSet) ||
		errors.Is(err, mpinservice.ErrMPinDisabled) ||
		errors.Is(err, mpinservice.ErrMPinInvalid)
}

func respondMPinError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, mpinservice.ErrMPinFormat):
		utils.RespondWithError(w, http.StatusBadRequest, "MPin must be exactly 6 digits")
	case errors.Is(err, mpinservice.ErrMPinNotSet):
		utils.RespondWithError(w, http.StatusForbidden, "MPin not set")
	case errors.Is(err, mpinservice.ErrMPinDisabled):
		utils.RespondWithError(w, http.StatusForbidden, "MPin is disabled")
	case errors.Is(err, mpinservice.ErrMPinInvalid):
		utils.RespondWithError(w, http.StatusForbidden, "Invalid MPin")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
