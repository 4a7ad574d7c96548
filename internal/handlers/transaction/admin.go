package transaction

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/dto"
	"github.com/mohamed-arshad-ch/aq-pay-api/pkg/utils"
)

// Admin lifecycle actions. All routes here sit behind the admin guard.

// AcceptAddMoney godoc
//
//	@Summary	Move an add money request into processing
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string					true	"Transaction ID"
//	@Param		request	body		dto.AcceptAddMoneyRequest	false	"Optional reference override"
//	@Success	200		{object}	dto.AddMoneyResponse
//	@Failure	400		{object}	utils.Response	"Invalid ref id"
//	@Failure	404		{object}	utils.Response	"Transaction not found"
//	@Failure	409		{object}	utils.Response	"Invalid state transition"
//	@Router		/api/admin/add-money/{id}/accept [post]
func (h *TransactionHandler) AcceptAddMoney(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	var req dto.AcceptAddMoneyRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	tx, err := h.transactionService.AcceptAddMoney(r.Context(), id, req.TransactionRefID)
	if err != nil {
		respondTxError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAddMoneyResponse(tx))
}

// ApproveAddMoney godoc
//
//	@Summary	Complete an add money request and credit the wallet
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Transaction ID"
//	@Success	200	{object}	dto.AddMoneyResponse
//	@Failure	404	{object}	utils.Response	"Transaction not found"
//	@Failure	409	{object}	utils.Response	"Invalid state transition"
//	@Router		/api/admin/add-money/{id}/approve [post]
func (h *TransactionHandler) ApproveAddMoney(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	tx, err := h.transactionService.ApproveAddMoney(r.Context(), id)
	if err != nil {
		respondTxError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAddMoneyResponse(tx))
}

// RejectAddMoney godoc
//
//	@Summary	Reject an add money request
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string				true	"Transaction ID"
//	@Param		request	body		dto.RejectRequest	false	"Optional reason"
//	@Success	200		{object}	dto.AddMoneyResponse
//	@Failure	404		{object}	utils.Response	"Transaction not found"
//	@Failure	409		{object}	utils.Response	"Invalid state transition"
//	@Router		/api/admin/add-money/{id}/reject [post]
func (h *TransactionHandler) RejectAddMoney(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	var req dto.RejectRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	tx, err := h.transactionService.RejectAddMoney(r.Context(), id, req.Reason)
	if err != nil {
		respondTxError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAddMoneyResponse(tx))
}

// AcceptTransfer godoc
//
//	@Summary	Move a transfer request into processing
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string						true	"Transaction ID"
//	@Param		request	body		dto.AcceptTransferRequest	false	"Bank transaction reference"
//	@Success	200		{object}	dto.TransferResponse
//	@Failure	404		{object}	utils.Response	"Transaction not found"
//	@Failure	409		{object}	utils.Response	"Invalid state transition"
//	@Router		/api/admin/transfer-money/{id}/accept [post]
func (h *TransactionHandler) AcceptTransfer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	var req dto.AcceptTransferRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	tx, err := h.transactionService.AcceptTransfer(r.Context(), id, req.BankTransactionID)
	if err != nil {
		respondTxError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransferResponse(tx))
}

// ApproveTransfer godoc
//
//	@Summary	Complete a transfer request
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Transaction ID"
//	@Success	200	{object}	dto.TransferResponse
//	@Failure	404	{object}	utils.Response	"Transaction not found"
//	@Failure	409	{object}	utils.Response	"Invalid state transition"
//	@Router		/api/admin/transfer-money/{id}/approve [post]
func (h *TransactionHandler) ApproveTransfer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	tx, err := h.transactionService.ApproveTransfer(r.Context(), id)
	if err != nil {
		respondTxError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransferResponse(tx))
}

// RejectTransfer godoc
//
//	@Summary	Reject a transfer request and refund the hold
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string				true	"Transaction ID"
//	@Param		request	body		dto.RejectRequest	false	"Optional reason"
//	@Success	200		{object}	dto.TransferResponse
//	@Failure	404		{object}	utils.Response	"Transaction not found"
//	@Failure	409		{object}	utils.Response	"Invalid state transition"
//	@Router		/api/admin/transfer-money/{id}/reject [post]
func (h *TransactionHandler) RejectTransfer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	var req dto.RejectRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	tx, err := h.transactionService.RejectTransfer(r.Context(), id, req.Reason)
	if err != nil {
		respondTxError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransferResponse(tx))
}

// ListAllFeed godoc
//
//	@Summary	List requests of both kinds across all users
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		status	query		string	false	"Filter by status"
//	@Param		limit	query		int		false	"Page size"
//	@Param		offset	query		int		false	"Page offset"
//	@Success	200		{object}	dto.ListResponse[dto.FeedItemResponse]
//	@Failure	401		{object}	utils.Response	"Unauthorized"
//	@Router		/api/admin/transactions [get]
func (h *TransactionHandler) ListAllFeed(w http.ResponseWriter, r *http.Request) {
	status, ok := statusFilter(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status filter")
		return
	}
	limit, offset := utils.Pagination(r)

	feed, total, err := h.transactionService.ListFeed(r.Context(), nil, status, limit, offset)
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
