package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/dto"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/service/accountservice"
	pkgauth "github.com/mohamed-arshad-ch/aq-pay-api/pkg/auth"
	"github.com/mohamed-arshad-ch/aq-pay-api/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, holderName, accountNumber, ifscCode string) (*domain.Account, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*domain.Account, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Account, int, error)
	Update(ctx context.Context, id, userID uuid.UUID, holderName, ifscCode string) (*domain.Account, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type AccountHandler struct {
	accountService Service
}

func New(accountService Service) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// Create godoc
//
//	@Summary	Register a bank account
//	@Tags		Accounts
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.AccountRequest	true	"Account fields"
//	@Success	201		{object}	dto.AccountResponse
//	@Failure	400		{object}	utils.Response	"Invalid account details"
//	@Failure	409		{object}	utils.Response	"Account number already registered"
//	@Router		/api/accounts [post]
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := pkgauth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.AccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.accountService.Create(r.Context(), userID, req.AccountHolderName, req.AccountNumber, req.IFSCCode)
	if err != nil {
		switch {
		case errors.Is(err, accountservice.ErrDuplicateAccount):
			utils.RespondWithError(w, http.StatusConflict, "Account number already registered")
		case errors.Is(err, accountservice.ErrInvalidAccountNumber),
			errors.Is(err, accountservice.ErrInvalidIFSCCode),
			errors.Is(err, accountservice.ErrHolderNameRequired):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewAccountResponse(account))
}

// List godoc
//
//	@Summary	List own bank accounts
//	@Tags		Accounts
//	@Produce	json
//	@Security	BearerAuth
//	@Param		limit	query		int	false	"Page size"
//	@Param		offset	query		int	false	"Page offset"
//	@Success	200		{object}	dto.ListResponse[dto.AccountResponse]
//	@Failure	401		{object}	utils.Response	"Unauthorized"
//	@Router		/api/accounts [get]
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := pkgauth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	limit, offset := utils.Pagination(r)
	accounts, total, err := h.accountService.List(r.Context(), userID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	items := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		items = append(items, dto.NewAccountResponse(&accounts[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ListResponse[dto.AccountResponse]{
		Items: items, Total: total, Limit: limit, Offset: offset,
	})
}

// Get godoc
//
//	@Summary	Get one bank account
//	@Tags		Accounts
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Account ID"
//	@Success	200	{object}	dto.AccountResponse
//	@Failure	404	{object}	utils.Response	"Account not found"
//	@Router		/api/accounts/{id} [get]
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := pkgauth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	account, err := h.accountService.Get(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, accountservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAccountResponse(account))
}

// Update godoc
//
//	@Summary	Update a bank account
//	@Description	The account number is immutable; only holder name and IFSC change
//	@Tags		Accounts
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string					true	"Account ID"
//	@Param		request	body		dto.AccountUpdateRequest	true	"Fields to update"
//	@Success	200		{object}	dto.AccountResponse
//	@Failure	400		{object}	utils.Response	"Invalid account details"
//	@Failure	404		{object}	utils.Response	"Account not found"
//	@Router		/api/accounts/{id} [put]
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := pkgauth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	var req dto.AccountUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.accountService.Update(r.Context(), id, userID, req.AccountHolderName, req.IFSCCode)
	if err != nil {
		switch {
		case errors.Is(err, accountservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
		case errors.Is(err, accountservice.ErrInvalidIFSCCode),
			errors.Is(err, accountservice.ErrHolderNameRequired):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAccountResponse(account))
}

// Delete godoc
//
//	@Summary	Delete a bank account
//	@Tags		Accounts
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Account ID"
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Account not found"
//	@Router		/api/accounts/{id} [delete]
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := pkgauth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	if err := h.accountService.Delete(r.Context(), id, userID); err != nil {
		if errors.Is(err, accountservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Account deleted"})
}
