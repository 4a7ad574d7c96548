package mpin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/dto"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/service/mpinservice"
	pkgauth "github.com/mohamed-arshad-ch/aq-pay-api/pkg/auth"
	"github.com/mohamed-arshad-ch/aq-pay-api/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, pin string) error
	Verify(ctx context.Context, userID uuid.UUID, pin string) error
	Change(ctx context.Context, userID uuid.UUID, oldPin, newPin string) error
	Status(ctx context.Context, userID uuid.UUID) (set bool, active bool, err error)
}

type MPinHandler struct {
	mpinService Service
}

func New(mpinService Service) *MPinHandler {
	return &MPinHandler{mpinService: mpinService}
}

// Create godoc
//
//	@Summary	Set the transaction mpin
//	@Tags		MPin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.MPinCreateRequest	true	"6 digit pin"
//	@Success	201		{object}	utils.Response
//	@Failure	400		{object}	utils.Response	"Invalid pin format"
//	@Failure	409		{object}	utils.Response	"MPin already set"
//	@Router		/api/mpin [post]
func (h *MPinHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := pkgauth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.MPinCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.mpinService.Create(r.Context(), userID, req.MPin); err != nil {
		switch {
		case errors.Is(err, mpinservice.ErrMPinFormat):
			utils.RespondWithError(w, http.StatusBadRequest, "MPin must be exactly 6 digits")
		case errors.Is(err, mpinservice.ErrMPinExists):
			utils.RespondWithError(w, http.StatusConflict, "MPin already set")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.Response{Message: "MPin set"})
}

// Verify godoc
//
//	@Summary	Verify the transaction mpin
//	@Tags		MPin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.MPinVerifyRequest	true	"6 digit pin"
//	@Success	200		{object}	utils.Response
//	@Failure	403		{object}	utils.Response	"Invalid mpin"
//	@Router		/api/mpin/verify [post]
func (h *MPinHandler) Verify(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := pkgauth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.MPinVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.mpinService.Verify(r.Context(), userID, req.MPin); err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "MPin verified"})
}

// Change godoc
//
//	@Summary	Change the transaction mpin
//	@Tags		MPin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.MPinChangeRequest	true	"Old and new pin"
//	@Success	200		{object}	utils.Response
//	@Failure	403		{object}	utils.Response	"Invalid mpin"
//	@Router		/api/mpin [put]
func (h *MPinHandler) Change(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := pkgauth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.MPinChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.mpinService.Change(r.Context(), userID, req.OldMPin, req.NewMPin); err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "MPin changed"})
}

// Status godoc
//
//	@Summary	Get mpin status
//	@Tags		MPin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.MPinStatusResponse
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Router		/api/mpin [get]
func (h *MPinHandler) Status(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := pkgauth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	set, active, err := h.mpinService.Status(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MPinStatusResponse{IsSet: set, IsActive: active})
}

func respondError(w http.ResponseWriter, err error) {
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
