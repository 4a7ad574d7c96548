package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/dto"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/service/authservice"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/service/dashboardservice"
	"github.com/mohamed-arshad-ch/aq-pay-api/pkg/utils"
)

type UserService interface {
	SetPortalAccess(ctx context.Context, userID uuid.UUID, approved bool) (*domain.User, error)
	ListPendingPortalAccess(ctx context.Context, limit, offset int) ([]domain.User, error)
}

type DashboardService interface {
	Collect(ctx context.Context) (*dashboardservice.Stats, error)
}

type AdminHandler struct {
	userService      UserService
	dashboardService DashboardService
}

func New(userService UserService, dashboardService DashboardService) *AdminHandler {
	return &AdminHandler{
		userService:      userService,
		dashboardService: dashboardService,
	}
}

// Dashboard godoc
//
//	@Summary	Admin dashboard snapshot
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.DashboardResponse
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Router		/api/admin/dashboard [get]
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.Collect(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDashboardResponse(stats))
}

// ListPendingPortalAccess godoc
//
//	@Summary	List users waiting for portal approval
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		limit	query		int	false	"Page size"
//	@Param		offset	query		int	false	"Page offset"
//	@Success	200		{array}		dto.UserResponse
//	@Failure	401		{object}	utils.Response	"Unauthorized"
//	@Router		/api/admin/portal-access [get]
func (h *AdminHandler) ListPendingPortalAccess(w http.ResponseWriter, r *http.Request) {
	limit, offset := utils.Pagination(r)

	users, err := h.userService.ListPendingPortalAccess(r.Context(), limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserResponse(&users[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

// SetPortalAccess godoc
//
//	@Summary	Approve or deny portal access
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string					true	"User ID"
//	@Param		request	body		dto.PortalAccessRequest	true	"Decision"
//	@Success	200		{object}	dto.UserResponse
//	@Failure	404		{object}	utils.Response	"User not found"
//	@Router		/api/admin/portal-access/{id} [post]
func (h *AdminHandler) SetPortalAccess(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req dto.PortalAccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.SetPortalAccess(r.Context(), id, req.Approved)
	if err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserResponse(user))
}
