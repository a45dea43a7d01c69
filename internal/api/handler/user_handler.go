package handler

import (
	"net/http"

	"auth_api/internal/api/middleware"
	"auth_api/internal/app/service"
	"auth_api/internal/common"
	"auth_api/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Get("/me", h.me)
}

type userResponse struct {
	User *model.User `json:"user"`
}

func (h *UserHandler) me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithDomainError(w, common.ErrInvalidToken)
		return
	}

	user, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, userResponse{User: user})
}
