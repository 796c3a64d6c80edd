package users

import (
	"context"
	"net/http"

	"sportsclub-app/internal/api/response"
	"sportsclub-app/internal/app/http/middleware"
	"sportsclub-app/internal/apperr"
	"sportsclub-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, user *users.User, upd users.ProfileUpdate) error
}

type Handler struct {
	profiles ProfileUpdater
}

func NewHandler(p ProfileUpdater) *Handler {
	return &Handler{profiles: p}
}

// GetCurrentUser renders the authenticated user. Requires AuthMiddleware.
func (h *Handler) GetCurrentUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, apperr.ErrUnauthenticated)
		return
	}
	if user.Profile == nil {
		response.Error(c, apperr.ErrProfileRequired)
		return
	}
	c.JSON(http.StatusOK, BuildMeResponse(user))
}

func (h *Handler) UpdateCurrentUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, apperr.ErrUnauthenticated)
		return
	}

	var input users.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err)
		return
	}
	if input.IsEmpty() {
		response.OK(c)
		return
	}

	if err := h.profiles.UpdateProfile(c.Request.Context(), user, input); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}
