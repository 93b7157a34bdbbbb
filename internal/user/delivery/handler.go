package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authdelivery "photocards-backend/internal/auth/delivery"
	"photocards-backend/internal/user/dto"
	"photocards-backend/internal/user/usecase"
	"photocards-backend/pkg/apperror"
)

// UserHandler serves the protected /users routes.
type UserHandler struct {
	userUsecase usecase.UserUsecase
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// GetUsers handles GET /users.
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userUsecase.GetAll(c.Request.Context())
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetMe handles GET /users/me.
func (h *UserHandler) GetMe(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	user, err := h.userUsecase.GetCurrent(c.Request.Context(), userID)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUserByID handles GET /users/:userId.
func (h *UserHandler) GetUserByID(c *gin.Context) {
	user, err := h.userUsecase.GetByID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PATCH /users/me.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.BadRequest("incorrect profile data"))
		return
	}

	user, err := h.userUsecase.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateAvatar handles PATCH /users/me/avatar.
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	var req dto.UpdateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.BadRequest("incorrect avatar data"))
		return
	}

	user, err := h.userUsecase.UpdateAvatar(c.Request.Context(), userID, &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
