package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authdto "photocards-backend/internal/auth/dto"
	"photocards-backend/internal/auth/usecase"
	"photocards-backend/pkg/apperror"
)

// cookieMaxAge is the client-side lifetime of the login cookie in seconds.
// It is shorter than the token's own expiry; both lifetimes are intentional.
const cookieMaxAge = 3600

// AuthHandler serves the open /signup and /signin routes.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Register handles POST /signup.
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.BadRequest("incorrect registration data"))
		return
	}

	user, err := h.authUsecase.Register(c.Request.Context(), &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login handles POST /signin. The token goes out twice: in an HTTP-only
// cookie for browsers and in the response body for header-based clients.
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.BadRequest("incorrect login data"))
		return
	}

	signed, err := h.authUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("token", signed, cookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, authdto.TokenResponse{Token: signed})
}
