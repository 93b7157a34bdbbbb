package api

import (
	"github.com/gin-gonic/gin"

	authUsecase "photocards-backend/internal/auth/usecase"
	cardUsecase "photocards-backend/internal/card/usecase"
	userUsecase "photocards-backend/internal/user/usecase"
	"photocards-backend/pkg/config"
)

// Handler wires the usecases into a runnable HTTP server.
type Handler struct {
	authUsecase authUsecase.AuthUsecase
	userUsecase userUsecase.UserUsecase
	cardUsecase cardUsecase.CardUsecase
	config      *config.Config
}

// NewHandler creates the top-level HTTP handler.
func NewHandler(authUc authUsecase.AuthUsecase, userUc userUsecase.UserUsecase, cardUc cardUsecase.CardUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase: authUc,
		userUsecase: userUc,
		cardUsecase: cardUc,
		config:      cfg,
	}
}

// Start configures the engine and blocks serving on addr.
func (h *Handler) Start(addr string) error {
	if h.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.userUsecase, h.cardUsecase)

	return r.Run(addr)
}
