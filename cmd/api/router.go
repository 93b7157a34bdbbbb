package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authdelivery "photocards-backend/internal/auth/delivery"
	authUsecase "photocards-backend/internal/auth/usecase"
	cardDelivery "photocards-backend/internal/card/delivery"
	cardUsecase "photocards-backend/internal/card/usecase"
	userDelivery "photocards-backend/internal/user/delivery"
	userUsecase "photocards-backend/internal/user/usecase"
)

// SetupRoutes registers the full HTTP surface. /signup and /signin are the
// only open routes besides the health check; everything else sits behind
// the auth middleware.
func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, userUc userUsecase.UserUsecase, cardUc cardUsecase.CardUsecase) {
	authHandler := authdelivery.NewAuthHandler(authUc)
	userHandler := userDelivery.NewUserHandler(userUc)
	cardHandler := cardDelivery.NewCardHandler(cardUc)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/signup", authHandler.Register)
	r.POST("/signin", authHandler.Login)

	protected := authdelivery.AuthMiddleware(authUc)

	users := r.Group("/users")
	users.Use(protected)
	{
		users.GET("", userHandler.GetUsers)
		users.GET("/me", userHandler.GetMe)
		users.GET("/:userId", userHandler.GetUserByID)
		users.PATCH("/me", userHandler.UpdateProfile)
		users.PATCH("/me/avatar", userHandler.UpdateAvatar)
	}

	cards := r.Group("/cards")
	cards.Use(protected)
	{
		cards.GET("", cardHandler.GetCards)
		cards.POST("", cardHandler.CreateCard)
		cards.DELETE("/:cardId", cardHandler.DeleteCard)
		cards.PUT("/:cardId/likes", cardHandler.LikeCard)
		cards.DELETE("/:cardId/likes", cardHandler.UnlikeCard)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "resource not found"})
	})
}
