package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authdelivery "photocards-backend/internal/auth/delivery"
	"photocards-backend/internal/card/dto"
	"photocards-backend/internal/card/usecase"
	"photocards-backend/pkg/apperror"
)

// CardHandler serves the protected /cards routes.
type CardHandler struct {
	cardUsecase usecase.CardUsecase
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardUsecase usecase.CardUsecase) *CardHandler {
	return &CardHandler{
		cardUsecase: cardUsecase,
	}
}

// GetCards handles GET /cards.
func (h *CardHandler) GetCards(c *gin.Context) {
	cards, err := h.cardUsecase.GetAll(c.Request.Context())
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// CreateCard handles POST /cards.
func (h *CardHandler) CreateCard(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.BadRequest("incorrect card data"))
		return
	}

	card, err := h.cardUsecase.Create(c.Request.Context(), userID, &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, card)
}

// DeleteCard handles DELETE /cards/:cardId.
func (h *CardHandler) DeleteCard(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	card, err := h.cardUsecase.Delete(c.Request.Context(), userID, c.Param("cardId"))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// LikeCard handles PUT /cards/:cardId/likes.
func (h *CardHandler) LikeCard(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	card, err := h.cardUsecase.Like(c.Request.Context(), userID, c.Param("cardId"))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// UnlikeCard handles DELETE /cards/:cardId/likes.
func (h *CardHandler) UnlikeCard(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	card, err := h.cardUsecase.Unlike(c.Request.Context(), userID, c.Param("cardId"))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}
