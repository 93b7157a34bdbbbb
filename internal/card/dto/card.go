package dto

// CreateCardRequest is the body for POST /cards.
type CreateCardRequest struct {
	Name string `json:"name" binding:"required,min=2,max=30"`
	Link string `json:"link" binding:"required,url"`
}
