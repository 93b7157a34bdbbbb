package dto

// RegisterRequest is the body for POST /signup.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=30"`
	About    string `json:"about" binding:"required,min=2,max=30"`
	Avatar   string `json:"avatar" binding:"required,url"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the body for POST /signin.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is returned on successful login.
type TokenResponse struct {
	Token string `json:"token"`
}
