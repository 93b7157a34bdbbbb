package dto

// UpdateProfileRequest is the body for PATCH /users/me.
type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=30"`
	About string `json:"about" binding:"required,min=2,max=30"`
}

// UpdateAvatarRequest is the body for PATCH /users/me/avatar.
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" binding:"required,url"`
}
