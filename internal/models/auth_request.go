package models

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Username    string `json:"username" binding:"required,min=2,max=40"`
	DisplayName string `json:"displayName" binding:"required,min=1,max=120"`
	Password    string `json:"password" binding:"required,min=8,max=200"`
}

// LoginRequest represents the request body for user login.
// The username field also accepts an email address.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
