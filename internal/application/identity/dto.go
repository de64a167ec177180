package identity

// LoginRequest carries the form-encoded credentials of the password flow
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// TokenResponse is the flat token payload returned by the login endpoint
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
