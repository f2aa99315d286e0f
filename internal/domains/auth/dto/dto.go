package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"admin@herculesarena.com"`
	Password string `json:"password" validate:"required,min=8" example:"password"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
