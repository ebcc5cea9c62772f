package domain

import "context"

type Account struct {
	ID           int    `gorm:"primary_key;auto_increment;column:id" json:"id"`
	Username     string `gorm:"type:varchar(50);unique;not null;column:username" json:"userName"`
	Password     string `gorm:"type:varchar(255);not null;column:password" json:"-"`
	RefreshToken string `gorm:"type:varchar(512);column:refresh_token" json:"-"`
}

type SignUpRequest struct {
	Username        string `json:"userName"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type SignInRequest struct {
	Username string `json:"userName"`
	Password string `json:"password"`
}

type AccountRepository interface {
	CreateAccount(ctx context.Context, username string, passwordHash string, refreshToken string) (*Account, error)
	GetAccountByUsername(ctx context.Context, username string) (*Account, error)
	UpdateRefreshToken(ctx context.Context, username string, refreshToken string) error
	LoadRefreshTokens(ctx context.Context) (map[string]string, error)
}
