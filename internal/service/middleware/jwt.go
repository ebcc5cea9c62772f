package middleware

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt"
)

const (
	AccessTokenTTL  = 10 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("invalid token")
)

type JwtTokenService interface {
	Create(username string) (string, error)
	Validate(tokenString string) (*JwtClaims, error)
	DecodeUnverified(tokenString string) (*JwtClaims, error)
}

type JwtToken struct {
	Secret []byte
	TTL    time.Duration
}

func NewJwtToken(secret string, ttl time.Duration) (JwtTokenService, error) {
	if secret == "" {
		return nil, errors.New("empty jwt secret")
	}
	return &JwtToken{
		Secret: []byte(secret),
		TTL:    ttl,
	}, nil
}

type JwtClaims struct {
	Username string `json:"userName"`
	jwt.StandardClaims
}

func (tk *JwtToken) Create(username string) (string, error) {
	now := time.Now()
	data := JwtClaims{
		Username: username,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(tk.TTL).Unix(),
			IssuedAt:  now.Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, data)
	return token.SignedString(tk.Secret)
}

// Validate checks signature and expiry. Only a token whose signature
// verifies fails with ErrTokenExpired; a forged token is invalid even
// when its exp already passed, otherwise the silent-refresh path would
// mint real tokens from unsigned claims.
func (tk *JwtToken) Validate(tokenString string) (*JwtClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtClaims{}, tk.parseSecretGetter)
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) {
			badSignature := jwt.ValidationErrorMalformed |
				jwt.ValidationErrorUnverifiable |
				jwt.ValidationErrorSignatureInvalid
			if validationErr.Errors&badSignature != 0 {
				return nil, ErrTokenInvalid
			}
			if validationErr.Errors&jwt.ValidationErrorExpired != 0 {
				return nil, ErrTokenExpired
			}
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*JwtClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// DecodeUnverified recovers claims without checking signature or
// expiry. Only used to learn whose access token just expired.
func (tk *JwtToken) DecodeUnverified(tokenString string) (*JwtClaims, error) {
	claims := &JwtClaims{}
	parser := &jwt.Parser{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

func (tk *JwtToken) parseSecretGetter(token *jwt.Token) (interface{}, error) {
	method, ok := token.Method.(*jwt.SigningMethodHMAC)
	if !ok || method.Alg() != "HS256" {
		return nil, errors.New("bad sign method")
	}
	return tk.Secret, nil
}
