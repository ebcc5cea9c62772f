package e2e_tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"item_simulator/domain"
	auth "item_simulator/internal/auth/controller"
	authRepository "item_simulator/internal/auth/repository"
	authUsecase "item_simulator/internal/auth/usecase"
	dsn2 "item_simulator/internal/service/dsn"
	"item_simulator/internal/service/logger"
	"item_simulator/internal/service/middleware"
	"item_simulator/internal/service/session"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := dsn2.FromEnvE2E()
	if dsn == "" {
		t.Skip("test database is not configured")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(&domain.Account{})
	assert.NoError(t, err)

	return db
}

func cleanupTestDB(t *testing.T, db *gorm.DB) {
	err := db.Migrator().DropTable(&domain.Account{})
	assert.NoError(t, err)
}

func TestSignUpSignInE2E(t *testing.T) {
	_ = godotenv.Load("../../../.env")
	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	accessToken, err := middleware.NewJwtToken("access-secret", middleware.AccessTokenTTL)
	assert.NoError(t, err)
	refreshToken, err := middleware.NewJwtToken("refresh-secret", middleware.RefreshTokenTTL)
	assert.NoError(t, err)

	err = logger.InitLoggers()
	assert.NoError(t, err)
	defer func() {
		err := logger.SyncLoggers()
		assert.NoError(t, err)
	}()

	sessions := session.NewRegistry()
	authRepo := authRepository.NewAuthRepository(db)
	authUC := authUsecase.NewAuthUsecase(authRepo, accessToken, refreshToken, sessions)
	authHandler := auth.NewAuthHandler(authUC)

	router := mux.NewRouter()
	api := "/api"
	router.HandleFunc(api+"/sign-up", authHandler.SignUp).Methods("POST")
	router.HandleFunc(api+"/sign-in", authHandler.SignIn).Methods("POST")

	server := httptest.NewServer(router)
	defer server.Close()

	client := &http.Client{}

	signUpBody, err := json.Marshal(domain.SignUpRequest{
		Username:        "alice2",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	assert.NoError(t, err)

	resp, err := client.Post(server.URL+"/api/sign-up", "application/json", bytes.NewBuffer(signUpBody))
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var refreshCookie *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "refreshToken" {
			refreshCookie = cookie
		}
	}
	assert.NotNil(t, refreshCookie)
	assert.NotEmpty(t, refreshCookie.Value)
	_, err = refreshToken.Validate(refreshCookie.Value)
	assert.NoError(t, err)
	assert.True(t, sessions.Contains("alice2"))

	signInBody, err := json.Marshal(domain.SignInRequest{
		Username: "alice2",
		Password: "secret1",
	})
	assert.NoError(t, err)

	resp, err = client.Post(server.URL+"/api/sign-in", "application/json", bytes.NewBuffer(signInBody))
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	authHeader := resp.Header.Get("Authorization")
	assert.NotEmpty(t, authHeader)
	claims, err := accessToken.Validate(authHeader[len("Bearer "):])
	assert.NoError(t, err)
	assert.Equal(t, "alice2", claims.Username)
}

func TestSignInWrongPasswordE2E(t *testing.T) {
	_ = godotenv.Load("../../../.env")
	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	accessToken, err := middleware.NewJwtToken("access-secret", middleware.AccessTokenTTL)
	assert.NoError(t, err)
	refreshToken, err := middleware.NewJwtToken("refresh-secret", middleware.RefreshTokenTTL)
	assert.NoError(t, err)

	err = logger.InitLoggers()
	assert.NoError(t, err)
	defer func() {
		err := logger.SyncLoggers()
		assert.NoError(t, err)
	}()

	sessions := session.NewRegistry()
	authRepo := authRepository.NewAuthRepository(db)
	authUC := authUsecase.NewAuthUsecase(authRepo, accessToken, refreshToken, sessions)
	authHandler := auth.NewAuthHandler(authUC)

	router := mux.NewRouter()
	api := "/api"
	router.HandleFunc(api+"/sign-up", authHandler.SignUp).Methods("POST")
	router.HandleFunc(api+"/sign-in", authHandler.SignIn).Methods("POST")

	server := httptest.NewServer(router)
	defer server.Close()

	client := &http.Client{}

	signUpBody, err := json.Marshal(domain.SignUpRequest{
		Username:        "bob3",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	assert.NoError(t, err)

	resp, err := client.Post(server.URL+"/api/sign-up", "application/json", bytes.NewBuffer(signUpBody))
	assert.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	signInBody, err := json.Marshal(domain.SignInRequest{
		Username: "bob3",
		Password: "wrongpass",
	})
	assert.NoError(t, err)

	resp, err = client.Post(server.URL+"/api/sign-in", "application/json", bytes.NewBuffer(signInBody))
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var response map[string]string
	err = json.NewDecoder(resp.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "password does not match", response["message"])
}
