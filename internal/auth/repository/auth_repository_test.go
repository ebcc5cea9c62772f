package repository

import (
	"context"
	"net/http"
	"regexp"
	"testing"

	"item_simulator/domain"
	"item_simulator/internal/service/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) (domain.AccountRepository, sqlmock.Sqlmock) {
	t.Helper()
	logger.DBLogger = zap.NewNop()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewAuthRepository(gormDB), mock
}

func TestCreateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo, mock := newTestDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE username = $1 ORDER BY "accounts"."id" LIMIT $2`)).
			WithArgs("alice1", 1).
			WillReturnError(gorm.ErrRecordNotFound)
		mock.ExpectQuery(`INSERT INTO "accounts"`).
			WithArgs("alice1", "hashed-password", "refresh-token").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		account, err := repo.CreateAccount(ctx, "alice1", "hashed-password", "refresh-token")
		require.NoError(t, err)
		assert.Equal(t, 1, account.ID)
		assert.Equal(t, "alice1", account.Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Fail - Username Taken", func(t *testing.T) {
		repo, mock := newTestDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE username = $1 ORDER BY "accounts"."id" LIMIT $2`)).
			WithArgs("alice1", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(1, "alice1"))
		mock.ExpectRollback()

		_, err := repo.CreateAccount(ctx, "alice1", "hashed-password", "refresh-token")
		var domainErr *domain.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, http.StatusConflict, domainErr.Code)
		assert.Equal(t, "userName already exists", domainErr.Message)
	})
}

func TestGetAccountByUsername(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo, mock := newTestDB(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE username = $1 ORDER BY "accounts"."id" LIMIT $2`)).
			WithArgs("alice1", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password"}).AddRow(1, "alice1", "hashed-password"))

		account, err := repo.GetAccountByUsername(ctx, "alice1")
		require.NoError(t, err)
		assert.Equal(t, "alice1", account.Username)
		assert.Equal(t, "hashed-password", account.Password)
	})

	t.Run("Fail - Not Found", func(t *testing.T) {
		repo, mock := newTestDB(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE username = $1 ORDER BY "accounts"."id" LIMIT $2`)).
			WithArgs("nobody9", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.GetAccountByUsername(ctx, "nobody9")
		var domainErr *domain.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, http.StatusUnauthorized, domainErr.Code)
		assert.Equal(t, "account does not exist", domainErr.Message)
	})
}

func TestUpdateRefreshToken(t *testing.T) {
	ctx := context.Background()
	repo, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "accounts" SET "refresh_token"=$1 WHERE username = $2`)).
		WithArgs("new-refresh", "alice1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateRefreshToken(ctx, "alice1", "new-refresh")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadRefreshTokens(t *testing.T) {
	ctx := context.Background()
	repo, mock := newTestDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE refresh_token <> ''`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "refresh_token"}).
			AddRow(1, "alice1", "token-a").
			AddRow(2, "bob2", "token-b"))

	tokens, err := repo.LoadRefreshTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"alice1": "token-a",
		"bob2":   "token-b",
	}, tokens)
}
