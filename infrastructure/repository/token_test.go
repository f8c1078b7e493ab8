package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meli-sync-api/internal/domain"
)

const tokenSelectQuery = "SELECT mt.account_name, mt.refresh_token, mt.access_token, mt.access_token_expires_at, mt.updated_at FROM meli_tokens"

func tokenRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"account_name", "refresh_token", "access_token", "access_token_expires_at", "updated_at"})
}

func TestTokenRepository_Get(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewTokenRepository(conn)

	expiresAt := time.Now().Add(6 * time.Hour)

	mock.ExpectQuery(tokenSelectQuery).
		WithArgs("FLORIPA").
		WillReturnRows(tokenRows().
			AddRow("FLORIPA", "refresh-atual", "access-atual", expiresAt, time.Now()))

	record, err := repo.Get("FLORIPA")

	assert.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "FLORIPA", record.AccountName)
	assert.Equal(t, "refresh-atual", record.RefreshToken)
	assert.Equal(t, "access-atual", record.AccessToken)
	require.NotNil(t, record.AccessTokenExpiresAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_Get_SemLinha(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewTokenRepository(conn)

	mock.ExpectQuery(tokenSelectQuery).
		WithArgs("FLORIPA").
		WillReturnRows(tokenRows())

	record, err := repo.Get("FLORIPA")

	assert.NoError(t, err)
	assert.Nil(t, record)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_Get_RefreshTokenVazio(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewTokenRepository(conn)

	mock.ExpectQuery(tokenSelectQuery).
		WithArgs("FLORIPA").
		WillReturnRows(tokenRows().
			AddRow("FLORIPA", "", nil, nil, time.Now()))

	record, err := repo.Get("FLORIPA")

	// Linha sem refresh token não serve de seed, é tratada como ausente
	assert.NoError(t, err)
	assert.Nil(t, record)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_SaveOrUpdate(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewTokenRepository(conn)

	expiresAt := time.Now().Add(6 * time.Hour)

	mock.ExpectExec("INSERT INTO meli_tokens").
		WithArgs("FLORIPA", "refresh-novo", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveOrUpdate(&domain.TokenRecord{
		AccountName:          "FLORIPA",
		RefreshToken:         "refresh-novo",
		AccessToken:          "access-novo",
		AccessTokenExpiresAt: &expiresAt,
		UpdatedAt:            time.Now(),
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_SaveOrUpdate_ErroDoBanco(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewTokenRepository(conn)

	mock.ExpectExec("INSERT INTO meli_tokens").
		WillReturnError(sqlmock.ErrCancelled)

	err := repo.SaveOrUpdate(&domain.TokenRecord{
		AccountName:  "FLORIPA",
		RefreshToken: "refresh-novo",
		UpdatedAt:    time.Now(),
	})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
