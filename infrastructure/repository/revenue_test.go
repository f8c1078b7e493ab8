package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meli-sync-api/infrastructure/database/postgres"
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &postgres.Connection{DB: db}, mock
}

func TestRevenueRepository_Upsert(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewRevenueRepository(conn)

	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO faturamento").
		WithArgs(sqlmock.AnyArg(), "IVS FLORIPA", "2024-01-15", 130.00).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert("IVS FLORIPA", date, 130.00)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevenueRepository_Upsert_ErroDoBanco(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewRevenueRepository(conn)

	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO faturamento").
		WillReturnError(sqlmock.ErrCancelled)

	err := repo.Upsert("IVS FLORIPA", date, 130.00)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevenueRepository_GetByEmpresaAndDate(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewRevenueRepository(conn)

	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "empresa", "data", "valor", "created_at", "updated_at"}).
		AddRow("abc123", "IVS FLORIPA", date, 130.00, now, now)

	mock.ExpectQuery("SELECT f.id, f.empresa, f.data, f.valor, f.created_at, f.updated_at FROM faturamento").
		WithArgs("2024-01-15", "IVS FLORIPA").
		WillReturnRows(rows)

	revenue, err := repo.GetByEmpresaAndDate("IVS FLORIPA", date)

	assert.NoError(t, err)
	require.NotNil(t, revenue)
	assert.Equal(t, "abc123", revenue.ID)
	assert.Equal(t, "IVS FLORIPA", revenue.Empresa)
	assert.Equal(t, 130.00, revenue.Valor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevenueRepository_GetByEmpresaAndDate_SemLinha(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewRevenueRepository(conn)

	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT f.id, f.empresa, f.data, f.valor, f.created_at, f.updated_at FROM faturamento").
		WithArgs("2024-01-15", "IVS FLORIPA").
		WillReturnRows(sqlmock.NewRows([]string{"id", "empresa", "data", "valor", "created_at", "updated_at"}))

	revenue, err := repo.GetByEmpresaAndDate("IVS FLORIPA", date)

	assert.NoError(t, err)
	assert.Nil(t, revenue)
	assert.NoError(t, mock.ExpectationsWereMet())
}
