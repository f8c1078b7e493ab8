package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/meli-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/meli-sync-api/internal/domain"
)

const (
	meliTokensTable = "meli_tokens mt"
)

type TokenRepository interface {
	Get(accountName string) (*domain.TokenRecord, error)
	SaveOrUpdate(record *domain.TokenRecord) error
}

type tokenRepository struct {
	conn *postgres.Connection
}

func NewTokenRepository(conn *postgres.Connection) TokenRepository {
	return &tokenRepository{
		conn: conn,
	}
}

// Get retorna a linha de tokens da conta, ou nil se não houver linha ou se o
// refresh token armazenado estiver vazio.
func (r *tokenRepository) Get(accountName string) (*domain.TokenRecord, error) {
	query, args, err := squirrel.
		Select("mt.account_name, mt.refresh_token, mt.access_token, mt.access_token_expires_at, mt.updated_at").
		From(meliTokensTable).
		Where(squirrel.Eq{"mt.account_name": accountName}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	record := &domain.TokenRecord{}
	var accessToken sql.NullString
	var accessTokenExpiresAt sql.NullTime

	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&record.AccountName,
		&record.RefreshToken,
		&accessToken,
		&accessTokenExpiresAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear token: %w", err)
	}

	record.AccessToken = accessToken.String
	if accessTokenExpiresAt.Valid {
		record.AccessTokenExpiresAt = &accessTokenExpiresAt.Time
	}

	if record.RefreshToken == "" {
		return nil, nil
	}

	return record, nil
}

// SaveOrUpdate persiste o refresh token rotacionado (e o access token, se houver)
// com upsert por account_name: no máximo uma linha por conta.
func (r *tokenRepository) SaveOrUpdate(record *domain.TokenRecord) error {
	query := squirrel.StatementBuilder.
		Insert("meli_tokens").
		Columns("account_name", "refresh_token", "access_token", "access_token_expires_at", "updated_at").
		Values(
			record.AccountName,
			record.RefreshToken,
			sql.NullString{String: record.AccessToken, Valid: record.AccessToken != ""},
			record.AccessTokenExpiresAt,
			record.UpdatedAt,
		).
		Suffix(`
			ON CONFLICT (account_name) DO UPDATE SET
				refresh_token = EXCLUDED.refresh_token,
				access_token = EXCLUDED.access_token,
				access_token_expires_at = EXCLUDED.access_token_expires_at,
				updated_at = EXCLUDED.updated_at
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
