package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/meli-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/meli-sync-api/internal/domain"
	"github.com/vfg2006/meli-sync-api/pkg/utils"
)

const (
	faturamentoTable = "faturamento f"
)

type RevenueRepository interface {
	GetByEmpresaAndDate(empresa string, date time.Time) (*domain.DailyRevenue, error)
	Upsert(empresa string, date time.Time, valor float64) error
}

type revenueRepository struct {
	conn *postgres.Connection
}

func NewRevenueRepository(conn *postgres.Connection) RevenueRepository {
	return &revenueRepository{
		conn: conn,
	}
}

func (r *revenueRepository) GetByEmpresaAndDate(empresa string, date time.Time) (*domain.DailyRevenue, error) {
	query, args, err := squirrel.
		Select("f.id, f.empresa, f.data, f.valor, f.created_at, f.updated_at").
		From(faturamentoTable).
		Where(squirrel.Eq{"f.empresa": empresa, "f.data": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	revenue := &domain.DailyRevenue{}
	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&revenue.ID,
		&revenue.Empresa,
		&revenue.Date,
		&revenue.Valor,
		&revenue.CreatedAt,
		&revenue.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear faturamento: %w", err)
	}

	return revenue, nil
}

// Upsert grava o faturamento do dia. A tabela tem UNIQUE(empresa, data); em conflito
// o valor novo substitui integralmente o anterior, nunca gera linha duplicada.
func (r *revenueRepository) Upsert(empresa string, date time.Time, valor float64) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar id: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("faturamento").
		Columns("id", "empresa", "data", "valor").
		Values(
			id,
			empresa,
			date.Format(time.DateOnly),
			valor,
		).
		Suffix(`
			ON CONFLICT (empresa, data) DO UPDATE SET
				valor = EXCLUDED.valor,
				updated_at = NOW()
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
