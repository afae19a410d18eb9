package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// categoriesQuery groups the recipes table by its categories array.
const categoriesQuery = `SELECT DISTINCT unnest(categories) AS field_value FROM recipes ORDER BY field_value`

// Querier is the subset of pgxpool.Pool the provider needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var _ Querier = (*pgxpool.Pool)(nil)

// PostgresProvider reads categories from the recipes table.
type PostgresProvider struct {
	db Querier
}

// NewPostgresProvider creates a provider backed by db.
func NewPostgresProvider(db Querier) *PostgresProvider {
	return &PostgresProvider{db: db}
}

// Categories returns the distinct categories, sorted by slug.
func (p *PostgresProvider) Categories(ctx context.Context) ([]Category, error) {
	rows, err := p.db.Query(ctx, categoriesQuery)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}

	slugs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan categories: %w", err)
	}

	categories := make([]Category, len(slugs))
	for i, s := range slugs {
		categories[i] = Category{FieldValue: s}
	}
	return categories, nil
}
