// Package auth_repo provides the PostgreSQL implementation of the operator
// repository over erp_user.
package auth_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"odgpos/internal/core/apperror"
	"odgpos/internal/domain/auth"
	"odgpos/internal/infrastructure/storage/postgres"
)

var _ auth.Repository = (*AuthRepo)(nil)

// AuthRepo reads operator records.
type AuthRepo struct {
	txm *postgres.TxManager
}

// NewAuthRepo creates a new operator repository.
func NewAuthRepo(txm *postgres.TxManager) *AuthRepo {
	return &AuthRepo{txm: txm}
}

func (r *AuthRepo) GetByCode(ctx context.Context, code string) (*auth.Record, error) {
	const sql = `
		SELECT code,
		       COALESCE(name_1, '') AS name_1,
		       COALESCE(ic_wht, '') AS ic_wht,
		       COALESCE(ic_shelf, '') AS ic_shelf,
		       COALESCE(password, '') AS password
		FROM erp_user
		WHERE code = $1`

	var record auth.Record
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &record, sql, code); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("operator", code)
		}
		return nil, fmt.Errorf("get operator: %w", err)
	}
	return &record, nil
}
