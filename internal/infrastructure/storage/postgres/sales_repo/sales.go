// Package sales_repo provides the PostgreSQL implementation of the sales
// analysis repository.
package sales_repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"odgpos/internal/domain/billing"
	"odgpos/internal/domain/sales"
	"odgpos/internal/infrastructure/storage/postgres"
)

var _ sales.Repository = (*SalesRepo)(nil)

// SalesRepo reads sales and stock balance data.
type SalesRepo struct {
	txm *postgres.TxManager
}

// NewSalesRepo creates a new sales repository.
func NewSalesRepo(txm *postgres.TxManager) *SalesRepo {
	return &SalesRepo{txm: txm}
}

func (r *SalesRepo) HasSales(ctx context.Context, date time.Time) (bool, error) {
	const sql = `SELECT 1 FROM ic_trans_detail WHERE doc_date = $1 LIMIT 1`

	var one int
	querier := r.txm.GetQuerier(ctx)
	err := querier.QueryRow(ctx, sql, date).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check sales: %w", err)
	}
	return true, nil
}

func (r *SalesRepo) Analysis(ctx context.Context, query sales.AnalysisQuery) ([]sales.Row, error) {
	const sql = `
		WITH stock_balances AS (
			SELECT ic_code, ic_name, ic_unit_code, balance_qty AS balance_qty_start
			FROM sml_ic_function_stock_balance_warehouse_location($1::date - 1, '', $2, $3)
			WHERE balance_qty > 0
		),
		sales_data AS (
			SELECT item_code, SUM(qty) AS sale_qty
			FROM ic_trans_detail
			WHERE trans_flag = $4 AND doc_date = $1 AND wh_code = $2
			GROUP BY item_code
		)
		SELECT $1::date AS doc_date,
		       a.ic_code AS item_code,
		       a.ic_name AS item_name,
		       a.ic_unit_code AS unit_code,
		       round(a.balance_qty_start, 2) AS balance_qty_start,
		       COALESCE(b.sale_qty, 0) AS sale_qty,
		       COALESCE((SELECT round(balance_qty, 2)
		                 FROM sml_ic_function_stock_balance_warehouse_location($1, a.ic_code, $2, $3)), 0) AS balance_qty,
		       COALESCE((SELECT round(balance_qty, 2)
		                 FROM sml_ic_function_stock_balance_warehouse_location($1, a.ic_code, $5, $6)), 0) AS balance_qty_compare
		FROM stock_balances a
		LEFT JOIN sales_data b ON a.ic_code = b.item_code
		ORDER BY a.ic_code ASC
		LIMIT $7 OFFSET $8`

	var rows []sales.Row
	querier := r.txm.GetQuerier(ctx)
	err := pgxscan.Select(ctx, querier, &rows, sql,
		*query.DocDate,
		query.UserWHCode, query.UserLocCode(),
		billing.TransFlagPOS,
		query.CompareWHCode, query.CompareLocCode(),
		query.Limit, query.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("sales analysis: %w", err)
	}
	return rows, nil
}
