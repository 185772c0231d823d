// Package catalog_repo provides the PostgreSQL implementation of the catalog
// repository. Stock balances come from the ERP's
// sml_ic_function_stock_balance_warehouse_location function.
package catalog_repo

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	"odgpos/internal/domain/catalog"
	"odgpos/internal/infrastructure/storage/postgres"
)

var _ catalog.Repository = (*CatalogRepo)(nil)

// horizonDate makes the stock function report the current balance. The
// function takes a balance-as-of date; far future means "now".
const horizonDate = "2099-12-31"

// CatalogRepo reads reference data and stock balances.
type CatalogRepo struct {
	txm *postgres.TxManager
}

// NewCatalogRepo creates a new catalog repository.
func NewCatalogRepo(txm *postgres.TxManager) *CatalogRepo {
	return &CatalogRepo{txm: txm}
}

func (r *CatalogRepo) Categories(ctx context.Context, scope catalog.StockScope) ([]catalog.Category, error) {
	const sql = `
		SELECT f.name_1, COUNT(a.ic_code) AS count
		FROM sml_ic_function_stock_balance_warehouse_location($1, '', $2, $3) a
		LEFT JOIN ic_inventory b ON b.code = a.ic_code
		LEFT JOIN ic_category f ON f.code = b.item_category
		WHERE a.balance_qty > 0 AND f.name_1 IS NOT NULL AND f.name_1 <> $4
		GROUP BY f.name_1
		ORDER BY f.name_1`

	var categories []catalog.Category
	querier := r.txm.GetQuerier(ctx)
	err := pgxscan.Select(ctx, querier, &categories, sql,
		horizonDate, scope.WHCode, scope.LocCode, catalog.ExcludedCategory)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (r *CatalogRepo) Products(ctx context.Context, query catalog.ProductQuery) ([]catalog.Product, error) {
	// Built by hand because the FROM clause is a set-returning function
	// call, which squirrel cannot parameterize.
	sql := `
		SELECT b.code AS item_code,
		       b.name_1 AS item_name,
		       COALESCE(b.unit_code_1, 'PCS') AS unit_code,
		       COALESCE((SELECT sale_price1 FROM ic_inventory_price
		                 WHERE current_date BETWEEN from_date AND to_date
		                 AND currency_code = '02'
		                 AND ic_code = b.code
		                 AND cust_group_1 = '101'
		                 ORDER BY roworder DESC LIMIT 1), 0) AS price,
		       a.balance_qty AS stock_quantity,
		       COALESCE((SELECT url_image FROM product_image
		                 WHERE ic_code = b.code AND line_number = 1), '') AS url_image
		FROM sml_ic_function_stock_balance_warehouse_location($1, '', $2, $3) a
		LEFT JOIN ic_inventory b ON b.code = a.ic_code`

	args := []any{horizonDate, query.WHCode, query.LocCode}

	if query.Filtered() {
		sql += `
		LEFT JOIN ic_category f ON f.code = b.item_category
		WHERE a.balance_qty > 0 AND f.name_1 = $4`
		args = append(args, query.Category)
	} else {
		sql += `
		WHERE a.balance_qty > 0`
	}

	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		sql += fmt.Sprintf(" AND (b.name_1 ILIKE $%d OR b.code ILIKE $%d)", len(args)+1, len(args)+1)
		args = append(args, pattern)
	}

	sql += fmt.Sprintf(" ORDER BY b.name_1 LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, query.Limit, query.Offset)

	var products []catalog.Product
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &products, sql, args...); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *CatalogRepo) CheckPrice(ctx context.Context, query catalog.PriceCheckQuery) ([]catalog.PriceCheck, error) {
	const sql = `
		WITH found_product AS (
			SELECT a.ic_code, a.ic_name, a.ic_unit_code, a.balance_qty
			FROM sml_ic_function_stock_balance_warehouse_location($1, '', $2, $3) a
			LEFT JOIN ic_inventory_barcode b ON a.ic_code = b.ic_code
			WHERE (a.ic_name ILIKE $4 OR a.ic_code ILIKE $4 OR b.barcode = $5)
			  AND a.balance_qty > 0
			LIMIT 1
		)
		SELECT fp.ic_code AS item_code,
		       fp.ic_name AS item_name,
		       fp.ic_unit_code AS unit_code,
		       fp.balance_qty AS stock_quantity,
		       COALESCE((SELECT barcode FROM ic_inventory_barcode
		                 WHERE ic_code = fp.ic_code LIMIT 1), '') AS barcode,
		       COALESCE((SELECT sale_price1 FROM ic_inventory_price
		                 WHERE current_date BETWEEN from_date AND to_date
		                 AND currency_code = '02'
		                 AND ic_code = fp.ic_code
		                 AND unit_code = fp.ic_unit_code
		                 AND cust_group_1 = '101'
		                 ORDER BY roworder DESC LIMIT 1), 0) AS price,
		       COALESCE((SELECT url_image FROM product_image
		                 WHERE ic_code = fp.ic_code AND line_number = 1), '') AS url_image
		FROM found_product fp`

	pattern := "%" + query.Search + "%"

	var results []catalog.PriceCheck
	querier := r.txm.GetQuerier(ctx)
	err := pgxscan.Select(ctx, querier, &results, sql,
		horizonDate, query.WHCode, query.LocCode, pattern, query.Search)
	if err != nil {
		return nil, fmt.Errorf("check price: %w", err)
	}
	return results, nil
}

func (r *CatalogRepo) Warehouses(ctx context.Context) ([]catalog.Warehouse, error) {
	const sql = `SELECT code, name_1 AS name FROM ic_warehouse ORDER BY code`

	var warehouses []catalog.Warehouse
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &warehouses, sql); err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	return warehouses, nil
}

func (r *CatalogRepo) Locations(ctx context.Context, whCode string) ([]catalog.Location, error) {
	const sql = `SELECT code, name_1 AS name FROM ic_shelf WHERE whcode = $1 ORDER BY code`

	var locations []catalog.Location
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &locations, sql, whCode); err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return locations, nil
}

func (r *CatalogRepo) Customers(ctx context.Context) ([]catalog.Customer, error) {
	const sql = `SELECT code, name_1 AS name FROM ar_customer ORDER BY name_1`

	var customers []catalog.Customer
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &customers, sql); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

func (r *CatalogRepo) Units(ctx context.Context) ([]string, error) {
	const sql = `
		SELECT DISTINCT unit_code_1
		FROM ic_inventory
		WHERE unit_code_1 IS NOT NULL AND unit_code_1 <> ''
		ORDER BY unit_code_1`

	var units []string
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &units, sql); err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	return units, nil
}
