// Package billing_repo provides the PostgreSQL implementation of the billing
// posting repository over the ERP's ic_trans / cb_trans tables.
package billing_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"odgpos/internal/core/apperror"
	"odgpos/internal/core/types"
	"odgpos/internal/domain/billing"
	"odgpos/internal/infrastructure/storage/postgres"
)

const (
	transTable          = "ic_trans"
	transDetailTable    = "ic_trans_detail"
	transShipmentTable  = "ic_trans_shipment"
	cashBookTable       = "cb_trans"
	cashBookDetailTable = "cb_trans_detail"
)

// Compile-time interface checks.
var (
	_ billing.Repository = (*BillingRepo)(nil)
	_ billing.RateLookup = (*RateRepo)(nil)
	_ billing.CostLookup = (*CostRepo)(nil)
	_ billing.UserLookup = (*OperatorRepo)(nil)
)

// BillingRepo writes posting rows. The TxManager is injected explicitly;
// all writes run on whatever transaction the caller opened.
type BillingRepo struct {
	txm *postgres.TxManager
}

// NewBillingRepo creates a new billing repository.
func NewBillingRepo(txm *postgres.TxManager) *BillingRepo {
	return &BillingRepo{txm: txm}
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *BillingRepo) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *BillingRepo) HeaderExists(ctx context.Context, docNo string) (bool, error) {
	q := r.Builder().
		Select("1").
		From(transTable).
		Where(squirrel.Eq{"doc_no": docNo, "trans_flag": billing.TransFlagPOS}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var one int
	querier := r.txm.GetQuerier(ctx)
	err = querier.QueryRow(ctx, sql, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check header exists: %w", err)
	}
	return true, nil
}

func (r *BillingRepo) InsertHeader(ctx context.Context, header *billing.TransHeader) error {
	q := r.Builder().
		Insert(transTable).
		SetMap(map[string]any{
			"trans_type":        header.TransType,
			"trans_flag":        header.TransFlag,
			"doc_date":          header.DocDate,
			"doc_no":            header.DocNo,
			"doc_time":          squirrel.Expr("CURRENT_TIME"),
			"doc_format_code":   header.DocFormatCode,
			"branch_code":       header.BranchCode,
			"project_code":      header.ProjectCode,
			"side_code":         header.SideCode,
			"department_code":   header.DepartmentCode,
			"sale_code":         header.SaleCode,
			"cust_code":         header.CustCode,
			"total_amount":      header.TotalAmount,
			"total_amount_baht": header.TotalAmountBaht,
			"exchange_rate":     header.ExchangeRate,
			"remark":            header.Remark,
			"creator_code":      header.CreatorCode,
			"create_datetime":   squirrel.Expr("CURRENT_TIMESTAMP"),
		})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert %s: %w", transTable, err)
	}
	return nil
}

func (r *BillingRepo) InsertDetails(ctx context.Context, details []billing.TransDetail) error {
	if len(details) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(transDetailTable).
		Columns(
			"trans_type", "trans_flag", "doc_date", "doc_no", "doc_time",
			"line_number", "item_code", "item_name", "unit_code", "qty",
			"price", "price_baht", "sum_amount", "sum_amount_baht",
			"average_cost", "sum_of_cost", "sum_of_cost_2",
			"wh_code", "shelf_code", "branch_code", "sale_code",
			"creator_code", "create_datetime",
		)

	for _, d := range details {
		q = q.Values(
			d.TransType, d.TransFlag, d.DocDate, d.DocNo, squirrel.Expr("CURRENT_TIME"),
			d.LineNumber, d.ItemCode, d.ItemName, d.UnitCode, d.Qty,
			d.Price, d.PriceBaht, d.SumAmount, d.SumAmountBaht,
			d.AverageCost, d.SumOfCost, d.SumOfCost2,
			d.WHCode, d.ShelfCode, d.BranchCode, d.SaleCode,
			d.CreatorCode, squirrel.Expr("CURRENT_TIMESTAMP"),
		)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert details: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert %s: %w", transDetailTable, err)
	}
	return nil
}

func (r *BillingRepo) InsertShipment(ctx context.Context, shipment *billing.Shipment) error {
	q := r.Builder().
		Insert(transShipmentTable).
		SetMap(map[string]any{
			"doc_no":    shipment.DocNo,
			"doc_date":  shipment.DocDate,
			"cust_code": shipment.CustCode,
		})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert %s: %w", transShipmentTable, err)
	}
	return nil
}

func (r *BillingRepo) GetHeader(ctx context.Context, docNo string) (*billing.TransHeader, error) {
	q := r.Builder().
		Select(
			"trans_type", "trans_flag", "doc_date", "doc_no", "doc_format_code",
			"branch_code", "project_code", "side_code", "department_code",
			"sale_code", "cust_code", "total_amount", "total_amount_baht",
			"exchange_rate", "remark", "creator_code",
		).
		From(transTable).
		Where(squirrel.Eq{"doc_no": docNo, "trans_flag": billing.TransFlagPOS})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var header billing.TransHeader
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &header, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("posting header", docNo)
		}
		return nil, fmt.Errorf("get header: %w", err)
	}
	return &header, nil
}

func (r *BillingRepo) InsertCashBook(ctx context.Context, cb *billing.CashBook) error {
	q := r.Builder().
		Insert(cashBookTable).
		SetMap(map[string]any{
			"doc_date":          cb.DocDate,
			"doc_no":            cb.DocNo,
			"doc_time":          squirrel.Expr("CURRENT_TIME"),
			"branch_code":       cb.BranchCode,
			"pay_type":          cb.PayType,
			"total_amount":      cb.TotalAmount,
			"total_amount_baht": cb.TotalAmountBaht,
			"exchange_rate":     cb.ExchangeRate,
			"amount_cash":       cb.CashAmount,
			"amount_transfer":   cb.TransferAmount,
			"amount_card":       cb.CardAmount,
			"creator_code":      cb.CreatorCode,
			"create_datetime":   squirrel.Expr("CURRENT_TIMESTAMP"),
		})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert %s: %w", cashBookTable, err)
	}
	return nil
}

func (r *BillingRepo) InsertCashBookDetail(ctx context.Context, detail *billing.CashBookDetail) error {
	q := r.Builder().
		Insert(cashBookDetailTable).
		SetMap(map[string]any{
			"doc_date":     detail.DocDate,
			"doc_no":       detail.DocNo,
			"line_number":  detail.LineNumber,
			"trans_number": detail.TransNum,
			"doc_type":     detail.DocType,
			"bank_code":    detail.BankCode,
			"bank_branch":  detail.BankBranch,
			"amount":       detail.Amount,
			"amount_baht":  detail.AmountBaht,
		})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert %s: %w", cashBookDetailTable, err)
	}
	return nil
}

// --- Reference lookups ---

// RateRepo reads the current LAK->Baht exchange rate.
type RateRepo struct {
	txm *postgres.TxManager
}

// NewRateRepo creates a new exchange rate lookup.
func NewRateRepo(txm *postgres.TxManager) *RateRepo {
	return &RateRepo{txm: txm}
}

// CurrentRate returns the latest stored rate for currency '02' (Baht),
// or zero when no row exists.
func (r *RateRepo) CurrentRate(ctx context.Context) (types.Money, error) {
	const sql = `
		SELECT exchange_rate
		FROM erp_exchange_rate
		WHERE currency_code = '02'
		ORDER BY doc_date DESC
		LIMIT 1`

	var rate types.Money
	querier := r.txm.GetQuerier(ctx)
	err := querier.QueryRow(ctx, sql).Scan(&rate)
	if errors.Is(err, pgx.ErrNoRows) {
		return types.Zero(), nil
	}
	if err != nil {
		return types.Zero(), fmt.Errorf("get exchange rate: %w", err)
	}
	return rate, nil
}

// CostRepo reads per-item average cost.
type CostRepo struct {
	txm *postgres.TxManager
}

// NewCostRepo creates a new average cost lookup.
func NewCostRepo(txm *postgres.TxManager) *CostRepo {
	return &CostRepo{txm: txm}
}

// AverageCost returns the item's average cost, or zero when the item is
// unknown or carries no cost.
func (r *CostRepo) AverageCost(ctx context.Context, itemCode string) (types.Money, error) {
	const sql = `
		SELECT COALESCE(average_cost, 0)
		FROM ic_inventory
		WHERE code = $1`

	var cost types.Money
	querier := r.txm.GetQuerier(ctx)
	err := querier.QueryRow(ctx, sql, itemCode).Scan(&cost)
	if errors.Is(err, pgx.ErrNoRows) {
		return types.Zero(), nil
	}
	if err != nil {
		return types.Zero(), fmt.Errorf("get average cost: %w", err)
	}
	return cost, nil
}

// OperatorRepo resolves operator organizational attributes from erp_user.
type OperatorRepo struct {
	txm *postgres.TxManager
}

// NewOperatorRepo creates a new operator attribute lookup.
func NewOperatorRepo(txm *postgres.TxManager) *OperatorRepo {
	return &OperatorRepo{txm: txm}
}

// OperatorAttributes returns the operator's side/department codes,
// or empty strings when the operator row is absent.
func (r *OperatorRepo) OperatorAttributes(ctx context.Context, userCode string) (billing.OperatorAttributes, error) {
	const sql = `
		SELECT COALESCE(side_code, ''), COALESCE(department_code, '')
		FROM erp_user
		WHERE code = $1`

	var attrs billing.OperatorAttributes
	querier := r.txm.GetQuerier(ctx)
	err := querier.QueryRow(ctx, sql, userCode).Scan(&attrs.SideCode, &attrs.DepartmentCode)
	if errors.Is(err, pgx.ErrNoRows) {
		return billing.OperatorAttributes{}, nil
	}
	if err != nil {
		return billing.OperatorAttributes{}, fmt.Errorf("get operator attributes: %w", err)
	}
	return attrs, nil
}
