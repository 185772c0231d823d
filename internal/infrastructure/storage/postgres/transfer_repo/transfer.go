// Package transfer_repo provides the PostgreSQL implementation of the
// warehouse transfer repository.
package transfer_repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"odgpos/internal/core/apperror"
	"odgpos/internal/domain/transfer"
	"odgpos/internal/infrastructure/storage/postgres"
)

var _ transfer.Repository = (*TransferRepo)(nil)

// TransferRepo reads and writes transfer documents in ic_trans.
type TransferRepo struct {
	txm *postgres.TxManager
}

// NewTransferRepo creates a new transfer repository.
func NewTransferRepo(txm *postgres.TxManager) *TransferRepo {
	return &TransferRepo{txm: txm}
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *TransferRepo) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *TransferRepo) InsertHeader(ctx context.Context, header *transfer.Header) error {
	q := r.Builder().
		Insert("ic_trans").
		SetMap(map[string]any{
			"trans_type":        header.TransType,
			"trans_flag":        header.TransFlag,
			"doc_date":          header.DocDate,
			"doc_no":            header.DocNo,
			"doc_ref":           header.DocRef,
			"doc_ref_date":      header.DocDate,
			"doc_time":          squirrel.Expr("to_char(CURRENT_TIMESTAMP, 'HH24:MI')"),
			"doc_format_code":   header.DocFormatCode,
			"branch_code":       header.BranchCode,
			"project_code":      "",
			"sale_code":         header.SaleCode,
			"remark":            header.Remark,
			"wh_from":           header.WHFrom,
			"location_from":     header.LocationFrom,
			"wh_to":             header.WHTo,
			"location_to":       header.LocationTo,
			"creator_code":      header.CreatorCode,
			"create_datetime":   squirrel.Expr("CURRENT_TIMESTAMP"),
			"last_editor_code":  header.CreatorCode,
			"lastedit_datetime": squirrel.Expr("CURRENT_TIMESTAMP"),
		})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert ic_trans: %w", err)
	}
	return nil
}

func (r *TransferRepo) InsertDetails(ctx context.Context, details []transfer.Detail) error {
	if len(details) == 0 {
		return nil
	}

	q := r.Builder().
		Insert("ic_trans_detail").
		Columns(
			"trans_type", "trans_flag", "doc_date", "doc_no",
			"item_code", "item_name", "unit_code", "qty",
			"branch_code", "wh_code", "shelf_code", "wh_code_2", "shelf_code_2",
			"stand_value", "divide_value", "doc_time", "sale_code",
			"create_datetime", "last_editor_code", "lastedit_datetime",
		)

	for _, d := range details {
		q = q.Values(
			d.TransType, d.TransFlag, d.DocDate, d.DocNo,
			d.ItemCode, d.ItemName, d.UnitCode, d.Qty,
			d.BranchCode, d.WHCode, d.ShelfCode, d.WHCode2, d.ShelfCode2,
			1, 1, squirrel.Expr("to_char(CURRENT_TIMESTAMP, 'HH24:MI')"), d.SaleCode,
			squirrel.Expr("CURRENT_TIMESTAMP"), d.SaleCode, squirrel.Expr("CURRENT_TIMESTAMP"),
		)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert details: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert ic_trans_detail: %w", err)
	}
	return nil
}

func (r *TransferRepo) GetConfirmation(ctx context.Context, docNo string) (*transfer.Confirmation, error) {
	const sql = `
		SELECT doc_no AS transfer_no,
		       creator_code AS creator,
		       to_char(create_datetime, 'YYYY-MM-DD HH24:MI:SS') AS doc_date_time,
		       (SELECT COALESCE(SUM(qty), 0) FROM ic_trans_detail WHERE doc_no = $1) AS quantity
		FROM ic_trans
		WHERE doc_no = $1 AND trans_flag = $2`

	var conf transfer.Confirmation
	querier := r.txm.GetQuerier(ctx)
	row := querier.QueryRow(ctx, sql, docNo, transfer.TransFlagTransfer)
	err := row.Scan(&conf.TransferNo, &conf.Creator, &conf.DocDateTime, &conf.Quantity)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NewNotFound("transfer", docNo)
	}
	if err != nil {
		return nil, fmt.Errorf("get transfer confirmation: %w", err)
	}
	return &conf, nil
}

// listSelect is the shared summary projection with resolved names.
const listSelect = `
	SELECT a.doc_date,
	       a.doc_no AS transfer_no,
	       a.creator_code,
	       COALESCE(u.name_1, a.creator_code) AS creator_name,
	       (SELECT COALESCE(SUM(qty), 0) FROM ic_trans_detail WHERE doc_no = a.doc_no) AS quantity,
	       CASE WHEN a.doc_success = 0 THEN 'ລໍຖ້າໂອນ'
	            WHEN a.doc_success = 1 THEN 'ໂອນສຳເລັດ'
	            ELSE '' END AS status_name,
	       to_char(a.create_datetime, 'YYYY-MM-DD HH24:MI:SS') AS doc_date_time,
	       a.wh_from,
	       COALESCE(wh_from.name_1, '') AS wh_from_name,
	       a.wh_to,
	       COALESCE(wh_to.name_1, '') AS wh_to_name,
	       a.location_from,
	       COALESCE(loc_from.name_1, '') AS location_from_name,
	       a.location_to,
	       COALESCE(loc_to.name_1, '') AS location_to_name
	FROM ic_trans a
	LEFT JOIN erp_user u ON u.code = a.creator_code
	LEFT JOIN ic_warehouse wh_from ON a.wh_from = wh_from.code
	LEFT JOIN ic_warehouse wh_to ON a.wh_to = wh_to.code
	LEFT JOIN ic_shelf loc_from ON a.location_from = loc_from.code AND a.wh_from = loc_from.whcode
	LEFT JOIN ic_shelf loc_to ON a.location_to = loc_to.code AND a.wh_to = loc_to.whcode`

func (r *TransferRepo) List(ctx context.Context, date *time.Time) ([]transfer.Summary, error) {
	var (
		sql  string
		args []any
	)
	if date != nil {
		sql = listSelect + `
	WHERE a.trans_flag = $1 AND a.doc_date = $2
	ORDER BY a.doc_date, a.doc_no`
		args = []any{transfer.TransFlagTransfer, *date}
	} else {
		sql = listSelect + `
	WHERE a.trans_flag = $1
	ORDER BY a.doc_date DESC, a.doc_no DESC`
		args = []any{transfer.TransFlagTransfer}
	}

	var summaries []transfer.Summary
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &summaries, sql, args...); err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	return summaries, nil
}

func (r *TransferRepo) Get(ctx context.Context, docNo string) (*transfer.View, error) {
	sql := listSelect + `
	WHERE a.trans_flag = $1 AND a.doc_no = $2`

	var summary transfer.Summary
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &summary, sql, transfer.TransFlagTransfer, docNo); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("transfer", docNo)
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}

	const detailSQL = `
		SELECT item_code, item_name, unit_code, qty,
		       wh_code, shelf_code, wh_code_2, shelf_code_2
		FROM ic_trans_detail
		WHERE doc_no = $1
		ORDER BY item_code`

	rows, err := querier.Query(ctx, detailSQL, docNo)
	if err != nil {
		return nil, fmt.Errorf("get transfer details: %w", err)
	}
	defer rows.Close()

	var details []transfer.Line
	for rows.Next() {
		var line transfer.Line
		if err := rows.Scan(
			&line.ItemCode, &line.ItemName, &line.UnitCode, &line.Qty,
			&line.WHCode, &line.ShelfCode, &line.WHCode2, &line.ShelfCode2,
		); err != nil {
			return nil, fmt.Errorf("scan detail: %w", err)
		}
		details = append(details, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate details: %w", err)
	}

	return &transfer.View{Summary: summary, Details: details}, nil
}

func (r *TransferRepo) UpdateLocations(ctx context.Context, docNo string, upd *transfer.LocationUpdate) error {
	q := r.Builder().
		Update("ic_trans").
		Set("wh_from", upd.WHFrom).
		Set("location_from", upd.LocationFrom).
		Set("wh_to", upd.WHTo).
		Set("location_to", upd.LocationTo).
		Set("lastedit_datetime", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"doc_no": docNo, "trans_flag": transfer.TransFlagTransfer})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update transfer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("transfer", docNo)
	}
	return nil
}
