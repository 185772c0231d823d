// Package numerator generates document numbers for POS and transfer
// documents. Numbers are derived from the highest stored doc_no rather than
// a sequence table, because sibling ERP clients write the same tables and
// only the documents themselves are shared state.
package numerator

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

// Document prefixes. Each combines with the YYMM period and a 4-digit
// running number: POS26010001, FR26010001.
const (
	PrefixPOS      = "POS"
	PrefixTransfer = "FR"
)

// SeqDigits is the width of the running-number suffix.
const SeqDigits = 4

// Querier interface for database operations.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Service generates document numbers from the highest stored doc_no.
type Service struct {
	querier Querier
}

// New creates a numbering service on the given querier. Pass the querier of
// the transaction that will insert the document so the max-scan and the
// insert see the same snapshot.
func New(querier Querier) *Service {
	return &Service{querier: querier}
}

// Next returns the next document number for the prefix in the period of now.
// The running number restarts at 0001 each calendar month.
func (s *Service) Next(ctx context.Context, prefix string, now time.Time) (string, error) {
	period := now.Format("0601") // YYMM
	full := prefix + period

	const sql = `
		SELECT COALESCE(MAX(doc_no), '')
		FROM ic_trans
		WHERE doc_no LIKE $1`

	var last string
	if err := s.querier.QueryRow(ctx, sql, full+"%").Scan(&last); err != nil {
		return "", fmt.Errorf("scan max doc_no: %w", err)
	}

	next := 1
	if seq, ok := parseSeq(last, full); ok {
		next = seq + 1
	}

	return fmt.Sprintf("%s%0*d", full, SeqDigits, next), nil
}

// parseSeq extracts the running number from a stored doc_no. Numbers that
// do not match the expected shape are ignored, so one malformed row cannot
// wedge the generator.
func parseSeq(docNo, full string) (int, bool) {
	if !strings.HasPrefix(docNo, full) {
		return 0, false
	}
	suffix := docNo[len(full):]
	if len(suffix) != SeqDigits {
		return 0, false
	}
	seq, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, false
	}
	return seq, true
}
