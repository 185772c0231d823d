package sales

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	hasSales  bool
	lastQuery AnalysisQuery
	lastDate  time.Time
	rows      []Row
	queried   bool
}

func (r *fakeRepo) HasSales(ctx context.Context, date time.Time) (bool, error) {
	r.lastDate = date
	return r.hasSales, nil
}

func (r *fakeRepo) Analysis(ctx context.Context, query AnalysisQuery) ([]Row, error) {
	r.queried = true
	r.lastQuery = query
	return r.rows, nil
}

func TestAnalysis_NoSalesShortCircuits(t *testing.T) {
	repo := &fakeRepo{hasSales: false}
	svc := NewService(repo)

	rows, err := svc.Analysis(context.Background(), AnalysisQuery{})
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.False(t, repo.queried, "balance query must be skipped when no sales exist")
}

func TestAnalysis_Defaults(t *testing.T) {
	repo := &fakeRepo{hasSales: true, rows: []Row{{ItemCode: "ITM-1"}}}
	svc := NewService(repo)
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	rows, err := svc.Analysis(context.Background(), AnalysisQuery{Offset: -1})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	q := repo.lastQuery
	assert.Equal(t, "1301", q.UserWHCode)
	assert.Equal(t, "1302", q.CompareWHCode)
	assert.Equal(t, DefaultPageSize, q.Limit)
	assert.Equal(t, 0, q.Offset)
	require.NotNil(t, q.DocDate)
	assert.Equal(t, now, *q.DocDate)
	assert.Equal(t, now, repo.lastDate)
}

func TestAnalysis_ExplicitDate(t *testing.T) {
	repo := &fakeRepo{hasSales: true}
	svc := NewService(repo)
	date := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	_, err := svc.Analysis(context.Background(), AnalysisQuery{DocDate: &date})
	require.NoError(t, err)
	assert.Equal(t, date, repo.lastDate)
}

func TestLocCodeDerivation(t *testing.T) {
	q := AnalysisQuery{UserWHCode: "1401", CompareWHCode: "14"}
	assert.Equal(t, "140101", q.UserLocCode())
	assert.Equal(t, "130101", q.CompareLocCode())
}
