package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odgpos/internal/core/apperror"
)

type fakeRepo struct {
	lastScope StockScope
	lastQuery ProductQuery
	lastPrice PriceCheckQuery
}

func (r *fakeRepo) Categories(ctx context.Context, scope StockScope) ([]Category, error) {
	r.lastScope = scope
	return []Category{{Name: "Drinks", Count: 12}}, nil
}

func (r *fakeRepo) Products(ctx context.Context, query ProductQuery) ([]Product, error) {
	r.lastQuery = query
	return nil, nil
}

func (r *fakeRepo) CheckPrice(ctx context.Context, query PriceCheckQuery) ([]PriceCheck, error) {
	r.lastPrice = query
	return nil, nil
}

func (r *fakeRepo) Warehouses(ctx context.Context) ([]Warehouse, error) { return nil, nil }
func (r *fakeRepo) Locations(ctx context.Context, whCode string) ([]Location, error) {
	return nil, nil
}
func (r *fakeRepo) Customers(ctx context.Context) ([]Customer, error) { return nil, nil }
func (r *fakeRepo) Units(ctx context.Context) ([]string, error)       { return nil, nil }

func TestCategories_ScopeDefaults(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.Categories(context.Background(), StockScope{})
	require.NoError(t, err)
	assert.Equal(t, "1301", repo.lastScope.WHCode)
	assert.Equal(t, "01", repo.lastScope.LocCode)

	_, err = svc.Categories(context.Background(), StockScope{WHCode: "1401", LocCode: "02"})
	require.NoError(t, err)
	assert.Equal(t, "1401", repo.lastScope.WHCode)
	assert.Equal(t, "02", repo.lastScope.LocCode)
}

func TestProducts_PagingDefaults(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.Products(context.Background(), ProductQuery{Offset: -5})
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, repo.lastQuery.Limit)
	assert.Equal(t, 0, repo.lastQuery.Offset)

	_, err = svc.Products(context.Background(), ProductQuery{Limit: 10000})
	require.NoError(t, err)
	assert.Equal(t, MaxPageSize, repo.lastQuery.Limit)
}

func TestProductQuery_Filtered(t *testing.T) {
	assert.False(t, (&ProductQuery{}).Filtered())
	assert.False(t, (&ProductQuery{Category: "All"}).Filtered())
	assert.True(t, (&ProductQuery{Category: "Drinks"}).Filtered())
}

func TestCheckPrice_EmptySearchRejected(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.CheckPrice(context.Background(), PriceCheckQuery{})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestCheckPrice_ScopeDefaults(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.CheckPrice(context.Background(), PriceCheckQuery{Search: "8850999001"})
	require.NoError(t, err)
	assert.Equal(t, "1301", repo.lastPrice.WHCode)
	assert.Equal(t, "8850999001", repo.lastPrice.Search)
}
