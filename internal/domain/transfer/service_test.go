package transfer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odgpos/internal/core/apperror"
	"odgpos/internal/core/types"
)

type fakeTxManager struct {
	committed  int
	rolledBack int
}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		m.rolledBack++
		return err
	}
	m.committed++
	return nil
}

type fakeRepo struct {
	header  *Header
	details []Detail

	listed  []Summary
	view    *View
	updated *LocationUpdate

	failOn string
}

var errRepoBoom = errors.New("storage failure")

func (r *fakeRepo) fail(method string) error {
	if r.failOn == method {
		return errRepoBoom
	}
	return nil
}

func (r *fakeRepo) InsertHeader(ctx context.Context, header *Header) error {
	if err := r.fail("InsertHeader"); err != nil {
		return err
	}
	r.header = header
	return nil
}

func (r *fakeRepo) InsertDetails(ctx context.Context, details []Detail) error {
	if err := r.fail("InsertDetails"); err != nil {
		return err
	}
	r.details = details
	return nil
}

func (r *fakeRepo) GetConfirmation(ctx context.Context, docNo string) (*Confirmation, error) {
	if err := r.fail("GetConfirmation"); err != nil {
		return nil, err
	}
	if r.header == nil || r.header.DocNo != docNo {
		return nil, apperror.NewNotFound("transfer", docNo)
	}
	qty := types.Zero()
	for _, d := range r.details {
		qty = qty.Add(d.Qty)
	}
	return &Confirmation{
		TransferNo: docNo,
		Creator:    r.header.CreatorCode,
		Quantity:   qty,
	}, nil
}

func (r *fakeRepo) List(ctx context.Context, date *time.Time) ([]Summary, error) {
	return r.listed, nil
}

func (r *fakeRepo) Get(ctx context.Context, docNo string) (*View, error) {
	if r.view == nil {
		return nil, apperror.NewNotFound("transfer", docNo)
	}
	return r.view, nil
}

func (r *fakeRepo) UpdateLocations(ctx context.Context, docNo string, upd *LocationUpdate) error {
	if r.header == nil || r.header.DocNo != docNo {
		return apperror.NewNotFound("transfer", docNo)
	}
	r.updated = upd
	return nil
}

type fakeNumberer struct {
	next string
}

func (f *fakeNumberer) Next(ctx context.Context, prefix string, now time.Time) (string, error) {
	return f.next, nil
}

func newService(repo *fakeRepo, txm *fakeTxManager) *Service {
	svc := NewService(repo, &fakeNumberer{next: "FR26090001"}, txm)
	svc.now = func() time.Time {
		return time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	}
	return svc
}

func newRequest() *CreateRequest {
	return &CreateRequest{
		TransferNo:   "FR26090001",
		Creator:      "U-01",
		WHFrom:       "1301",
		LocationFrom: "130101",
		WHTo:         "1302",
		LocationTo:   "130201",
		Details: []Line{
			{
				ItemCode:   "ITM-1",
				ItemName:   "Bottled water",
				UnitCode:   "BTL",
				Qty:        types.MustMoney("5"),
				WHCode:     "1301",
				ShelfCode:  "130101",
				WHCode2:    "1302",
				ShelfCode2: "130201",
			},
		},
	}
}

func TestCreate_WritesHeaderAndDetails(t *testing.T) {
	repo := &fakeRepo{}
	txm := &fakeTxManager{}
	svc := newService(repo, txm)

	conf, err := svc.Create(context.Background(), newRequest())
	require.NoError(t, err)

	assert.Equal(t, "FR26090001", conf.TransferNo)
	assert.True(t, conf.Quantity.Equal(types.MustMoney("5")))
	assert.Equal(t, 1, txm.committed)

	h := repo.header
	require.NotNil(t, h)
	assert.Equal(t, 3, h.TransType)
	assert.Equal(t, 124, h.TransFlag)
	assert.Equal(t, "FR", h.DocFormatCode)
	assert.Equal(t, "Web: FR26090001", h.Remark)
	assert.Equal(t, "U-01", h.CreatorCode)
	assert.Equal(t, "1301", h.WHFrom)
	assert.Equal(t, "1302", h.WHTo)

	require.Len(t, repo.details, 1)
	d := repo.details[0]
	assert.Equal(t, 124, d.TransFlag)
	assert.Equal(t, "1301", d.WHCode)
	assert.Equal(t, "1302", d.WHCode2)
}

func TestCreate_RollbackOnDetailFailure(t *testing.T) {
	repo := &fakeRepo{failOn: "InsertDetails"}
	txm := &fakeTxManager{}
	svc := newService(repo, txm)

	_, err := svc.Create(context.Background(), newRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, errRepoBoom)
	assert.Equal(t, 1, txm.rolledBack)
	assert.Equal(t, 0, txm.committed)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *CreateRequest)
	}{
		{"missing transfer_no", func(r *CreateRequest) { r.TransferNo = "" }},
		{"missing creator", func(r *CreateRequest) { r.Creator = "" }},
		{"missing warehouses", func(r *CreateRequest) { r.WHFrom = "" }},
		{"no details", func(r *CreateRequest) { r.Details = nil }},
		{"zero qty", func(r *CreateRequest) { r.Details[0].Qty = types.Zero() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			txm := &fakeTxManager{}
			svc := newService(repo, txm)

			req := newRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			require.Error(t, err)
			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
			assert.Nil(t, repo.header)
		})
	}
}

func TestNextNumber(t *testing.T) {
	svc := newService(&fakeRepo{}, &fakeTxManager{})

	num, err := svc.NextNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "FR26090001", num)
}

func TestUpdateLocations(t *testing.T) {
	repo := &fakeRepo{header: &Header{DocNo: "FR26090001"}}
	txm := &fakeTxManager{}
	svc := newService(repo, txm)

	upd := &LocationUpdate{WHFrom: "1301", LocationFrom: "130101", WHTo: "1303", LocationTo: "130301"}
	err := svc.UpdateLocations(context.Background(), "FR26090001", upd)
	require.NoError(t, err)
	assert.Equal(t, upd, repo.updated)
	assert.Equal(t, 1, txm.committed)
}

func TestUpdateLocations_NotFound(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(repo, &fakeTxManager{})

	upd := &LocationUpdate{WHFrom: "1301", WHTo: "1303"}
	err := svc.UpdateLocations(context.Background(), "FR26099999", upd)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestStatusName(t *testing.T) {
	assert.Equal(t, "ລໍຖ້າໂອນ", StatusName(0))
	assert.Equal(t, "ໂອນສຳເລັດ", StatusName(1))
	assert.Equal(t, "", StatusName(7))
}
