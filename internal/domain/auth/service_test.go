package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"odgpos/internal/core/apperror"
)

type fakeRepo struct {
	records map[string]*Record
}

func (r *fakeRepo) GetByCode(ctx context.Context, code string) (*Record, error) {
	if rec, ok := r.records[code]; ok {
		return rec, nil
	}
	return nil, apperror.NewNotFound("operator", code)
}

func newService(records map[string]*Record) *Service {
	return NewService(&fakeRepo{records: records}, NewTokenIssuer("test-secret", time.Hour))
}

func TestLogin_PlaintextLegacyPassword(t *testing.T) {
	svc := newService(map[string]*Record{
		"U-01": {
			User:     User{Code: "U-01", Name: "Somchai", WHCode: "1301", Shelf: "130101"},
			Password: "secret123",
		},
	})

	sess, err := svc.Login(context.Background(), &Credentials{Code: "U-01", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "U-01", sess.User.Code)
	assert.Equal(t, "Somchai", sess.User.Name)
	assert.Equal(t, "1301", sess.User.WHCode)
	assert.NotEmpty(t, sess.Token)
}

func TestLogin_BcryptPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := newService(map[string]*Record{
		"U-02": {User: User{Code: "U-02"}, Password: string(hash)},
	})

	sess, err := svc.Login(context.Background(), &Credentials{Code: "U-02", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "U-02", sess.User.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newService(map[string]*Record{
		"U-01": {User: User{Code: "U-01"}, Password: "secret123"},
	})

	_, err := svc.Login(context.Background(), &Credentials{Code: "U-01", Password: "wrong"})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
}

func TestLogin_UnknownOperatorIndistinguishable(t *testing.T) {
	svc := newService(map[string]*Record{})

	_, err := svc.Login(context.Background(), &Credentials{Code: "NOBODY", Password: "x"})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
	assert.Equal(t, "invalid credentials", appErr.Message)
}

func TestLogin_Validation(t *testing.T) {
	svc := newService(map[string]*Record{})

	for _, creds := range []*Credentials{
		{Code: "", Password: "x"},
		{Code: "U-01", Password: ""},
	} {
		_, err := svc.Login(context.Background(), creds)
		require.Error(t, err)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeValidation, appErr.Code)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	user := User{Code: "U-01", Name: "Somchai", WHCode: "1301", Shelf: "130101"}

	token, err := issuer.Issue(user)
	require.NoError(t, err)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "U-01", claims.Subject)
	assert.Equal(t, "Somchai", claims.Name)
	assert.Equal(t, "1301", claims.WHCode)
	assert.Equal(t, "130101", claims.Shelf)
}

func TestTokenExpiry(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Minute)
	issued := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return issued }

	token, err := issuer.Issue(User{Code: "U-01"})
	require.NoError(t, err)

	issuer.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = issuer.Verify(token)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a", time.Hour).Issue(User{Code: "U-01"})
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret-b", time.Hour).Verify(token)
	require.Error(t, err)
}
