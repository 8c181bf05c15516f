package service

import (
	"context"
	"testing"
	"time"

	"github.com/hirokishimizu39/ThisIsJapan/internal/model"
	"github.com/hirokishimizu39/ThisIsJapan/internal/serr"
	"github.com/hirokishimizu39/ThisIsJapan/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAccounts_Create(t *testing.T) {
	var inserted store.AccountInsertRequest
	srv := NewAccounts(&mockStore{
		insertAccountFunc: func(ctx context.Context, r store.AccountInsertRequest) (model.Account, error) {
			inserted = r
			return model.Account{
				ID:             1,
				Handle:         r.Handle,
				Credential:     r.Credential,
				IsLocalSpeaker: r.IsLocalSpeaker,
				CreatedAt:      time.Now(),
			}, nil
		},
	})

	a, err := srv.Create(context.Background(), CreateAccountRequest{
		Handle:         "yuki",
		Credential:     "secret-pass",
		IsLocalSpeaker: true,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, "yuki", a.Handle)
	assert.True(t, a.IsLocalSpeaker)

	assert.NotEqual(t, "secret-pass", inserted.Credential)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(inserted.Credential), []byte("secret-pass")))
}

func TestAccounts_Create_MissingFields(t *testing.T) {
	srv := NewAccounts(&mockStore{})

	_, err := srv.Create(context.Background(), CreateAccountRequest{Credential: "secret"})
	var sErr *serr.ServiceError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, 400, sErr.StatusCode)

	_, err = srv.Create(context.Background(), CreateAccountRequest{Handle: "yuki"})
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, 400, sErr.StatusCode)
}

func TestAccounts_Create_HandleTaken(t *testing.T) {
	srv := NewAccounts(&mockStore{
		insertAccountFunc: func(ctx context.Context, r store.AccountInsertRequest) (model.Account, error) {
			return model.Account{}, store.ErrExists
		},
	})

	_, err := srv.Create(context.Background(), CreateAccountRequest{
		Handle:     "yuki",
		Credential: "secret",
	})
	require.Error(t, err)

	var sErr *serr.ServiceError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, 400, sErr.StatusCode)
	assert.Equal(t, "yuki", sErr.Env["handle"])
}

func TestAccounts_Get_NotFound(t *testing.T) {
	srv := NewAccounts(&mockStore{
		getAccountFunc: func(ctx context.Context, id int64) (model.Account, error) {
			return model.Account{}, store.ErrNotFound
		},
	})

	_, err := srv.Get(context.Background(), 42)
	require.Error(t, err)

	var sErr *serr.ServiceError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, 404, sErr.StatusCode)
	assert.Equal(t, "42", sErr.Env["account_id"])
}

func TestAccounts_ByHandle(t *testing.T) {
	srv := NewAccounts(&mockStore{
		getAccountByHandleFunc: func(ctx context.Context, handle string) (model.Account, error) {
			if handle != "yuki" {
				return model.Account{}, store.ErrNotFound
			}
			return model.Account{ID: 7, Handle: "yuki"}, nil
		},
	})

	a, err := srv.ByHandle(context.Background(), "yuki")
	require.NoError(t, err)
	assert.Equal(t, int64(7), a.ID)

	_, err = srv.ByHandle(context.Background(), "nobody")
	var sErr *serr.ServiceError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, 404, sErr.StatusCode)
}

func TestAccounts_ByHandle_Empty(t *testing.T) {
	srv := NewAccounts(&mockStore{})

	_, err := srv.ByHandle(context.Background(), "")
	var sErr *serr.ServiceError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, 404, sErr.StatusCode)
}

func TestAccounts_Update(t *testing.T) {
	var updated store.AccountUpdateRequest
	srv := NewAccounts(&mockStore{
		updateAccountFunc: func(ctx context.Context, r store.AccountUpdateRequest) (model.Account, error) {
			updated = r
			return model.Account{ID: r.ID, Handle: *r.Handle}, nil
		},
	})

	handle := "yuki2"
	a, err := srv.Update(context.Background(), UpdateAccountRequest{ID: 7, Handle: &handle})
	require.NoError(t, err)

	assert.Equal(t, "yuki2", a.Handle)
	require.NotNil(t, updated.Handle)
	assert.Nil(t, updated.IsLocalSpeaker)
}

func TestAccounts_Update_EmptyHandle(t *testing.T) {
	srv := NewAccounts(&mockStore{})

	empty := ""
	_, err := srv.Update(context.Background(), UpdateAccountRequest{ID: 7, Handle: &empty})
	var sErr *serr.ServiceError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, 400, sErr.StatusCode)
}

func TestAccounts_Delete_NotFound(t *testing.T) {
	srv := NewAccounts(&mockStore{
		deleteAccountFunc: func(ctx context.Context, id int64) error {
			return store.ErrNotFound
		},
	})

	err := srv.Delete(context.Background(), 42)
	var sErr *serr.ServiceError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, 404, sErr.StatusCode)
}
