package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/hirokishimizu39/ThisIsJapan/internal/model"
	"github.com/hirokishimizu39/ThisIsJapan/internal/serr"
	"github.com/hirokishimizu39/ThisIsJapan/internal/store"
)

// Accounts provides CRUD access to contributor accounts.
type Accounts struct {
	store store.DataStore
}

func NewAccounts(st store.DataStore) *Accounts {
	return &Accounts{store: st}
}

type CreateAccountRequest struct {
	Handle         string
	Credential     string
	IsLocalSpeaker bool
}

func (s *Accounts) Create(ctx context.Context, r CreateAccountRequest) (model.Account, error) {
	if r.Handle == "" {
		return model.Account{}, serr.NewServiceError(nil, http.StatusBadRequest, "handle is required")
	}
	if r.Credential == "" {
		return model.Account{}, serr.NewServiceError(nil, http.StatusBadRequest, "credential is required")
	}

	hash, err := hashCredential(r.Credential)
	if err != nil {
		return model.Account{}, err
	}

	a, err := s.store.InsertAccount(ctx, store.AccountInsertRequest{
		Handle:         r.Handle,
		Credential:     hash,
		IsLocalSpeaker: r.IsLocalSpeaker,
	})
	if err != nil {
		if errors.Is(err, store.ErrExists) {
			se := serr.NewServiceError(err, http.StatusBadRequest, "handle already taken")
			se.Env["handle"] = r.Handle
			return model.Account{}, se
		}

		return model.Account{}, fmt.Errorf("insert account: %w", err)
	}

	return a, nil
}

func (s *Accounts) Get(ctx context.Context, id int64) (model.Account, error) {
	a, err := s.store.GetAccount(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			se := serr.NewServiceError(err, http.StatusNotFound, "account not found")
			se.Env["account_id"] = fmt.Sprintf("%d", id)
			return model.Account{}, se
		}

		return model.Account{}, fmt.Errorf("get account: %w", err)
	}

	return a, nil
}

// ByHandle resolves an account by its exact handle. An empty handle is a
// lookup miss, not a server fault.
func (s *Accounts) ByHandle(ctx context.Context, handle string) (model.Account, error) {
	if handle == "" {
		return model.Account{}, serr.NewServiceError(nil, http.StatusNotFound, "account not found")
	}

	a, err := s.store.GetAccountByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			se := serr.NewServiceError(err, http.StatusNotFound, "account not found")
			se.Env["handle"] = handle
			return model.Account{}, se
		}

		return model.Account{}, fmt.Errorf("get account by handle: %w", err)
	}

	return a, nil
}

func (s *Accounts) List(ctx context.Context) ([]model.Account, error) {
	accounts, err := s.store.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	return accounts, nil
}

type UpdateAccountRequest struct {
	ID             int64
	Handle         *string
	IsLocalSpeaker *bool
}

func (s *Accounts) Update(ctx context.Context, r UpdateAccountRequest) (model.Account, error) {
	if r.Handle != nil && *r.Handle == "" {
		return model.Account{}, serr.NewServiceError(nil, http.StatusBadRequest, "handle must not be empty")
	}

	a, err := s.store.UpdateAccount(ctx, store.AccountUpdateRequest{
		ID:             r.ID,
		Handle:         r.Handle,
		IsLocalSpeaker: r.IsLocalSpeaker,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			se := serr.NewServiceError(err, http.StatusNotFound, "account not found")
			se.Env["account_id"] = fmt.Sprintf("%d", r.ID)
			return model.Account{}, se
		}
		if errors.Is(err, store.ErrExists) {
			se := serr.NewServiceError(err, http.StatusBadRequest, "handle already taken")
			return model.Account{}, se
		}

		return model.Account{}, fmt.Errorf("update account: %w", err)
	}

	return a, nil
}

// Delete removes an account and, through the schema's cascade rule, every
// photo and word it owns.
func (s *Accounts) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteAccount(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			se := serr.NewServiceError(err, http.StatusNotFound, "account not found")
			se.Env["account_id"] = fmt.Sprintf("%d", id)
			return se
		}

		return fmt.Errorf("delete account: %w", err)
	}

	return nil
}
