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

// invalidCredentialsMsg is shared by the unknown-handle and wrong-password
// paths so a caller cannot tell which one failed.
const invalidCredentialsMsg = "invalid handle or credential"

// Auth implements the register/login half of the session flow. Session state
// itself lives in the session store; Auth only decides whether a caller may
// obtain one.
type Auth struct {
	store store.DataStore
}

func NewAuth(st store.DataStore) *Auth {
	return &Auth{store: st}
}

type RegisterRequest struct {
	Handle         string
	Credential     string
	IsLocalSpeaker bool
}

func (s *Auth) Register(ctx context.Context, r RegisterRequest) (model.Account, error) {
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

		return model.Account{}, fmt.Errorf("register account: %w", err)
	}

	return a, nil
}

type LoginRequest struct {
	Handle     string
	Credential string
}

func (s *Auth) Login(ctx context.Context, r LoginRequest) (model.Account, error) {
	if r.Handle == "" || r.Credential == "" {
		return model.Account{}, serr.NewServiceError(nil, http.StatusBadRequest, "handle and credential are required")
	}

	a, err := s.store.GetAccountByHandle(ctx, r.Handle)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.Account{}, serr.NewServiceError(err, http.StatusUnauthorized, invalidCredentialsMsg)
		}

		return model.Account{}, fmt.Errorf("get account by handle: %w", err)
	}

	if !credentialMatches(a.Credential, r.Credential) {
		return model.Account{}, serr.NewServiceError(nil, http.StatusUnauthorized, invalidCredentialsMsg)
	}

	return a, nil
}
