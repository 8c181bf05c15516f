package rest

import (
	"net/http"
	"time"

	"github.com/hirokishimizu39/ThisIsJapan/internal/httpx"
	"github.com/hirokishimizu39/ThisIsJapan/internal/model"
	"github.com/hirokishimizu39/ThisIsJapan/internal/serr"
	"github.com/hirokishimizu39/ThisIsJapan/internal/service"
)

// accountResponse is the account read shape. The credential hash is never
// part of it.
type accountResponse struct {
	ID                     int64     `json:"id"`
	Handle                 string    `json:"handle"`
	IsLocalLanguageSpeaker bool      `json:"isLocalLanguageSpeaker"`
	CreatedAt              time.Time `json:"createdAt"`
}

func toAccountResponse(a model.Account) accountResponse {
	return accountResponse{
		ID:                     a.ID,
		Handle:                 a.Handle,
		IsLocalLanguageSpeaker: a.IsLocalSpeaker,
		CreatedAt:              a.CreatedAt,
	}
}

type createAccountRequest struct {
	Handle                 string `json:"handle"`
	Credential             string `json:"credential"`
	IsLocalLanguageSpeaker bool   `json:"isLocalLanguageSpeaker"`
}

type updateAccountRequest struct {
	Handle                 *string `json:"handle"`
	IsLocalLanguageSpeaker *bool   `json:"isLocalLanguageSpeaker"`
}

func (api *API) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := api.accounts.List(r.Context())
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	resp := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		resp = append(resp, toAccountResponse(a))
	}

	if err := httpx.WriteJSON(w, http.StatusOK, resp); err != nil {
		httpx.HandleErr(w, r, err)
	}
}

func (api *API) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		httpx.HandleErr(w, r, serr.NewServiceError(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	a, err := api.accounts.Create(r.Context(), service.CreateAccountRequest{
		Handle:         req.Handle,
		Credential:     req.Credential,
		IsLocalSpeaker: req.IsLocalLanguageSpeaker,
	})
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	if err := httpx.WriteJSON(w, http.StatusCreated, toAccountResponse(a)); err != nil {
		httpx.HandleErr(w, r, err)
	}
}

func (api *API) handleAccountByHandle(w http.ResponseWriter, r *http.Request) {
	a, err := api.accounts.ByHandle(r.Context(), r.URL.Query().Get("handle"))
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	if err := httpx.WriteJSON(w, http.StatusOK, toAccountResponse(a)); err != nil {
		httpx.HandleErr(w, r, err)
	}
}

func (api *API) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	a, err := api.accounts.Get(r.Context(), id)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	if err := httpx.WriteJSON(w, http.StatusOK, toAccountResponse(a)); err != nil {
		httpx.HandleErr(w, r, err)
	}
}

func (api *API) handleUpdateAccount(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	var req updateAccountRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		httpx.HandleErr(w, r, serr.NewServiceError(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	a, err := api.accounts.Update(r.Context(), service.UpdateAccountRequest{
		ID:             id,
		Handle:         req.Handle,
		IsLocalSpeaker: req.IsLocalLanguageSpeaker,
	})
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	if err := httpx.WriteJSON(w, http.StatusOK, toAccountResponse(a)); err != nil {
		httpx.HandleErr(w, r, err)
	}
}

func (api *API) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	if err := api.accounts.Delete(r.Context(), id); err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
