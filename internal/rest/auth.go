package rest

import (
	"net/http"

	"github.com/hirokishimizu39/ThisIsJapan/internal/httpx"
	"github.com/hirokishimizu39/ThisIsJapan/internal/middleware"
	"github.com/hirokishimizu39/ThisIsJapan/internal/serr"
	"github.com/hirokishimizu39/ThisIsJapan/internal/service"
	"github.com/hirokishimizu39/ThisIsJapan/internal/session"
)

type registerRequest struct {
	Handle                 string `json:"handle"`
	Credential             string `json:"credential"`
	IsLocalLanguageSpeaker bool   `json:"isLocalLanguageSpeaker"`
}

type loginRequest struct {
	Handle     string `json:"handle"`
	Credential string `json:"credential"`
}

type logoutResponse struct {
	Message string `json:"message"`
}

func (api *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		httpx.HandleErr(w, r, serr.NewServiceError(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	a, err := api.auth.Register(r.Context(), service.RegisterRequest{
		Handle:         req.Handle,
		Credential:     req.Credential,
		IsLocalSpeaker: req.IsLocalLanguageSpeaker,
	})
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	if err := api.openSession(w, r, a.ID); err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	if err := httpx.WriteJSON(w, http.StatusCreated, toAccountResponse(a)); err != nil {
		httpx.HandleErr(w, r, err)
	}
}

func (api *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		httpx.HandleErr(w, r, serr.NewServiceError(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	a, err := api.auth.Login(r.Context(), service.LoginRequest{
		Handle:     req.Handle,
		Credential: req.Credential,
	})
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	if err := api.openSession(w, r, a.ID); err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	if err := httpx.WriteJSON(w, http.StatusOK, toAccountResponse(a)); err != nil {
		httpx.HandleErr(w, r, err)
	}
}

// handleLogout clears the session if one exists. It succeeds either way.
func (api *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		if err := api.sessions.Delete(r.Context(), cookie.Value); err != nil {
			httpx.HandleErr(w, r, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if err := httpx.WriteJSON(w, http.StatusOK, logoutResponse{Message: "logged out"}); err != nil {
		httpx.HandleErr(w, r, err)
	}
}

func (api *API) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	a, err := api.accounts.Get(r.Context(), middleware.AccountIDFromContext(r.Context()))
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	if err := httpx.WriteJSON(w, http.StatusOK, toAccountResponse(a)); err != nil {
		httpx.HandleErr(w, r, err)
	}
}

// openSession replaces any session the client already holds with a fresh one
// for the given account.
func (api *API) openSession(w http.ResponseWriter, r *http.Request, accountID int64) error {
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		if err := api.sessions.Delete(r.Context(), cookie.Value); err != nil {
			return err
		}
	}

	token, err := api.sessions.Create(r.Context(), accountID)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}
