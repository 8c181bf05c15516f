package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hirokishimizu39/ThisIsJapan/internal/middleware"
	"github.com/hirokishimizu39/ThisIsJapan/internal/model"
	"github.com/hirokishimizu39/ThisIsJapan/internal/router"
	"github.com/hirokishimizu39/ThisIsJapan/internal/serr"
	"github.com/hirokishimizu39/ThisIsJapan/internal/service"
	"github.com/hirokishimizu39/ThisIsJapan/internal/session"
)

type accountsService interface {
	Create(ctx context.Context, r service.CreateAccountRequest) (model.Account, error)
	Get(ctx context.Context, id int64) (model.Account, error)
	ByHandle(ctx context.Context, handle string) (model.Account, error)
	List(ctx context.Context) ([]model.Account, error)
	Update(ctx context.Context, r service.UpdateAccountRequest) (model.Account, error)
	Delete(ctx context.Context, id int64) error
}

type photosService interface {
	Create(ctx context.Context, r service.CreatePhotoRequest) (model.Photo, error)
	Get(ctx context.Context, id int64) (model.Photo, error)
	List(ctx context.Context) ([]model.Photo, error)
	Top(ctx context.Context, limit int) ([]model.Photo, error)
	Update(ctx context.Context, r service.UpdatePhotoRequest) (model.Photo, error)
	Delete(ctx context.Context, id int64) error
	Like(ctx context.Context, id int64) (model.Photo, error)
}

type wordsService interface {
	Create(ctx context.Context, r service.CreateWordRequest) (model.Word, error)
	Get(ctx context.Context, id int64) (model.Word, error)
	List(ctx context.Context) ([]model.Word, error)
	Top(ctx context.Context, limit int) ([]model.Word, error)
	Update(ctx context.Context, r service.UpdateWordRequest) (model.Word, error)
	Delete(ctx context.Context, id int64) error
	Like(ctx context.Context, id int64) (model.Word, error)
}

type experiencesService interface {
	Create(ctx context.Context, r service.CreateExperienceRequest) (model.Experience, error)
	Get(ctx context.Context, id int64) (model.Experience, error)
	List(ctx context.Context) ([]model.Experience, error)
	Update(ctx context.Context, r service.UpdateExperienceRequest) (model.Experience, error)
	Delete(ctx context.Context, id int64) error
}

type authService interface {
	Register(ctx context.Context, r service.RegisterRequest) (model.Account, error)
	Login(ctx context.Context, r service.LoginRequest) (model.Account, error)
}

type API struct {
	accounts    accountsService
	photos      photosService
	words       wordsService
	experiences experiencesService
	auth        authService
	sessions    session.Store
}

type APIConfig struct {
	Accounts    accountsService
	Photos      photosService
	Words       wordsService
	Experiences experiencesService
	Auth        authService
	Sessions    session.Store
}

func NewAPI(cfg APIConfig) *API {
	return &API{
		accounts:    cfg.Accounts,
		photos:      cfg.Photos,
		words:       cfg.Words,
		experiences: cfg.Experiences,
		auth:        cfg.Auth,
		sessions:    cfg.Sessions,
	}
}

func (api *API) Register(rt *router.Router) {
	rt.HandleFunc("GET /accounts", api.handleListAccounts)
	rt.HandleFunc("POST /accounts", api.handleCreateAccount)
	rt.HandleFunc("GET /accounts/by-handle", api.handleAccountByHandle)
	rt.HandleFunc("GET /accounts/{id}", api.handleGetAccount)
	rt.HandleFunc("PUT /accounts/{id}", api.handleUpdateAccount)
	rt.HandleFunc("PATCH /accounts/{id}", api.handleUpdateAccount)
	rt.HandleFunc("DELETE /accounts/{id}", api.handleDeleteAccount)

	rt.HandleFunc("GET /photos", api.handleListPhotos)
	rt.HandleFunc("POST /photos", api.handleCreatePhoto)
	rt.HandleFunc("GET /photos/top", api.handleTopPhotos)
	rt.HandleFunc("GET /photos/{id}", api.handleGetPhoto)
	rt.HandleFunc("PUT /photos/{id}", api.handleUpdatePhoto)
	rt.HandleFunc("PATCH /photos/{id}", api.handleUpdatePhoto)
	rt.HandleFunc("DELETE /photos/{id}", api.handleDeletePhoto)
	rt.HandleFunc("POST /photos/{id}/like", api.handleLikePhoto)

	rt.HandleFunc("GET /words", api.handleListWords)
	rt.HandleFunc("POST /words", api.handleCreateWord)
	rt.HandleFunc("GET /words/top", api.handleTopWords)
	rt.HandleFunc("GET /words/{id}", api.handleGetWord)
	rt.HandleFunc("PUT /words/{id}", api.handleUpdateWord)
	rt.HandleFunc("PATCH /words/{id}", api.handleUpdateWord)
	rt.HandleFunc("DELETE /words/{id}", api.handleDeleteWord)
	rt.HandleFunc("POST /words/{id}/like", api.handleLikeWord)

	rt.HandleFunc("GET /experiences", api.handleListExperiences)
	rt.HandleFunc("POST /experiences", api.handleCreateExperience)
	rt.HandleFunc("GET /experiences/{id}", api.handleGetExperience)
	rt.HandleFunc("PUT /experiences/{id}", api.handleUpdateExperience)
	rt.HandleFunc("PATCH /experiences/{id}", api.handleUpdateExperience)
	rt.HandleFunc("DELETE /experiences/{id}", api.handleDeleteExperience)

	rt.HandleFunc("POST /register", api.handleRegister)
	rt.HandleFunc("POST /login", api.handleLogin)
	rt.HandleFunc("POST /logout", api.handleLogout)
	rt.Handle("GET /user", middleware.RequireSession(api.sessions)(http.HandlerFunc(api.handleCurrentUser)))
}

func idFromRequest(r *http.Request) (int64, error) {
	idStr := r.PathValue("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, serr.NewServiceError(err, http.StatusBadRequest, "invalid id parameter")
	}

	return id, nil
}

func limitFromRequest(r *http.Request) (int, error) {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		return 0, serr.NewServiceError(err, http.StatusBadRequest, "invalid limit parameter")
	}

	return limit, nil
}
