package rest

import (
	"context"
	"net/http"

	"github.com/hirokishimizu39/ThisIsJapan/internal/model"
	"github.com/hirokishimizu39/ThisIsJapan/internal/router"
	"github.com/hirokishimizu39/ThisIsJapan/internal/service"
	"github.com/hirokishimizu39/ThisIsJapan/internal/session"
)

type mockAccountsService struct {
	CreateFunc   func(ctx context.Context, r service.CreateAccountRequest) (model.Account, error)
	GetFunc      func(ctx context.Context, id int64) (model.Account, error)
	ByHandleFunc func(ctx context.Context, handle string) (model.Account, error)
	ListFunc     func(ctx context.Context) ([]model.Account, error)
	UpdateFunc   func(ctx context.Context, r service.UpdateAccountRequest) (model.Account, error)
	DeleteFunc   func(ctx context.Context, id int64) error
}

func (m *mockAccountsService) Create(ctx context.Context, r service.CreateAccountRequest) (model.Account, error) {
	return m.CreateFunc(ctx, r)
}

func (m *mockAccountsService) Get(ctx context.Context, id int64) (model.Account, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockAccountsService) ByHandle(ctx context.Context, handle string) (model.Account, error) {
	return m.ByHandleFunc(ctx, handle)
}

func (m *mockAccountsService) List(ctx context.Context) ([]model.Account, error) {
	return m.ListFunc(ctx)
}

func (m *mockAccountsService) Update(ctx context.Context, r service.UpdateAccountRequest) (model.Account, error) {
	return m.UpdateFunc(ctx, r)
}

func (m *mockAccountsService) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}

type mockPhotosService struct {
	CreateFunc func(ctx context.Context, r service.CreatePhotoRequest) (model.Photo, error)
	GetFunc    func(ctx context.Context, id int64) (model.Photo, error)
	ListFunc   func(ctx context.Context) ([]model.Photo, error)
	TopFunc    func(ctx context.Context, limit int) ([]model.Photo, error)
	UpdateFunc func(ctx context.Context, r service.UpdatePhotoRequest) (model.Photo, error)
	DeleteFunc func(ctx context.Context, id int64) error
	LikeFunc   func(ctx context.Context, id int64) (model.Photo, error)
}

func (m *mockPhotosService) Create(ctx context.Context, r service.CreatePhotoRequest) (model.Photo, error) {
	return m.CreateFunc(ctx, r)
}

func (m *mockPhotosService) Get(ctx context.Context, id int64) (model.Photo, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockPhotosService) List(ctx context.Context) ([]model.Photo, error) {
	return m.ListFunc(ctx)
}

func (m *mockPhotosService) Top(ctx context.Context, limit int) ([]model.Photo, error) {
	return m.TopFunc(ctx, limit)
}

func (m *mockPhotosService) Update(ctx context.Context, r service.UpdatePhotoRequest) (model.Photo, error) {
	return m.UpdateFunc(ctx, r)
}

func (m *mockPhotosService) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockPhotosService) Like(ctx context.Context, id int64) (model.Photo, error) {
	return m.LikeFunc(ctx, id)
}

type mockWordsService struct {
	CreateFunc func(ctx context.Context, r service.CreateWordRequest) (model.Word, error)
	GetFunc    func(ctx context.Context, id int64) (model.Word, error)
	ListFunc   func(ctx context.Context) ([]model.Word, error)
	TopFunc    func(ctx context.Context, limit int) ([]model.Word, error)
	UpdateFunc func(ctx context.Context, r service.UpdateWordRequest) (model.Word, error)
	DeleteFunc func(ctx context.Context, id int64) error
	LikeFunc   func(ctx context.Context, id int64) (model.Word, error)
}

func (m *mockWordsService) Create(ctx context.Context, r service.CreateWordRequest) (model.Word, error) {
	return m.CreateFunc(ctx, r)
}

func (m *mockWordsService) Get(ctx context.Context, id int64) (model.Word, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockWordsService) List(ctx context.Context) ([]model.Word, error) {
	return m.ListFunc(ctx)
}

func (m *mockWordsService) Top(ctx context.Context, limit int) ([]model.Word, error) {
	return m.TopFunc(ctx, limit)
}

func (m *mockWordsService) Update(ctx context.Context, r service.UpdateWordRequest) (model.Word, error) {
	return m.UpdateFunc(ctx, r)
}

func (m *mockWordsService) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockWordsService) Like(ctx context.Context, id int64) (model.Word, error) {
	return m.LikeFunc(ctx, id)
}

type mockExperiencesService struct {
	CreateFunc func(ctx context.Context, r service.CreateExperienceRequest) (model.Experience, error)
	GetFunc    func(ctx context.Context, id int64) (model.Experience, error)
	ListFunc   func(ctx context.Context) ([]model.Experience, error)
	UpdateFunc func(ctx context.Context, r service.UpdateExperienceRequest) (model.Experience, error)
	DeleteFunc func(ctx context.Context, id int64) error
}

func (m *mockExperiencesService) Create(ctx context.Context, r service.CreateExperienceRequest) (model.Experience, error) {
	return m.CreateFunc(ctx, r)
}

func (m *mockExperiencesService) Get(ctx context.Context, id int64) (model.Experience, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockExperiencesService) List(ctx context.Context) ([]model.Experience, error) {
	return m.ListFunc(ctx)
}

func (m *mockExperiencesService) Update(ctx context.Context, r service.UpdateExperienceRequest) (model.Experience, error) {
	return m.UpdateFunc(ctx, r)
}

func (m *mockExperiencesService) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}

type mockAuthService struct {
	RegisterFunc func(ctx context.Context, r service.RegisterRequest) (model.Account, error)
	LoginFunc    func(ctx context.Context, r service.LoginRequest) (model.Account, error)
}

func (m *mockAuthService) Register(ctx context.Context, r service.RegisterRequest) (model.Account, error) {
	return m.RegisterFunc(ctx, r)
}

func (m *mockAuthService) Login(ctx context.Context, r service.LoginRequest) (model.Account, error) {
	return m.LoginFunc(ctx, r)
}

// newTestRouter mounts the API on a fresh router. Nil fields get zero-valued
// mocks, which panic if a test exercises an operation it did not stub.
func newTestRouter(cfg APIConfig) http.Handler {
	if cfg.Accounts == nil {
		cfg.Accounts = &mockAccountsService{}
	}
	if cfg.Photos == nil {
		cfg.Photos = &mockPhotosService{}
	}
	if cfg.Words == nil {
		cfg.Words = &mockWordsService{}
	}
	if cfg.Experiences == nil {
		cfg.Experiences = &mockExperiencesService{}
	}
	if cfg.Auth == nil {
		cfg.Auth = &mockAuthService{}
	}
	if cfg.Sessions == nil {
		cfg.Sessions = session.NewMemory()
	}

	rt := router.New()
	NewAPI(cfg).Register(rt)
	return rt
}
