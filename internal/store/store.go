package store

import (
	"context"
	"errors"

	"github.com/hirokishimizu39/ThisIsJapan/internal/model"
)

var (
	ErrExists   = errors.New("already exists")
	ErrNotFound = errors.New("not found")
)

type DataStore interface {
	InsertAccount(ctx context.Context, r AccountInsertRequest) (model.Account, error)
	GetAccount(ctx context.Context, id int64) (model.Account, error)
	GetAccountByHandle(ctx context.Context, handle string) (model.Account, error)
	ListAccounts(ctx context.Context) ([]model.Account, error)
	UpdateAccount(ctx context.Context, r AccountUpdateRequest) (model.Account, error)
	DeleteAccount(ctx context.Context, id int64) error

	InsertPhoto(ctx context.Context, r PhotoInsertRequest) (model.Photo, error)
	GetPhoto(ctx context.Context, id int64) (model.Photo, error)
	ListPhotos(ctx context.Context) ([]model.Photo, error)
	TopPhotos(ctx context.Context, limit int) ([]model.Photo, error)
	UpdatePhoto(ctx context.Context, r PhotoUpdateRequest) (model.Photo, error)
	DeletePhoto(ctx context.Context, id int64) error
	LikePhoto(ctx context.Context, id int64) (model.Photo, error)

	InsertWord(ctx context.Context, r WordInsertRequest) (model.Word, error)
	GetWord(ctx context.Context, id int64) (model.Word, error)
	ListWords(ctx context.Context) ([]model.Word, error)
	TopWords(ctx context.Context, limit int) ([]model.Word, error)
	UpdateWord(ctx context.Context, r WordUpdateRequest) (model.Word, error)
	DeleteWord(ctx context.Context, id int64) error
	LikeWord(ctx context.Context, id int64) (model.Word, error)

	InsertExperience(ctx context.Context, r ExperienceInsertRequest) (model.Experience, error)
	GetExperience(ctx context.Context, id int64) (model.Experience, error)
	ListExperiences(ctx context.Context) ([]model.Experience, error)
	UpdateExperience(ctx context.Context, r ExperienceUpdateRequest) (model.Experience, error)
	DeleteExperience(ctx context.Context, id int64) error

	CountPhotos(ctx context.Context) (int64, error)
	CountWords(ctx context.Context) (int64, error)
	CountExperiences(ctx context.Context) (int64, error)
	SetPhotoLikes(ctx context.Context, id int64, likes int) error
	SetWordLikes(ctx context.Context, id int64, likes int) error

	WithinTx(ctx context.Context, fn func(tx DataStore) error) error
}
