package service

import (
	"context"

	"github.com/hirokishimizu39/ThisIsJapan/internal/model"
	"github.com/hirokishimizu39/ThisIsJapan/internal/store"
)

// mockStore implements store.DataStore with per-operation function fields.
// Tests set only the operations they expect to be called.
type mockStore struct {
	insertAccountFunc      func(ctx context.Context, r store.AccountInsertRequest) (model.Account, error)
	getAccountFunc         func(ctx context.Context, id int64) (model.Account, error)
	getAccountByHandleFunc func(ctx context.Context, handle string) (model.Account, error)
	listAccountsFunc       func(ctx context.Context) ([]model.Account, error)
	updateAccountFunc      func(ctx context.Context, r store.AccountUpdateRequest) (model.Account, error)
	deleteAccountFunc      func(ctx context.Context, id int64) error

	insertPhotoFunc func(ctx context.Context, r store.PhotoInsertRequest) (model.Photo, error)
	getPhotoFunc    func(ctx context.Context, id int64) (model.Photo, error)
	listPhotosFunc  func(ctx context.Context) ([]model.Photo, error)
	topPhotosFunc   func(ctx context.Context, limit int) ([]model.Photo, error)
	updatePhotoFunc func(ctx context.Context, r store.PhotoUpdateRequest) (model.Photo, error)
	deletePhotoFunc func(ctx context.Context, id int64) error
	likePhotoFunc   func(ctx context.Context, id int64) (model.Photo, error)

	insertWordFunc func(ctx context.Context, r store.WordInsertRequest) (model.Word, error)
	getWordFunc    func(ctx context.Context, id int64) (model.Word, error)
	listWordsFunc  func(ctx context.Context) ([]model.Word, error)
	topWordsFunc   func(ctx context.Context, limit int) ([]model.Word, error)
	updateWordFunc func(ctx context.Context, r store.WordUpdateRequest) (model.Word, error)
	deleteWordFunc func(ctx context.Context, id int64) error
	likeWordFunc   func(ctx context.Context, id int64) (model.Word, error)

	insertExperienceFunc func(ctx context.Context, r store.ExperienceInsertRequest) (model.Experience, error)
	getExperienceFunc    func(ctx context.Context, id int64) (model.Experience, error)
	listExperiencesFunc  func(ctx context.Context) ([]model.Experience, error)
	updateExperienceFunc func(ctx context.Context, r store.ExperienceUpdateRequest) (model.Experience, error)
	deleteExperienceFunc func(ctx context.Context, id int64) error

	countPhotosFunc      func(ctx context.Context) (int64, error)
	countWordsFunc       func(ctx context.Context) (int64, error)
	countExperiencesFunc func(ctx context.Context) (int64, error)
	setPhotoLikesFunc    func(ctx context.Context, id int64, likes int) error
	setWordLikesFunc     func(ctx context.Context, id int64, likes int) error
}

func (m *mockStore) InsertAccount(ctx context.Context, r store.AccountInsertRequest) (model.Account, error) {
	return m.insertAccountFunc(ctx, r)
}

func (m *mockStore) GetAccount(ctx context.Context, id int64) (model.Account, error) {
	return m.getAccountFunc(ctx, id)
}

func (m *mockStore) GetAccountByHandle(ctx context.Context, handle string) (model.Account, error) {
	return m.getAccountByHandleFunc(ctx, handle)
}

func (m *mockStore) ListAccounts(ctx context.Context) ([]model.Account, error) {
	return m.listAccountsFunc(ctx)
}

func (m *mockStore) UpdateAccount(ctx context.Context, r store.AccountUpdateRequest) (model.Account, error) {
	return m.updateAccountFunc(ctx, r)
}

func (m *mockStore) DeleteAccount(ctx context.Context, id int64) error {
	return m.deleteAccountFunc(ctx, id)
}

func (m *mockStore) InsertPhoto(ctx context.Context, r store.PhotoInsertRequest) (model.Photo, error) {
	return m.insertPhotoFunc(ctx, r)
}

func (m *mockStore) GetPhoto(ctx context.Context, id int64) (model.Photo, error) {
	return m.getPhotoFunc(ctx, id)
}

func (m *mockStore) ListPhotos(ctx context.Context) ([]model.Photo, error) {
	return m.listPhotosFunc(ctx)
}

func (m *mockStore) TopPhotos(ctx context.Context, limit int) ([]model.Photo, error) {
	return m.topPhotosFunc(ctx, limit)
}

func (m *mockStore) UpdatePhoto(ctx context.Context, r store.PhotoUpdateRequest) (model.Photo, error) {
	return m.updatePhotoFunc(ctx, r)
}

func (m *mockStore) DeletePhoto(ctx context.Context, id int64) error {
	return m.deletePhotoFunc(ctx, id)
}

func (m *mockStore) LikePhoto(ctx context.Context, id int64) (model.Photo, error) {
	return m.likePhotoFunc(ctx, id)
}

func (m *mockStore) InsertWord(ctx context.Context, r store.WordInsertRequest) (model.Word, error) {
	return m.insertWordFunc(ctx, r)
}

func (m *mockStore) GetWord(ctx context.Context, id int64) (model.Word, error) {
	return m.getWordFunc(ctx, id)
}

func (m *mockStore) ListWords(ctx context.Context) ([]model.Word, error) {
	return m.listWordsFunc(ctx)
}

func (m *mockStore) TopWords(ctx context.Context, limit int) ([]model.Word, error) {
	return m.topWordsFunc(ctx, limit)
}

func (m *mockStore) UpdateWord(ctx context.Context, r store.WordUpdateRequest) (model.Word, error) {
	return m.updateWordFunc(ctx, r)
}

func (m *mockStore) DeleteWord(ctx context.Context, id int64) error {
	return m.deleteWordFunc(ctx, id)
}

func (m *mockStore) LikeWord(ctx context.Context, id int64) (model.Word, error) {
	return m.likeWordFunc(ctx, id)
}

func (m *mockStore) InsertExperience(ctx context.Context, r store.ExperienceInsertRequest) (model.Experience, error) {
	return m.insertExperienceFunc(ctx, r)
}

func (m *mockStore) GetExperience(ctx context.Context, id int64) (model.Experience, error) {
	return m.getExperienceFunc(ctx, id)
}

func (m *mockStore) ListExperiences(ctx context.Context) ([]model.Experience, error) {
	return m.listExperiencesFunc(ctx)
}

func (m *mockStore) UpdateExperience(ctx context.Context, r store.ExperienceUpdateRequest) (model.Experience, error) {
	return m.updateExperienceFunc(ctx, r)
}

func (m *mockStore) DeleteExperience(ctx context.Context, id int64) error {
	return m.deleteExperienceFunc(ctx, id)
}

func (m *mockStore) CountPhotos(ctx context.Context) (int64, error) {
	return m.countPhotosFunc(ctx)
}

func (m *mockStore) CountWords(ctx context.Context) (int64, error) {
	return m.countWordsFunc(ctx)
}

func (m *mockStore) CountExperiences(ctx context.Context) (int64, error) {
	return m.countExperiencesFunc(ctx)
}

func (m *mockStore) SetPhotoLikes(ctx context.Context, id int64, likes int) error {
	return m.setPhotoLikesFunc(ctx, id, likes)
}

func (m *mockStore) SetWordLikes(ctx context.Context, id int64, likes int) error {
	return m.setWordLikesFunc(ctx, id, likes)
}

func (m *mockStore) WithinTx(ctx context.Context, fn func(tx store.DataStore) error) error {
	return fn(m)
}
