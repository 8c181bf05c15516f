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

const DefaultTopLimit = 5

// Photos provides CRUD plus the top/like operations for shared photos.
type Photos struct {
	store store.DataStore
}

func NewPhotos(st store.DataStore) *Photos {
	return &Photos{store: st}
}

type CreatePhotoRequest struct {
	Title       string
	Description string
	ImageURL    string
	AccountID   int64
}

func (s *Photos) Create(ctx context.Context, r CreatePhotoRequest) (model.Photo, error) {
	if r.Title == "" {
		return model.Photo{}, serr.NewServiceError(nil, http.StatusBadRequest, "title is required")
	}
	if r.ImageURL == "" {
		return model.Photo{}, serr.NewServiceError(nil, http.StatusBadRequest, "imageUrl is required")
	}
	if r.AccountID == 0 {
		return model.Photo{}, serr.NewServiceError(nil, http.StatusBadRequest, "owner is required")
	}

	p, err := s.store.InsertPhoto(ctx, store.PhotoInsertRequest{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		AccountID:   r.AccountID,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			se := serr.NewServiceError(err, http.StatusBadRequest, "owner account does not exist")
			se.Env["account_id"] = fmt.Sprintf("%d", r.AccountID)
			return model.Photo{}, se
		}

		return model.Photo{}, fmt.Errorf("insert photo: %w", err)
	}

	return p, nil
}

func (s *Photos) Get(ctx context.Context, id int64) (model.Photo, error) {
	p, err := s.store.GetPhoto(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			se := serr.NewServiceError(err, http.StatusNotFound, "photo not found")
			se.Env["photo_id"] = fmt.Sprintf("%d", id)
			return model.Photo{}, se
		}

		return model.Photo{}, fmt.Errorf("get photo: %w", err)
	}

	return p, nil
}

func (s *Photos) List(ctx context.Context) ([]model.Photo, error) {
	photos, err := s.store.ListPhotos(ctx)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}

	return photos, nil
}

// Top returns the limit photos with the highest like counts, ties broken by
// id for a stable order.
func (s *Photos) Top(ctx context.Context, limit int) ([]model.Photo, error) {
	if limit < 0 {
		return nil, serr.NewServiceError(nil, http.StatusBadRequest, "limit must not be negative")
	}
	if limit == 0 {
		limit = DefaultTopLimit
	}

	photos, err := s.store.TopPhotos(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("top photos: %w", err)
	}

	return photos, nil
}

type UpdatePhotoRequest struct {
	ID          int64
	Title       *string
	Description *string
	ImageURL    *string
	AccountID   *int64
}

func (s *Photos) Update(ctx context.Context, r UpdatePhotoRequest) (model.Photo, error) {
	p, err := s.store.UpdatePhoto(ctx, store.PhotoUpdateRequest{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		AccountID:   r.AccountID,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			se := serr.NewServiceError(err, http.StatusNotFound, "photo not found")
			se.Env["photo_id"] = fmt.Sprintf("%d", r.ID)
			return model.Photo{}, se
		}

		return model.Photo{}, fmt.Errorf("update photo: %w", err)
	}

	return p, nil
}

func (s *Photos) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeletePhoto(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			se := serr.NewServiceError(err, http.StatusNotFound, "photo not found")
			se.Env["photo_id"] = fmt.Sprintf("%d", id)
			return se
		}

		return fmt.Errorf("delete photo: %w", err)
	}

	return nil
}

// Like adds exactly one to the photo's like count and returns the refreshed
// photo. The increment happens in the storage layer, so concurrent likes all
// land.
func (s *Photos) Like(ctx context.Context, id int64) (model.Photo, error) {
	p, err := s.store.LikePhoto(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			se := serr.NewServiceError(err, http.StatusNotFound, "photo not found")
			se.Env["photo_id"] = fmt.Sprintf("%d", id)
			return model.Photo{}, se
		}

		return model.Photo{}, fmt.Errorf("like photo: %w", err)
	}

	return p, nil
}
