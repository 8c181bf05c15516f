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

// Words provides CRUD plus the top/like operations for vocabulary entries.
type Words struct {
	store store.DataStore
}

func NewWords(st store.DataStore) *Words {
	return &Words{store: st}
}

type CreateWordRequest struct {
	Original    string
	Translation string
	Description string
	AccountID   int64
}

func (s *Words) Create(ctx context.Context, r CreateWordRequest) (model.Word, error) {
	if r.Original == "" {
		return model.Word{}, serr.NewServiceError(nil, http.StatusBadRequest, "original is required")
	}
	if r.Description == "" {
		return model.Word{}, serr.NewServiceError(nil, http.StatusBadRequest, "description is required")
	}
	if r.AccountID == 0 {
		return model.Word{}, serr.NewServiceError(nil, http.StatusBadRequest, "owner is required")
	}

	w, err := s.store.InsertWord(ctx, store.WordInsertRequest{
		Original:    r.Original,
		Translation: r.Translation,
		Description: r.Description,
		AccountID:   r.AccountID,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			se := serr.NewServiceError(err, http.StatusBadRequest, "owner account does not exist")
			se.Env["account_id"] = fmt.Sprintf("%d", r.AccountID)
			return model.Word{}, se
		}

		return model.Word{}, fmt.Errorf("insert word: %w", err)
	}

	return w, nil
}

func (s *Words) Get(ctx context.Context, id int64) (model.Word, error) {
	w, err := s.store.GetWord(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			se := serr.NewServiceError(err, http.StatusNotFound, "word not found")
			se.Env["word_id"] = fmt.Sprintf("%d", id)
			return model.Word{}, se
		}

		return model.Word{}, fmt.Errorf("get word: %w", err)
	}

	return w, nil
}

func (s *Words) List(ctx context.Context) ([]model.Word, error) {
	words, err := s.store.ListWords(ctx)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}

	return words, nil
}

func (s *Words) Top(ctx context.Context, limit int) ([]model.Word, error) {
	if limit < 0 {
		return nil, serr.NewServiceError(nil, http.StatusBadRequest, "limit must not be negative")
	}
	if limit == 0 {
		limit = DefaultTopLimit
	}

	words, err := s.store.TopWords(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("top words: %w", err)
	}

	return words, nil
}

type UpdateWordRequest struct {
	ID          int64
	Original    *string
	Translation *string
	Description *string
	AccountID   *int64
}

func (s *Words) Update(ctx context.Context, r UpdateWordRequest) (model.Word, error) {
	w, err := s.store.UpdateWord(ctx, store.WordUpdateRequest{
		ID:          r.ID,
		Original:    r.Original,
		Translation: r.Translation,
		Description: r.Description,
		AccountID:   r.AccountID,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			se := serr.NewServiceError(err, http.StatusNotFound, "word not found")
			se.Env["word_id"] = fmt.Sprintf("%d", r.ID)
			return model.Word{}, se
		}

		return model.Word{}, fmt.Errorf("update word: %w", err)
	}

	return w, nil
}

func (s *Words) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteWord(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			se := serr.NewServiceError(err, http.StatusNotFound, "word not found")
			se.Env["word_id"] = fmt.Sprintf("%d", id)
			return se
		}

		return fmt.Errorf("delete word: %w", err)
	}

	return nil
}

func (s *Words) Like(ctx context.Context, id int64) (model.Word, error) {
	w, err := s.store.LikeWord(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			se := serr.NewServiceError(err, http.StatusNotFound, "word not found")
			se.Env["word_id"] = fmt.Sprintf("%d", id)
			return model.Word{}, se
		}

		return model.Word{}, fmt.Errorf("like word: %w", err)
	}

	return w, nil
}
