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

// Experiences provides CRUD for curated listings. They carry no owner and no
// like counter.
type Experiences struct {
	store store.DataStore
}

func NewExperiences(st store.DataStore) *Experiences {
	return &Experiences{store: st}
}

type CreateExperienceRequest struct {
	Title       string
	Description string
	ImageURL    string
	Location    string
}

func (s *Experiences) Create(ctx context.Context, r CreateExperienceRequest) (model.Experience, error) {
	if r.Title == "" {
		return model.Experience{}, serr.NewServiceError(nil, http.StatusBadRequest, "title is required")
	}
	if r.Description == "" {
		return model.Experience{}, serr.NewServiceError(nil, http.StatusBadRequest, "description is required")
	}
	if r.ImageURL == "" {
		return model.Experience{}, serr.NewServiceError(nil, http.StatusBadRequest, "imageUrl is required")
	}
	if r.Location == "" {
		return model.Experience{}, serr.NewServiceError(nil, http.StatusBadRequest, "location is required")
	}

	e, err := s.store.InsertExperience(ctx, store.ExperienceInsertRequest{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Location:    r.Location,
	})
	if err != nil {
		return model.Experience{}, fmt.Errorf("insert experience: %w", err)
	}

	return e, nil
}

func (s *Experiences) Get(ctx context.Context, id int64) (model.Experience, error) {
	e, err := s.store.GetExperience(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			se := serr.NewServiceError(err, http.StatusNotFound, "experience not found")
			se.Env["experience_id"] = fmt.Sprintf("%d", id)
			return model.Experience{}, se
		}

		return model.Experience{}, fmt.Errorf("get experience: %w", err)
	}

	return e, nil
}

func (s *Experiences) List(ctx context.Context) ([]model.Experience, error) {
	experiences, err := s.store.ListExperiences(ctx)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}

	return experiences, nil
}

type UpdateExperienceRequest struct {
	ID          int64
	Title       *string
	Description *string
	ImageURL    *string
	Location    *string
}

func (s *Experiences) Update(ctx context.Context, r UpdateExperienceRequest) (model.Experience, error) {
	e, err := s.store.UpdateExperience(ctx, store.ExperienceUpdateRequest{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Location:    r.Location,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			se := serr.NewServiceError(err, http.StatusNotFound, "experience not found")
			se.Env["experience_id"] = fmt.Sprintf("%d", r.ID)
			return model.Experience{}, se
		}

		return model.Experience{}, fmt.Errorf("update experience: %w", err)
	}

	return e, nil
}

func (s *Experiences) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteExperience(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			se := serr.NewServiceError(err, http.StatusNotFound, "experience not found")
			se.Env["experience_id"] = fmt.Sprintf("%d", id)
			return se
		}

		return fmt.Errorf("delete experience: %w", err)
	}

	return nil
}
