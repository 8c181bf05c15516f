package rest

import (
	"net/http"
	"time"

	"github.com/hirokishimizu39/ThisIsJapan/internal/httpx"
	"github.com/hirokishimizu39/ThisIsJapan/internal/model"
	"github.com/hirokishimizu39/ThisIsJapan/internal/serr"
	"github.com/hirokishimizu39/ThisIsJapan/internal/service"
)

type experienceResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toExperienceResponse(e model.Experience) experienceResponse {
	return experienceResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		ImageURL:    e.ImageURL,
		Location:    e.Location,
		CreatedAt:   e.CreatedAt,
	}
}

type createExperienceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Location    string `json:"location"`
}

type updateExperienceRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Location    *string `json:"location"`
}

func (api *API) handleListExperiences(w http.ResponseWriter, r *http.Request) {
	experiences, err := api.experiences.List(r.Context())
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	resp := make([]experienceResponse, 0, len(experiences))
	for _, e := range experiences {
		resp = append(resp, toExperienceResponse(e))
	}

	if err := httpx.WriteJSON(w, http.StatusOK, resp); err != nil {
		httpx.HandleErr(w, r, err)
	}
}

func (api *API) handleCreateExperience(w http.ResponseWriter, r *http.Request) {
	var req createExperienceRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		httpx.HandleErr(w, r, serr.NewServiceError(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	e, err := api.experiences.Create(r.Context(), service.CreateExperienceRequest{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Location:    req.Location,
	})
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	if err := httpx.WriteJSON(w, http.StatusCreated, toExperienceResponse(e)); err != nil {
		httpx.HandleErr(w, r, err)
	}
}

func (api *API) handleGetExperience(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	e, err := api.experiences.Get(r.Context(), id)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	if err := httpx.WriteJSON(w, http.StatusOK, toExperienceResponse(e)); err != nil {
		httpx.HandleErr(w, r, err)
	}
}

func (api *API) handleUpdateExperience(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	var req updateExperienceRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		httpx.HandleErr(w, r, serr.NewServiceError(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	e, err := api.experiences.Update(r.Context(), service.UpdateExperienceRequest{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Location:    req.Location,
	})
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	if err := httpx.WriteJSON(w, http.StatusOK, toExperienceResponse(e)); err != nil {
		httpx.HandleErr(w, r, err)
	}
}

func (api *API) handleDeleteExperience(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	if err := api.experiences.Delete(r.Context(), id); err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
