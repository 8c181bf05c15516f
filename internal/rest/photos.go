package rest

import (
	"net/http"
	"time"

	"github.com/hirokishimizu39/ThisIsJapan/internal/httpx"
	"github.com/hirokishimizu39/ThisIsJapan/internal/model"
	"github.com/hirokishimizu39/ThisIsJapan/internal/serr"
	"github.com/hirokishimizu39/ThisIsJapan/internal/service"
)

type photoResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Owner       int64     `json:"owner"`
	LikeCount   int       `json:"likeCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toPhotoResponse(p model.Photo) photoResponse {
	return photoResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Owner:       p.AccountID,
		LikeCount:   p.Likes,
		CreatedAt:   p.CreatedAt,
	}
}

func toPhotoResponses(photos []model.Photo) []photoResponse {
	resp := make([]photoResponse, 0, len(photos))
	for _, p := range photos {
		resp = append(resp, toPhotoResponse(p))
	}
	return resp
}

// createPhotoRequest is the photo write shape: likeCount and createdAt are
// server controlled and have no place here.
type createPhotoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Owner       int64  `json:"owner"`
}

type updatePhotoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Owner       *int64  `json:"owner"`
}

func (api *API) handleListPhotos(w http.ResponseWriter, r *http.Request) {
	photos, err := api.photos.List(r.Context())
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	if err := httpx.WriteJSON(w, http.StatusOK, toPhotoResponses(photos)); err != nil {
		httpx.HandleErr(w, r, err)
	}
}

func (api *API) handleCreatePhoto(w http.ResponseWriter, r *http.Request) {
	var req createPhotoRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		httpx.HandleErr(w, r, serr.NewServiceError(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	p, err := api.photos.Create(r.Context(), service.CreatePhotoRequest{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		AccountID:   req.Owner,
	})
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	if err := httpx.WriteJSON(w, http.StatusCreated, toPhotoResponse(p)); err != nil {
		httpx.HandleErr(w, r, err)
	}
}

func (api *API) handleTopPhotos(w http.ResponseWriter, r *http.Request) {
	limit, err := limitFromRequest(r)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	photos, err := api.photos.Top(r.Context(), limit)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	if err := httpx.WriteJSON(w, http.StatusOK, toPhotoResponses(photos)); err != nil {
		httpx.HandleErr(w, r, err)
	}
}

func (api *API) handleGetPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	p, err := api.photos.Get(r.Context(), id)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	if err := httpx.WriteJSON(w, http.StatusOK, toPhotoResponse(p)); err != nil {
		httpx.HandleErr(w, r, err)
	}
}

func (api *API) handleUpdatePhoto(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	var req updatePhotoRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		httpx.HandleErr(w, r, serr.NewServiceError(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	p, err := api.photos.Update(r.Context(), service.UpdatePhotoRequest{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		AccountID:   req.Owner,
	})
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	if err := httpx.WriteJSON(w, http.StatusOK, toPhotoResponse(p)); err != nil {
		httpx.HandleErr(w, r, err)
	}
}

func (api *API) handleDeletePhoto(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	if err := api.photos.Delete(r.Context(), id); err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (api *API) handleLikePhoto(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	p, err := api.photos.Like(r.Context(), id)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	if err := httpx.WriteJSON(w, http.StatusOK, toPhotoResponse(p)); err != nil {
		httpx.HandleErr(w, r, err)
	}
}
