package rest

import (
	"net/http"
	"time"

	"github.com/hirokishimizu39/ThisIsJapan/internal/httpx"
	"github.com/hirokishimizu39/ThisIsJapan/internal/model"
	"github.com/hirokishimizu39/ThisIsJapan/internal/serr"
	"github.com/hirokishimizu39/ThisIsJapan/internal/service"
)

type wordResponse struct {
	ID          int64     `json:"id"`
	Original    string    `json:"original"`
	Translation string    `json:"translation"`
	Description string    `json:"description"`
	Owner       int64     `json:"owner"`
	LikeCount   int       `json:"likeCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toWordResponse(w model.Word) wordResponse {
	return wordResponse{
		ID:          w.ID,
		Original:    w.Original,
		Translation: w.Translation,
		Description: w.Description,
		Owner:       w.AccountID,
		LikeCount:   w.Likes,
		CreatedAt:   w.CreatedAt,
	}
}

func toWordResponses(words []model.Word) []wordResponse {
	resp := make([]wordResponse, 0, len(words))
	for _, w := range words {
		resp = append(resp, toWordResponse(w))
	}
	return resp
}

type createWordRequest struct {
	Original    string `json:"original"`
	Translation string `json:"translation"`
	Description string `json:"description"`
	Owner       int64  `json:"owner"`
}

type updateWordRequest struct {
	Original    *string `json:"original"`
	Translation *string `json:"translation"`
	Description *string `json:"description"`
	Owner       *int64  `json:"owner"`
}

func (api *API) handleListWords(w http.ResponseWriter, r *http.Request) {
	words, err := api.words.List(r.Context())
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	if err := httpx.WriteJSON(w, http.StatusOK, toWordResponses(words)); err != nil {
		httpx.HandleErr(w, r, err)
	}
}

func (api *API) handleCreateWord(w http.ResponseWriter, r *http.Request) {
	var req createWordRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		httpx.HandleErr(w, r, serr.NewServiceError(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	word, err := api.words.Create(r.Context(), service.CreateWordRequest{
		Original:    req.Original,
		Translation: req.Translation,
		Description: req.Description,
		AccountID:   req.Owner,
	})
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	if err := httpx.WriteJSON(w, http.StatusCreated, toWordResponse(word)); err != nil {
		httpx.HandleErr(w, r, err)
	}
}

func (api *API) handleTopWords(w http.ResponseWriter, r *http.Request) {
	limit, err := limitFromRequest(r)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	words, err := api.words.Top(r.Context(), limit)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	if err := httpx.WriteJSON(w, http.StatusOK, toWordResponses(words)); err != nil {
		httpx.HandleErr(w, r, err)
	}
}

func (api *API) handleGetWord(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	word, err := api.words.Get(r.Context(), id)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	if err := httpx.WriteJSON(w, http.StatusOK, toWordResponse(word)); err != nil {
		httpx.HandleErr(w, r, err)
	}
}

func (api *API) handleUpdateWord(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	var req updateWordRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		httpx.HandleErr(w, r, serr.NewServiceError(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	word, err := api.words.Update(r.Context(), service.UpdateWordRequest{
		ID:          id,
		Original:    req.Original,
		Translation: req.Translation,
		Description: req.Description,
		AccountID:   req.Owner,
	})
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	if err := httpx.WriteJSON(w, http.StatusOK, toWordResponse(word)); err != nil {
		httpx.HandleErr(w, r, err)
	}
}

func (api *API) handleDeleteWord(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	if err := api.words.Delete(r.Context(), id); err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (api *API) handleLikeWord(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	word, err := api.words.Like(r.Context(), id)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	if err := httpx.WriteJSON(w, http.StatusOK, toWordResponse(word)); err != nil {
		httpx.HandleErr(w, r, err)
	}
}
