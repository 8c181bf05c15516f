package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hirokishimizu39/ThisIsJapan/internal/serr"
)

type errorResponse struct {
	Message string `json:"message"`
}

func ReadJSON(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	return dec.Decode(out)
}

func WriteJSON(w http.ResponseWriter, status int, resp any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	return enc.Encode(resp)
}

// WriteError writes a JSON error body of the form {"message": "..."}.
func WriteError(w http.ResponseWriter, status int, msg string) {
	_ = WriteJSON(w, status, errorResponse{Message: msg})
}

// HandleErr logs the error and writes its client-facing representation.
// Anything that is not a ServiceError becomes a generic 500.
func HandleErr(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("request error",
		"error", err,
		"method", r.Method,
		"url", r.URL.String(),
		"remote_addr", r.RemoteAddr,
	)

	var se *serr.ServiceError
	if errors.As(err, &se) {
		WriteError(w, se.StatusCode, se.Msg)
		return
	}

	WriteError(w, http.StatusInternalServerError, "internal server error")
}
