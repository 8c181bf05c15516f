package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleFunc(t *testing.T) {
	rt := New()
	rt.HandleFunc("GET /ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest("GET", "/ping", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMiddlewareOrder(t *testing.T) {
	var calls []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New()
	rt.Use(mw("first"), mw("second"))
	rt.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "handler")
	})

	rt.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, []string{"first", "second", "handler"}, calls)
}

func TestSubRouter(t *testing.T) {
	rt := New()
	api := rt.SubRouter("/api")
	api.HandleFunc("GET /photos", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest("GET", "/api/photos", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest("GET", "/photos", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubRouterEmptyPrefix(t *testing.T) {
	rt := New()
	assert.Panics(t, func() { rt.SubRouter("/") })
}
