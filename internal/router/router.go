package router

import (
	"net/http"
	"strings"
)

type Middleware func(http.Handler) http.Handler

// Router is a thin wrapper over http.ServeMux that adds middleware chaining
// and prefix-scoped sub-routers.
type Router struct {
	prefix     string
	mux        *http.ServeMux
	middleware []Middleware
}

func New() *Router {
	return &Router{
		mux: http.NewServeMux(),
	}
}

func (rt *Router) Use(mw ...Middleware) {
	rt.middleware = append(rt.middleware, mw...)
}

func (rt *Router) Handle(pattern string, handler http.Handler) {
	rt.mux.Handle(pattern, handler)
}

func (rt *Router) HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	rt.mux.HandleFunc(pattern, handler)
}

func (rt *Router) SubRouter(prefix string) *Router {
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		panic("sub-router prefix must not be empty")
	}

	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}

	s := &Router{
		prefix:     prefix,
		mux:        http.NewServeMux(),
		middleware: rt.middleware,
	}

	rt.mux.Handle(prefix+"/", http.StripPrefix(prefix, s))
	return s
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var h http.Handler = rt.mux
	for i := len(rt.middleware) - 1; i >= 0; i-- {
		h = rt.middleware[i](h)
	}

	h.ServeHTTP(w, r)
}
