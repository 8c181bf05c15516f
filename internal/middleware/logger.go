package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/hirokishimizu39/ThisIsJapan/internal/router"
)

type statusWriter struct {
	Status int
	inner  http.ResponseWriter
}

func (sw *statusWriter) Header() http.Header {
	return sw.inner.Header()
}

func (sw *statusWriter) WriteHeader(status int) {
	sw.Status = status
	sw.inner.WriteHeader(status)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	if sw.Status == 0 {
		sw.Status = http.StatusOK
	}
	return sw.inner.Write(b)
}

func Log() router.Middleware {
	return LogWith(slog.Default())
}

func LogWith(l *slog.Logger) router.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{inner: w}
			t := time.Now()

			next.ServeHTTP(sw, r)
			l.Info("request handled",
				"method", r.Method,
				"url", r.URL.String(),
				"ip", r.RemoteAddr,
				"status", sw.Status,
				"duration", time.Since(t),
				"agent", r.UserAgent())
		})
	}
}
