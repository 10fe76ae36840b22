package middleware

import (
	"log"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger logs basic information about each HTTP request,
// including method, path, status, remote address, request id and how long
// it took to serve.
func RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.Printf("%s %s %d %s id=%s [%s]",
				r.Method, r.URL.Path, ww.Status(), r.RemoteAddr, RequestIDFrom(r.Context()), time.Since(start))
		})
	}
}

// RealIP rewrites RemoteAddr from X-Real-IP / X-Forwarded-For.
func RealIP() func(http.Handler) http.Handler {
	return chimw.RealIP
}
