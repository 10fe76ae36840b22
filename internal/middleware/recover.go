package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/oggyb/messages-api/internal/apperror"
	"github.com/oggyb/messages-api/internal/response"
)

// Recover turns a panic in a handler into a 500 Internal Server Error body.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func Recover() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Printf("[Recover] panic serving %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
				status, msg := apperror.Translate(fmt.Errorf("panic: %v", rec))
				response.RespondError(w, status, msg)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
