package handler

import (
	"log"
	"net/http"

	"github.com/oggyb/messages-api/internal/apperror"
	"github.com/oggyb/messages-api/internal/response"
)

// Func is an HTTP handler that reports failure by returning an error
// instead of writing it.
type Func func(w http.ResponseWriter, r *http.Request) error

// Wrap adapts f to http.HandlerFunc. It is the only place where an error
// becomes a status code and a {code, message} body.
func Wrap(f Func) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			WriteError(w, r, err)
		}
	}
}

// WriteError logs err and writes its translated response.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := apperror.Translate(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[Handler] %s %s failed: %v", r.Method, r.URL.Path, err)
	}
	response.RespondError(w, status, msg)
}
