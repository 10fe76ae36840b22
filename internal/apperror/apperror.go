// Package apperror tags failures with a kind and translates them into the
// HTTP status and client-facing message the API returns.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure for translation.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindBadRequest
	KindDatabase
	KindObjectStore
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	case KindDatabase:
		return "database"
	case KindObjectStore:
		return "object_store"
	default:
		return "internal"
	}
}

// ErrRouteNotFound is returned for requests that match no route.
var ErrRouteNotFound = &Error{Kind: KindNotFound, Op: "route"}

// Error is a failure tagged with its Kind and the operation that produced it.
// The wrapped cause is for logs only and never reaches the client.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Database wraps a relational store failure.
func Database(op string, err error) error {
	return &Error{Kind: KindDatabase, Op: op, Err: err}
}

// ObjectStore wraps a blob store failure.
func ObjectStore(op string, err error) error {
	return &Error{Kind: KindObjectStore, Op: op, Err: err}
}

// BadRequest wraps a client input failure.
func BadRequest(op string, err error) error {
	return &Error{Kind: KindBadRequest, Op: op, Err: err}
}

// KindOf reports the Kind of the first *Error in err's chain,
// or KindInternal if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Translate maps err to the HTTP status and fixed message sent to clients.
func Translate(err error) (int, string) {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound, "Not Found"
	case KindBadRequest:
		return http.StatusBadRequest, "Bad Request"
	case KindDatabase:
		return http.StatusInternalServerError, "Database Error"
	case KindObjectStore:
		return http.StatusInternalServerError, "S3 Error"
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}
