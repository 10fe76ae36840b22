package request

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	domain "github.com/oggyb/messages-api/internal/domain/message"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// PaginationParams holds the optional page query parameters of GET /messages.
type PaginationParams struct {
	Page    *int `validate:"omitempty,min=1"`
	PerPage *int `validate:"omitempty,min=1"`
}

// ParsePagination reads ?page= and ?per_page= from r. Absent values are left
// nil; non-integers, values below 1 and pages whose offset overflows are
// rejected.
func ParsePagination(r *http.Request) (PaginationParams, error) {
	var p PaginationParams
	q := r.URL.Query()

	var err error
	if p.Page, err = optionalInt(q.Get("page")); err != nil {
		return p, fmt.Errorf("page: %w", err)
	}
	if p.PerPage, err = optionalInt(q.Get("per_page")); err != nil {
		return p, fmt.Errorf("per_page: %w", err)
	}

	if err := validate.Struct(p); err != nil {
		return p, err
	}

	page, perPage := p.Values()
	if _, err := domain.NewWindow(page, perPage); err != nil {
		return p, err
	}
	return p, nil
}

// Values returns page and per_page with defaults applied.
func (p PaginationParams) Values() (page, perPage int) {
	page, perPage = domain.DefaultPage, domain.DefaultPerPage
	if p.Page != nil {
		page = *p.Page
	}
	if p.PerPage != nil {
		perPage = *p.PerPage
	}
	return page, perPage
}

func optionalInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
