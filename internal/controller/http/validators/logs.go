package validators

import (
	"errors"
	"strings"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 200

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

var (
	ErrInvalidPage    = errors.New("page must be a positive number")
	ErrInvalidPerPage = errors.New("per_page must be a positive number")
	ErrInvalidOrder   = errors.New("order must be asc or desc")
)

// ListRequest is the query string of the log list.
type ListRequest struct {
	Page    int
	PerPage int
	Search  string
	Level   string
	OrderBy string
	Order   string
}

// NewListRequest returns a request holding the defaults that absent parameters keep.
func NewListRequest() ListRequest {
	return ListRequest{
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
	}
}

// ListParams are the normalized list parameters.
type ListParams struct {
	Page    int
	PerPage int
	Search  string
	Level   string
	OrderBy string
	Desc    bool
}

// Validate fills defaults and rejects values the list cannot serve.
// A per_page above MaxPerPage is capped rather than rejected.
func Validate(r *ListRequest) (ListParams, error) {
	if r.Page < 1 {
		return ListParams{}, ErrInvalidPage
	}
	if r.PerPage < 1 {
		return ListParams{}, ErrInvalidPerPage
	}

	p := ListParams{
		Page:    r.Page,
		PerPage: min(r.PerPage, MaxPerPage),
		Search:  strings.TrimSpace(r.Search),
		Level:   strings.ToLower(strings.TrimSpace(r.Level)),
		OrderBy: strings.TrimSpace(r.OrderBy),
	}

	switch strings.ToLower(strings.TrimSpace(r.Order)) {
	case "", OrderAsc:
	case OrderDesc:
		p.Desc = true
	default:
		return ListParams{}, ErrInvalidOrder
	}

	return p, nil
}
