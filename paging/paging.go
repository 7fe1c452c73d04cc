package paging

import (
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
)

// Defaults used by the course listing.
const (
	DefaultOrdering = "-created_at"
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is the paginated envelope returned by list endpoints
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// HasNext reports whether another page exists.
func (p *Page[T]) HasNext() bool {
	return p != nil && p.Next != nil && *p.Next != ""
}

// Options holds list query options
type Options struct {
	Ordering string `url:"ordering,omitempty" json:"ordering"`
	Page     int    `url:"page,omitempty" json:"page"`
	PageSize int    `url:"page_size,omitempty" json:"page_size"`
	Search   string `url:"search,omitempty" json:"search"`
}

// DefaultOptions returns the default list options
func DefaultOptions() Options {
	return Options{
		Ordering: DefaultOrdering,
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}
}

// Normalize ensures page and page size are within an acceptable range
func Normalize(opts Options) Options {
	if opts.Page <= 0 {
		opts.Page = DefaultPage
	}
	if opts.PageSize <= 0 || opts.PageSize > MaxPageSize {
		opts.PageSize = DefaultPageSize
	}
	return opts
}

// Values encodes options as query values, omitting zero fields
func (o Options) Values() (url.Values, error) {
	v, err := query.Values(o)
	if err != nil {
		return nil, fmt.Errorf("failed to encode paging options: %w", err)
	}
	return v, nil
}

// Window returns the [start, end) slice bounds for a page over total items
func Window(opts Options, total int) (start, end int) {
	opts = Normalize(opts)
	if total <= 0 {
		return 0, 0
	}
	// pages past the end would overflow the offset
	if opts.Page-1 > (total-1)/opts.PageSize {
		return total, total
	}
	start = (opts.Page - 1) * opts.PageSize
	end = start + opts.PageSize
	if end > total {
		end = total
	}
	return start, end
}
