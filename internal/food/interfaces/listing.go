package interfaces

import (
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/sebuszqo/FoodManager/internal/auth"
	"github.com/sebuszqo/FoodManager/internal/food/domain"
)

const (
	searchParam   = "search"
	orderingParam = "ordering"

	msgInvalidPage = "Invalid page."
)

type PaginationPolicy struct {
	DefaultPageSize int
	MaxPageSize     int
	PageParam       string
	PageSizeParam   string
}

var DefaultPagination = &PaginationPolicy{
	DefaultPageSize: 10,
	MaxPageSize:     20,
	PageParam:       "page",
	PageSizeParam:   "page_size",
}

// EndpointConfig declares what one resource's endpoints accept and who may
// call them.
type EndpointConfig struct {
	SearchFields    []string
	OrderingFields  []string
	DefaultOrdering []domain.Ordering
	Pagination      *PaginationPolicy
	CollectionAuth  auth.Policy
	ItemAuth        auth.Policy
}

// SplitSearchTerms splits a search query on whitespace and commas.
func SplitSearchTerms(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
}

// ParseOrdering keeps the allowed names from a comma separated list; a
// leading "-" means descending. It falls back to def when nothing is left.
func ParseOrdering(raw string, allowed []string, def []domain.Ordering) []domain.Ordering {
	var out []domain.Ordering
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		desc := strings.HasPrefix(part, "-")
		name := strings.TrimPrefix(part, "-")
		if name == "" || !contains(allowed, name) {
			continue
		}
		out = append(out, domain.Ordering{Field: name, Desc: desc})
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func (c EndpointConfig) listOptions(q url.Values) domain.ListOptions {
	return domain.ListOptions{
		SearchTerms:  SplitSearchTerms(q.Get(searchParam)),
		SearchFields: c.SearchFields,
		Ordering:     ParseOrdering(q.Get(orderingParam), c.OrderingFields, c.DefaultOrdering),
	}
}

type pageRequest struct {
	number int
	size   int
}

func (p *PaginationPolicy) pageSize(raw string) int {
	size, err := strconv.Atoi(raw)
	if err != nil || size <= 0 {
		return p.DefaultPageSize
	}
	if size > p.MaxPageSize {
		return p.MaxPageSize
	}
	return size
}

// parse reads page and page_size; ok is false when page is not a positive
// integer or its offset does not fit in an int.
func (p *PaginationPolicy) parse(q url.Values) (pageRequest, bool) {
	req := pageRequest{number: 1, size: p.pageSize(q.Get(p.PageSizeParam))}
	if raw := q.Get(p.PageParam); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n-1 > math.MaxInt/req.size {
			return req, false
		}
		req.number = n
	}
	return req, true
}

func (req pageRequest) apply(opts *domain.ListOptions) {
	opts.Limit = req.size
	opts.Offset = (req.number - 1) * req.size
}

// inRange reports whether the requested page exists for count rows. Page 1
// always exists, even for an empty result.
func (req pageRequest) inRange(count int) bool {
	return req.number == 1 || (req.number-1)*req.size < count
}

type PageResponse[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

func newPageResponse[T any](r *http.Request, p *PaginationPolicy, req pageRequest, page domain.Page[T]) PageResponse[T] {
	resp := PageResponse[T]{Count: page.Count, Results: page.Items}
	if resp.Results == nil {
		resp.Results = []T{}
	}
	if req.number*req.size < page.Count {
		next := pageURL(r, p.PageParam, req.number+1)
		resp.Next = &next
	}
	if req.number > 1 {
		prev := pageURL(r, p.PageParam, req.number-1)
		resp.Previous = &prev
	}
	return resp
}

// pageURL rebuilds the absolute request URL pointing at page n; page 1 drops
// the parameter.
func pageURL(r *http.Request, param string, n int) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}

	q := r.URL.Query()
	if n == 1 {
		q.Del(param)
	} else {
		q.Set(param, strconv.Itoa(n))
	}
	u := url.URL{Scheme: scheme, Host: r.Host, Path: r.URL.Path, RawQuery: q.Encode()}
	return u.String()
}
