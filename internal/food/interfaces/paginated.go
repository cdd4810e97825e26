package interfaces

import (
	"context"
	"net/http"

	"github.com/sebuszqo/FoodManager/internal/food/domain"
)

// servePage runs a paginated list request: it parses search, ordering and
// paging, calls fetch and writes the page envelope.
func servePage[T any](
	h responder,
	cfg EndpointConfig,
	w http.ResponseWriter,
	r *http.Request,
	fetch func(ctx context.Context, opts domain.ListOptions) (domain.Page[T], error),
) {
	q := r.URL.Query()
	opts := cfg.listOptions(q)

	policy := cfg.Pagination
	if policy == nil {
		policy = DefaultPagination
	}
	req, ok := policy.parse(q)
	if !ok {
		h.respondError(w, http.StatusNotFound, msgInvalidPage)
		return
	}
	req.apply(&opts)

	page, err := fetch(r.Context(), opts)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	if !req.inRange(page.Count) {
		h.respondError(w, http.StatusNotFound, msgInvalidPage)
		return
	}
	h.respondJSON(w, http.StatusOK, newPageResponse(r, policy, req, page))
}
