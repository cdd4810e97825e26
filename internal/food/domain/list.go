package domain

// Names accepted by ordering and search configuration. Repositories map them
// to columns; anything they do not know is ignored.
const (
	FieldID         = "id"
	FieldTitle      = "title"
	FieldCategory   = "category"
	FieldIngredient = "ingredient"
	FieldRecipe     = "recipe"
)

type Ordering struct {
	Field string
	Desc  bool
}

// ListOptions is the access-layer view of a list request. OwnerID is set only
// by user scoped services, never from client input.
type ListOptions struct {
	OwnerID      string
	SearchTerms  []string
	SearchFields []string
	Ordering     []Ordering
	Limit        int
	Offset       int
}

type Page[T any] struct {
	Count int
	Items []T
}
