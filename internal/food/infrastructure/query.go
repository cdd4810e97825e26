package infrastructure

import (
	"strconv"
	"strings"

	"github.com/sebuszqo/FoodManager/internal/food/domain"
)

// columnSet maps the public field names of one list endpoint to SQL
// expressions. Names missing from the maps are ignored.
type columnSet struct {
	id           string
	owner        string
	search       map[string]string
	order        map[string]string
	defaultOrder []domain.Ordering
}

type queryArgs []interface{}

func (a *queryArgs) add(v interface{}) string {
	*a = append(*a, v)
	return "$" + strconv.Itoa(len(*a))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// where builds the WHERE clause: the owner predicate (when the set is user
// scoped) ANDed with one OR group per search term.
func (c columnSet) where(opts domain.ListOptions, args *queryArgs) string {
	var preds []string
	if c.owner != "" {
		preds = append(preds, c.owner+" = "+args.add(opts.OwnerID))
	}

	var searchCols []string
	for _, f := range opts.SearchFields {
		if col, ok := c.search[f]; ok {
			searchCols = append(searchCols, col)
		}
	}
	if len(searchCols) > 0 {
		for _, term := range opts.SearchTerms {
			if term == "" {
				continue
			}
			p := args.add(containsPattern(term))
			ors := make([]string, len(searchCols))
			for i, col := range searchCols {
				ors[i] = col + " ILIKE " + p
			}
			preds = append(preds, "("+strings.Join(ors, " OR ")+")")
		}
	}

	if len(preds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(preds, " AND ")
}

func (c columnSet) orderBy(opts domain.ListOptions) string {
	var parts []string
	hasID := false
	add := func(orderings []domain.Ordering) {
		for _, o := range orderings {
			col, ok := c.order[o.Field]
			if !ok {
				continue
			}
			dir := " ASC"
			if o.Desc {
				dir = " DESC"
			}
			parts = append(parts, col+dir)
			if o.Field == domain.FieldID {
				hasID = true
			}
		}
	}
	add(opts.Ordering)
	if len(parts) == 0 {
		add(c.defaultOrder)
	}
	if !hasID {
		parts = append(parts, c.id+" ASC")
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

func limitOffset(opts domain.ListOptions, args *queryArgs) string {
	if opts.Limit <= 0 {
		return ""
	}
	clause := " LIMIT " + args.add(opts.Limit)
	if opts.Offset > 0 {
		clause += " OFFSET " + args.add(opts.Offset)
	}
	return clause
}
