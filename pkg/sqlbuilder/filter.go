package sqlbuilder

import "fmt"

// Values holds the request-scoped raw filter inputs keyed by predicate key.
// Keys absent from the catalog are ignored.
type Values map[string]string

// Page carries offset pagination bounds. Both fields must already be
// validated to be >= 1; the builder rejects anything else.
type Page struct {
	Number int
	Limit  int
}

// Offset returns the row offset for the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// Query is a parameterized statement ready for execution.
type Query struct {
	SQL  string
	Args []any
}

// FilterQuery pairs a row-fetching statement with its row-counting statement.
// Both are derived from one compilation pass over the catalog, so their WHERE
// clauses and argument lists cannot diverge.
type FilterQuery struct {
	catalog    *Catalog
	baseSelect string
	baseCount  string
	orderBy    string
}

// NewFilterQuery binds a catalog to its base statements. baseSelect and
// baseCount must reference the same tables and joins; orderBy should produce
// a deterministic order (include a unique tie-breaker column).
func NewFilterQuery(catalog *Catalog, baseSelect, baseCount, orderBy string) *FilterQuery {
	return &FilterQuery{
		catalog:    catalog,
		baseSelect: baseSelect,
		baseCount:  baseCount,
		orderBy:    orderBy,
	}
}

// Build compiles the active filter values into a data query and a count
// query sharing identical predicate text and parameter order. The data query
// appends ORDER BY plus LIMIT/OFFSET; the count query carries neither.
func (q *FilterQuery) Build(values Values, page Page) (Query, Query, error) {
	if page.Number < 1 || page.Limit < 1 {
		return Query{}, Query{}, fmt.Errorf("%w: page=%d limit=%d", ErrInvalidPagination, page.Number, page.Limit)
	}

	where, args := q.catalog.compile(values)

	count := Query{
		SQL:  q.baseCount + where,
		Args: args,
	}

	dataArgs := append(append([]any(nil), args...), page.Limit, page.Offset())
	data := Query{
		SQL: fmt.Sprintf("%s%s %s LIMIT $%d OFFSET $%d",
			q.baseSelect, where, q.orderBy, len(args)+1, len(args)+2),
		Args: dataArgs,
	}

	return data, count, nil
}
