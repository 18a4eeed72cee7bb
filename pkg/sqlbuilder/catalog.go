// Package sqlbuilder composes parameterized SQL fragments for filtered list
// queries and sparse updates. Statements are plain SQL text plus an ordered
// argument list using Postgres positional placeholders; execution is the
// caller's concern.
package sqlbuilder

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects how a predicate compiles its filter value.
type Mode int

const (
	// ModeExact compiles to single-column equality.
	ModeExact Mode = iota
	// ModeSubstringMulti compiles to case-insensitive substring matches
	// OR-combined across every target column, one bound parameter each.
	ModeSubstringMulti
	// ModeBoolFlag compiles to equality against a boolean column and is
	// applied only when the raw value is exactly "true".
	ModeBoolFlag
)

var (
	// ErrUnknownJoinTarget flags a predicate column absent from the declared join.
	ErrUnknownJoinTarget = errors.New("unknown join target")
	// ErrInvalidPagination flags non-positive page or limit inputs.
	ErrInvalidPagination = errors.New("invalid pagination")
	// ErrDisallowedField flags an update field outside the allow-list.
	ErrDisallowedField = errors.New("disallowed field")
)

// Predicate declares one filterable dimension: the external key, the
// comparison mode, and the column(s) it compiles to.
type Predicate struct {
	Key     string
	Mode    Mode
	Columns []string
}

// Catalog is the closed, ordered registry of filter predicates. Predicates
// compile in declaration order regardless of input map iteration, so two
// passes over the same values always yield identical SQL and argument order.
type Catalog struct {
	predicates []Predicate
}

// NewCatalog validates every predicate against the set of columns the base
// query actually joins and returns the immutable catalog. Column mismatches
// are construction-time errors, not runtime ones.
func NewCatalog(joinColumns []string, predicates ...Predicate) (*Catalog, error) {
	known := make(map[string]struct{}, len(joinColumns))
	for _, col := range joinColumns {
		known[col] = struct{}{}
	}

	for _, p := range predicates {
		if strings.TrimSpace(p.Key) == "" {
			return nil, fmt.Errorf("predicate key is required")
		}
		if len(p.Columns) == 0 {
			return nil, fmt.Errorf("predicate %q declares no columns", p.Key)
		}
		if p.Mode != ModeSubstringMulti && len(p.Columns) != 1 {
			return nil, fmt.Errorf("predicate %q must target exactly one column", p.Key)
		}
		for _, col := range p.Columns {
			if _, ok := known[col]; !ok {
				return nil, fmt.Errorf("%w: predicate %q references %s", ErrUnknownJoinTarget, p.Key, col)
			}
		}
	}

	return &Catalog{predicates: append([]Predicate(nil), predicates...)}, nil
}

// compile walks the catalog in declaration order and accumulates the WHERE
// clause and argument list in a single pass. Placeholder positions are
// derived from the argument list length at append time.
func (c *Catalog) compile(values Values) (string, []any) {
	var clause strings.Builder
	clause.WriteString(" WHERE 1=1")
	args := make([]any, 0, len(c.predicates))

	for _, p := range c.predicates {
		raw, ok := values[p.Key]
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}

		switch p.Mode {
		case ModeExact:
			args = append(args, raw)
			fmt.Fprintf(&clause, " AND %s = $%d", p.Columns[0], len(args))
		case ModeBoolFlag:
			if raw != "true" {
				continue
			}
			args = append(args, true)
			fmt.Fprintf(&clause, " AND %s = $%d", p.Columns[0], len(args))
		case ModeSubstringMulti:
			parts := make([]string, 0, len(p.Columns))
			for _, col := range p.Columns {
				args = append(args, "%"+raw+"%")
				parts = append(parts, fmt.Sprintf("%s ILIKE $%d", col, len(args)))
			}
			clause.WriteString(" AND (" + strings.Join(parts, " OR ") + ")")
		}
	}

	return clause.String(), args
}
