package sqlbuilder

import (
	"fmt"
	"strings"
)

// UpdateBuilder produces sparse UPDATE statements touching only the columns
// present in the input, restricted to a fixed allow-list. The allow-list is
// iterated in declaration order so output is stable regardless of input map
// iteration.
type UpdateBuilder struct {
	table    string
	idColumn string
	allowed  []string
}

// NewUpdateBuilder declares the table, its identifier column, and the closed
// set of columns updates may touch.
func NewUpdateBuilder(table, idColumn string, allowed ...string) *UpdateBuilder {
	return &UpdateBuilder{
		table:    table,
		idColumn: idColumn,
		allowed:  append([]string(nil), allowed...),
	}
}

// Build assembles one UPDATE statement for the provided fields. A field
// outside the allow-list fails with ErrDisallowedField rather than being
// silently dropped. When no allow-listed field is present the second return
// is false and no statement is produced; callers treat that as a no-op
// success. targetID always binds as the final parameter.
func (u *UpdateBuilder) Build(targetID any, fields map[string]any) (Query, bool, error) {
	for col := range fields {
		if !u.allows(col) {
			return Query{}, false, fmt.Errorf("%w: %s", ErrDisallowedField, col)
		}
	}

	sets := make([]string, 0, len(u.allowed))
	args := make([]any, 0, len(u.allowed)+1)
	for _, col := range u.allowed {
		value, ok := fields[col]
		if !ok {
			continue
		}
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if len(sets) == 0 {
		return Query{}, false, nil
	}

	args = append(args, targetID)
	query := Query{
		SQL: fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
			u.table, strings.Join(sets, ", "), u.idColumn, len(args)),
		Args: args,
	}
	return query, true, nil
}

func (u *UpdateBuilder) allows(column string) bool {
	for _, col := range u.allowed {
		if col == column {
			return true
		}
	}
	return false
}
