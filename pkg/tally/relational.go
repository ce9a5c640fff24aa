package tally

import "fmt"

// Select returns a new Table holding only the given columns, in the
// given order. Columns may repeat.
func Select(t *Table, cols ...int) (*Table, error) {
	for _, c := range cols {
		if err := t.checkColumn(c); err != nil {
			return nil, err
		}
	}

	schema := make(Schema, len(cols))
	for i, c := range cols {
		schema[i] = t.Schema[c]
	}

	out := NewTable(schema)
	for _, row := range t.rows {
		projected := make(Row, len(cols))
		for i, c := range cols {
			projected[i] = row[c]
		}
		out.Append(projected)
	}
	return out, nil
}

// Where returns a new Table holding the rows pred accepts, in order.
// The kept rows are shared, not copied; rows are immutable.
func Where(t *Table, pred func(Row) bool) *Table {
	out := NewTable(t.Schema)
	for _, row := range t.rows {
		if pred(row) {
			out.Append(row)
		}
	}
	return out
}

// Derive returns a new Table with col appended, computed per row by fn.
// Existing rows are copied, never mutated. An fn error aborts the whole
// derivation with the offending row index attached.
func Derive(t *Table, col Column, fn func(Row) (Value, error)) (*Table, error) {
	schema := make(Schema, 0, len(t.Schema)+1)
	schema = append(schema, t.Schema...)
	schema = append(schema, col)

	out := NewTable(schema)
	for i, row := range t.rows {
		v, err := fn(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		extended := make(Row, 0, len(row)+1)
		extended = append(extended, row...)
		extended = append(extended, v)
		out.Append(extended)
	}
	return out, nil
}
