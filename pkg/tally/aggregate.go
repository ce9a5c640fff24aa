package tally

import "fmt"

// GroupBy folds every row's value column into the accumulator for that
// row's key column, creating an accumulator the first time a key is
// seen. The result is ordered by first appearance of each key, so
// output is deterministic for a given input ordering, and the totals
// themselves are permutation-independent because accumulation is
// associative and commutative.
//
// The first accumulation error aborts the whole operation; no partial
// result is returned.
func GroupBy(t *Table, keyCol, valCol int, c Combiner) (AggregationResult, error) {
	if err := t.checkColumn(keyCol); err != nil {
		return nil, err
	}
	if err := t.checkColumn(valCol); err != nil {
		return nil, err
	}

	accs := make(map[string]Accumulator)
	var order []string
	for _, row := range t.rows {
		key := row[keyCol].String()
		acc, ok := accs[key]
		if !ok {
			acc = c.New()
			accs[key] = acc
			order = append(order, key)
		}
		if err := acc.Add(row[valCol]); err != nil {
			return nil, fmt.Errorf("group %q: %w", key, err)
		}
	}

	result := make(AggregationResult, 0, len(order))
	for _, key := range order {
		result = append(result, GroupTotal{Key: key, Total: accs[key].Result()})
	}
	return result, nil
}

// Reduce folds one column of the whole table into a single value, the
// degenerate ungrouped aggregation ("total sales").
func Reduce(t *Table, valCol int, c Combiner) (Value, error) {
	if err := t.checkColumn(valCol); err != nil {
		return Value{}, err
	}

	acc := c.New()
	for _, row := range t.rows {
		if err := acc.Add(row[valCol]); err != nil {
			return Value{}, err
		}
	}
	return acc.Result(), nil
}

func (t *Table) checkColumn(col int) error {
	if col < 0 || col >= len(t.Schema) {
		return fmt.Errorf("column %d: %w", col, ErrColumnOutOfRange)
	}
	return nil
}
