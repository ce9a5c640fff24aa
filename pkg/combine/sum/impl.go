package sum

import (
	"fmt"

	"pkg.jsn.cam/tally/pkg/tally"
)

// Combiner adds the numeric values of a column. Addition is associative
// and commutative, so row order within a group never changes the total.
type Combiner struct{}

func (Combiner) New() tally.Accumulator { return &acc{ints: true} }

func (Combiner) Description() string {
	return "Adds the numeric values of a column (grouped or total)"
}

// acc tracks the running sum as a float64 but remembers whether every
// input was an integer so unit counts come back as integers.
type acc struct {
	total float64
	ints  bool
}

func (a *acc) Add(v tally.Value) error {
	n, ok := v.Num()
	if !ok {
		return fmt.Errorf("sum %q: %w", v.String(), tally.ErrNonNumeric)
	}
	if v.Kind != tally.IntType {
		a.ints = false
	}
	a.total += n
	return nil
}

func (a *acc) Merge(other tally.Accumulator) error {
	o, ok := other.(*acc)
	if !ok {
		return fmt.Errorf("sum: cannot merge %T", other)
	}
	a.total += o.total
	a.ints = a.ints && o.ints
	return nil
}

func (a *acc) Result() tally.Value {
	if a.ints {
		return tally.IntValue(int64(a.total))
	}
	return tally.FloatValue(a.total)
}
