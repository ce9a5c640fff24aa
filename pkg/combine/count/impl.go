package count

import (
	"fmt"

	"pkg.jsn.cam/tally/pkg/tally"
)

// Combiner counts values regardless of kind.
type Combiner struct{}

func (Combiner) New() tally.Accumulator { return &acc{} }

func (Combiner) Description() string {
	return "Counts the rows in each group (any column kind)"
}

type acc struct {
	n int64
}

func (a *acc) Add(tally.Value) error {
	a.n++
	return nil
}

func (a *acc) Merge(other tally.Accumulator) error {
	o, ok := other.(*acc)
	if !ok {
		return fmt.Errorf("count: cannot merge %T", other)
	}
	a.n += o.n
	return nil
}

func (a *acc) Result() tally.Value { return tally.IntValue(a.n) }
