package mean

import (
	"fmt"

	"pkg.jsn.cam/tally/pkg/tally"
)

// Combiner computes the arithmetic mean per group. The accumulator
// carries the (sum, count) pair rather than a running average, which is
// what keeps Merge associative.
type Combiner struct{}

func (Combiner) New() tally.Accumulator { return &acc{} }

func (Combiner) Description() string {
	return "Averages the numeric values in each group"
}

type acc struct {
	sum float64
	n   int64
}

func (a *acc) Add(v tally.Value) error {
	f, ok := v.Num()
	if !ok {
		return fmt.Errorf("mean %q: %w", v.String(), tally.ErrNonNumeric)
	}
	a.sum += f
	a.n++
	return nil
}

func (a *acc) Merge(other tally.Accumulator) error {
	o, ok := other.(*acc)
	if !ok {
		return fmt.Errorf("mean: cannot merge %T", other)
	}
	a.sum += o.sum
	a.n += o.n
	return nil
}

func (a *acc) Result() tally.Value {
	if a.n == 0 {
		return tally.FloatValue(0)
	}
	return tally.FloatValue(a.sum / float64(a.n))
}
