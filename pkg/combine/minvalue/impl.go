package minvalue

import (
	"fmt"

	"pkg.jsn.cam/tally/pkg/tally"
)

// Combiner keeps the smallest numeric value seen.
type Combiner struct{}

func (Combiner) New() tally.Accumulator { return &acc{} }

func (Combiner) Description() string {
	return "Keeps the smallest numeric value in each group"
}

type acc struct {
	best tally.Value
	num  float64
	seen bool
}

func (a *acc) Add(v tally.Value) error {
	n, ok := v.Num()
	if !ok {
		return fmt.Errorf("min %q: %w", v.String(), tally.ErrNonNumeric)
	}
	if !a.seen || n < a.num {
		a.best = v
		a.num = n
		a.seen = true
	}
	return nil
}

func (a *acc) Merge(other tally.Accumulator) error {
	o, ok := other.(*acc)
	if !ok {
		return fmt.Errorf("min: cannot merge %T", other)
	}
	if o.seen {
		return a.Add(o.best)
	}
	return nil
}

func (a *acc) Result() tally.Value {
	if !a.seen {
		return tally.FloatValue(0)
	}
	return a.best
}
