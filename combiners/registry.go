package combiners

import (
	"fmt"
	"sort"

	"pkg.jsn.cam/tally/pkg/combine/count"
	"pkg.jsn.cam/tally/pkg/combine/maxvalue"
	"pkg.jsn.cam/tally/pkg/combine/mean"
	"pkg.jsn.cam/tally/pkg/combine/minvalue"
	"pkg.jsn.cam/tally/pkg/combine/sum"
	"pkg.jsn.cam/tally/pkg/tally"
)

var registry = map[string]tally.Combiner{
	"sum":   sum.Combiner{},
	"count": count.Combiner{},
	"max":   maxvalue.Combiner{},
	"min":   minvalue.Combiner{},
	"mean":  mean.Combiner{},
}

func IsValid(name string) bool {
	_, exists := registry[name]
	return exists
}

func Get(name string) (tally.Combiner, error) {
	c, exists := registry[name]
	if !exists {
		return nil, fmt.Errorf("%q: %w", name, tally.ErrUnknownCombiner)
	}
	return c, nil
}

func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Describe(name string) (string, error) {
	c, err := Get(name)
	if err != nil {
		return "", err
	}
	return c.Description(), nil
}
