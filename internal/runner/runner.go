package runner

import (
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pkg.jsn.cam/tally/combiners"
	"pkg.jsn.cam/tally/internal/config"
	"pkg.jsn.cam/tally/internal/runcache"
	"pkg.jsn.cam/tally/pkg/tally"
)

// Result is what one pipeline run produced.
type Result struct {
	RunID   string
	Lines   int
	Rows    int
	Groups  tally.AggregationResult
	Total   tally.Value // set by RunTotal
	Elapsed time.Duration
}

// Runner drives Loader → Parser → Aggregator for one configuration.
// It replaces the implicit global session of engine-style APIs: every
// dependency is handed in explicitly and nothing is process-wide.
type Runner struct {
	cfg   *config.Config
	log   *zap.Logger
	cache runcache.Cache
}

// New builds a runner. cache may be nil to skip run persistence.
func New(cfg *config.Config, log *zap.Logger, cache runcache.Cache) *Runner {
	return &Runner{cfg: cfg, log: log, cache: cache}
}

// Run executes the grouped pipeline against in. The caller opens the
// input so it can wrap the reader for progress reporting.
func (r *Runner) Run(in io.Reader) (*Result, error) {
	start := time.Now()

	table, lines, err := r.parse(in)
	if err != nil {
		return nil, err
	}

	comb, err := combiners.Get(r.cfg.Aggregate.Combiner)
	if err != nil {
		return nil, err
	}
	group, value, err := r.cfg.ColumnIndexes()
	if err != nil {
		return nil, err
	}

	groups, err := tally.GroupBy(table, group, value, comb)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Lines:   lines,
		Rows:    table.Len(),
		Groups:  groups,
		Elapsed: time.Since(start),
	}
	r.log.Info("aggregated",
		zap.String("group_by", r.cfg.Aggregate.GroupBy),
		zap.String("value", r.cfg.Aggregate.Value),
		zap.String("combiner", r.cfg.Aggregate.Combiner),
		zap.Int("groups", len(groups)),
		zap.Duration("elapsed", res.Elapsed))

	if r.cache != nil {
		entry := runcache.Entry{
			ID:          uuid.New().String(),
			CreatedAt:   time.Now(),
			Input:       r.cfg.Input.Path,
			Combiner:    r.cfg.Aggregate.Combiner,
			GroupColumn: r.cfg.Aggregate.GroupBy,
			ValueColumn: r.cfg.Aggregate.Value,
			Groups:      groups,
		}
		if err := r.cache.Put(entry); err != nil {
			return nil, err
		}
		res.RunID = entry.ID
		r.log.Debug("cached run", zap.String("run_id", entry.ID))
	}
	return res, nil
}

// RunTotal executes the degenerate ungrouped pipeline: one reduced
// value over the whole value column.
func (r *Runner) RunTotal(in io.Reader) (*Result, error) {
	start := time.Now()

	table, lines, err := r.parse(in)
	if err != nil {
		return nil, err
	}

	comb, err := combiners.Get(r.cfg.Aggregate.Combiner)
	if err != nil {
		return nil, err
	}
	_, value, err := r.cfg.ColumnIndexes()
	if err != nil {
		return nil, err
	}

	total, err := tally.Reduce(table, value, comb)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Lines:   lines,
		Rows:    table.Len(),
		Total:   total,
		Elapsed: time.Since(start),
	}
	r.log.Info("reduced",
		zap.String("value", r.cfg.Aggregate.Value),
		zap.String("combiner", r.cfg.Aggregate.Combiner),
		zap.String("total", total.String()),
		zap.Duration("elapsed", res.Elapsed))
	return res, nil
}

func (r *Runner) parse(in io.Reader) (*tally.Table, int, error) {
	lines, err := tally.ReadLinesFrom(in)
	if err != nil {
		return nil, 0, err
	}

	opts, err := r.cfg.ParseOptions()
	if err != nil {
		return nil, 0, err
	}

	table, err := tally.Parse(lines, opts)
	if err != nil {
		return nil, 0, err
	}
	r.log.Info("parsed table",
		zap.Int("lines", len(lines)),
		zap.Int("rows", table.Len()))
	return table, len(lines), nil
}
