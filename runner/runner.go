// Package runner solves many cases concurrently. Every case is independent:
// a case that fails is reported with its cause, and never stops its siblings
// from being solved.
package runner

import (
	"context"
	"math/big"
	"path/filepath"
	"time"

	zap "github.com/Laisky/zap"
	"golang.org/x/sync/errgroup"

	shamir "github.com/renproject/shamir-recovery"
	"github.com/renproject/shamir-recovery/caseio"
	"github.com/renproject/shamir-recovery/log"
)

// DefaultWorkers is the number of cases that are solved at the same time
// unless configured otherwise.
const DefaultWorkers = 4

// Runner solves cases with a recoverer, using a bounded number of workers.
type Runner struct {
	recoverer shamir.Recoverer
	workers   int
	logger    *log.Logger
}

// Option configures a runner.
type Option func(*Runner)

// WithWorkers sets the number of cases that are solved at the same time.
// Values less than one are ignored.
func WithWorkers(workers int) Option {
	return func(r *Runner) {
		if workers > 0 {
			r.workers = workers
		}
	}
}

// WithLogger sets the logger of the runner.
func WithLogger(logger *log.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// New constructs a new runner that solves cases with the given recoverer.
func New(recoverer shamir.Recoverer, opts ...Option) *Runner {
	r := &Runner{
		recoverer: recoverer,
		workers:   DefaultWorkers,
		logger:    log.Shared,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// loader produces the case to solve. The returned case must carry its ID
// even when an error is returned.
type loader func() (shamir.Case, error)

// Run reads and solves the cases in the given files. The report has one
// result per path, in the same order. If the context is cancelled, cases
// that have not started are reported with the context error, and that error
// is also returned.
func (r *Runner) Run(ctx context.Context, paths []string) (Report, error) {
	loaders := make([]loader, len(paths))
	ids := make([]string, len(paths))
	for i, path := range paths {
		path := path
		ids[i] = filepath.Base(path)
		loaders[i] = func() (shamir.Case, error) { return caseio.ReadFile(path) }
	}
	return r.run(ctx, ids, loaders)
}

// RunCases solves the given cases. The report has one result per case, in the
// same order.
func (r *Runner) RunCases(ctx context.Context, cases []shamir.Case) (Report, error) {
	loaders := make([]loader, len(cases))
	ids := make([]string, len(cases))
	for i := range cases {
		c := cases[i]
		ids[i] = c.ID
		loaders[i] = func() (shamir.Case, error) { return c, nil }
	}
	return r.run(ctx, ids, loaders)
}

func (r *Runner) run(ctx context.Context, ids []string, loaders []loader) (Report, error) {
	start := time.Now()
	report := make(Report, len(loaders))

	var g errgroup.Group
	g.SetLimit(r.workers)
	for i := range loaders {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				report[i] = Result{Case: ids[i], Err: &shamir.CaseError{Case: ids[i], Err: err}}
				return nil
			}
			report[i] = r.solve(loaders[i])
			return nil
		})
	}
	_ = g.Wait()

	r.logger.Info("solved cases",
		zap.Int("total", len(report)),
		zap.Int("failed", report.Failed()),
		zap.Duration("cost", time.Since(start)))
	return report, ctx.Err()
}

func (r *Runner) solve(load loader) Result {
	c, err := load()
	if err != nil {
		r.logger.Warn("load case", zap.String("case", c.ID), zap.Error(err))
		return Result{Case: c.ID, Err: &shamir.CaseError{Case: c.ID, Err: err}}
	}

	logger := r.logger.With(zap.String("case", c.ID))
	logger.Debug("solve case",
		zap.Int("n", c.N),
		zap.Int("k", c.K),
		zap.Int("shares", len(c.Shares)))
	if c.K > c.N {
		logger.Warn("threshold exceeds the declared number of shares", zap.Int("n", c.N), zap.Int("k", c.K))
	}

	secret, err := c.Solve(r.recoverer)
	if err != nil {
		logger.Warn("solve case", zap.Error(err))
		return Result{Case: c.ID, Err: err}
	}

	logger.Info("solved case", zap.String("secret", secret.String()))
	return Result{Case: c.ID, Secret: new(big.Int).Set(secret)}
}
