package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zeusync/geomath/internal/core/observability/log"
	"github.com/zeusync/geomath/pkg/concurrent"
)

// Options controls how scenarios are evaluated.
type Options struct {
	Workers   int
	Tolerance float64
	FailFast  bool
}

type Runner struct {
	log      log.Log
	opts     Options
	registry *Registry
}

func NewRunner(logger log.Log, opts Options) *Runner {
	return NewRunnerWithRegistry(logger, opts, DefaultRegistry())
}

func NewRunnerWithRegistry(logger log.Log, opts Options, registry *Registry) *Runner {
	return &Runner{
		log:      logger.Named("scenario"),
		opts:     opts,
		registry: registry,
	}
}

func (r *Runner) Registry() *Registry { return r.registry }

// Validate checks that every step names a known op and that expectations are
// well formed.
func (r *Runner) Validate(sc *Scenario) error {
	if len(sc.Steps) == 0 {
		return ErrEmptyScenario
	}
	for i := range sc.Steps {
		step := &sc.Steps[i]
		if _, err := r.registry.Lookup(step.Op); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if step.Expect != nil {
			if _, err := step.Expect.Value(); err != nil {
				return fmt.Errorf("step %d (%s): expect: %w", i, step.Op, err)
			}
		}
	}
	return nil
}

// Run evaluates every step of sc. Malformed steps abort the run with an
// error; failed expectations are recorded in the report.
func (r *Runner) Run(ctx context.Context, sc *Scenario) (*Report, error) {
	if err := r.Validate(sc); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}

	report := &Report{
		ID:       uuid.New(),
		Scenario: sc.Name,
		Results:  make([]StepResult, 0, len(sc.Steps)),
	}
	ctx = log.ContextWith(ctx, log.String("run_id", report.ID.String()), log.String("scenario", sc.Name))
	logger := r.log.WithContext(ctx)

	tolerance := r.opts.Tolerance
	if sc.Tolerance != nil {
		tolerance = *sc.Tolerance
	}

	started := time.Now()
	for i := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		step := &sc.Steps[i]
		result, err := r.evaluate(step, tolerance)
		if err != nil {
			logger.Error("step failed", log.Int("step", i), log.String("op", step.Op), log.Error(err))
			return nil, fmt.Errorf("scenario %q step %d (%s): %w", sc.Name, i, step.Op, err)
		}
		result.Index = i
		report.add(result)

		if result.Checked && !result.Passed {
			logger.Warn("expectation failed",
				log.Int("step", i),
				log.String("op", step.Op),
				log.Stringer("got", result.Value),
				log.Stringer("want", result.Want),
			)
			if r.opts.FailFast {
				break
			}
			continue
		}
		logger.Debug("step evaluated", log.Int("step", i), log.String("op", step.Op), log.Stringer("value", result.Value))
	}
	report.Duration = time.Since(started)

	logger.Info("scenario finished",
		log.Int("steps", len(report.Results)),
		log.Int("passed", report.Passed),
		log.Int("failed", report.Failed),
		log.Duration("duration", report.Duration),
	)
	return report, nil
}

func (r *Runner) evaluate(step *Step, tolerance float64) (StepResult, error) {
	fn, err := r.registry.Lookup(step.Op)
	if err != nil {
		return StepResult{}, err
	}
	value, err := fn(step)
	if err != nil {
		return StepResult{}, err
	}

	result := StepResult{Op: step.Op, Value: value}
	if step.Expect == nil {
		return result, nil
	}

	want, err := step.Expect.Value()
	if err != nil {
		return StepResult{}, err
	}
	if step.Tolerance != nil {
		tolerance = *step.Tolerance
	}
	passed, err := value.Matches(want, tolerance)
	if err != nil {
		return StepResult{}, err
	}
	result.Checked = true
	result.Passed = passed
	result.Want = want
	return result, nil
}

// RunFile loads and runs a single scenario file.
func (r *Runner) RunFile(ctx context.Context, path string) (*Report, error) {
	sc, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	report, err := r.Run(ctx, sc)
	if err != nil {
		return nil, err
	}
	report.Source = path
	return report, nil
}

// RunFiles runs the files concurrently, at most Options.Workers at a time.
// Reports are returned in the order of paths.
func (r *Runner) RunFiles(ctx context.Context, paths []string) ([]*Report, error) {
	return concurrent.ParallelMap(ctx, paths, r.opts.Workers, r.RunFile)
}
