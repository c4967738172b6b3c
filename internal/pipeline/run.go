package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/founder-fit/internal/cache"
	"github.com/jonathan/founder-fit/internal/lock"
	"github.com/jonathan/founder-fit/internal/narrative"
	"github.com/jonathan/founder-fit/internal/ranking"
	"github.com/jonathan/founder-fit/internal/scoring"
	"github.com/jonathan/founder-fit/internal/types"
	"github.com/jonathan/founder-fit/internal/unlock"
)

// ErrAlreadyRunning is returned when another pipeline run holds the
// generation lock inside the staleness window. It is a dedup signal,
// not a failure: the in-flight run will deliver the result.
var ErrAlreadyRunning = errors.New("generation already in progress")

// Pipeline timing defaults.
const (
	DefaultStageTimeout     = 15 * time.Second
	DefaultMinDuration      = 25 * time.Second
	DefaultTotalBudget      = 90 * time.Second
	DefaultProgressInterval = 500 * time.Millisecond
)

// bottomModelCount is how many worst matches feed the avoid analysis.
const bottomModelCount = 3

// Options holds configuration for running the generation pipeline.
type Options struct {
	Answers   *types.QuizAnswers
	Generator *narrative.Generator
	Cache     *cache.Manager
	Lock      lock.Locker
	Views     unlock.ViewTracker // optional

	StageTimeout     time.Duration // per external call; default 15s
	MinDuration      time.Duration // completion floor; default 25s
	TotalBudget      time.Duration // time-based progress budget; default 90s
	ProgressInterval time.Duration

	OnProgress func(types.ProgressEvent)
	OnComplete func(*types.GenerationResult)
	Verbose    bool
}

// runner carries one pipeline execution. The clock and floor sleep are
// fields so tests can drive them without real waiting.
type runner struct {
	opts      Options
	estimator *progressEstimator
	state     types.PipelineState

	// recovered and stageIndex are touched from stage goroutines and
	// the progress ticker.
	recovered  atomic.Bool
	stageIndex atomic.Int32

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// Run executes the full generation pipeline for the answers in opts.
// It returns ErrAlreadyRunning when deduplicated, the context error
// when cancelled, and otherwise always a complete result: individual
// stage failures degrade to fallback content, never to a missing
// result.
func Run(ctx context.Context, opts Options) (*types.GenerationResult, error) {
	return newRunner(opts).run(ctx)
}

func newRunner(opts Options) *runner {
	if opts.StageTimeout <= 0 {
		opts.StageTimeout = DefaultStageTimeout
	}
	if opts.MinDuration <= 0 {
		opts.MinDuration = DefaultMinDuration
	}
	if opts.TotalBudget <= 0 {
		opts.TotalBudget = DefaultTotalBudget
	}
	if opts.ProgressInterval <= 0 {
		opts.ProgressInterval = DefaultProgressInterval
	}
	if opts.Cache == nil {
		opts.Cache = cache.New(cache.Options{})
	}
	if opts.Lock == nil {
		opts.Lock = lock.NewMemoryLock(0)
	}

	return &runner{
		opts:  opts,
		state: types.PipelineIdle,
		now:   time.Now,
		sleep: func(ctx context.Context, d time.Duration) error {
			timer := time.NewTimer(d)
			defer timer.Stop()
			select {
			case <-timer.C:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	}
}

func (r *runner) run(ctx context.Context) (*types.GenerationResult, error) {
	key := r.opts.Cache.Key(r.opts.Answers)

	// Serve straight from cache when a valid report already exists;
	// reloads within the TTL never re-enter generation.
	if cached, ok := r.opts.Cache.Get(key); ok {
		r.verbosef("Serving cached report for key %s\n", key[:12])
		r.state = types.PipelineCompleted
		r.emitProgress(len(Stages)-1, 100)
		if r.opts.OnComplete != nil {
			r.opts.OnComplete(cached)
		}
		return cached, nil
	}

	acquired, err := r.opts.Lock.TryAcquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("generation lock check failed: %w", err)
	}
	if !acquired {
		return nil, ErrAlreadyRunning
	}
	defer func() {
		if relErr := r.opts.Lock.Release(context.WithoutCancel(ctx)); relErr != nil {
			fmt.Printf("Warning: failed to release generation lock: %v\n", relErr)
		}
	}()

	r.state = types.PipelineRunning
	start := r.now()
	r.estimator = newProgressEstimator(len(Stages), r.opts.TotalBudget, r.now)

	stopTicker := r.startProgressTicker(ctx)
	defer stopTicker()

	result, err := r.runStages(ctx)
	if err != nil {
		// Only cancellation or unrecoverable orchestration failures
		// reach here; stage-level errors already degraded to fallback.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			r.state = types.PipelineCancelled
		}
		return nil, err
	}

	// Completion floor: never declare done before the configured
	// minimum wall-clock duration, no matter how fast the calls were.
	if remaining := r.opts.MinDuration - r.now().Sub(start); remaining > 0 {
		r.verbosef("Holding completion for %s to honor the duration floor\n", remaining.Round(time.Millisecond))
		if err := r.sleep(ctx, remaining); err != nil {
			r.state = types.PipelineCancelled
			return nil, err
		}
	}

	r.opts.Cache.Put(key, *result)
	if r.opts.Views != nil {
		if err := r.opts.Views.MarkViewed(ctx, key); err != nil {
			fmt.Printf("Warning: failed to mark report viewed: %v\n", err)
		}
	}

	r.state = types.PipelineCompleted
	r.estimator.finish()
	r.emitProgress(len(Stages)-1, 100)
	if r.opts.OnComplete != nil {
		r.opts.OnComplete(result)
	}
	return result, nil
}

// runStages executes the fixed stage sequence and assembles the result.
func (r *runner) runStages(ctx context.Context) (*types.GenerationResult, error) {
	answers := r.opts.Answers

	// Stage 1: profile-analysis (pure compute, cannot fail).
	r.beginStage(0)
	traits := scoring.ComputeTraitScores(answers)
	r.completeStage(0)

	// Stage 2: model-matching.
	r.beginStage(1)
	ranked := ranking.RankModels(answers)
	if len(ranked.Models) == 0 {
		return nil, fmt.Errorf("no business models configured; scores unavailable")
	}
	top := ranked.TopMatches(1)[0]
	worst := ranked.BottomMatches(bottomModelCount)[0]
	r.completeStage(1)

	result := &types.GenerationResult{TopModel: top}

	// Stage 3: insight-generation.
	r.beginStage(2)
	insights, err := r.generateInsights(ctx, traits, top)
	if err != nil {
		return nil, err
	}
	result.Insights = insights
	r.completeStage(2)

	// Stage 4: characteristic-generation (plus the overview that heads
	// the analysis block).
	r.beginStage(3)
	overview, characteristics, err := r.generateAnalysisCore(ctx, traits, top)
	if err != nil {
		return nil, err
	}
	result.Analysis.Overview = overview
	result.Analysis.Characteristics = characteristics
	r.completeStage(3)

	// Stage 5: fit-avoid-generation. The two sub-calls are independent
	// and run concurrently; both must land (or fall back) before the
	// stage completes.
	r.beginStage(4)
	fit, avoid, err := r.generateFitAvoid(ctx, traits, top, worst)
	if err != nil {
		return nil, err
	}
	result.Analysis.FitDescription = fit
	result.Analysis.AvoidDescription = avoid
	r.completeStage(4)

	// Stage 6: finalization happens in run(): floor wait, cache write,
	// view ledger.
	r.beginStage(5)
	r.completeStage(5)

	return result, nil
}

// generateInsights runs the insight call with its timeout and falls
// back to threshold content on any failure.
func (r *runner) generateInsights(ctx context.Context, traits types.TraitScores, top types.ModelScore) (types.NarrativeInsights, error) {
	callCtx, cancel := context.WithTimeout(ctx, r.opts.StageTimeout)
	defer cancel()

	insights, err := r.opts.Generator.Insights(callCtx, r.opts.Answers, traits, top)
	if err != nil {
		if ctx.Err() != nil {
			return types.NarrativeInsights{}, ctx.Err()
		}
		fmt.Printf("Warning: insight generation degraded to fallback: %v\n", err)
		r.recovered.Store(true)
		return narrative.FallbackInsights(r.opts.Answers, top), nil
	}
	return insights, nil
}

func (r *runner) generateAnalysisCore(ctx context.Context, traits types.TraitScores, top types.ModelScore) (string, []types.Characteristic, error) {
	callCtx, cancel := context.WithTimeout(ctx, r.opts.StageTimeout)
	defer cancel()

	overview, err := r.opts.Generator.Overview(callCtx, r.opts.Answers, traits, top)
	if err != nil {
		if ctx.Err() != nil {
			return "", nil, ctx.Err()
		}
		fmt.Printf("Warning: overview generation degraded to fallback: %v\n", err)
		r.recovered.Store(true)
		overview = narrative.FallbackOverview(r.opts.Answers, traits, top)
	}

	charCtx, cancelChars := context.WithTimeout(ctx, r.opts.StageTimeout)
	defer cancelChars()

	characteristics, err := r.opts.Generator.Characteristics(charCtx, traits)
	if err != nil {
		if ctx.Err() != nil {
			return "", nil, ctx.Err()
		}
		fmt.Printf("Warning: characteristic generation degraded to fallback: %v\n", err)
		r.recovered.Store(true)
		characteristics = narrative.FallbackCharacteristics(traits)
	}

	return overview, characteristics, nil
}

// generateFitAvoid runs the fit and avoid calls concurrently. Each call
// falls back independently, so the goroutines never report errors to
// the group; the group exists to join them and to propagate
// cancellation.
func (r *runner) generateFitAvoid(ctx context.Context, traits types.TraitScores, top, worst types.ModelScore) (string, string, error) {
	var fit, avoid string

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		callCtx, cancel := context.WithTimeout(gCtx, r.opts.StageTimeout)
		defer cancel()
		text, err := r.opts.Generator.FitDescription(callCtx, r.opts.Answers, traits, top)
		if err != nil {
			if gCtx.Err() != nil {
				return gCtx.Err()
			}
			fmt.Printf("Warning: fit description degraded to fallback: %v\n", err)
			r.recovered.Store(true)
			text = narrative.FallbackFitDescription(r.opts.Answers, top)
		}
		fit = text
		return nil
	})

	g.Go(func() error {
		callCtx, cancel := context.WithTimeout(gCtx, r.opts.StageTimeout)
		defer cancel()
		text, err := r.opts.Generator.AvoidDescription(callCtx, r.opts.Answers, traits, worst)
		if err != nil {
			if gCtx.Err() != nil {
				return gCtx.Err()
			}
			fmt.Printf("Warning: avoid description degraded to fallback: %v\n", err)
			r.recovered.Store(true)
			text = narrative.FallbackAvoidDescription(r.opts.Answers, worst)
		}
		avoid = text
		return nil
	})

	if err := g.Wait(); err != nil {
		return "", "", err
	}
	return fit, avoid, nil
}

func (r *runner) beginStage(index int) {
	r.stageIndex.Store(int32(index))
	r.estimator.stageStarted()
	r.verbosef("Stage %d/%d: %s...\n", index+1, len(Stages), Stages[index].Name)
	r.emitProgress(index, r.estimator.percent())
}

func (r *runner) completeStage(index int) {
	r.estimator.stageCompleted()
	r.emitProgress(index, r.estimator.percent())
}

// startProgressTicker emits progress on a fixed interval so the
// displayed value keeps moving even while a slow stage runs.
func (r *runner) startProgressTicker(ctx context.Context) (stop func()) {
	if r.opts.OnProgress == nil {
		return func() {}
	}

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(r.opts.ProgressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.emitProgress(int(r.stageIndex.Load()), r.estimator.percent())
			case <-done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}

func (r *runner) emitProgress(stageIndex, percent int) {
	if r.opts.OnProgress == nil {
		return
	}
	name := ""
	if stageIndex >= 0 && stageIndex < len(Stages) {
		name = Stages[stageIndex].Name
	}
	r.opts.OnProgress(types.ProgressEvent{
		StageIndex: stageIndex,
		StageName:  name,
		Percent:    percent,
	})
}

func (r *runner) verbosef(format string, args ...any) {
	if r.opts.Verbose {
		fmt.Printf(format, args...)
	}
}
