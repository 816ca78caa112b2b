package funcz

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Observability constants for Pipeline.
const (
	// Metrics.
	PipelineProcessedTotal  = metricz.Key("pipeline.processed.total")
	PipelineSuccessesTotal  = metricz.Key("pipeline.successes.total")
	PipelineFailuresTotal   = metricz.Key("pipeline.failures.total")
	PipelineStagesCompleted = metricz.Key("pipeline.stages.completed")
	PipelineStagesTotal     = metricz.Key("pipeline.stages.total")
	PipelineDurationMs      = metricz.Key("pipeline.duration.ms")

	// Spans.
	PipelineProcessSpan = tracez.Key("pipeline.process")
	PipelineStageSpan   = tracez.Key("pipeline.stage")

	// Tags.
	PipelineTagStageCount  = tracez.Tag("pipeline.stage_count")
	PipelineTagStageNumber = tracez.Tag("pipeline.stage_number")
	PipelineTagStageName   = tracez.Tag("pipeline.stage_name")
	PipelineTagSuccess     = tracez.Tag("pipeline.success")
	PipelineTagError       = tracez.Tag("pipeline.error")

	// Hook event keys.
	PipelineEventStageComplete = hookz.Key("pipeline.stage_complete")
	PipelineEventAllComplete   = hookz.Key("pipeline.all_complete")
)

// Pipeline modification errors.
var (
	ErrEmptyPipeline = errors.New("pipeline is empty")
	ErrStageNotFound = errors.New("stage not found")
)

// Stage is one named step of a Pipeline.
type Stage[T any] interface {
	Process(context.Context, T) (T, error)
	Name() Name
}

// PipelineEvent is emitted via hookz when a stage completes and when the
// whole pipeline has succeeded.
type PipelineEvent struct {
	Timestamp       time.Time     // When the event occurred
	Error           error         // Error if the stage failed
	Name            Name          // Pipeline name
	StageName       Name          // Name of the stage
	StageNumber     int           // Current stage number (1-based)
	TotalStages     int           // Total number of stages
	CompletedStages int           // Number of stages completed (for all_complete)
	Duration        time.Duration // How long this stage took
	TotalDuration   time.Duration // Total time for all stages (for all_complete)
	Success         bool          // Whether the stage succeeded
}

// Pipeline runs an ordered list of same-typed stages, feeding each the
// output of the previous one. It is the named, observable counterpart of
// Chain: stages can be inspected and rearranged at runtime, and every run
// is measured.
//
// Pipeline is safe for concurrent use. Each Process call works on a
// snapshot of the stages taken when it starts.
//
// # Observability
//
// Metrics:
//   - pipeline.processed.total: Counter of runs
//   - pipeline.successes.total: Counter of successful runs
//   - pipeline.failures.total: Counter of failed runs
//   - pipeline.stages.completed: Gauge of stages completed in the last run
//   - pipeline.stages.total: Gauge of stages in the last run
//   - pipeline.duration.ms: Gauge of the last run's duration
//
// Traces:
//   - pipeline.process: Parent span for a run
//   - pipeline.stage: Child span for each stage
//
// Events (via hooks):
//   - pipeline.stage_complete: Fired as each stage completes
//   - pipeline.all_complete: Fired when all stages succeed
type Pipeline[T any] struct {
	clock   clockz.Clock
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[PipelineEvent]
	name    Name
	stages  []Stage[T]
	mu      sync.RWMutex
}

// NewPipeline creates a pipeline with optional initial stages.
//
//	p := funcz.NewPipeline("digits",
//	    funcz.Map("triple", func(xs []int) []int { return seq.Transform(triple, xs) }),
//	    funcz.Map("evens", func(xs []int) []int { return seq.DropIf(isOdd, xs) }),
//	)
func NewPipeline[T any](name Name, stages ...Stage[T]) *Pipeline[T] {
	metrics := metricz.New()
	metrics.Counter(PipelineProcessedTotal)
	metrics.Counter(PipelineSuccessesTotal)
	metrics.Counter(PipelineFailuresTotal)
	metrics.Gauge(PipelineStagesCompleted)
	metrics.Gauge(PipelineStagesTotal)
	metrics.Gauge(PipelineDurationMs)

	return &Pipeline[T]{
		name:    name,
		stages:  slices.Clone(stages),
		clock:   clockz.RealClock,
		metrics: metrics,
		tracer:  tracez.New(),
		hooks:   hookz.New[PipelineEvent](),
	}
}

// WithClock sets the clock used to time stages.
func (p *Pipeline[T]) WithClock(clock clockz.Clock) *Pipeline[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.clock = clock
	return p
}

// Register appends stages.
func (p *Pipeline[T]) Register(stages ...Stage[T]) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stages = append(p.stages, stages...)
}

// Process runs every stage on value in order. The context is checked before
// each stage. The first failing stage stops the run and its error is
// returned inside a *PipelineError carrying the stage path and the original
// input. Panics raised by a stage are not recovered.
func (p *Pipeline[T]) Process(ctx context.Context, value T) (result T, err error) {
	p.mu.RLock()
	stages := slices.Clone(p.stages)
	clock := p.clock
	p.mu.RUnlock()

	if ctx == nil {
		ctx = context.Background()
	}

	p.metrics.Counter(PipelineProcessedTotal).Inc()
	p.metrics.Gauge(PipelineStagesTotal).Set(float64(len(stages)))
	start := clock.Now()

	ctx, span := p.tracer.StartSpan(ctx, PipelineProcessSpan)
	span.SetTag(PipelineTagStageCount, fmt.Sprintf("%d", len(stages)))
	defer func() {
		p.metrics.Gauge(PipelineDurationMs).Set(float64(clock.Since(start).Milliseconds()))
		if err == nil {
			span.SetTag(PipelineTagSuccess, "true")
			p.metrics.Counter(PipelineSuccessesTotal).Inc()
		} else {
			span.SetTag(PipelineTagSuccess, "false")
			span.SetTag(PipelineTagError, err.Error())
			p.metrics.Counter(PipelineFailuresTotal).Inc()
		}
		span.Finish()
	}()

	result = value
	completed := 0
	for i, stage := range stages {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, &PipelineError[T]{
				Err:       ctxErr,
				InputData: value,
				Path:      []Name{p.name},
				Stage:     i,
				Duration:  clock.Since(start),
				Timeout:   errors.Is(ctxErr, context.DeadlineExceeded),
				Canceled:  errors.Is(ctxErr, context.Canceled),
				Timestamp: clock.Now(),
			}
		}

		stageCtx, stageSpan := p.tracer.StartSpan(ctx, PipelineStageSpan)
		stageSpan.SetTag(PipelineTagStageNumber, fmt.Sprintf("%d", i+1))
		stageSpan.SetTag(PipelineTagStageName, stage.Name())

		stageStart := clock.Now()
		result, err = stage.Process(stageCtx, result)
		stageDuration := clock.Since(stageStart)
		stageSpan.Finish()

		_ = p.hooks.Emit(ctx, PipelineEventStageComplete, PipelineEvent{ //nolint:errcheck
			Name:        p.name,
			StageName:   stage.Name(),
			StageNumber: i + 1,
			TotalStages: len(stages),
			Success:     err == nil,
			Error:       err,
			Duration:    stageDuration,
			Timestamp:   clock.Now(),
		})

		if err != nil {
			var pipeErr *PipelineError[T]
			if errors.As(err, &pipeErr) {
				pipeErr.Path = append([]Name{p.name}, pipeErr.Path...)
				return result, pipeErr
			}
			return result, &PipelineError[T]{
				Timestamp: clock.Now(),
				InputData: value,
				Err:       err,
				Path:      []Name{p.name, stage.Name()},
				Stage:     i,
				Duration:  clock.Since(start),
				Timeout:   errors.Is(err, context.DeadlineExceeded),
				Canceled:  errors.Is(err, context.Canceled),
			}
		}
		completed++
		p.metrics.Gauge(PipelineStagesCompleted).Set(float64(completed))
	}

	_ = p.hooks.Emit(ctx, PipelineEventAllComplete, PipelineEvent{ //nolint:errcheck
		Name:            p.name,
		TotalStages:     len(stages),
		CompletedStages: completed,
		TotalDuration:   clock.Since(start),
		Success:         true,
		Timestamp:       clock.Now(),
	})

	return result, nil
}

// Len returns the number of stages.
func (p *Pipeline[T]) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.stages)
}

// Clear removes all stages.
func (p *Pipeline[T]) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stages = p.stages[:0]
}

// Unshift adds stages to the front (runs first).
func (p *Pipeline[T]) Unshift(stages ...Stage[T]) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stages = slices.Insert(p.stages, 0, stages...)
}

// Push adds stages to the back (runs last).
func (p *Pipeline[T]) Push(stages ...Stage[T]) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stages = append(p.stages, stages...)
}

// Shift removes and returns the first stage.
func (p *Pipeline[T]) Shift() (Stage[T], error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.stages) == 0 {
		return nil, ErrEmptyPipeline
	}
	stage := p.stages[0]
	p.stages = p.stages[1:]
	return stage, nil
}

// Pop removes and returns the last stage.
func (p *Pipeline[T]) Pop() (Stage[T], error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.stages) == 0 {
		return nil, ErrEmptyPipeline
	}
	last := len(p.stages) - 1
	stage := p.stages[last]
	p.stages = p.stages[:last]
	return stage, nil
}

// Names returns the stage names in order.
func (p *Pipeline[T]) Names() []Name {
	p.mu.RLock()
	defer p.mu.RUnlock()
	names := make([]Name, len(p.stages))
	for i, stage := range p.stages {
		names[i] = stage.Name()
	}
	return names
}

func (p *Pipeline[T]) find(name Name) (int, error) {
	for i, stage := range p.stages {
		if stage.Name() == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrStageNotFound, name)
}

// Remove removes the first stage with the given name.
func (p *Pipeline[T]) Remove(name Name) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	i, err := p.find(name)
	if err != nil {
		return err
	}
	p.stages = slices.Delete(p.stages, i, i+1)
	return nil
}

// Replace swaps the first stage with the given name for stage.
func (p *Pipeline[T]) Replace(name Name, stage Stage[T]) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	i, err := p.find(name)
	if err != nil {
		return err
	}
	p.stages[i] = stage
	return nil
}

// After inserts stages after the first stage with the given name.
func (p *Pipeline[T]) After(name Name, stages ...Stage[T]) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	i, err := p.find(name)
	if err != nil {
		return err
	}
	p.stages = slices.Insert(p.stages, i+1, stages...)
	return nil
}

// Before inserts stages before the first stage with the given name.
func (p *Pipeline[T]) Before(name Name, stages ...Stage[T]) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	i, err := p.find(name)
	if err != nil {
		return err
	}
	p.stages = slices.Insert(p.stages, i, stages...)
	return nil
}

// Name returns the pipeline name. A Pipeline is itself a Stage and can be
// nested in another pipeline.
func (p *Pipeline[T]) Name() Name {
	return p.name
}

// Metrics returns the metrics registry.
func (p *Pipeline[T]) Metrics() *metricz.Registry {
	return p.metrics
}

// Tracer returns the tracer.
func (p *Pipeline[T]) Tracer() *tracez.Tracer {
	return p.tracer
}

// Close shuts down the tracer and hooks.
func (p *Pipeline[T]) Close() error {
	if p.tracer != nil {
		p.tracer.Close()
	}
	p.hooks.Close()
	return nil
}

// OnStageComplete registers a handler called asynchronously each time a
// stage finishes, whether it succeeded or not.
func (p *Pipeline[T]) OnStageComplete(handler func(context.Context, PipelineEvent) error) error {
	_, err := p.hooks.Hook(PipelineEventStageComplete, handler)
	return err
}

// OnAllComplete registers a handler called asynchronously after a run in
// which every stage succeeded.
func (p *Pipeline[T]) OnAllComplete(handler func(context.Context, PipelineEvent) error) error {
	_, err := p.hooks.Hook(PipelineEventAllComplete, handler)
	return err
}
