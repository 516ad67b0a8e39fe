package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/docproof/internal/core/domain"
	"github.com/custodia-labs/docproof/internal/core/ports/driven"
	"github.com/custodia-labs/docproof/internal/core/ports/driving"
	"github.com/custodia-labs/docproof/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driving.ProofreadService = (*Pipeline)(nil)

// Pipeline runs link parsing, document fetching and proofreading in order.
// It holds no per-run state, so one Pipeline can serve concurrent callers.
type Pipeline struct {
	fetcher     *DocumentFetcher
	proofreader *Proofreader
	metrics     driven.PipelineMetrics
	now         func() time.Time
}

// NewPipeline creates a pipeline. metrics may be nil.
func NewPipeline(fetcher *DocumentFetcher, proofreader *Proofreader, metrics driven.PipelineMetrics) *Pipeline {
	return &Pipeline{
		fetcher:     fetcher,
		proofreader: proofreader,
		metrics:     metrics,
		now:         time.Now,
	}
}

// ModelName returns the language model used for proofreading.
func (p *Pipeline) ModelName() string {
	return p.proofreader.ModelName()
}

// Run executes the pipeline for one link. A blank link leaves the run Idle
// and touches no external service. The first failing stage moves the run to
// Failed; text produced by earlier stages stays on the run.
func (p *Pipeline) Run(ctx context.Context, link string, observer driving.RunObserver) *domain.Run {
	run := &domain.Run{
		ID:    uuid.NewString(),
		Link:  link,
		State: domain.RunIdle,
		Model: p.ModelName(),
	}
	if strings.TrimSpace(link) == "" {
		return run
	}

	log := logger.With("run", run.ID)
	run.StartedAt = p.now()
	r := &runner{pipeline: p, run: run, observer: observer, log: log}

	r.advance(domain.RunParsing)
	ref, ok := ParseLink(link)
	r.observeStage(domain.RunParsing, boolErr(ok))
	if !ok {
		return r.fail(domain.ErrInvalidLink)
	}
	run.Reference = ref
	log.Debug("document %s", ref)

	r.advance(domain.RunFetching)
	start := p.now()
	text, err := p.fetcher.Fetch(ctx, ref)
	r.observeStageSince(domain.RunFetching, start, err)
	if err != nil {
		return r.fail(err)
	}
	run.Original = text
	log.Debug("fetched %d characters", len(text))

	r.advance(domain.RunProofreading)
	start = p.now()
	revised, err := p.proofreader.Proofread(ctx, text)
	r.observeStageSince(domain.RunProofreading, start, err)
	if err != nil {
		return r.fail(err)
	}
	run.Revised = revised

	r.advance(domain.RunDone)
	return r.finish()
}

// runner carries the bookkeeping for a single Run call.
type runner struct {
	pipeline *Pipeline
	run      *domain.Run
	observer driving.RunObserver
	log      logger.Scoped
}

func (r *runner) advance(next domain.RunState) {
	if !r.run.State.CanTransition(next) {
		panic(fmt.Sprintf("pipeline: illegal transition %s -> %s", r.run.State, next))
	}
	r.log.Debug("%s -> %s", r.run.State, next)
	r.run.State = next
	if next.IsTerminal() {
		r.run.FinishedAt = r.pipeline.now()
	}
	r.notify()
}

func (r *runner) fail(err error) *domain.Run {
	r.run.Err = err
	r.log.Warn("failed: %v", err)
	r.advance(domain.RunFailed)
	return r.finish()
}

func (r *runner) finish() *domain.Run {
	if r.pipeline.metrics != nil {
		r.pipeline.metrics.ObserveRun(r.run)
	}
	r.log.Info("%s in %s", r.run.State, r.run.Duration())
	return r.run
}

func (r *runner) notify() {
	if r.observer != nil {
		r.observer(*r.run)
	}
}

func (r *runner) observeStage(stage domain.RunState, err error) {
	if r.pipeline.metrics != nil {
		r.pipeline.metrics.ObserveStage(stage, 0, err)
	}
}

func (r *runner) observeStageSince(stage domain.RunState, start time.Time, err error) {
	if r.pipeline.metrics != nil {
		r.pipeline.metrics.ObserveStage(stage, r.pipeline.now().Sub(start), err)
	}
}

func boolErr(ok bool) error {
	if ok {
		return nil
	}
	return domain.ErrInvalidLink
}
