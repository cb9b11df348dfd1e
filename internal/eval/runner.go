package eval

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/peircelogic/arggen/internal/export"
	"github.com/peircelogic/arggen/internal/logging"
)

// Result is the outcome of evaluating one paired record.
type Result struct {
	ID       string        `json:"id"`
	Rule     string        `json:"rule"`
	Expected string        `json:"expected"`
	Answer   Answer        `json:"answer"`
	Correct  bool          `json:"correct"`
	Response string        `json:"response,omitempty"`
	Err      string        `json:"error,omitempty"`
	Latency  time.Duration `json:"latency_ns"`
}

// RunnerConfig adjusts an evaluation run.
type RunnerConfig struct {
	// Workers bounds concurrent model calls.
	Workers int

	// Style selects the prompt wording.
	Style PromptStyle

	// Retries is the per-record retry budget on transport errors.
	Retries int

	// Progress reports completed records; may be nil.
	Progress func(done, total int)
}

// Runner drives paired records through a model client with a bounded
// worker pool.
type Runner struct {
	client Client
	cfg    RunnerConfig
	logger zerolog.Logger
}

// NewRunner wires a runner for one client.
func NewRunner(client Client, cfg RunnerConfig) *Runner {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.Style == "" {
		cfg.Style = PromptStandard
	}
	return &Runner{
		client: client,
		cfg:    cfg,
		logger: logging.Component("eval"),
	}
}

// Run evaluates every paired record and returns results in input order.
// A canceled context stops dispatching; records already in flight
// finish.
func (r *Runner) Run(ctx context.Context, records []export.PairRecord) ([]Result, error) {
	return r.run(ctx, len(records),
		func(i int) Result { return r.evaluatePair(ctx, records[i]) },
		func(i int, err error) Result {
			return Result{
				ID:       records[i].ID,
				Rule:     records[i].Rule,
				Expected: records[i].Answer,
				Answer:   AnswerUnclear,
				Err:      err.Error(),
			}
		})
}

// RunArguments evaluates individual records: the model judges each
// argument valid or invalid on its own.
func (r *Runner) RunArguments(ctx context.Context, records []export.Record) ([]Result, error) {
	return r.run(ctx, len(records),
		func(i int) Result { return r.evaluateArgument(ctx, records[i]) },
		func(i int, err error) Result {
			return Result{
				ID:       records[i].ID,
				Rule:     records[i].Rule,
				Expected: strings.ToUpper(records[i].Label),
				Answer:   AnswerUnclear,
				Err:      err.Error(),
			}
		})
}

func (r *Runner) run(ctx context.Context, total int, evaluate func(int) Result, skipped func(int, error) Result) ([]Result, error) {
	jobs := make(chan int)
	results := make([]Result, total)

	var wg sync.WaitGroup
	var mu sync.Mutex
	done := 0

	for i := 0; i < r.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = evaluate(idx)

				mu.Lock()
				done++
				completed := done
				mu.Unlock()
				if r.cfg.Progress != nil {
					r.cfg.Progress(completed, total)
				}
			}
		}()
	}

	var dispatchErr error
dispatch:
	for i := 0; i < total; i++ {
		select {
		case <-ctx.Done():
			dispatchErr = ctx.Err()
			// Undispatched records surface as errors, not zero rows.
			for j := i; j < total; j++ {
				results[j] = skipped(j, ctx.Err())
			}
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return results, dispatchErr
}

func (r *Runner) evaluatePair(ctx context.Context, rec export.PairRecord) Result {
	result := Result{
		ID:       rec.ID,
		Rule:     rec.Rule,
		Expected: rec.Answer,
		Answer:   AnswerUnclear,
	}

	prompt, err := BuildPrompt(r.cfg.Style, rec)
	if err != nil {
		result.Err = err.Error()
		return result
	}

	response, latency, err := r.complete(ctx, rec.ID, prompt)
	result.Latency = latency
	if err != nil {
		result.Err = err.Error()
		return result
	}

	result.Response = response
	result.Answer = ParseAnswer(response)
	result.Correct = string(result.Answer) == rec.Answer
	return result
}

func (r *Runner) evaluateArgument(ctx context.Context, rec export.Record) Result {
	expected := strings.ToUpper(rec.Label)
	result := Result{
		ID:       rec.ID,
		Rule:     rec.Rule,
		Expected: expected,
		Answer:   AnswerUnclear,
	}

	prompt, err := BuildArgumentPrompt(r.cfg.Style, rec)
	if err != nil {
		result.Err = err.Error()
		return result
	}

	response, latency, err := r.complete(ctx, rec.ID, prompt)
	result.Latency = latency
	if err != nil {
		result.Err = err.Error()
		return result
	}

	result.Response = response
	result.Answer = ParseVerdict(response)
	result.Correct = string(result.Answer) == expected
	return result
}

func (r *Runner) complete(ctx context.Context, id, prompt string) (string, time.Duration, error) {
	start := time.Now()
	response, err := completeWithRetry(ctx, r.client, prompt, r.cfg.Retries)
	latency := time.Since(start)
	if err != nil {
		r.logger.Warn().Err(err).Str("id", id).Msg("model call failed")
	}
	return response, latency, err
}
