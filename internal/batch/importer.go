// Package batch creates many job postings at once. Postings are keyed by
// department on a shard executor, so each department's postings are created
// in file order while different departments proceed in parallel.
package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Pavan19102006/Jagadeesh-project/client"
	"github.com/Pavan19102006/Jagadeesh-project/internal/shardqueue"
)

// ErrNotAttempted marks a posting the importer never got to run.
var ErrNotAttempted = errors.New("posting not attempted")

// Creator creates one posting. *client.Client satisfies it.
type Creator interface {
	CreateJob(ctx context.Context, req client.JobPostingRequest) (*client.JobPosting, error)
}

// Result is the outcome for one posting of the input.
type Result struct {
	Index         int    `json:"index"`
	CorrelationID string `json:"correlationId"`
	Title         string `json:"title"`
	Department    string `json:"department"`
	JobID         int64  `json:"jobId,omitempty"`
	Attempts      int    `json:"attempts"`
	Err           error  `json:"-"`
	Error         string `json:"error,omitempty"`
}

// Report summarizes an import.
type Report struct {
	Results []Result `json:"results"`
	Created int      `json:"created"`
	Failed  int      `json:"failed"`
}

// Importer submits postings through a shardqueue.ShardExecutor.
type Importer struct {
	creator Creator
	cfg     shardqueue.Config
}

// NewImporter returns an Importer using cfg for its executor. Retries of
// recoverable failures follow cfg.MaxAttempts and cfg.BaseBackoff.
func NewImporter(creator Creator, cfg shardqueue.Config) *Importer {
	return &Importer{creator: creator, cfg: cfg}
}

// Import creates every posting and returns one Result per input, in input
// order. It returns an error only when ctx ends before all postings ran;
// the Report is complete either way.
func (im *Importer) Import(ctx context.Context, postings []client.JobPostingRequest) (*Report, error) {
	results := make([]Result, len(postings))
	ran := make([]bool, len(postings))
	var mu sync.Mutex

	exec := shardqueue.NewShardExecutor(im.cfg)

	var keys []string
	seen := map[string]bool{}
	blocked := map[string]bool{}

	for i, p := range postings {
		results[i] = Result{
			Index:         i,
			CorrelationID: uuid.NewString(),
			Title:         p.Title,
			Department:    p.Department,
		}
		corr := results[i].CorrelationID

		if blocked[p.Department] {
			mu.Lock()
			ran[i] = true
			results[i].Err = ErrNotAttempted
			mu.Unlock()
			continue
		}

		job := shardqueue.JobFunc(func(ctx context.Context) error {
			created, err := im.creator.CreateJob(ctx, p)

			mu.Lock()
			ran[i] = true
			results[i].Attempts++
			results[i].Err = err
			if err == nil {
				results[i].JobID = created.ID
			}
			mu.Unlock()

			if err != nil {
				log.Warn().Err(err).Str("correlation_id", corr).Int("index", i).Str("department", p.Department).Msg("create posting failed")
				return err
			}
			log.Info().Str("correlation_id", corr).Int("index", i).Int64("job_id", created.ID).Str("title", p.Title).Msg("posting created")
			return nil
		})

		if err := submitWaiting(ctx, exec, p.Department, job); err != nil {
			// Later postings of this department would run out of order.
			blocked[p.Department] = true
			mu.Lock()
			ran[i] = true
			results[i].Err = fmt.Errorf("enqueue: %w", err)
			mu.Unlock()
			continue
		}
		if !seen[p.Department] {
			seen[p.Department] = true
			keys = append(keys, p.Department)
		}
	}

	var waitErr error
	for _, k := range keys {
		if err := barrierWaiting(ctx, exec, k); err != nil {
			waitErr = err
			break
		}
	}
	if waitErr == nil {
		waitErr = ctx.Err()
	}
	// Stop drains whatever is still queued before results are read.
	exec.Stop()

	mu.Lock()
	defer mu.Unlock()

	report := &Report{Results: results}
	for i := range results {
		if !ran[i] {
			results[i].Err = ErrNotAttempted
			if waitErr != nil {
				results[i].Err = waitErr
			}
		}
		if results[i].Err != nil {
			results[i].Error = results[i].Err.Error()
			report.Failed++
			continue
		}
		report.Created++
	}
	return report, waitErr
}

// submitWaiting submits job for key, waiting out a full queue until ctx
// ends.
func submitWaiting(ctx context.Context, exec *shardqueue.ShardExecutor, key string, job shardqueue.Job) error {
	for {
		err := exec.Submit(ctx, key, job)
		if !errors.Is(err, shardqueue.ErrQueueFull) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		log.Debug().Str("department", key).Msg("department queue full, waiting")
	}
}

// barrierWaiting is Barrier with the same full-queue handling as
// submitWaiting.
func barrierWaiting(ctx context.Context, exec *shardqueue.ShardExecutor, key string) error {
	for {
		err := exec.Barrier(ctx, key)
		if !errors.Is(err, shardqueue.ErrQueueFull) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
	}
}
