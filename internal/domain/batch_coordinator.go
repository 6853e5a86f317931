package domain

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Transferer interface {
	Transfer(ctx context.Context, req TransferRequest) TransferOutcome
}

type BatchResult struct {
	BatchId  string
	Scenario string
	Outcomes []TransferOutcome
	Verdict  Verdict
}

type BatchCoordinator struct {
	engine    Transferer
	publisher EventPublisher
	logger    *zap.Logger
}

func NewBatchCoordinator(engine *TransferEngine, publisher EventPublisher, logger *zap.Logger) *BatchCoordinator {
	return newBatchCoordinator(engine, publisher, logger)
}

func newBatchCoordinator(engine Transferer, publisher EventPublisher, logger *zap.Logger) *BatchCoordinator {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchCoordinator{engine: engine, publisher: publisher, logger: logger}
}

// Run starts every request at once and returns after all of them reported.
// The verdict is computed and published exactly once per call.
func (c *BatchCoordinator) Run(ctx context.Context, batch *BatchRun) (BatchResult, error) {
	results := make(chan TransferOutcome, batch.Size())
	var transfers sync.WaitGroup
	for _, req := range batch.Requests {
		req := req
		transfers.Add(1)
		go func() {
			defer transfers.Done()
			results <- c.engine.Transfer(ctx, req)
		}()
	}
	go func() {
		transfers.Wait()
		close(results)
	}()

	// The collector is the only writer to the batch. Its first Append error is
	// returned by Wait once every outcome has been drained.
	var collector errgroup.Group
	collector.Go(func() error {
		var appendErr error
		for outcome := range results {
			if err := batch.Append(outcome); err != nil && appendErr == nil {
				appendErr = err
			}
		}
		return appendErr
	})
	if err := collector.Wait(); err != nil {
		return BatchResult{}, err
	}

	verdict, err := batch.Verdict()
	if err != nil {
		return BatchResult{}, err
	}
	event := Event{
		Kind:      EventVerdict,
		Scenario:  batch.Scenario,
		BatchId:   batch.Id,
		Timestamp: time.Now().UnixNano(),
		Verdict:   &verdict,
	}
	if err := c.publisher.Publish(event); err != nil {
		c.logger.Warn("publishing verdict", zap.String("batch_id", batch.Id), zap.Error(err))
	}
	c.logger.Info("batch finished",
		zap.String("scenario", batch.Scenario),
		zap.String("batch_id", batch.Id),
		zap.Bool("all_succeeded", verdict.AllSucceeded),
		zap.Int("failed", verdict.FailedCount))

	return BatchResult{
		BatchId:  batch.Id,
		Scenario: batch.Scenario,
		Outcomes: batch.Outcomes(),
		Verdict:  verdict,
	}, nil
}
