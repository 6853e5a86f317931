package domain

import (
	"TxVisualizer/internal/syncutil"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// BatchRun holds a fixed set of requests and the outcomes collected for them
// in arrival order. The collection never grows past len(Requests).
type BatchRun struct {
	Id       string
	Scenario string
	Requests []TransferRequest

	mu       syncutil.Mutex
	outcomes []TransferOutcome
}

func NewBatchRun(scenario string, requests []TransferRequest) *BatchRun {
	b := &BatchRun{
		Id:       uuid.NewString(),
		Scenario: scenario,
		Requests: make([]TransferRequest, len(requests)),
		outcomes: make([]TransferOutcome, 0, len(requests)),
	}
	for i, req := range requests {
		req.Scenario = scenario
		req.BatchId = b.Id
		b.Requests[i] = req
	}
	return b
}

func (b *BatchRun) Size() int {
	return len(b.Requests)
}

func (b *BatchRun) Append(outcome TransferOutcome) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.outcomes) >= len(b.Requests) {
		return errors.Wrapf(ErrBatchFull, "batch %s already has %d outcomes", b.Id, len(b.outcomes))
	}
	b.outcomes = append(b.outcomes, outcome)
	return nil
}

func (b *BatchRun) Outcomes() []TransferOutcome {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]TransferOutcome, len(b.outcomes))
	copy(out, b.outcomes)
	return out
}

func (b *BatchRun) Complete() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.outcomes) == len(b.Requests)
}

// Verdict is only defined once every request has reported.
func (b *BatchRun) Verdict() (Verdict, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.outcomes) != len(b.Requests) {
		return Verdict{}, errors.Wrapf(ErrBatchIncomplete, "batch %s has %d of %d outcomes", b.Id, len(b.outcomes), len(b.Requests))
	}
	return VerdictFrom(b.Id, b.outcomes), nil
}
