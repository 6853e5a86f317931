package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	DefaultLockTimeout       = 2 * time.Second
	DefaultSamePriorityDelay = 2 * time.Second
	DefaultHoldDelay         = time.Second
)

type EngineConfig struct {
	// LockTimeout bounds the wait for the second lock only.
	LockTimeout time.Duration
	// SamePriorityDelay is how long an equal-priority transfer appears to hang
	// before it is reported as deadlocked.
	SamePriorityDelay time.Duration
	// HoldDelay is spent holding the first lock before asking for the second.
	HoldDelay      time.Duration
	AllowOverdraft bool
}

func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		LockTimeout:       DefaultLockTimeout,
		SamePriorityDelay: DefaultSamePriorityDelay,
		HoldDelay:         DefaultHoldDelay,
		AllowOverdraft:    true,
	}
}

type TransferEngine struct {
	config    EngineConfig
	publisher EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewTransferEngine(config EngineConfig, publisher EventPublisher, logger *zap.Logger) *TransferEngine {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransferEngine{
		config:    config,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Transfer moves RawAmount from req.From to req.To and always returns exactly
// one terminal outcome. Failed transfers never change a balance.
//
// The caller's cancellation is ignored: the first lock is waited for without
// bound and only the second lock is time-bounded, by LockTimeout.
func (e *TransferEngine) Transfer(ctx context.Context, req TransferRequest) TransferOutcome {
	ctx = context.WithoutCancel(ctx)
	outcome := OutcomeFrom(req)
	from, to := req.From, req.To

	e.status(req, StatusUpdate{Phase: PhaseValidating, Tone: ToneNeutral,
		Text: fmt.Sprintf("Validating amount %q", req.RawAmount)})
	amount, err := ParseAmount(req.RawAmount)
	if err != nil {
		return e.fail(req, outcome, err, "Invalid amount!")
	}
	outcome.Amount = amount

	e.status(req, StatusUpdate{Phase: PhaseAttempting, Tone: ToneNeutral,
		Text: fmt.Sprintf("Attempting $%s transfer from %s to %s...", amount, from.Name(), to.Name())})

	first, second, err := OrderLocks(from, to)
	if err != nil {
		e.sleep(ctx, e.config.SamePriorityDelay)
		err = errors.Wrapf(ErrSamePriorityDeadlock, "%s and %s both have priority %d", from.Name(), to.Name(), from.Priority())
		return e.fail(req, outcome, err, fmt.Sprintf("Deadlock! Same priority: %s & %s", from.Name(), to.Name()))
	}

	start := e.now()
	if err := first.acquire(ctx); err != nil {
		err = errors.Wrapf(ErrTimeoutDeadlock, "acquiring %s: %v", first.Name(), err)
		return e.fail(req, outcome, err, fmt.Sprintf("Deadlock detected! %s → %s failed.", from.Name(), to.Name()))
	}
	e.status(req, StatusUpdate{Phase: PhaseWaitingOnLock, Tone: ToneNeutral,
		Text:   fmt.Sprintf("%s locked. Waiting for %s...", first.Name(), second.Name()),
		Locked: first.Name(), Waiting: second.Name()})
	e.sleep(ctx, e.config.HoldDelay)

	if err := e.acquireWithTimeout(ctx, second); err != nil {
		first.release()
		err = errors.Wrapf(ErrTimeoutDeadlock, "%s held, %s not acquired within %s", first.Name(), second.Name(), e.config.LockTimeout)
		return e.fail(req, outcome, err, fmt.Sprintf("Deadlock detected! %s → %s failed.", from.Name(), to.Name()))
	}
	err = e.move(from, to, second, amount)
	first.release()
	elapsed := e.now().Sub(start)

	if err != nil {
		return e.fail(req, outcome, err, fmt.Sprintf("Insufficient funds in %s for $%s", from.Name(), amount))
	}

	outcome.MarkAsSuccessful(elapsed)
	e.status(req, StatusUpdate{Phase: PhaseSucceeded, Tone: ToneSuccess,
		Text: fmt.Sprintf("$%s transferred %s → %s", amount, from.Name(), to.Name())})
	e.publish(req, Event{Kind: EventLink, Link: &TransferLink{From: from.Name(), To: to.Name(), Amount: amount}})
	e.publish(req, Event{Kind: EventDuration, Duration: &DurationSample{Duration: elapsed}})
	e.logger.Debug("transfer committed",
		zap.String("transfer_id", req.Id),
		zap.String("from", from.Name()),
		zap.String("to", to.Name()),
		zap.Stringer("amount", amount),
		zap.Duration("elapsed", elapsed))
	return outcome
}

// move runs the critical section. The caller holds the first lock; second is
// held here and released on every path.
func (e *TransferEngine) move(from, to, second *Account, amount decimal.Decimal) error {
	defer second.release()
	if !e.config.AllowOverdraft && !from.CanCover(amount) {
		return errors.Wrapf(ErrInsufficientFunds, "%s has %s, needs %s", from.Name(), from.Balance(), amount)
	}
	from.Withdraw(amount)
	to.Deposit(amount)
	return nil
}

func (e *TransferEngine) acquireWithTimeout(ctx context.Context, a *Account) error {
	if e.config.LockTimeout <= 0 {
		if a.tryAcquire() {
			return nil
		}
		return context.DeadlineExceeded
	}
	ctx, cancel := context.WithTimeout(ctx, e.config.LockTimeout)
	defer cancel()
	return a.acquire(ctx)
}

func (e *TransferEngine) sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

func (e *TransferEngine) fail(req TransferRequest, outcome TransferOutcome, err error, text string) TransferOutcome {
	outcome.MarkAsFailed(err)
	e.status(req, StatusUpdate{Phase: PhaseFailed, Tone: ToneError, Text: text, Reason: outcome.Reason})
	e.logger.Info("transfer failed",
		zap.String("transfer_id", req.Id),
		zap.String("reason", string(outcome.Reason)),
		zap.Error(err))
	return outcome
}

func (e *TransferEngine) status(req TransferRequest, update StatusUpdate) {
	e.publish(req, Event{Kind: EventStatus, Status: &update})
}

func (e *TransferEngine) publish(req TransferRequest, event Event) {
	event.Scenario = req.Scenario
	event.BatchId = req.BatchId
	event.TransferId = req.Id
	event.Timestamp = e.now().UnixNano()
	if err := e.publisher.Publish(event); err != nil {
		e.logger.Warn("publishing event", zap.String("kind", string(event.Kind)), zap.Error(err))
	}
}
