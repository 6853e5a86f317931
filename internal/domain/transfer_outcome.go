package domain

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

type FailureReason string

const (
	ReasonNone                 FailureReason = "none"
	ReasonValidation           FailureReason = "validation"
	ReasonSamePriorityDeadlock FailureReason = "same_priority_deadlock"
	ReasonTimeoutDeadlock      FailureReason = "timeout_deadlock"
	ReasonInsufficientFunds    FailureReason = "insufficient_funds"
)

type TransferOutcome struct {
	TransferId string
	From       string
	To         string
	Amount     decimal.Decimal
	Success    bool
	Duration   time.Duration
	Reason     FailureReason
	Err        error
}

func OutcomeFrom(req TransferRequest) TransferOutcome {
	return TransferOutcome{
		TransferId: req.Id,
		From:       req.From.Name(),
		To:         req.To.Name(),
		Reason:     ReasonNone,
	}
}

func (o *TransferOutcome) MarkAsSuccessful(d time.Duration) {
	o.Success = true
	o.Duration = d
	o.Reason = ReasonNone
	o.Err = nil
}

func (o *TransferOutcome) MarkAsFailed(err error) {
	o.Success = false
	o.Duration = 0
	o.Err = err
	o.Reason = ReasonFor(err)
}

func ReasonFor(err error) FailureReason {
	switch {
	case err == nil:
		return ReasonNone
	case errors.Is(err, ErrInvalidAmount):
		return ReasonValidation
	case errors.Is(err, ErrSamePriorityDeadlock):
		return ReasonSamePriorityDeadlock
	case errors.Is(err, ErrInsufficientFunds):
		return ReasonInsufficientFunds
	default:
		return ReasonTimeoutDeadlock
	}
}
