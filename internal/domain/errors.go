package domain

import "github.com/cockroachdb/errors"

var (
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrEqualPriority        = errors.New("accounts share the same priority, lock order is undefined")
	ErrSamePriorityDeadlock = errors.New("deadlock: same priority")
	ErrTimeoutDeadlock      = errors.New("deadlock: timed out waiting for lock")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrBatchFull            = errors.New("batch outcome collection is full")
	ErrBatchIncomplete      = errors.New("batch outcome collection is not complete")
	ErrScenarioNotFound     = errors.New("scenario not found")
	ErrUnknownAccount       = errors.New("unknown account")
)
