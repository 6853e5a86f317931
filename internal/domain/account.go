package domain

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/semaphore"
)

// Account is an in-memory balance guarded by its own lock. Withdraw and
// Deposit do not lock; callers must hold the account lock while mutating.
type Account struct {
	name     string
	priority int
	balance  decimal.Decimal
	lock     *semaphore.Weighted
}

type AccountSnapshot struct {
	Name     string          `json:"name"`
	Priority int             `json:"priority"`
	Balance  decimal.Decimal `json:"balance"`
}

func NewAccount(name string, balance decimal.Decimal, priority int) *Account {
	return &Account{
		name:     name,
		priority: priority,
		balance:  balance,
		lock:     semaphore.NewWeighted(1),
	}
}

func (a *Account) Name() string {
	return a.name
}

func (a *Account) Priority() int {
	return a.priority
}

// Balance reads without locking. Only safe while holding the lock or when no
// transfer touching the account is in flight.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

func (a *Account) Withdraw(amount decimal.Decimal) {
	a.balance = a.balance.Sub(amount)
}

func (a *Account) Deposit(amount decimal.Decimal) {
	a.balance = a.balance.Add(amount)
}

func (a *Account) CanCover(amount decimal.Decimal) bool {
	return a.balance.GreaterThanOrEqual(amount)
}

// Snapshot takes the account lock to read a consistent view.
func (a *Account) Snapshot(ctx context.Context) (AccountSnapshot, error) {
	if err := a.acquire(ctx); err != nil {
		return AccountSnapshot{}, err
	}
	defer a.release()
	return AccountSnapshot{Name: a.name, Priority: a.priority, Balance: a.balance}, nil
}

func (a *Account) acquire(ctx context.Context) error {
	return a.lock.Acquire(ctx, 1)
}

func (a *Account) tryAcquire() bool {
	return a.lock.TryAcquire(1)
}

func (a *Account) release() {
	a.lock.Release(1)
}
