package domain

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_WithdrawAndDeposit(t *testing.T) {
	acc := NewAccount("Account A", decimal.NewFromInt(5000), 1)

	acc.Withdraw(decimal.NewFromInt(100))
	acc.Deposit(decimal.NewFromInt(40))

	assert.True(t, acc.Balance().Equal(decimal.NewFromInt(4940)))
}

func TestAccount_RepeatedCentsDoNotDrift(t *testing.T) {
	acc := NewAccount("Account A", decimal.Zero, 1)
	tenCents := decimal.RequireFromString("0.10")

	for i := 0; i < 1000; i++ {
		acc.Deposit(tenCents)
	}
	for i := 0; i < 500; i++ {
		acc.Withdraw(tenCents)
	}

	assert.Equal(t, "50", acc.Balance().String())
}

func TestAccount_WithdrawAllowsNegativeBalance(t *testing.T) {
	acc := NewAccount("Account A", decimal.NewFromInt(10), 1)

	assert.False(t, acc.CanCover(decimal.NewFromInt(11)))
	acc.Withdraw(decimal.NewFromInt(11))

	assert.True(t, acc.Balance().Equal(decimal.NewFromInt(-1)))
}

func TestAccount_SnapshotReleasesLock(t *testing.T) {
	acc := NewAccount("Account B", decimal.NewFromInt(3000), 2)

	snap, err := acc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Account B", snap.Name)
	assert.Equal(t, 2, snap.Priority)
	assert.True(t, snap.Balance.Equal(decimal.NewFromInt(3000)))
	assert.True(t, acc.tryAcquire(), "snapshot must release the account lock")
	acc.release()
}

func TestAccount_SnapshotHonoursContextWhileLocked(t *testing.T) {
	acc := NewAccount("Account B", decimal.NewFromInt(3000), 2)
	require.True(t, acc.tryAcquire())
	defer acc.release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := acc.Snapshot(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
