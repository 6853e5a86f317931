package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderLocks_LowerPriorityFirstInBothDirections(t *testing.T) {
	a := NewAccount("Account A", decimal.NewFromInt(5000), 1)
	b := NewAccount("Account B", decimal.NewFromInt(3000), 2)

	first, second, err := OrderLocks(a, b)
	require.NoError(t, err)
	assert.Same(t, a, first)
	assert.Same(t, b, second)

	first, second, err = OrderLocks(b, a)
	require.NoError(t, err)
	assert.Same(t, a, first)
	assert.Same(t, b, second)
}

func TestOrderLocks_EqualPriorityHasNoOrder(t *testing.T) {
	b := NewAccount("Account B", decimal.NewFromInt(3000), 2)
	c := NewAccount("Account C", decimal.NewFromInt(4000), 2)

	first, second, err := OrderLocks(b, c)

	assert.ErrorIs(t, err, ErrEqualPriority)
	assert.Nil(t, first)
	assert.Nil(t, second)
}
