package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	valid := map[string]string{
		"100":    "100",
		"0.10":   "0.1",
		" 50 ":   "50",
		"1e2":    "100",
		"250.75": "250.75",
	}
	for raw, want := range valid {
		got, err := ParseAmount(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got.String(), raw)
	}

	for _, raw := range []string{"-5", "abc", "", "   ", "0", "0.00", "12abc", "NaN"} {
		_, err := ParseAmount(raw)
		assert.ErrorIs(t, err, ErrInvalidAmount, raw)
	}
}

func TestNewTransferRequest_AssignsUniqueIds(t *testing.T) {
	a := NewAccount("Account A", mustDecimal("1"), 1)
	b := NewAccount("Account B", mustDecimal("1"), 2)

	r1 := NewTransferRequest(a, b, "1")
	r2 := NewTransferRequest(a, b, "1")

	assert.NotEmpty(t, r1.Id)
	assert.NotEqual(t, r1.Id, r2.Id)
}

func TestReasonFor(t *testing.T) {
	assert.Equal(t, ReasonNone, ReasonFor(nil))
	assert.Equal(t, ReasonValidation, ReasonFor(ErrInvalidAmount))
	assert.Equal(t, ReasonSamePriorityDeadlock, ReasonFor(ErrSamePriorityDeadlock))
	assert.Equal(t, ReasonTimeoutDeadlock, ReasonFor(ErrTimeoutDeadlock))
	assert.Equal(t, ReasonInsufficientFunds, ReasonFor(ErrInsufficientFunds))
}
