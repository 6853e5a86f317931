package domain

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransferRequest struct {
	Id        string
	Scenario  string
	BatchId   string
	From      *Account
	To        *Account
	RawAmount string
}

func NewTransferRequest(from, to *Account, rawAmount string) TransferRequest {
	return TransferRequest{
		Id:        uuid.NewString(),
		From:      from,
		To:        to,
		RawAmount: rawAmount,
	}
}

// ParseAmount accepts any positive decimal. Empty, non-numeric, zero and
// negative input are all ErrInvalidAmount.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, errors.Wrap(ErrInvalidAmount, "amount is empty")
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.Wrapf(ErrInvalidAmount, "%q is not a number", raw)
	}
	if !amount.IsPositive() {
		return decimal.Zero, errors.Wrapf(ErrInvalidAmount, "amount must be greater than zero, got %s", amount)
	}
	return amount, nil
}
