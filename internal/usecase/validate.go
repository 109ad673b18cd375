package usecase

import (
	"strings"

	"github.com/BrigitteMendez1302/transactions-microservice/internal/domain"
	"github.com/shopspring/decimal"
)

// Input validation shared by all movement usecases. Failing here is cheap:
// no call has left the process yet.

func validateAccountID(accountID string) error {
	if strings.TrimSpace(accountID) == "" {
		return domain.ErrInvalidAccountID
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}
	return nil
}
