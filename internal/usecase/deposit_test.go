package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/BrigitteMendez1302/transactions-microservice/internal/domain"
	mock_gateway "github.com/BrigitteMendez1302/transactions-microservice/internal/gateway/mocks"
	"github.com/BrigitteMendez1302/transactions-microservice/internal/usecase"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepositUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name      string
		accountID string
		amount    decimal.Decimal
		wantErr   error
	}{
		{
			name:      "empty account id",
			accountID: "",
			amount:    decimal.NewFromFloat(100),
			wantErr:   domain.ErrInvalidAccountID,
		},
		{
			name:      "blank account id",
			accountID: "   ",
			amount:    decimal.NewFromFloat(100),
			wantErr:   domain.ErrInvalidAccountID,
		},
		{
			name:      "zero amount",
			accountID: "1",
			amount:    decimal.Zero,
			wantErr:   domain.ErrInvalidAmount,
		},
		{
			name:      "negative amount",
			accountID: "1",
			amount:    decimal.NewFromFloat(-50),
			wantErr:   domain.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No EXPECTs: validation failures must make zero authority calls.
			authority := mock_gateway.NewMockAccountAuthority(ctrl)
			movements := mock_gateway.NewMockMovementRepository(ctrl)

			uc := usecase.NewDeposit(authority, movements, nil)
			movement, err := uc.Execute(context.Background(), usecase.DepositInput{
				AccountID: tt.accountID,
				Amount:    tt.amount,
			})

			assert.Nil(t, movement)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDepositUseCase_Execute_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := "1"
	amount := decimal.NewFromFloat(500.0)

	authority := mock_gateway.NewMockAccountAuthority(ctrl)
	movements := mock_gateway.NewMockMovementRepository(ctrl)
	publisher := mock_gateway.NewMockEventPublisher(ctrl)

	authority.EXPECT().
		Credit(gomock.Any(), accountID, amount).
		Return(&domain.Account{ID: accountID, Balance: decimal.NewFromFloat(500.0)}, nil)

	var saved *domain.Movement
	movements.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *domain.Movement) error {
			m.ID = "mv-1" // the store assigns the id
			saved = m
			return nil
		})

	publisher.EXPECT().
		Publish(gomock.Any(), usecase.MovementEventsExchange, "movement.recorded", gomock.Any()).
		Return(nil)

	uc := usecase.NewDeposit(authority, movements, publisher)
	movement, err := uc.Execute(context.Background(), usecase.DepositInput{
		AccountID: accountID,
		Amount:    amount,
	})

	require.NoError(t, err)
	require.NotNil(t, movement)
	assert.Equal(t, "mv-1", movement.ID)
	assert.Equal(t, domain.MovementDeposit, movement.Kind)
	assert.True(t, movement.Amount.Equal(amount))
	assert.Equal(t, accountID, movement.DestinationAccountID)
	assert.Empty(t, movement.SourceAccountID)
	assert.False(t, movement.RecordedAt.IsZero())
	assert.Same(t, saved, movement)
}

func TestDepositUseCase_Execute_CreditFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authority := mock_gateway.NewMockAccountAuthority(ctrl)
	movements := mock_gateway.NewMockMovementRepository(ctrl)

	authority.EXPECT().
		Credit(gomock.Any(), "missing", gomock.Any()).
		Return(nil, domain.ErrAccountNotFound)

	uc := usecase.NewDeposit(authority, movements, nil)
	movement, err := uc.Execute(context.Background(), usecase.DepositInput{
		AccountID: "missing",
		Amount:    decimal.NewFromFloat(100),
	})

	assert.Nil(t, movement)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestDepositUseCase_Execute_SaveFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeErr := errors.New("connection reset")

	authority := mock_gateway.NewMockAccountAuthority(ctrl)
	movements := mock_gateway.NewMockMovementRepository(ctrl)

	authority.EXPECT().
		Credit(gomock.Any(), "1", gomock.Any()).
		Return(&domain.Account{ID: "1"}, nil)
	movements.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(storeErr)

	uc := usecase.NewDeposit(authority, movements, nil)
	movement, err := uc.Execute(context.Background(), usecase.DepositInput{
		AccountID: "1",
		Amount:    decimal.NewFromFloat(100),
	})

	assert.Nil(t, movement)

	// The credit already happened: the failure must be distinguishable.
	var persistence *domain.PersistenceError
	require.ErrorAs(t, err, &persistence)
	assert.Equal(t, domain.MovementDeposit, persistence.Movement.Kind)
	assert.ErrorIs(t, err, storeErr)
}
