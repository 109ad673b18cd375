package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/BrigitteMendez1302/transactions-microservice/internal/domain"
	mock_gateway "github.com/BrigitteMendez1302/transactions-microservice/internal/gateway/mocks"
	"github.com/BrigitteMendez1302/transactions-microservice/internal/usecase"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryUseCase_Global(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now()
	stored := []domain.Movement{
		{ID: "mv-2", Kind: domain.MovementTransfer, Amount: decimal.NewFromFloat(50), RecordedAt: now},
		{ID: "mv-1", Kind: domain.MovementDeposit, Amount: decimal.NewFromFloat(100), RecordedAt: now.Add(-time.Hour)},
	}

	movements := mock_gateway.NewMockMovementRepository(ctrl)
	movements.EXPECT().
		FindAllOrderedByDateDesc(gomock.Any()).
		Return(stored, nil)

	uc := usecase.NewHistory(movements)
	got, err := uc.Global(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, stored, got)
	// The store's descending order is passed through untouched.
	assert.True(t, !got[0].RecordedAt.Before(got[1].RecordedAt))
}

func TestHistoryUseCase_Global_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	movements := mock_gateway.NewMockMovementRepository(ctrl)
	movements.EXPECT().
		FindAllOrderedByDateDesc(gomock.Any()).
		Return([]domain.Movement{}, nil)

	uc := usecase.NewHistory(movements)
	got, err := uc.Global(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHistoryUseCase_ByAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := []domain.Movement{
		{ID: "mv-3", Kind: domain.MovementWithdrawal, SourceAccountID: "1"},
		{ID: "mv-1", Kind: domain.MovementTransfer, SourceAccountID: "2", DestinationAccountID: "1"},
	}

	movements := mock_gateway.NewMockMovementRepository(ctrl)
	movements.EXPECT().
		FindByAccountOrderedByDateDesc(gomock.Any(), "1").
		Return(stored, nil)

	uc := usecase.NewHistory(movements)
	got, err := uc.ByAccount(context.Background(), "1")

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestHistoryUseCase_ByAccount_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	movements := mock_gateway.NewMockMovementRepository(ctrl)

	uc := usecase.NewHistory(movements)
	got, err := uc.ByAccount(context.Background(), "  ")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrInvalidAccountID)
}

func TestHistoryUseCase_ByKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := []domain.Movement{
		{ID: "mv-5", Kind: domain.MovementDeposit},
	}

	movements := mock_gateway.NewMockMovementRepository(ctrl)
	movements.EXPECT().
		FindByKindOrderedByDateDesc(gomock.Any(), domain.MovementDeposit).
		Return(stored, nil)

	uc := usecase.NewHistory(movements)
	got, err := uc.ByKind(context.Background(), domain.MovementDeposit)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestHistoryUseCase_ByKind_InvalidKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	movements := mock_gateway.NewMockMovementRepository(ctrl)

	uc := usecase.NewHistory(movements)
	got, err := uc.ByKind(context.Background(), domain.MovementKind("REFUND"))

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrInvalidMovementKind)
}
