package usecase

import (
	"context"
	"errors"
	"testing"

	"swapcred/internal/domain/entities"
	mock_interfaces "swapcred/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newCreditFixture(t *testing.T) (*mock_interfaces.MockICreditLedgerRepository, *mock_interfaces.MockICreditLedgerGateway, *mock_interfaces.MockIUserDirectory, *CreditUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ledger := mock_interfaces.NewMockICreditLedgerRepository(ctrl)
	gateway := mock_interfaces.NewMockICreditLedgerGateway(ctrl)
	users := mock_interfaces.NewMockIUserDirectory(ctrl)
	return ledger, gateway, users, NewCreditUseCase(ledger, gateway, users)
}

func TestCreditUseCase_History(t *testing.T) {
	t.Run("non-admin rejected", func(t *testing.T) {
		_, _, users, uc := newCreditFixture(t)
		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1"}, nil)
		_, err := uc.History(context.Background(), "user-1", "")
		if !errors.Is(err, ErrAdminRequired) {
			t.Fatalf("expected ErrAdminRequired, got %v", err)
		}
	})

	t.Run("unfiltered list", func(t *testing.T) {
		ledger, _, users, uc := newCreditFixture(t)
		users.EXPECT().GetByID(gomock.Any(), "admin").Return(entities.User{ID: "admin", IsAdmin: true}, nil)
		ledger.EXPECT().List(gomock.Any()).Return([]entities.CreditLedgerEntry{{ID: "le-1"}, {ID: "le-2"}}, nil)
		entries, err := uc.History(context.Background(), "admin", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}
	})

	t.Run("filtered by user", func(t *testing.T) {
		ledger, _, users, uc := newCreditFixture(t)
		users.EXPECT().GetByID(gomock.Any(), "admin").Return(entities.User{ID: "admin", IsAdmin: true}, nil)
		ledger.EXPECT().ListByUserID(gomock.Any(), "owner-1").Return([]entities.CreditLedgerEntry{{ID: "le-1", UserID: "owner-1"}}, nil)
		entries, err := uc.History(context.Background(), "admin", "owner-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 1 || entries[0].UserID != "owner-1" {
			t.Fatalf("unexpected entries: %+v", entries)
		}
	})
}

func TestCreditUseCase_Balance(t *testing.T) {
	t.Run("invalid caller", func(t *testing.T) {
		_, _, _, uc := newCreditFixture(t)
		_, err := uc.Balance(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidCallerID) {
			t.Fatalf("expected ErrInvalidCallerID, got %v", err)
		}
	})

	t.Run("gateway failure wrapped", func(t *testing.T) {
		_, gateway, _, uc := newCreditFixture(t)
		gateway.EXPECT().GetBalance(gomock.Any(), "owner-1").Return(entities.CreditBalance{}, errors.New("timeout"))
		_, err := uc.Balance(context.Background(), "owner-1")
		if !errors.Is(err, ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		_, gateway, _, uc := newCreditFixture(t)
		gateway.EXPECT().GetBalance(gomock.Any(), "owner-1").Return(entities.CreditBalance{Amount: 1200, Currency: "INR"}, nil)
		bal, err := uc.Balance(context.Background(), "owner-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bal.Amount != 1200 || bal.Currency != "INR" {
			t.Fatalf("unexpected balance: %+v", bal)
		}
	})
}
