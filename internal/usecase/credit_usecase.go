package usecase

import (
	"context"
	"fmt"
	"strings"

	"swapcred/internal/domain/entities"
	"swapcred/internal/usecase/interfaces"
)

// ICreditUseCase exposes the read side of the credit ledger: the
// administrator-facing audit history and the customer's external balance.
type ICreditUseCase interface {
	History(ctx context.Context, adminID, userID string) ([]entities.CreditLedgerEntry, error)
	Balance(ctx context.Context, callerID string) (entities.CreditBalance, error)
}

type CreditUseCase struct {
	ledger  interfaces.ICreditLedgerRepository
	gateway interfaces.ICreditLedgerGateway
	users   interfaces.IUserDirectory
}

var _ ICreditUseCase = (*CreditUseCase)(nil)

func NewCreditUseCase(ledger interfaces.ICreditLedgerRepository, gateway interfaces.ICreditLedgerGateway, users interfaces.IUserDirectory) *CreditUseCase {
	return &CreditUseCase{ledger: ledger, gateway: gateway, users: users}
}

// History lists ledger entries, optionally filtered to one user.
func (u *CreditUseCase) History(ctx context.Context, adminID, userID string) ([]entities.CreditLedgerEntry, error) {
	adminID = strings.TrimSpace(adminID)
	if adminID == "" {
		return nil, ErrInvalidCallerID
	}
	caller, err := u.users.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if caller.ID == "" {
		return nil, ErrUserNotFound
	}
	if !caller.IsAdmin {
		return nil, ErrAdminRequired
	}

	if userID = strings.TrimSpace(userID); userID != "" {
		return u.ledger.ListByUserID(ctx, userID)
	}
	return u.ledger.List(ctx)
}

// Balance reads the caller's loyalty-point balance from the external ledger.
func (u *CreditUseCase) Balance(ctx context.Context, callerID string) (entities.CreditBalance, error) {
	callerID = strings.TrimSpace(callerID)
	if callerID == "" {
		return entities.CreditBalance{}, ErrInvalidCallerID
	}
	balance, err := u.gateway.GetBalance(ctx, callerID)
	if err != nil {
		return entities.CreditBalance{}, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	return balance, nil
}
