package interfaces

import (
	"context"
	"swapcred/internal/domain/entities"
)

// ICreditLedgerRepository abstracts DynamoDB persistence for the credit audit
// trail. Entries are append-only.
type ICreditLedgerRepository interface {
	Create(ctx context.Context, entry entities.CreditLedgerEntry) (entities.CreditLedgerEntry, error)
	List(ctx context.Context) ([]entities.CreditLedgerEntry, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.CreditLedgerEntry, error)
}
