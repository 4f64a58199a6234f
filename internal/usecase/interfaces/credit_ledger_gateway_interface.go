package interfaces

import (
	"context"
	"swapcred/internal/domain/entities"
)

// ICreditLedgerGateway abstracts the external commerce platform's loyalty
// ledger (e.g. the Shopify store-credit API).
//
// Both calls are fallible remote calls with no automatic retry. PostCredit
// reports a ledger rejection through the typed result; errors are reserved for
// transport failures (unreachable, timeout). The caller decides whether to
// proceed with local-only state changes.
type ICreditLedgerGateway interface {
	GetBalance(ctx context.Context, customerRef string) (entities.CreditBalance, error)
	PostCredit(ctx context.Context, customerRef string, amount int64) (entities.CreditPostResult, error)
}
