package entities

import "time"

// LedgerEntryTypeExchangeCredit marks entries produced by exchange-request
// credit assignment.
const LedgerEntryTypeExchangeCredit = "exchange_credit"

// CreditLedgerEntry is the audit trail of every attempt to post credit to the
// external commerce ledger, written whether or not the gateway call succeeded
// and independent of the exchange request update.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
type CreditLedgerEntry struct {
	ID                    string    `json:"id"`
	ExchangeRequestID     string    `json:"exchangeRequestId"`
	UserID                string    `json:"userId"`
	Amount                int64     `json:"amount"`
	Currency              string    `json:"currency"`
	Type                  string    `json:"type"`
	Success               bool      `json:"success"`
	FailureReason         string    `json:"failureReason,omitempty"`
	ExternalTransactionID string    `json:"externalTransactionId,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
}

// CreditBalance is a loyalty-point balance read from the external ledger.
type CreditBalance struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// CreditPostResult is the typed outcome of a ledger credit post. A rejected
// post is a result with Success=false, not an error; transport failures are
// returned as errors by the gateway.
type CreditPostResult struct {
	Success               bool
	ExternalTransactionID string
	FailureReason         string
}
