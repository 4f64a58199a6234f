package response

import (
	"time"

	"swapcred/internal/domain/entities"
)

type CreditLedgerEntryResponse struct {
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

func FromCreditLedgerEntry(e entities.CreditLedgerEntry) CreditLedgerEntryResponse {
	return CreditLedgerEntryResponse{
		ID:                    e.ID,
		ExchangeRequestID:     e.ExchangeRequestID,
		UserID:                e.UserID,
		Amount:                e.Amount,
		Currency:              e.Currency,
		Type:                  e.Type,
		Success:               e.Success,
		FailureReason:         e.FailureReason,
		ExternalTransactionID: e.ExternalTransactionID,
		CreatedAt:             e.CreatedAt,
	}
}

func FromCreditLedgerEntries(items []entities.CreditLedgerEntry) []CreditLedgerEntryResponse {
	out := make([]CreditLedgerEntryResponse, 0, len(items))
	for _, e := range items {
		out = append(out, FromCreditLedgerEntry(e))
	}
	return out
}

type CreditBalanceResponse struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func FromCreditBalance(b entities.CreditBalance) CreditBalanceResponse {
	return CreditBalanceResponse{Amount: b.Amount, Currency: b.Currency}
}
