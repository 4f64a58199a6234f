package request

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidShippingDate = errors.New("invalid shipping date")
	ErrInvalidTransit      = errors.New("invalid transit status")
)

type ExchangeImagePayload struct {
	URL        string `json:"url" binding:"required"`
	ExternalID string `json:"externalId"`
}

// CreateExchangeRequest is the owner-facing submission payload. Images are
// uploaded client-side; only the resulting URLs arrive here.
type CreateExchangeRequest struct {
	ProductName string                 `json:"productName" binding:"required"`
	Brand       string                 `json:"brand" binding:"required"`
	Condition   string                 `json:"condition" binding:"required"`
	Description string                 `json:"description" binding:"required"`
	Images      []ExchangeImagePayload `json:"images" binding:"required"`
}

// DecisionRequest drives the admin PATCH status endpoint. Status accepts
// approved, declined and completed; warehouseId is required for approvals.
type DecisionRequest struct {
	Status        string `json:"status" binding:"required"`
	AdminFeedback string `json:"adminFeedback"`
	WarehouseID   string `json:"warehouseId"`
}

func (r DecisionRequest) ResolveStatus() string {
	return strings.ToLower(strings.TrimSpace(r.Status))
}

// ShippingRequest is the owner's one-time shipment submission.
type ShippingRequest struct {
	CarrierName    string `json:"carrierName" binding:"required"`
	TrackingNumber string `json:"trackingNumber" binding:"required"`
	ShippingDate   string `json:"shippingDate" binding:"required"`
	Notes          string `json:"notes"`
}

func (r ShippingRequest) ResolveShippingDate() (string, error) {
	v := strings.TrimSpace(r.ShippingDate)
	if _, err := time.Parse("2006-01-02", v); err != nil {
		return "", ErrInvalidShippingDate
	}
	return v, nil
}

// TransitRequest drives the admin PATCH transit endpoint. Only the received
// confirmation is admin-driven; shipped is set by the owner's submission.
type TransitRequest struct {
	TransitStatus string `json:"transitStatus" binding:"required"`
	Note          string `json:"note"`
}

func (r TransitRequest) ResolveReceived() error {
	if strings.ToLower(strings.TrimSpace(r.TransitStatus)) != "received" {
		return ErrInvalidTransit
	}
	return nil
}

// AssignCreditRequest carries the loyalty-point amount. A pointer keeps a
// missing field distinguishable from an explicit zero.
type AssignCreditRequest struct {
	CreditAmount *int64 `json:"creditAmount" binding:"required"`
	Note         string `json:"note"`
}
