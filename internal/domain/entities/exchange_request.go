package entities

import "time"

// ExchangeStatus represents the approval lifecycle of an exchange request.
//
// Domain notes:
//   - Transitions are monotonic: pending -> approved|declined, approved -> completed.
//   - declined and completed are terminal; no further mutation except admin deletion.
type ExchangeStatus string

const (
	ExchangeStatusPending   ExchangeStatus = "pending"
	ExchangeStatusApproved  ExchangeStatus = "approved"
	ExchangeStatusDeclined  ExchangeStatus = "declined"
	ExchangeStatusCompleted ExchangeStatus = "completed"
)

// Terminal reports whether no further status transition is legal.
func (s ExchangeStatus) Terminal() bool {
	return s == ExchangeStatusDeclined || s == ExchangeStatusCompleted
}

// TransitStatus tracks the physical shipment independent of the approval status.
// The empty value means the item has not started moving yet.
type TransitStatus string

const (
	TransitStatusNotStarted TransitStatus = ""
	TransitStatusShipped    TransitStatus = "shipped"
	TransitStatusReceived   TransitStatus = "received"
)

// ExchangeImage is a product photo uploaded by the customer before submission.
// Uploads happen client-side; the service only stores the returned URL and the
// storage provider's identifier.
type ExchangeImage struct {
	URL        string `json:"url"`
	ExternalID string `json:"externalId,omitempty"`
}

// ShippingDetails is set once by the owner after approval.
type ShippingDetails struct {
	CarrierName    string `json:"carrierName"`
	TrackingNumber string `json:"trackingNumber"`
	ShippingDate   string `json:"shippingDate"`
	Notes          string `json:"notes,omitempty"`
}

// WarehouseInfo is the address snapshot copied into the exchange request at
// approval time, so later warehouse edits do not rewrite history.
type WarehouseInfo struct {
	Name          string `json:"name"`
	AddressLine1  string `json:"addressLine1"`
	AddressLine2  string `json:"addressLine2,omitempty"`
	City          string `json:"city"`
	State         string `json:"state,omitempty"`
	PostalCode    string `json:"postalCode"`
	Country       string `json:"country"`
	ContactPerson string `json:"contactPerson,omitempty"`
	ContactPhone  string `json:"contactPhone,omitempty"`
}

// ExchangeRequest is the aggregate root persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_id-index): owner_id
//
// CreditAmount is a pointer so "never assigned" and "assigned zero" stay
// distinguishable; the credit attribute is absent until assignment, which is
// what the conditional assignment update keys on.
type ExchangeRequest struct {
	ID            string           `json:"id"`
	OwnerID       string           `json:"ownerId"`
	Status        ExchangeStatus   `json:"status"`
	TransitStatus TransitStatus    `json:"transitStatus,omitempty"`
	ProductName   string           `json:"productName"`
	Brand         string           `json:"brand"`
	Condition     string           `json:"condition"`
	Description   string           `json:"description"`
	Images        []ExchangeImage  `json:"images"`
	Shipping      *ShippingDetails `json:"shippingDetails,omitempty"`
	WarehouseID   string           `json:"warehouseId,omitempty"`
	WarehouseInfo *WarehouseInfo   `json:"warehouseInfo,omitempty"`
	CreditAmount  *int64           `json:"creditAmount,omitempty"`
	AdminFeedback string           `json:"adminFeedback,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// CreditAssigned reports whether credit has been assigned, including a zero
// amount.
func (e ExchangeRequest) CreditAssigned() bool {
	return e.CreditAmount != nil
}

// CreditValue returns the assigned amount, or 0 when unassigned.
func (e ExchangeRequest) CreditValue() int64 {
	if e.CreditAmount == nil {
		return 0
	}
	return *e.CreditAmount
}
