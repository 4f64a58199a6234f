package response

import (
	"time"

	"swapcred/internal/domain/entities"
)

type ExchangeImageResponse struct {
	URL        string `json:"url"`
	ExternalID string `json:"externalId,omitempty"`
}

type ShippingDetailsResponse struct {
	CarrierName    string `json:"carrierName"`
	TrackingNumber string `json:"trackingNumber"`
	ShippingDate   string `json:"shippingDate"`
	Notes          string `json:"notes,omitempty"`
}

type WarehouseInfoResponse struct {
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

// ExchangeResponse is the full current representation returned by every
// successful exchange operation.
type ExchangeResponse struct {
	ID            string                   `json:"id"`
	OwnerID       string                   `json:"ownerId"`
	Status        string                   `json:"status"`
	TransitStatus string                   `json:"transitStatus,omitempty"`
	ProductName   string                   `json:"productName"`
	Brand         string                   `json:"brand"`
	Condition     string                   `json:"condition"`
	Description   string                   `json:"description"`
	Images        []ExchangeImageResponse  `json:"images"`
	Shipping      *ShippingDetailsResponse `json:"shippingDetails,omitempty"`
	WarehouseID   string                   `json:"warehouseId,omitempty"`
	WarehouseInfo *WarehouseInfoResponse   `json:"warehouseInfo,omitempty"`
	CreditAmount  *int64                   `json:"creditAmount,omitempty"`
	AdminFeedback string                   `json:"adminFeedback,omitempty"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`
}

func FromExchange(e entities.ExchangeRequest) ExchangeResponse {
	images := make([]ExchangeImageResponse, 0, len(e.Images))
	for _, img := range e.Images {
		images = append(images, ExchangeImageResponse{URL: img.URL, ExternalID: img.ExternalID})
	}
	resp := ExchangeResponse{
		ID:            e.ID,
		OwnerID:       e.OwnerID,
		Status:        string(e.Status),
		TransitStatus: string(e.TransitStatus),
		ProductName:   e.ProductName,
		Brand:         e.Brand,
		Condition:     e.Condition,
		Description:   e.Description,
		Images:        images,
		WarehouseID:   e.WarehouseID,
		CreditAmount:  e.CreditAmount,
		AdminFeedback: e.AdminFeedback,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	if e.Shipping != nil {
		resp.Shipping = &ShippingDetailsResponse{
			CarrierName:    e.Shipping.CarrierName,
			TrackingNumber: e.Shipping.TrackingNumber,
			ShippingDate:   e.Shipping.ShippingDate,
			Notes:          e.Shipping.Notes,
		}
	}
	if e.WarehouseInfo != nil {
		resp.WarehouseInfo = &WarehouseInfoResponse{
			Name:          e.WarehouseInfo.Name,
			AddressLine1:  e.WarehouseInfo.AddressLine1,
			AddressLine2:  e.WarehouseInfo.AddressLine2,
			City:          e.WarehouseInfo.City,
			State:         e.WarehouseInfo.State,
			PostalCode:    e.WarehouseInfo.PostalCode,
			Country:       e.WarehouseInfo.Country,
			ContactPerson: e.WarehouseInfo.ContactPerson,
			ContactPhone:  e.WarehouseInfo.ContactPhone,
		}
	}
	return resp
}

func FromExchanges(items []entities.ExchangeRequest) []ExchangeResponse {
	out := make([]ExchangeResponse, 0, len(items))
	for _, e := range items {
		out = append(out, FromExchange(e))
	}
	return out
}

// AssignCreditResponse is the exchange plus the tagged credit outcome. The
// warning is populated when the local assignment succeeded but the ledger post
// failed, so partial success never looks like full success.
type AssignCreditResponse struct {
	ExchangeResponse
	CreditOutcome string `json:"creditOutcome"`
	Warning       string `json:"warning,omitempty"`
}

func FromCreditAssignment(e entities.ExchangeRequest, outcome, warning string) AssignCreditResponse {
	return AssignCreditResponse{
		ExchangeResponse: FromExchange(e),
		CreditOutcome:    outcome,
		Warning:          warning,
	}
}
