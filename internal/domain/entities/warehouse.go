package entities

import "time"

// Warehouse is a fixed shipping destination selected by an administrator at
// approval time. Only active warehouses may be assigned to new approvals.
//
// Storage model (DynamoDB):
//   - PK: id
type Warehouse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	AddressLine1  string    `json:"addressLine1"`
	AddressLine2  string    `json:"addressLine2,omitempty"`
	City          string    `json:"city"`
	State         string    `json:"state,omitempty"`
	PostalCode    string    `json:"postalCode"`
	Country       string    `json:"country"`
	ContactPerson string    `json:"contactPerson,omitempty"`
	ContactPhone  string    `json:"contactPhone,omitempty"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Snapshot copies the address fields frozen into an exchange request at
// approval time.
func (w Warehouse) Snapshot() WarehouseInfo {
	return WarehouseInfo{
		Name:          w.Name,
		AddressLine1:  w.AddressLine1,
		AddressLine2:  w.AddressLine2,
		City:          w.City,
		State:         w.State,
		PostalCode:    w.PostalCode,
		Country:       w.Country,
		ContactPerson: w.ContactPerson,
		ContactPhone:  w.ContactPhone,
	}
}
