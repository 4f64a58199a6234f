package response

import (
	"time"

	"swapcred/internal/domain/entities"
)

type WarehouseResponse struct {
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

func FromWarehouse(w entities.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:            w.ID,
		Name:          w.Name,
		AddressLine1:  w.AddressLine1,
		AddressLine2:  w.AddressLine2,
		City:          w.City,
		State:         w.State,
		PostalCode:    w.PostalCode,
		Country:       w.Country,
		ContactPerson: w.ContactPerson,
		ContactPhone:  w.ContactPhone,
		IsActive:      w.IsActive,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}

func FromWarehouses(items []entities.Warehouse) []WarehouseResponse {
	out := make([]WarehouseResponse, 0, len(items))
	for _, w := range items {
		out = append(out, FromWarehouse(w))
	}
	return out
}
