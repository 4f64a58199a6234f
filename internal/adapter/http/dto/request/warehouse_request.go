package request

// WarehouseRequest is the admin-facing create/update payload. IsActive is a
// pointer so an omitted flag defaults to active on create and stays untouched
// on update.
type WarehouseRequest struct {
	Name          string `json:"name" binding:"required"`
	AddressLine1  string `json:"addressLine1" binding:"required"`
	AddressLine2  string `json:"addressLine2"`
	City          string `json:"city" binding:"required"`
	State         string `json:"state"`
	PostalCode    string `json:"postalCode" binding:"required"`
	Country       string `json:"country" binding:"required"`
	ContactPerson string `json:"contactPerson"`
	ContactPhone  string `json:"contactPhone"`
	IsActive      *bool  `json:"isActive"`
}
