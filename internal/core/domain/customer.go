package domain

// Customer is a CRM record referenced by POS orders and AR invoices.
type Customer struct {
	CustomerID string  `json:"customerID"`
	Name       string  `json:"name"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
	AuditFields
}
