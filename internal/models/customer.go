package models

// Customer is the database row of the customers table.
type Customer struct {
	CustomerID string  `db:"customer_id"`
	Name       string  `db:"name"`
	Email      *string `db:"email"`
	Phone      *string `db:"phone"`
	Address    *string `db:"address"`
	AuditFields
}
