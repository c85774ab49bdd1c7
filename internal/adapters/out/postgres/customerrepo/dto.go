// Package customerrepo holds the database structures for customer and address
// data. Customers register through the customer-facing system; this service
// only reads them for the admin views, so the package carries DTOs for
// migration and query use without a domain aggregate behind them.
package customerrepo

import (
	"github.com/google/uuid"
)

// CustomerDTO represents a registered customer.
type CustomerDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Phone        string
	Email        string
	ProfilePhoto string
}

// TableName specifies the database table name for customers.
func (CustomerDTO) TableName() string {
	return "customers"
}

// AddressDTO represents a delivery address of a customer. A customer may have
// several addresses with at most one marked as default; coordinates are
// optional and only present when the customer shared their location.
type AddressDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	Line1      string
	Line2      string
	Landmark   string
	City       string
	State      string
	Pincode    string
	Latitude   *float64
	Longitude  *float64
	IsDefault  bool
}

// TableName specifies the database table name for customer addresses.
func (AddressDTO) TableName() string {
	return "addresses"
}
