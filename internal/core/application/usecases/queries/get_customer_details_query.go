package queries

import (
	"errors"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/pkg/guard"
)

var (
	ErrGetCustomerDetailsQueryIsNotConstructed = errors.New(
		"GetCustomerDetailsQuery must be created via NewGetCustomerDetailsQuery constructor",
	)
)

// GetCustomerDetailsQuery retrieves a customer's contact card for the admin
// view: identity, contact data and the delivery address with a maps link.
type GetCustomerDetailsQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerDetailsQuery creates a query for a customer's details.
func NewGetCustomerDetailsQuery(customerID kernel.UUID) (GetCustomerDetailsQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerDetailsQuery{}, err
	}

	return GetCustomerDetailsQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerDetailsQueryIsNotConstructed if validation fails.
func (q GetCustomerDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerDetailsQueryIsNotConstructed)
}

// CustomerID returns the identifier of the customer being inspected.
func (q GetCustomerDetailsQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// CustomerAddressResponse is the delivery address section of the customer card.
// AssembledAddress is the single-line rendering of the non-empty address parts;
// MapsLink points at the exact coordinates when the customer shared their
// location and falls back to an address search otherwise.
type CustomerAddressResponse struct {
	Line1            string
	Line2            string
	Landmark         string
	City             string
	State            string
	Pincode          string
	Location         *kernel.Location
	AssembledAddress string
	MapsLink         string
}

// GetCustomerDetailsQueryResponse is the customer card read model.
// Address is nil when the customer has no stored address.
type GetCustomerDetailsQueryResponse struct {
	ID              kernel.UUID
	Name            string
	Phone           string
	Email           string
	ProfilePhotoURL string
	Address         *CustomerAddressResponse
}
