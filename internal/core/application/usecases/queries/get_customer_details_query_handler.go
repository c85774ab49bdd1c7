package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerDetailsQueryHandler assembles the customer card for the admin view.
// Picks the customer's default address (or the first stored one when none is
// marked default) and derives the single-line address and the maps link from it.
type GetCustomerDetailsQueryHandler struct {
	db       *gorm.DB
	resolver ImageURLResolver
}

// NewGetCustomerDetailsQueryHandler creates a handler for customer detail queries.
func NewGetCustomerDetailsQueryHandler(db *gorm.DB, resolver ImageURLResolver) GetCustomerDetailsQueryHandler {
	return GetCustomerDetailsQueryHandler{db: db, resolver: resolver}
}

// Handle executes the query for a single customer.
// Returns an ObjectNotFoundError when the customer does not exist; a customer
// without any stored address gets a nil Address section.
func (h GetCustomerDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerDetailsQuery,
) (GetCustomerDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerDetailsQueryResponse{}, err
	}

	var (
		resp         GetCustomerDetailsQueryResponse
		id           uuid.UUID
		profilePhoto string
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			email,
			profile_photo
		FROM customers
		WHERE id = ?
	`, query.CustomerID().Bytes()).Row()

	if err := row.Scan(&id, &resp.Name, &resp.Phone, &resp.Email, &profilePhoto); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetCustomerDetailsQueryResponse{},
				errs.NewObjectNotFoundError("customer", query.CustomerID().String())
		}
		return GetCustomerDetailsQueryResponse{}, err
	}

	customerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetCustomerDetailsQueryResponse{}, err
	}
	resp.ID = customerID
	resp.ProfilePhotoURL = h.resolver.Resolve(profilePhoto)

	address, err := h.defaultAddress(ctx, query.CustomerID())
	if err != nil {
		return GetCustomerDetailsQueryResponse{}, err
	}
	resp.Address = address

	return resp, nil
}

func (h GetCustomerDetailsQueryHandler) defaultAddress(
	ctx context.Context,
	customerID kernel.UUID,
) (*CustomerAddressResponse, error) {
	var (
		address   CustomerAddressResponse
		latitude  sql.NullFloat64
		longitude sql.NullFloat64
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			line1,
			line2,
			landmark,
			city,
			state,
			pincode,
			latitude,
			longitude
		FROM addresses
		WHERE customer_id = ?
		ORDER BY is_default DESC
		LIMIT 1
	`, customerID.Bytes()).Row()

	err := row.Scan(
		&address.Line1,
		&address.Line2,
		&address.Landmark,
		&address.City,
		&address.State,
		&address.Pincode,
		&latitude,
		&longitude,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	address.AssembledAddress = assembleAddressLine(address)

	if latitude.Valid && longitude.Valid {
		location, locErr := kernel.NewLocation(latitude.Float64, longitude.Float64)
		if locErr != nil {
			return nil, locErr
		}
		address.Location = &location
	}

	address.MapsLink = buildMapsLink(address)

	return &address, nil
}

// assembleAddressLine joins the non-empty address parts into one display line.
func assembleAddressLine(address CustomerAddressResponse) string {
	parts := make([]string, 0)
	for _, part := range []string{
		address.Line1,
		address.Line2,
		address.Landmark,
		address.City,
		address.State,
		address.Pincode,
	} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, ", ")
}

// buildMapsLink prefers exact coordinates over an address search.
// Returns an empty string when neither is available.
func buildMapsLink(address CustomerAddressResponse) string {
	if address.Location != nil {
		return fmt.Sprintf(
			"https://www.google.com/maps/search/?api=1&query=%f,%f",
			address.Location.Latitude(),
			address.Location.Longitude(),
		)
	}

	if address.AssembledAddress == "" {
		return ""
	}

	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(address.AssembledAddress)
}
