package queries_test

import (
	"testing"

	"orderadmin/internal/core/application/usecases/queries"
	"orderadmin/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCustomerDetailsQuery_Valid(t *testing.T) {
	id := kernel.NewUUID()

	query, err := queries.NewGetCustomerDetailsQuery(id)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, id.IsEqual(query.CustomerID()))
}

func TestNewGetCustomerDetailsQuery_ZeroCustomerID(t *testing.T) {
	_, err := queries.NewGetCustomerDetailsQuery(kernel.UUID{})

	require.Error(t, err)
}

func TestGetCustomerDetailsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCustomerDetailsQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCustomerDetailsQueryIsNotConstructed)
}
