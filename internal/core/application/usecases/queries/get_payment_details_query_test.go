package queries_test

import (
	"testing"

	"orderadmin/internal/core/application/usecases/queries"
	"orderadmin/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPaymentDetailsQuery_Valid(t *testing.T) {
	id := kernel.NewUUID()

	query, err := queries.NewGetPaymentDetailsQuery(id)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, id.IsEqual(query.OrderID()))
}

func TestNewGetPaymentDetailsQuery_ZeroOrderID(t *testing.T) {
	_, err := queries.NewGetPaymentDetailsQuery(kernel.UUID{})

	require.Error(t, err)
}

func TestGetPaymentDetailsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPaymentDetailsQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPaymentDetailsQueryIsNotConstructed)
}
