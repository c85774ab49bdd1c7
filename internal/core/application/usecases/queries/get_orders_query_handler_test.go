package queries_test

import (
	"context"
	"testing"
	"time"

	"orderadmin/internal/adapters/out/postgres/customerrepo"
	"orderadmin/internal/adapters/out/postgres/orderrepo"
	"orderadmin/internal/adapters/out/postgres/paymentrepo"
	"orderadmin/internal/core/application/usecases/queries"
	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/core/domain/model/payment"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type GetOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	now       time.Time
	handler   queries.GetOrdersQueryHandler
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupSuite() {
	suite.container, suite.db = setupPostgres(&suite.Suite)
	suite.now = time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	suite.handler = queries.NewGetOrdersQueryHandler(suite.db, fixedClock{now: suite.now})
}

func (suite *GetOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupTest() {
	for _, table := range []string{"orders", "payments", "customers"} {
		err := suite.db.Exec("TRUNCATE TABLE " + table + " CASCADE").Error
		suite.Require().NoError(err)
	}
}

func (suite *GetOrdersQueryHandlerTestSuite) saveCustomer(name, phone string) kernel.UUID {
	id := kernel.NewUUID()
	dto := customerrepo.CustomerDTO{
		ID:    id.Bytes(),
		Name:  name,
		Phone: phone,
		Email: name + "@example.com",
	}
	err := suite.db.Create(&dto).Error
	suite.Require().NoError(err)
	return id
}

func (suite *GetOrdersQueryHandlerTestSuite) saveOrder(
	customerID kernel.UUID,
	status order.Status,
	mode order.PaymentMode,
	orderDate time.Time,
) kernel.UUID {
	id := kernel.NewUUID()
	ord, err := order.RestoreOrder(id, customerID, 499, mode, status, orderDate, nil, "")
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	err = repo.Add(context.Background(), ord)
	suite.Require().NoError(err)
	return id
}

func (suite *GetOrdersQueryHandlerTestSuite) savePayment(orderID kernel.UUID, status payment.Status, txn string) {
	p, err := payment.NewPayment(kernel.NewUUID(), orderID, 499, order.PaymentModeOnline, payment.StatusPending)
	suite.Require().NoError(err)
	err = p.Update(status, txn, suite.now)
	suite.Require().NoError(err)

	repo := paymentrepo.NewGormPaymentRepository(suite.db, &mockAggregateTracker{})
	err = repo.Add(context.Background(), p)
	suite.Require().NoError(err)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetOrdersQuery(queries.FilterAll)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_AllFilter_ReturnsNewestFirstWithJoins() {
	customerID := suite.saveCustomer("Asha", "9000000001")
	older := suite.saveOrder(customerID, order.Pending, order.PaymentModeCOD, suite.now.Add(-48*time.Hour))
	newer := suite.saveOrder(customerID, order.Confirmed, order.PaymentModeOnline, suite.now.Add(-time.Hour))
	suite.savePayment(newer, payment.StatusCompleted, "TXN-777")

	query, err := queries.NewGetOrdersQuery(queries.FilterAll)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(newer, result[0].ID)
	suite.Equal("Asha", result[0].CustomerName)
	suite.Equal("9000000001", result[0].CustomerPhone)
	suite.Equal("confirmed", result[0].Status)
	suite.Equal("completed", result[0].PaymentStatus)
	suite.Equal("TXN-777", result[0].TransactionID)

	suite.Equal(older, result[1].ID)
	suite.Equal("pending", result[1].Status)
	suite.Empty(result[1].PaymentStatus)
	suite.Empty(result[1].TransactionID)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_StatusFilters() {
	customerID := suite.saveCustomer("Ravi", "9000000002")
	pendingID := suite.saveOrder(customerID, order.Pending, order.PaymentModeCOD, suite.now.Add(-time.Hour))
	deliveredID := suite.saveOrder(customerID, order.Delivered, order.PaymentModeOnline, suite.now.Add(-2*time.Hour))
	cancelledID := suite.saveOrder(customerID, order.Cancelled, order.PaymentModeCOD, suite.now.Add(-3*time.Hour))

	testCases := []struct {
		filter   queries.OrdersFilter
		expected kernel.UUID
	}{
		{queries.FilterPending, pendingID},
		{queries.FilterDelivered, deliveredID},
		{queries.FilterCancelled, cancelledID},
	}

	for _, tc := range testCases {
		query, err := queries.NewGetOrdersQuery(tc.filter)
		suite.Require().NoError(err)

		result, err := suite.handler.Handle(context.Background(), query)

		suite.Require().NoError(err)
		suite.Require().Len(result, 1, "filter %s", tc.filter)
		suite.Equal(tc.expected, result[0].ID)
	}
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_TodayFilter_UsesClockDayBoundary() {
	customerID := suite.saveCustomer("Meena", "9000000003")
	todayID := suite.saveOrder(customerID, order.Pending, order.PaymentModeCOD, suite.now.Add(-2*time.Hour))
	suite.saveOrder(customerID, order.Pending, order.PaymentModeCOD, suite.now.Add(-24*time.Hour))

	query, err := queries.NewGetOrdersQuery(queries.FilterToday)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(todayID, result[0].ID)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_CODFilter_IgnoresStatus() {
	customerID := suite.saveCustomer("Irfan", "9000000004")
	codPending := suite.saveOrder(customerID, order.Pending, order.PaymentModeCOD, suite.now.Add(-time.Hour))
	codDelivered := suite.saveOrder(customerID, order.Delivered, order.PaymentModeCOD, suite.now.Add(-2*time.Hour))
	suite.saveOrder(customerID, order.Pending, order.PaymentModeOnline, suite.now.Add(-3*time.Hour))

	query, err := queries.NewGetOrdersQuery(queries.FilterCOD)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(codPending, result[0].ID)
	suite.Equal(codDelivered, result[1].ID)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetOrdersQuery constructor")
}

func TestGetOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrdersQueryHandlerTestSuite))
}
