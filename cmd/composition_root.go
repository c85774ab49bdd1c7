package cmd

import (
	"orderadmin/internal/adapters/out/media"
	"orderadmin/internal/adapters/out/postgres"
	"orderadmin/internal/core/application/usecases/commands"
	"orderadmin/internal/core/application/usecases/queries"
	"orderadmin/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      ports.Clock
	resolver   media.CloudinaryResolver
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      ports.SystemClock{},
		resolver:   media.NewCloudinaryResolver(configs.MediaCloudName, configs.MediaFolder),
	}
}

func (c *CompositionRoot) GormDB() *gorm.DB {
	return c.gormDB
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateUpdatePaymentCommandHandler() commands.UpdatePaymentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePaymentCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() commands.CancelStaleOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelStaleOrdersCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGetOrderTransitionsQueryHandler() queries.GetOrderTransitionsQueryHandler {
	return queries.NewGetOrderTransitionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() queries.GetOrderDetailsQueryHandler {
	return queries.NewGetOrderDetailsQueryHandler(c.gormDB, c.resolver)
}

func (c *CompositionRoot) CreateGetOrderItemsQueryHandler() queries.GetOrderItemsQueryHandler {
	return queries.NewGetOrderItemsQueryHandler(c.gormDB, c.resolver)
}

func (c *CompositionRoot) CreateGetDashboardSummaryQueryHandler() queries.GetDashboardSummaryQueryHandler {
	return queries.NewGetDashboardSummaryQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateGetCustomerDetailsQueryHandler() queries.GetCustomerDetailsQueryHandler {
	return queries.NewGetCustomerDetailsQueryHandler(c.gormDB, c.resolver)
}

func (c *CompositionRoot) CreateGetPaymentDetailsQueryHandler() queries.GetPaymentDetailsQueryHandler {
	return queries.NewGetPaymentDetailsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
