package cmd

import (
	"log/slog"

	"laundry/internal/adapters/out/postgres"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/services"
	"laundry/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	pricing    services.PricingPolicy
	company    queries.CompanyInfo
}

func NewCompositionRoot(
	gormDB *gorm.DB,
	pricing services.PricingPolicy,
	company queries.CompanyInfo,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		pricing:    pricing,
		company:    company,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.pricing)
}

func (c *CompositionRoot) CreateCreateStaffCommandHandler() commands.CreateStaffCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateStaffCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderStatusCommandHandler(f, c.pricing)
}

func (c *CompositionRoot) CreateAssignStaffCommandHandler() commands.AssignStaffCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignStaffCommandHandler(f)
}

func (c *CompositionRoot) CreateDetachStaffCommandHandler() commands.DetachStaffCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDetachStaffCommandHandler(f)
}

func (c *CompositionRoot) CreateReviewItemQualityCommandHandler() commands.ReviewItemQualityCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewItemQualityCommandHandler(f, c.pricing, commands.CustomerReviewAuthorizer)
}

func (c *CompositionRoot) CreateAutoAssignStaffCommandHandler() commands.AutoAssignStaffCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAutoAssignStaffCommandHandler(f)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateAutoAssignStaffCommandHandler(), logger)
}

func (c *CompositionRoot) CreateGetUncompletedOrdersQueryHandler() queries.GetUncompletedOrdersQueryHandler {
	return queries.NewGetUncompletedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllStaffQueryHandler() queries.GetAllStaffQueryHandler {
	return queries.NewGetAllStaffQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInvoiceQueryHandler() queries.GetInvoiceQueryHandler {
	return queries.NewGetInvoiceQueryHandler(c.gormDB, c.pricing, c.company)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
