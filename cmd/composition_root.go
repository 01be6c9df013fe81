package cmd

import (
	"booking/internal/adapters/out/postgres"
	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/application/usecases/queries"
	"booking/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB           *gorm.DB
	uowFactory       postgres.GormUnitOfWorkFactory
	notifier         ports.AvailabilityNotifier
	fulfilmentClient ports.FulfilmentClient
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	notifier ports.AvailabilityNotifier,
	fulfilmentClient ports.FulfilmentClient,
) CompositionRoot {
	return CompositionRoot{
		gormDB:           gormDB,
		uowFactory:       *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:         notifier,
		fulfilmentClient: fulfilmentClient,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestAvailabilityCommandHandler() commands.RequestAvailabilityCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestAvailabilityCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateConfirmAvailabilityCommandHandler() commands.ConfirmAvailabilityCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateScheduleLegCommandHandler() commands.ScheduleLegCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewScheduleLegCommandHandler(f)
}

func (c *CompositionRoot) CreateFinalizeScheduleCommandHandler() commands.FinalizeScheduleCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFinalizeScheduleCommandHandler(f)
}

func (c *CompositionRoot) CreateResetScheduleCommandHandler() commands.ResetScheduleCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResetScheduleCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordProgressCommandHandler() commands.RecordProgressCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordProgressCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignGroupDateCommandHandler() commands.AssignGroupDateCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignGroupDateCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchGroupCommandHandler() commands.DispatchGroupCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchGroupCommandHandler(f, c.fulfilmentClient)
}

func (c *CompositionRoot) CreateSendAvailabilityRemindersCommandHandler() commands.SendAvailabilityRemindersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendAvailabilityRemindersCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateGetPendingScheduleOrdersQueryHandler() queries.GetPendingScheduleOrdersQueryHandler {
	return queries.NewGetPendingScheduleOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSchedulingGroupsQueryHandler() queries.GetSchedulingGroupsQueryHandler {
	return queries.NewGetSchedulingGroupsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
