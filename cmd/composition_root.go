package cmd

import (
	"gorm.io/gorm"

	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/ports"
)

// defaultEtaMinutes is the flat delivery estimate until a routing-aware
// estimator replaces FixedEtaEstimator.
const defaultEtaMinutes = 30

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	estimator  ports.EtaEstimator
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, publisher ports.EventPublisher) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		estimator:  ports.NewFixedEtaEstimator(defaultEtaMinutes),
	}
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f, c.estimator, c.publisher)
}

func (c *CompositionRoot) CreateUpdateDeliveryCommandHandler() commands.UpdateDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignAgentCommandHandler() commands.AssignAgentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignAgentCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateAutoAssignDeliveryCommandHandler() commands.AutoAssignDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAutoAssignDeliveryCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateAssignPendingDeliveriesCommandHandler() commands.AssignPendingDeliveriesCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignPendingDeliveriesCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateRegisterAgentCommandHandler() commands.RegisterAgentCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterAgentCommandHandler(f)
}

func (c *CompositionRoot) CreateInviteAgentCommandHandler() commands.InviteAgentCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewInviteAgentCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveAgentCommandHandler() commands.ApproveAgentCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveAgentCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateAgentStatusCommandHandler() commands.UpdateAgentStatusCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateAgentStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteAgentCommandHandler() commands.DeleteAgentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteAgentCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllDeliveriesQueryHandler() queries.GetAllDeliveriesQueryHandler {
	return queries.NewGetAllDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingDeliveriesQueryHandler() queries.GetPendingDeliveriesQueryHandler {
	return queries.NewGetPendingDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveriesByCustomerQueryHandler() queries.GetDeliveriesByCustomerQueryHandler {
	return queries.NewGetDeliveriesByCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveriesByAgentQueryHandler() queries.GetDeliveriesByAgentQueryHandler {
	return queries.NewGetDeliveriesByAgentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryByOrderQueryHandler() queries.GetDeliveryByOrderQueryHandler {
	return queries.NewGetDeliveryByOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableAgentsQueryHandler() queries.GetAvailableAgentsQueryHandler {
	return queries.NewGetAvailableAgentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingAgentsQueryHandler() queries.GetPendingAgentsQueryHandler {
	return queries.NewGetPendingAgentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAgentByIDQueryHandler() queries.GetAgentByIDQueryHandler {
	return queries.NewGetAgentByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAgentByEmailQueryHandler() queries.GetAgentByEmailQueryHandler {
	return queries.NewGetAgentByEmailQueryHandler(c.gormDB)
}

type FuncAgentUoWFactory func() commands.AgentUoW

func (f FuncAgentUoWFactory) Create() commands.AgentUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
