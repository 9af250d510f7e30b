package cmd

import (
	"net/http"
	"time"

	"shipment/internal/adapters/out/carrier"
	"shipment/internal/adapters/out/postgres"
	"shipment/internal/adapters/out/postgres/tariffrepo"
	"shipment/internal/core/application/usecases/commands"
	"shipment/internal/core/application/usecases/queries"
	"shipment/internal/core/domain/services"
	"shipment/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	tariffs    ports.TariffRepository
	gateway    ports.CarrierGateway
	distance   ports.DistanceCalculator
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		tariffs:    tariffrepo.NewGormTariffRepository(gormDB),
		gateway: carrier.NewHTTPGateway(
			configs.CarrierAPIBaseURL,
			&http.Client{Timeout: carrierTimeout(configs)},
		),
		distance: services.NewHashDistanceCalculator(),
	}
}

func carrierTimeout(configs Config) time.Duration {
	timeout, err := time.ParseDuration(configs.CarrierTimeout)
	if err != nil || timeout <= 0 {
		return 10 * time.Second
	}
	return timeout
}

func (c *CompositionRoot) CreateCreateBookingCommandHandler() commands.CreateBookingCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBookingCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateAdvanceShipmentsCommandHandler() commands.AdvanceShipmentsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceShipmentsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetShippingRatesQueryHandler() queries.GetShippingRatesQueryHandler {
	return queries.NewGetShippingRatesQueryHandler(c.tariffs, c.distance)
}

func (c *CompositionRoot) CreateTrackShipmentQueryHandler() queries.TrackShipmentQueryHandler {
	return queries.NewTrackShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCalculateEstimateQueryHandler() queries.CalculateEstimateQueryHandler {
	return queries.NewCalculateEstimateQueryHandler(c.tariffs, c.distance)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
