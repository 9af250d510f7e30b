package jobs

import (
	"context"
	"log/slog"

	"shipment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ShipmentAdvancementJob manages the scheduled progression of shipments.
// Runs every minute to append the next tracking event for each confirmed
// booking until it is delivered.
type ShipmentAdvancementJob struct {
	handler commands.AdvanceShipmentsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewShipmentAdvancementJob creates a new job for advancing shipments.
// Uses AdvanceShipmentsCommandHandler to process tracking updates every minute.
func NewShipmentAdvancementJob(handler commands.AdvanceShipmentsCommandHandler, logger *slog.Logger) *ShipmentAdvancementJob {
	return &ShipmentAdvancementJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "shipment_advancement_job"),
	}
}

// Start begins the shipment advancement job to run every minute.
func (j *ShipmentAdvancementJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAdvanceShipmentsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Shipment advancement job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shipment advancement job started (running every minute)")
	return nil
}

// Stop stops the shipment advancement job.
func (j *ShipmentAdvancementJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shipment advancement job stopped")
}
