package commands

import (
	"errors"

	"shipment/internal/pkg/guard"
)

// AdvanceShipmentsCommand triggers progression of all active shipments along
// their tracking journey. This batch operation appends the next tracking
// event for every confirmed booking that has not been delivered yet.
//
// Example:
//
//	cmd := NewAdvanceShipmentsCommand()
//	handler := NewAdvanceShipmentsCommandHandler(uowFactory)
//
//	// Run periodically to simulate carrier scans
//	ticker := time.NewTicker(time.Minute)
//	for range ticker.C {
//	    if err := handler.Handle(ctx, cmd); err != nil {
//	        log.Printf("Shipment advancement failed: %v", err)
//	    }
//	}
type AdvanceShipmentsCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrAdvanceShipmentsCommandIsNotConstructed = errors.New(
		"AdvanceShipmentsCommand must be created via NewAdvanceShipmentsCommand constructor",
	)
)

// NewAdvanceShipmentsCommand creates a command to progress active shipments.
// This is a parameterless command that processes all confirmed bookings.
func NewAdvanceShipmentsCommand() AdvanceShipmentsCommand {
	command := AdvanceShipmentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceShipmentsCommandIsNotConstructed if validation fails.
func (c *AdvanceShipmentsCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceShipmentsCommandIsNotConstructed)
}
