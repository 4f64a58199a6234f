package interfaces

import (
	"context"
	"swapcred/internal/domain/entities"
)

// IExchangeRepository abstracts DynamoDB persistence for ExchangeRequest.
//
// Every transition method is a single conditional read-modify-write: the
// condition encodes the precondition of the transition (previous status,
// transit state, credit unset) so two concurrent writers cannot both satisfy a
// stale precondition. A transition whose condition no longer holds returns the
// zero entity, which callers interpret against the state they just validated.
type IExchangeRepository interface {
	Create(ctx context.Context, e entities.ExchangeRequest) (entities.ExchangeRequest, error)
	GetByID(ctx context.Context, id string) (entities.ExchangeRequest, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]entities.ExchangeRequest, error)
	List(ctx context.Context, status entities.ExchangeStatus) ([]entities.ExchangeRequest, error)

	// UpdateDecision moves pending -> approved|declined. info carries the
	// warehouse snapshot for approvals and must be nil for declines.
	UpdateDecision(ctx context.Context, id string, decision entities.ExchangeStatus, feedback, warehouseID string, info *entities.WarehouseInfo) (entities.ExchangeRequest, error)

	// SetShippingDetails records the owner's shipment once, only while
	// approved, and moves transit to shipped.
	SetShippingDetails(ctx context.Context, id string, d entities.ShippingDetails) (entities.ExchangeRequest, error)

	// MarkReceived moves transit to received once shipping details exist.
	MarkReceived(ctx context.Context, id, note string) (entities.ExchangeRequest, error)

	// SetCreditAmount assigns credit exactly once, only while received.
	SetCreditAmount(ctx context.Context, id string, amount int64, note string) (entities.ExchangeRequest, error)

	// Complete moves approved -> completed, requiring received transit and a
	// positive assigned credit.
	Complete(ctx context.Context, id, feedback string) (entities.ExchangeRequest, error)

	// DeleteIfPending removes the record only while still pending; the bool
	// reports whether a record was actually deleted.
	DeleteIfPending(ctx context.Context, id string) (bool, error)

	Delete(ctx context.Context, id string) error
}
