package interfaces

import (
	"context"
	"swapcred/internal/domain/entities"
)

// IWarehouseRepository abstracts DynamoDB persistence for Warehouse.
type IWarehouseRepository interface {
	Create(ctx context.Context, w entities.Warehouse) (entities.Warehouse, error)
	GetByID(ctx context.Context, id string) (entities.Warehouse, error)
	List(ctx context.Context, onlyActive bool) ([]entities.Warehouse, error)
	Update(ctx context.Context, w entities.Warehouse) (entities.Warehouse, error)
	Delete(ctx context.Context, id string) error
}
