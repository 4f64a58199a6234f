package usecase

import (
	"context"
	"strings"
	"time"

	"swapcred/internal/domain/entities"
	"swapcred/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// WarehouseInput carries the administrator-supplied warehouse fields. IsActive
// defaults to true when nil.
type WarehouseInput struct {
	Name          string
	AddressLine1  string
	AddressLine2  string
	City          string
	State         string
	PostalCode    string
	Country       string
	ContactPerson string
	ContactPhone  string
	IsActive      *bool
}

// IWarehouseUseCase exposes the warehouse reference-data operations. Every
// call is administrator-only.
type IWarehouseUseCase interface {
	Create(ctx context.Context, adminID string, in WarehouseInput) (entities.Warehouse, error)
	GetByID(ctx context.Context, adminID, id string) (entities.Warehouse, error)
	List(ctx context.Context, adminID string, onlyActive bool) ([]entities.Warehouse, error)
	Update(ctx context.Context, adminID, id string, in WarehouseInput) (entities.Warehouse, error)
	Delete(ctx context.Context, adminID, id string) error
}

type WarehouseUseCase struct {
	repo  interfaces.IWarehouseRepository
	users interfaces.IUserDirectory
}

var _ IWarehouseUseCase = (*WarehouseUseCase)(nil)

func NewWarehouseUseCase(repo interfaces.IWarehouseRepository, users interfaces.IUserDirectory) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, users: users}
}

func (u *WarehouseUseCase) Create(ctx context.Context, adminID string, in WarehouseInput) (entities.Warehouse, error) {
	if err := u.requireAdmin(ctx, adminID); err != nil {
		return entities.Warehouse{}, err
	}
	if err := validateWarehouseInput(&in); err != nil {
		return entities.Warehouse{}, err
	}

	now := time.Now().UTC()
	w := entities.Warehouse{
		ID:            uuid.NewString(),
		Name:          in.Name,
		AddressLine1:  in.AddressLine1,
		AddressLine2:  in.AddressLine2,
		City:          in.City,
		State:         in.State,
		PostalCode:    in.PostalCode,
		Country:       in.Country,
		ContactPerson: in.ContactPerson,
		ContactPhone:  in.ContactPhone,
		IsActive:      in.IsActive == nil || *in.IsActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.repo.Create(ctx, w)
	if err != nil {
		return entities.Warehouse{}, err
	}
	log.Info().Str("warehouse_id", created.ID).Str("admin_id", adminID).Msg("warehouse created")
	return created, nil
}

func (u *WarehouseUseCase) GetByID(ctx context.Context, adminID, id string) (entities.Warehouse, error) {
	if err := u.requireAdmin(ctx, adminID); err != nil {
		return entities.Warehouse{}, err
	}
	return u.fetch(ctx, id)
}

func (u *WarehouseUseCase) List(ctx context.Context, adminID string, onlyActive bool) ([]entities.Warehouse, error) {
	if err := u.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}
	return u.repo.List(ctx, onlyActive)
}

func (u *WarehouseUseCase) Update(ctx context.Context, adminID, id string, in WarehouseInput) (entities.Warehouse, error) {
	if err := u.requireAdmin(ctx, adminID); err != nil {
		return entities.Warehouse{}, err
	}
	if err := validateWarehouseInput(&in); err != nil {
		return entities.Warehouse{}, err
	}
	existing, err := u.fetch(ctx, id)
	if err != nil {
		return entities.Warehouse{}, err
	}

	existing.Name = in.Name
	existing.AddressLine1 = in.AddressLine1
	existing.AddressLine2 = in.AddressLine2
	existing.City = in.City
	existing.State = in.State
	existing.PostalCode = in.PostalCode
	existing.Country = in.Country
	existing.ContactPerson = in.ContactPerson
	existing.ContactPhone = in.ContactPhone
	if in.IsActive != nil {
		existing.IsActive = *in.IsActive
	}
	existing.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		return entities.Warehouse{}, err
	}
	if updated.ID == "" {
		return entities.Warehouse{}, ErrWarehouseNotFound
	}
	log.Info().Str("warehouse_id", updated.ID).Str("admin_id", adminID).Msg("warehouse updated")
	return updated, nil
}

func (u *WarehouseUseCase) Delete(ctx context.Context, adminID, id string) error {
	if err := u.requireAdmin(ctx, adminID); err != nil {
		return err
	}
	if _, err := u.fetch(ctx, id); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Str("warehouse_id", id).Str("admin_id", adminID).Msg("warehouse deleted")
	return nil
}

func (u *WarehouseUseCase) fetch(ctx context.Context, id string) (entities.Warehouse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Warehouse{}, ErrInvalidWarehouseID
	}
	w, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Warehouse{}, err
	}
	if w.ID == "" {
		return entities.Warehouse{}, ErrWarehouseNotFound
	}
	return w, nil
}

func (u *WarehouseUseCase) requireAdmin(ctx context.Context, adminID string) error {
	adminID = strings.TrimSpace(adminID)
	if adminID == "" {
		return ErrInvalidCallerID
	}
	caller, err := u.users.GetByID(ctx, adminID)
	if err != nil {
		return err
	}
	if caller.ID == "" {
		return ErrUserNotFound
	}
	if !caller.IsAdmin {
		return ErrAdminRequired
	}
	return nil
}

func validateWarehouseInput(in *WarehouseInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.AddressLine1 = strings.TrimSpace(in.AddressLine1)
	in.AddressLine2 = strings.TrimSpace(in.AddressLine2)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.TrimSpace(in.State)
	in.PostalCode = strings.TrimSpace(in.PostalCode)
	in.Country = strings.TrimSpace(in.Country)
	in.ContactPerson = strings.TrimSpace(in.ContactPerson)
	in.ContactPhone = strings.TrimSpace(in.ContactPhone)
	switch {
	case in.Name == "":
		return newValidationError("name", "required")
	case in.AddressLine1 == "":
		return newValidationError("addressLine1", "required")
	case in.City == "":
		return newValidationError("city", "required")
	case in.PostalCode == "":
		return newValidationError("postalCode", "required")
	case in.Country == "":
		return newValidationError("country", "required")
	}
	return nil
}
