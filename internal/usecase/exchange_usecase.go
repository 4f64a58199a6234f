package usecase

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"swapcred/internal/domain/entities"
	"swapcred/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CreateExchangeInput carries the owner-supplied fields of a new exchange
// request. All text fields and at least one image are required; everything is
// immutable after creation (there is no edit operation).
type CreateExchangeInput struct {
	ProductName string
	Brand       string
	Condition   string
	Description string
	Images      []entities.ExchangeImage
}

// DecisionInput carries an administrator's approve/decline decision.
type DecisionInput struct {
	Decision    entities.ExchangeStatus
	Feedback    string
	WarehouseID string
}

// ShippingInput carries the owner's one-time shipment submission.
type ShippingInput struct {
	CarrierName    string
	TrackingNumber string
	ShippingDate   string
	Notes          string
}

// CreditOutcome tags the result of AssignCredit so the partial-success case
// (local credit applied, ledger post failed) stays visible to callers.
type CreditOutcome string

const (
	CreditApplied            CreditOutcome = "applied"
	CreditAppliedWithWarning CreditOutcome = "applied_with_gateway_warning"
)

// CreditAssignment is the tagged result of AssignCredit. GatewayWarning is set
// only for CreditAppliedWithWarning.
type CreditAssignment struct {
	Exchange       entities.ExchangeRequest
	Outcome        CreditOutcome
	GatewayWarning string
}

// IExchangeUseCase is the exchange lifecycle manager: it authorizes the
// caller, validates current-state preconditions against a fresh read, applies
// exactly one conditional mutation, and orchestrates ledger side effects.
type IExchangeUseCase interface {
	Create(ctx context.Context, ownerID string, in CreateExchangeInput) (entities.ExchangeRequest, error)
	GetByID(ctx context.Context, callerID, id string) (entities.ExchangeRequest, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.ExchangeRequest, error)
	ListAll(ctx context.Context, adminID string, status entities.ExchangeStatus) ([]entities.ExchangeRequest, error)
	Decide(ctx context.Context, adminID, id string, in DecisionInput) (entities.ExchangeRequest, error)
	SubmitShipping(ctx context.Context, ownerID, id string, in ShippingInput) (entities.ExchangeRequest, error)
	MarkReceived(ctx context.Context, adminID, id, note string) (entities.ExchangeRequest, error)
	AssignCredit(ctx context.Context, adminID, id string, amount int64, note string) (CreditAssignment, error)
	Complete(ctx context.Context, adminID, id, feedback string) (entities.ExchangeRequest, error)
	Cancel(ctx context.Context, ownerID, id string) error
	AdminDelete(ctx context.Context, adminID, id string) error
}

// ExchangeConfig holds the deployment choices the lifecycle manager needs.
type ExchangeConfig struct {
	// Currency recorded on ledger entries.
	Currency string
	// AllowCompletedDelete permits administrators to delete completed
	// exchanges. The upstream product behaves this way; deployments that want
	// an immutable history set ALLOW_COMPLETED_DELETE=false.
	AllowCompletedDelete bool
	// GatewayTimeout bounds every credit ledger call. Timeout counts as
	// gateway failure, never as success.
	GatewayTimeout time.Duration
}

// ExchangeConfigFromEnv reads CREDIT_CURRENCY, ALLOW_COMPLETED_DELETE and
// CREDIT_GATEWAY_TIMEOUT with production defaults.
func ExchangeConfigFromEnv() ExchangeConfig {
	cfg := ExchangeConfig{
		Currency:             "INR",
		AllowCompletedDelete: true,
		GatewayTimeout:       10 * time.Second,
	}
	if v := strings.TrimSpace(os.Getenv("CREDIT_CURRENCY")); v != "" {
		cfg.Currency = v
	}
	if v := strings.TrimSpace(os.Getenv("ALLOW_COMPLETED_DELETE")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AllowCompletedDelete = b
		}
	}
	if v := strings.TrimSpace(os.Getenv("CREDIT_GATEWAY_TIMEOUT")); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.GatewayTimeout = d
		}
	}
	return cfg
}

type ExchangeUseCase struct {
	repo       interfaces.IExchangeRepository
	warehouses interfaces.IWarehouseRepository
	ledger     interfaces.ICreditLedgerRepository
	gateway    interfaces.ICreditLedgerGateway
	users      interfaces.IUserDirectory
	cfg        ExchangeConfig
}

var _ IExchangeUseCase = (*ExchangeUseCase)(nil)

func NewExchangeUseCase(
	repo interfaces.IExchangeRepository,
	warehouses interfaces.IWarehouseRepository,
	ledger interfaces.ICreditLedgerRepository,
	gateway interfaces.ICreditLedgerGateway,
	users interfaces.IUserDirectory,
	cfg ExchangeConfig,
) *ExchangeUseCase {
	return &ExchangeUseCase{
		repo:       repo,
		warehouses: warehouses,
		ledger:     ledger,
		gateway:    gateway,
		users:      users,
		cfg:        cfg,
	}
}

const maxExchangeImages = 5

func (u *ExchangeUseCase) Create(ctx context.Context, ownerID string, in CreateExchangeInput) (entities.ExchangeRequest, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.ExchangeRequest{}, ErrInvalidCallerID
	}

	in.ProductName = strings.TrimSpace(in.ProductName)
	in.Brand = strings.TrimSpace(in.Brand)
	in.Condition = strings.TrimSpace(in.Condition)
	in.Description = strings.TrimSpace(in.Description)
	switch {
	case in.ProductName == "":
		return entities.ExchangeRequest{}, newValidationError("productName", "required")
	case in.Brand == "":
		return entities.ExchangeRequest{}, newValidationError("brand", "required")
	case in.Condition == "":
		return entities.ExchangeRequest{}, newValidationError("condition", "required")
	case in.Description == "":
		return entities.ExchangeRequest{}, newValidationError("description", "required")
	}
	if len(in.Images) == 0 {
		return entities.ExchangeRequest{}, newValidationError("images", "at least one image is required")
	}
	if len(in.Images) > maxExchangeImages {
		return entities.ExchangeRequest{}, newValidationError("images", "at most 5 images are allowed")
	}
	for _, img := range in.Images {
		if strings.TrimSpace(img.URL) == "" {
			return entities.ExchangeRequest{}, newValidationError("images", "image url is required")
		}
	}

	now := time.Now().UTC()
	e := entities.ExchangeRequest{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Status:      entities.ExchangeStatusPending,
		ProductName: in.ProductName,
		Brand:       in.Brand,
		Condition:   in.Condition,
		Description: in.Description,
		Images:      in.Images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.ExchangeRequest{}, err
	}
	log.Info().Str("exchange_id", created.ID).Str("owner_id", ownerID).Msg("exchange request created")
	return created, nil
}

func (u *ExchangeUseCase) GetByID(ctx context.Context, callerID, id string) (entities.ExchangeRequest, error) {
	callerID = strings.TrimSpace(callerID)
	if callerID == "" {
		return entities.ExchangeRequest{}, ErrInvalidCallerID
	}
	rec, err := u.fetch(ctx, id)
	if err != nil {
		return entities.ExchangeRequest{}, err
	}
	if rec.OwnerID != callerID {
		caller, err := u.users.GetByID(ctx, callerID)
		if err != nil {
			return entities.ExchangeRequest{}, err
		}
		if !caller.IsAdmin {
			return entities.ExchangeRequest{}, ErrNotOwner
		}
	}
	return rec, nil
}

func (u *ExchangeUseCase) ListByOwner(ctx context.Context, ownerID string) ([]entities.ExchangeRequest, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidCallerID
	}
	return u.repo.ListByOwnerID(ctx, ownerID)
}

func (u *ExchangeUseCase) ListAll(ctx context.Context, adminID string, status entities.ExchangeStatus) ([]entities.ExchangeRequest, error) {
	if err := u.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}
	return u.repo.List(ctx, status)
}

func (u *ExchangeUseCase) Decide(ctx context.Context, adminID, id string, in DecisionInput) (entities.ExchangeRequest, error) {
	if err := u.requireAdmin(ctx, adminID); err != nil {
		return entities.ExchangeRequest{}, err
	}
	if in.Decision != entities.ExchangeStatusApproved && in.Decision != entities.ExchangeStatusDeclined {
		return entities.ExchangeRequest{}, newValidationError("status", "decision must be approved or declined")
	}

	rec, err := u.fetch(ctx, id)
	if err != nil {
		return entities.ExchangeRequest{}, err
	}
	if rec.Status != entities.ExchangeStatusPending {
		return entities.ExchangeRequest{}, newStateError("status", string(rec.Status), string(entities.ExchangeStatusPending))
	}

	var warehouseID string
	var info *entities.WarehouseInfo
	if in.Decision == entities.ExchangeStatusApproved {
		warehouseID = strings.TrimSpace(in.WarehouseID)
		if warehouseID == "" {
			return entities.ExchangeRequest{}, newValidationError("warehouseId", "required when approving")
		}
		wh, err := u.warehouses.GetByID(ctx, warehouseID)
		if err != nil {
			return entities.ExchangeRequest{}, err
		}
		if wh.ID == "" || !wh.IsActive {
			return entities.ExchangeRequest{}, newValidationError("warehouseId", "must reference an active warehouse")
		}
		snapshot := wh.Snapshot()
		info = &snapshot
	}

	updated, err := u.repo.UpdateDecision(ctx, rec.ID, in.Decision, strings.TrimSpace(in.Feedback), warehouseID, info)
	if err != nil {
		return entities.ExchangeRequest{}, err
	}
	if updated.ID == "" {
		return entities.ExchangeRequest{}, ErrConcurrentUpdate
	}
	log.Info().
		Str("exchange_id", updated.ID).
		Str("admin_id", adminID).
		Str("decision", string(in.Decision)).
		Str("warehouse_id", warehouseID).
		Msg("exchange request decided")
	return updated, nil
}

func (u *ExchangeUseCase) SubmitShipping(ctx context.Context, ownerID, id string, in ShippingInput) (entities.ExchangeRequest, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.ExchangeRequest{}, ErrInvalidCallerID
	}

	in.CarrierName = strings.TrimSpace(in.CarrierName)
	in.TrackingNumber = strings.TrimSpace(in.TrackingNumber)
	in.ShippingDate = strings.TrimSpace(in.ShippingDate)
	switch {
	case in.CarrierName == "":
		return entities.ExchangeRequest{}, newValidationError("carrierName", "required")
	case in.TrackingNumber == "":
		return entities.ExchangeRequest{}, newValidationError("trackingNumber", "required")
	case in.ShippingDate == "":
		return entities.ExchangeRequest{}, newValidationError("shippingDate", "required")
	}
	if _, err := time.Parse("2006-01-02", in.ShippingDate); err != nil {
		return entities.ExchangeRequest{}, newValidationError("shippingDate", "must be a YYYY-MM-DD date")
	}

	rec, err := u.fetch(ctx, id)
	if err != nil {
		return entities.ExchangeRequest{}, err
	}
	if rec.OwnerID != ownerID {
		return entities.ExchangeRequest{}, ErrNotOwner
	}
	if rec.Status != entities.ExchangeStatusApproved {
		return entities.ExchangeRequest{}, newStateError("status", string(rec.Status), string(entities.ExchangeStatusApproved))
	}
	if rec.Shipping != nil {
		return entities.ExchangeRequest{}, newStateError("shippingDetails", "set", "unset")
	}

	updated, err := u.repo.SetShippingDetails(ctx, rec.ID, entities.ShippingDetails{
		CarrierName:    in.CarrierName,
		TrackingNumber: in.TrackingNumber,
		ShippingDate:   in.ShippingDate,
		Notes:          strings.TrimSpace(in.Notes),
	})
	if err != nil {
		return entities.ExchangeRequest{}, err
	}
	if updated.ID == "" {
		return entities.ExchangeRequest{}, ErrConcurrentUpdate
	}
	log.Info().
		Str("exchange_id", updated.ID).
		Str("owner_id", ownerID).
		Str("carrier", in.CarrierName).
		Str("tracking_number", in.TrackingNumber).
		Msg("shipping details submitted")
	return updated, nil
}

func (u *ExchangeUseCase) MarkReceived(ctx context.Context, adminID, id, note string) (entities.ExchangeRequest, error) {
	if err := u.requireAdmin(ctx, adminID); err != nil {
		return entities.ExchangeRequest{}, err
	}
	rec, err := u.fetch(ctx, id)
	if err != nil {
		return entities.ExchangeRequest{}, err
	}
	if rec.Shipping == nil {
		return entities.ExchangeRequest{}, newStateError("shippingDetails", "unset", "set")
	}
	if rec.TransitStatus == entities.TransitStatusReceived {
		return entities.ExchangeRequest{}, newStateError("transitStatus", string(entities.TransitStatusReceived), string(entities.TransitStatusShipped))
	}

	updated, err := u.repo.MarkReceived(ctx, rec.ID, strings.TrimSpace(note))
	if err != nil {
		return entities.ExchangeRequest{}, err
	}
	if updated.ID == "" {
		return entities.ExchangeRequest{}, ErrConcurrentUpdate
	}
	log.Info().Str("exchange_id", updated.ID).Str("admin_id", adminID).Msg("exchange marked received at warehouse")
	return updated, nil
}

func (u *ExchangeUseCase) AssignCredit(ctx context.Context, adminID, id string, amount int64, note string) (CreditAssignment, error) {
	if err := u.requireAdmin(ctx, adminID); err != nil {
		return CreditAssignment{}, err
	}
	if amount < 0 {
		return CreditAssignment{}, newValidationError("creditAmount", "must be a non-negative integer")
	}

	rec, err := u.fetch(ctx, id)
	if err != nil {
		return CreditAssignment{}, err
	}
	if rec.TransitStatus != entities.TransitStatusReceived {
		return CreditAssignment{}, newStateError("transitStatus", transitLabel(rec.TransitStatus), string(entities.TransitStatusReceived))
	}
	if rec.CreditAssigned() {
		return CreditAssignment{}, newStateError("creditAmount", "assigned", "unassigned")
	}

	updated, err := u.repo.SetCreditAmount(ctx, rec.ID, amount, strings.TrimSpace(note))
	if err != nil {
		return CreditAssignment{}, err
	}
	if updated.ID == "" {
		return CreditAssignment{}, ErrConcurrentUpdate
	}

	// The local assignment is durable at this point. A ledger failure below is
	// surfaced as a warning and recorded in the audit trail, never rolled back:
	// the administrator retries the ledger post out of band.
	gctx, cancel := context.WithTimeout(ctx, u.cfg.GatewayTimeout)
	defer cancel()
	post, gatewayErr := u.gateway.PostCredit(gctx, rec.OwnerID, amount)

	entry := entities.CreditLedgerEntry{
		ID:                    uuid.NewString(),
		ExchangeRequestID:     rec.ID,
		UserID:                rec.OwnerID,
		Amount:                amount,
		Currency:              u.cfg.Currency,
		Type:                  entities.LedgerEntryTypeExchangeCredit,
		Success:               gatewayErr == nil && post.Success,
		ExternalTransactionID: post.ExternalTransactionID,
		CreatedAt:             time.Now().UTC(),
	}
	switch {
	case gatewayErr != nil:
		entry.FailureReason = gatewayErr.Error()
	case !post.Success:
		entry.FailureReason = post.FailureReason
	}
	if _, lerr := u.ledger.Create(ctx, entry); lerr != nil {
		log.Error().Err(lerr).Str("exchange_id", rec.ID).Msg("failed writing credit ledger entry")
	}

	if !entry.Success {
		log.Warn().
			Str("exchange_id", rec.ID).
			Str("owner_id", rec.OwnerID).
			Int64("amount", amount).
			Str("failure_reason", entry.FailureReason).
			Msg("credit applied locally but ledger post failed")
		return CreditAssignment{
			Exchange:       updated,
			Outcome:        CreditAppliedWithWarning,
			GatewayWarning: entry.FailureReason,
		}, nil
	}

	log.Info().
		Str("exchange_id", rec.ID).
		Str("owner_id", rec.OwnerID).
		Int64("amount", amount).
		Str("external_transaction_id", post.ExternalTransactionID).
		Msg("credit assigned and posted to ledger")
	return CreditAssignment{Exchange: updated, Outcome: CreditApplied}, nil
}

func (u *ExchangeUseCase) Complete(ctx context.Context, adminID, id, feedback string) (entities.ExchangeRequest, error) {
	if err := u.requireAdmin(ctx, adminID); err != nil {
		return entities.ExchangeRequest{}, err
	}
	rec, err := u.fetch(ctx, id)
	if err != nil {
		return entities.ExchangeRequest{}, err
	}
	if rec.Status != entities.ExchangeStatusApproved {
		return entities.ExchangeRequest{}, newStateError("status", string(rec.Status), string(entities.ExchangeStatusApproved))
	}
	if rec.TransitStatus != entities.TransitStatusReceived {
		return entities.ExchangeRequest{}, newStateError("transitStatus", transitLabel(rec.TransitStatus), string(entities.TransitStatusReceived))
	}
	if rec.CreditValue() <= 0 {
		return entities.ExchangeRequest{}, newStateError("creditAmount", creditLabel(rec), "positive")
	}

	updated, err := u.repo.Complete(ctx, rec.ID, strings.TrimSpace(feedback))
	if err != nil {
		return entities.ExchangeRequest{}, err
	}
	if updated.ID == "" {
		return entities.ExchangeRequest{}, ErrConcurrentUpdate
	}
	log.Info().Str("exchange_id", updated.ID).Str("admin_id", adminID).Msg("exchange request completed")
	return updated, nil
}

func (u *ExchangeUseCase) Cancel(ctx context.Context, ownerID, id string) error {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return ErrInvalidCallerID
	}
	rec, err := u.fetch(ctx, id)
	if err != nil {
		return err
	}
	if rec.OwnerID != ownerID {
		return ErrNotOwner
	}
	if rec.Status != entities.ExchangeStatusPending {
		return newStateError("status", string(rec.Status), string(entities.ExchangeStatusPending))
	}

	deleted, err := u.repo.DeleteIfPending(ctx, rec.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrConcurrentUpdate
	}
	log.Info().Str("exchange_id", rec.ID).Str("owner_id", ownerID).Msg("pending exchange request cancelled")
	return nil
}

func (u *ExchangeUseCase) AdminDelete(ctx context.Context, adminID, id string) error {
	if err := u.requireAdmin(ctx, adminID); err != nil {
		return err
	}
	rec, err := u.fetch(ctx, id)
	if err != nil {
		return err
	}
	if rec.Status == entities.ExchangeStatusCompleted && !u.cfg.AllowCompletedDelete {
		return newStateError("status", string(entities.ExchangeStatusCompleted), "deletable")
	}

	if err := u.repo.Delete(ctx, rec.ID); err != nil {
		return err
	}
	log.Info().
		Str("exchange_id", rec.ID).
		Str("admin_id", adminID).
		Str("status", string(rec.Status)).
		Msg("exchange request deleted by administrator")
	return nil
}

// fetch re-reads the record so every transition validates against current
// state, never a cached one.
func (u *ExchangeUseCase) fetch(ctx context.Context, id string) (entities.ExchangeRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ExchangeRequest{}, ErrInvalidExchangeID
	}
	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ExchangeRequest{}, err
	}
	if rec.ID == "" {
		return entities.ExchangeRequest{}, ErrExchangeNotFound
	}
	return rec, nil
}

func (u *ExchangeUseCase) requireAdmin(ctx context.Context, adminID string) error {
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

func transitLabel(s entities.TransitStatus) string {
	if s == entities.TransitStatusNotStarted {
		return "not_started"
	}
	return string(s)
}

func creditLabel(e entities.ExchangeRequest) string {
	if !e.CreditAssigned() {
		return "unassigned"
	}
	return strconv.FormatInt(e.CreditValue(), 10)
}
