package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"swapcred/internal/domain/entities"
	mock_interfaces "swapcred/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type exchangeFixture struct {
	repo       *mock_interfaces.MockIExchangeRepository
	warehouses *mock_interfaces.MockIWarehouseRepository
	ledger     *mock_interfaces.MockICreditLedgerRepository
	gateway    *mock_interfaces.MockICreditLedgerGateway
	users      *mock_interfaces.MockIUserDirectory
	uc         *ExchangeUseCase
}

func newExchangeFixture(t *testing.T, cfg ExchangeConfig) *exchangeFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &exchangeFixture{
		repo:       mock_interfaces.NewMockIExchangeRepository(ctrl),
		warehouses: mock_interfaces.NewMockIWarehouseRepository(ctrl),
		ledger:     mock_interfaces.NewMockICreditLedgerRepository(ctrl),
		gateway:    mock_interfaces.NewMockICreditLedgerGateway(ctrl),
		users:      mock_interfaces.NewMockIUserDirectory(ctrl),
	}
	f.uc = NewExchangeUseCase(f.repo, f.warehouses, f.ledger, f.gateway, f.users, cfg)
	return f
}

func testConfig() ExchangeConfig {
	return ExchangeConfig{
		Currency:             "INR",
		AllowCompletedDelete: true,
		GatewayTimeout:       time.Second,
	}
}

func (f *exchangeFixture) expectAdmin(id string) {
	f.users.EXPECT().GetByID(gomock.Any(), id).Return(entities.User{ID: id, IsAdmin: true}, nil)
}

func validCreateInput() CreateExchangeInput {
	return CreateExchangeInput{
		ProductName: "Noise cancelling headphones",
		Brand:       "Sonica",
		Condition:   "like new",
		Description: "Used twice, original box included",
		Images:      []entities.ExchangeImage{{URL: "https://img.example/1.jpg"}},
	}
}

func approvedExchange(id, owner string) entities.ExchangeRequest {
	return entities.ExchangeRequest{
		ID:      id,
		OwnerID: owner,
		Status:  entities.ExchangeStatusApproved,
	}
}

func TestExchangeUseCase_Create(t *testing.T) {
	t.Run("invalid owner id", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		_, err := f.uc.Create(context.Background(), "   ", validCreateInput())
		if !errors.Is(err, ErrInvalidCallerID) {
			t.Fatalf("expected ErrInvalidCallerID, got %v", err)
		}
	})

	t.Run("missing product name", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		in := validCreateInput()
		in.ProductName = "  "
		_, err := f.uc.Create(context.Background(), "owner-1", in)
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "productName" {
			t.Fatalf("expected productName validation error, got %v", err)
		}
	})

	t.Run("no images", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		in := validCreateInput()
		in.Images = nil
		_, err := f.uc.Create(context.Background(), "owner-1", in)
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "images" {
			t.Fatalf("expected images validation error, got %v", err)
		}
	})

	t.Run("too many images", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		in := validCreateInput()
		for i := 0; i < 6; i++ {
			in.Images = append(in.Images, entities.ExchangeImage{URL: "https://img.example/x.jpg"})
		}
		_, err := f.uc.Create(context.Background(), "owner-1", in)
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "images" {
			t.Fatalf("expected images validation error, got %v", err)
		}
	})

	t.Run("success starts pending", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.ExchangeRequest) (entities.ExchangeRequest, error) {
				if e.ID == "" {
					t.Fatal("expected generated id")
				}
				if e.Status != entities.ExchangeStatusPending {
					t.Fatalf("expected pending status, got %s", e.Status)
				}
				if e.TransitStatus != entities.TransitStatusNotStarted {
					t.Fatalf("expected transit not started, got %q", e.TransitStatus)
				}
				if e.CreditAmount != nil {
					t.Fatal("expected no credit on creation")
				}
				return e, nil
			})

		created, err := f.uc.Create(context.Background(), "owner-1", validCreateInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.OwnerID != "owner-1" {
			t.Fatalf("expected owner-1, got %s", created.OwnerID)
		}
	})
}

func TestExchangeUseCase_GetByID(t *testing.T) {
	rec := approvedExchange("ex-1", "owner-1")

	t.Run("owner reads own record", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(rec, nil)
		got, err := f.uc.GetByID(context.Background(), "owner-1", "ex-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "ex-1" {
			t.Fatalf("expected ex-1, got %s", got.ID)
		}
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(rec, nil)
		f.users.EXPECT().GetByID(gomock.Any(), "owner-2").Return(entities.User{ID: "owner-2"}, nil)
		_, err := f.uc.GetByID(context.Background(), "owner-2", "ex-1")
		if !errors.Is(err, ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("admin reads any record", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(rec, nil)
		f.users.EXPECT().GetByID(gomock.Any(), "admin").Return(entities.User{ID: "admin", IsAdmin: true}, nil)
		if _, err := f.uc.GetByID(context.Background(), "admin", "ex-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.ExchangeRequest{}, nil)
		_, err := f.uc.GetByID(context.Background(), "owner-1", "missing")
		if !errors.Is(err, ErrExchangeNotFound) {
			t.Fatalf("expected ErrExchangeNotFound, got %v", err)
		}
	})
}

func TestExchangeUseCase_Decide(t *testing.T) {
	pending := entities.ExchangeRequest{ID: "ex-1", OwnerID: "owner-1", Status: entities.ExchangeStatusPending}

	t.Run("non-admin rejected", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.users.EXPECT().GetByID(gomock.Any(), "owner-1").Return(entities.User{ID: "owner-1"}, nil)
		_, err := f.uc.Decide(context.Background(), "owner-1", "ex-1", DecisionInput{Decision: entities.ExchangeStatusApproved})
		if !errors.Is(err, ErrAdminRequired) {
			t.Fatalf("expected ErrAdminRequired, got %v", err)
		}
	})

	t.Run("decision must be approved or declined", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.expectAdmin("admin")
		_, err := f.uc.Decide(context.Background(), "admin", "ex-1", DecisionInput{Decision: entities.ExchangeStatusCompleted})
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("not pending", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.expectAdmin("admin")
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(approvedExchange("ex-1", "owner-1"), nil)
		_, err := f.uc.Decide(context.Background(), "admin", "ex-1", DecisionInput{Decision: entities.ExchangeStatusDeclined})
		var sErr *StateError
		if !errors.As(err, &sErr) {
			t.Fatalf("expected state error, got %v", err)
		}
	})

	t.Run("approval requires warehouse", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.expectAdmin("admin")
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(pending, nil)
		_, err := f.uc.Decide(context.Background(), "admin", "ex-1", DecisionInput{Decision: entities.ExchangeStatusApproved})
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "warehouseId" {
			t.Fatalf("expected warehouseId validation error, got %v", err)
		}
	})

	t.Run("approval rejects inactive warehouse", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.expectAdmin("admin")
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(pending, nil)
		f.warehouses.EXPECT().GetByID(gomock.Any(), "wh-1").Return(entities.Warehouse{ID: "wh-1", IsActive: false}, nil)
		_, err := f.uc.Decide(context.Background(), "admin", "ex-1", DecisionInput{Decision: entities.ExchangeStatusApproved, WarehouseID: "wh-1"})
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("approval snapshots the warehouse", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.expectAdmin("admin")
		wh := entities.Warehouse{ID: "wh-1", Name: "Mumbai DC", AddressLine1: "Plot 4", City: "Mumbai", PostalCode: "400001", Country: "IN", IsActive: true}
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(pending, nil)
		f.warehouses.EXPECT().GetByID(gomock.Any(), "wh-1").Return(wh, nil)
		f.repo.EXPECT().
			UpdateDecision(gomock.Any(), "ex-1", entities.ExchangeStatusApproved, "looks good", "wh-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, decision entities.ExchangeStatus, feedback, warehouseID string, info *entities.WarehouseInfo) (entities.ExchangeRequest, error) {
				if info == nil || info.Name != "Mumbai DC" {
					t.Fatalf("expected warehouse snapshot, got %+v", info)
				}
				out := pending
				out.Status = decision
				out.WarehouseID = warehouseID
				out.WarehouseInfo = info
				return out, nil
			})

		updated, err := f.uc.Decide(context.Background(), "admin", "ex-1", DecisionInput{
			Decision:    entities.ExchangeStatusApproved,
			Feedback:    "looks good",
			WarehouseID: "wh-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.ExchangeStatusApproved {
			t.Fatalf("expected approved, got %s", updated.Status)
		}
	})

	t.Run("decline needs no warehouse", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.expectAdmin("admin")
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(pending, nil)
		f.repo.EXPECT().
			UpdateDecision(gomock.Any(), "ex-1", entities.ExchangeStatusDeclined, "damaged beyond use", "", nil).
			Return(entities.ExchangeRequest{ID: "ex-1", Status: entities.ExchangeStatusDeclined}, nil)

		updated, err := f.uc.Decide(context.Background(), "admin", "ex-1", DecisionInput{
			Decision: entities.ExchangeStatusDeclined,
			Feedback: "damaged beyond use",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.ExchangeStatusDeclined {
			t.Fatalf("expected declined, got %s", updated.Status)
		}
	})

	t.Run("lost race surfaces concurrent update", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.expectAdmin("admin")
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(pending, nil)
		f.repo.EXPECT().
			UpdateDecision(gomock.Any(), "ex-1", entities.ExchangeStatusDeclined, "", "", nil).
			Return(entities.ExchangeRequest{}, nil)
		_, err := f.uc.Decide(context.Background(), "admin", "ex-1", DecisionInput{Decision: entities.ExchangeStatusDeclined})
		if !errors.Is(err, ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})
}

func TestExchangeUseCase_SubmitShipping(t *testing.T) {
	validInput := ShippingInput{CarrierName: "BlueDart", TrackingNumber: "BD123", ShippingDate: "2026-08-20"}

	t.Run("bad date", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		in := validInput
		in.ShippingDate = "20-08-2026"
		_, err := f.uc.SubmitShipping(context.Background(), "owner-1", "ex-1", in)
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "shippingDate" {
			t.Fatalf("expected shippingDate validation error, got %v", err)
		}
	})

	t.Run("only the owner ships", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(approvedExchange("ex-1", "owner-1"), nil)
		_, err := f.uc.SubmitShipping(context.Background(), "owner-2", "ex-1", validInput)
		if !errors.Is(err, ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("requires approved status", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		rec := entities.ExchangeRequest{ID: "ex-1", OwnerID: "owner-1", Status: entities.ExchangeStatusPending}
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(rec, nil)
		_, err := f.uc.SubmitShipping(context.Background(), "owner-1", "ex-1", validInput)
		var sErr *StateError
		if !errors.As(err, &sErr) {
			t.Fatalf("expected state error, got %v", err)
		}
	})

	t.Run("rejects a second submission", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		rec := approvedExchange("ex-1", "owner-1")
		rec.Shipping = &entities.ShippingDetails{CarrierName: "BlueDart"}
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(rec, nil)
		_, err := f.uc.SubmitShipping(context.Background(), "owner-1", "ex-1", validInput)
		var sErr *StateError
		if !errors.As(err, &sErr) {
			t.Fatalf("expected state error, got %v", err)
		}
	})

	t.Run("success moves transit to shipped", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(approvedExchange("ex-1", "owner-1"), nil)
		f.repo.EXPECT().
			SetShippingDetails(gomock.Any(), "ex-1", entities.ShippingDetails{CarrierName: "BlueDart", TrackingNumber: "BD123", ShippingDate: "2026-08-20"}).
			Return(entities.ExchangeRequest{ID: "ex-1", TransitStatus: entities.TransitStatusShipped}, nil)
		updated, err := f.uc.SubmitShipping(context.Background(), "owner-1", "ex-1", validInput)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.TransitStatus != entities.TransitStatusShipped {
			t.Fatalf("expected shipped transit, got %q", updated.TransitStatus)
		}
	})
}

func TestExchangeUseCase_MarkReceived(t *testing.T) {
	t.Run("requires shipping details", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.expectAdmin("admin")
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(approvedExchange("ex-1", "owner-1"), nil)
		_, err := f.uc.MarkReceived(context.Background(), "admin", "ex-1", "")
		var sErr *StateError
		if !errors.As(err, &sErr) {
			t.Fatalf("expected state error, got %v", err)
		}
	})

	t.Run("idempotent receipt is rejected", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.expectAdmin("admin")
		rec := approvedExchange("ex-1", "owner-1")
		rec.Shipping = &entities.ShippingDetails{CarrierName: "BlueDart"}
		rec.TransitStatus = entities.TransitStatusReceived
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(rec, nil)
		_, err := f.uc.MarkReceived(context.Background(), "admin", "ex-1", "")
		var sErr *StateError
		if !errors.As(err, &sErr) {
			t.Fatalf("expected state error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.expectAdmin("admin")
		rec := approvedExchange("ex-1", "owner-1")
		rec.Shipping = &entities.ShippingDetails{CarrierName: "BlueDart"}
		rec.TransitStatus = entities.TransitStatusShipped
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(rec, nil)
		f.repo.EXPECT().MarkReceived(gomock.Any(), "ex-1", "intact").
			Return(entities.ExchangeRequest{ID: "ex-1", TransitStatus: entities.TransitStatusReceived}, nil)
		updated, err := f.uc.MarkReceived(context.Background(), "admin", "ex-1", "intact")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.TransitStatus != entities.TransitStatusReceived {
			t.Fatalf("expected received, got %q", updated.TransitStatus)
		}
	})
}

func receivedExchange(id, owner string) entities.ExchangeRequest {
	rec := approvedExchange(id, owner)
	rec.Shipping = &entities.ShippingDetails{CarrierName: "BlueDart"}
	rec.TransitStatus = entities.TransitStatusReceived
	return rec
}

func TestExchangeUseCase_AssignCredit(t *testing.T) {
	t.Run("negative amount", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.expectAdmin("admin")
		_, err := f.uc.AssignCredit(context.Background(), "admin", "ex-1", -1, "")
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "creditAmount" {
			t.Fatalf("expected creditAmount validation error, got %v", err)
		}
	})

	t.Run("requires received transit", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.expectAdmin("admin")
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(approvedExchange("ex-1", "owner-1"), nil)
		_, err := f.uc.AssignCredit(context.Background(), "admin", "ex-1", 500, "")
		var sErr *StateError
		if !errors.As(err, &sErr) {
			t.Fatalf("expected state error, got %v", err)
		}
	})

	t.Run("assigns at most once", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.expectAdmin("admin")
		rec := receivedExchange("ex-1", "owner-1")
		amount := int64(300)
		rec.CreditAmount = &amount
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(rec, nil)
		_, err := f.uc.AssignCredit(context.Background(), "admin", "ex-1", 500, "")
		var sErr *StateError
		if !errors.As(err, &sErr) {
			t.Fatalf("expected state error, got %v", err)
		}
	})

	t.Run("success posts to the ledger", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.expectAdmin("admin")
		amount := int64(500)
		updated := receivedExchange("ex-1", "owner-1")
		updated.CreditAmount = &amount
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(receivedExchange("ex-1", "owner-1"), nil)
		f.repo.EXPECT().SetCreditAmount(gomock.Any(), "ex-1", int64(500), "good condition").Return(updated, nil)
		f.gateway.EXPECT().PostCredit(gomock.Any(), "owner-1", int64(500)).
			Return(entities.CreditPostResult{Success: true, ExternalTransactionID: "txn-9"}, nil)
		f.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry entities.CreditLedgerEntry) (entities.CreditLedgerEntry, error) {
				if !entry.Success || entry.ExternalTransactionID != "txn-9" {
					t.Fatalf("expected successful ledger entry, got %+v", entry)
				}
				if entry.Amount != 500 || entry.Currency != "INR" || entry.UserID != "owner-1" {
					t.Fatalf("unexpected ledger entry: %+v", entry)
				}
				return entry, nil
			})

		res, err := f.uc.AssignCredit(context.Background(), "admin", "ex-1", 500, "good condition")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Outcome != CreditApplied {
			t.Fatalf("expected applied outcome, got %s", res.Outcome)
		}
		if res.GatewayWarning != "" {
			t.Fatalf("expected no warning, got %q", res.GatewayWarning)
		}
	})

	t.Run("gateway transport failure keeps local credit", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.expectAdmin("admin")
		amount := int64(500)
		updated := receivedExchange("ex-1", "owner-1")
		updated.CreditAmount = &amount
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(receivedExchange("ex-1", "owner-1"), nil)
		f.repo.EXPECT().SetCreditAmount(gomock.Any(), "ex-1", int64(500), "").Return(updated, nil)
		f.gateway.EXPECT().PostCredit(gomock.Any(), "owner-1", int64(500)).
			Return(entities.CreditPostResult{}, errors.New("connection refused"))
		f.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry entities.CreditLedgerEntry) (entities.CreditLedgerEntry, error) {
				if entry.Success {
					t.Fatal("expected failed ledger entry")
				}
				if entry.FailureReason == "" {
					t.Fatal("expected failure reason on ledger entry")
				}
				return entry, nil
			})

		res, err := f.uc.AssignCredit(context.Background(), "admin", "ex-1", 500, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Outcome != CreditAppliedWithWarning {
			t.Fatalf("expected warning outcome, got %s", res.Outcome)
		}
		if res.GatewayWarning == "" {
			t.Fatal("expected gateway warning")
		}
		if res.Exchange.CreditValue() != 500 {
			t.Fatalf("expected local credit kept, got %d", res.Exchange.CreditValue())
		}
	})

	t.Run("ledger rejection also degrades to warning", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.expectAdmin("admin")
		amount := int64(200)
		updated := receivedExchange("ex-1", "owner-1")
		updated.CreditAmount = &amount
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(receivedExchange("ex-1", "owner-1"), nil)
		f.repo.EXPECT().SetCreditAmount(gomock.Any(), "ex-1", int64(200), "").Return(updated, nil)
		f.gateway.EXPECT().PostCredit(gomock.Any(), "owner-1", int64(200)).
			Return(entities.CreditPostResult{Success: false, FailureReason: "customer not found"}, nil)
		f.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.CreditLedgerEntry{}, nil)

		res, err := f.uc.AssignCredit(context.Background(), "admin", "ex-1", 200, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Outcome != CreditAppliedWithWarning || res.GatewayWarning != "customer not found" {
			t.Fatalf("expected rejection warning, got %+v", res)
		}
	})

	t.Run("ledger write failure does not fail the call", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.expectAdmin("admin")
		amount := int64(500)
		updated := receivedExchange("ex-1", "owner-1")
		updated.CreditAmount = &amount
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(receivedExchange("ex-1", "owner-1"), nil)
		f.repo.EXPECT().SetCreditAmount(gomock.Any(), "ex-1", int64(500), "").Return(updated, nil)
		f.gateway.EXPECT().PostCredit(gomock.Any(), "owner-1", int64(500)).
			Return(entities.CreditPostResult{Success: true}, nil)
		f.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.CreditLedgerEntry{}, errors.New("throttled"))

		res, err := f.uc.AssignCredit(context.Background(), "admin", "ex-1", 500, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Outcome != CreditApplied {
			t.Fatalf("expected applied outcome, got %s", res.Outcome)
		}
	})

	t.Run("zero amount is a valid assignment", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.expectAdmin("admin")
		amount := int64(0)
		updated := receivedExchange("ex-1", "owner-1")
		updated.CreditAmount = &amount
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(receivedExchange("ex-1", "owner-1"), nil)
		f.repo.EXPECT().SetCreditAmount(gomock.Any(), "ex-1", int64(0), "").Return(updated, nil)
		f.gateway.EXPECT().PostCredit(gomock.Any(), "owner-1", int64(0)).
			Return(entities.CreditPostResult{Success: true}, nil)
		f.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.CreditLedgerEntry{}, nil)

		if _, err := f.uc.AssignCredit(context.Background(), "admin", "ex-1", 0, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lost race surfaces concurrent update", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.expectAdmin("admin")
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(receivedExchange("ex-1", "owner-1"), nil)
		f.repo.EXPECT().SetCreditAmount(gomock.Any(), "ex-1", int64(500), "").Return(entities.ExchangeRequest{}, nil)
		_, err := f.uc.AssignCredit(context.Background(), "admin", "ex-1", 500, "")
		if !errors.Is(err, ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})
}

func TestExchangeUseCase_Complete(t *testing.T) {
	t.Run("requires received transit", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.expectAdmin("admin")
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(approvedExchange("ex-1", "owner-1"), nil)
		_, err := f.uc.Complete(context.Background(), "admin", "ex-1", "")
		var sErr *StateError
		if !errors.As(err, &sErr) {
			t.Fatalf("expected state error, got %v", err)
		}
	})

	t.Run("requires positive credit", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.expectAdmin("admin")
		rec := receivedExchange("ex-1", "owner-1")
		zero := int64(0)
		rec.CreditAmount = &zero
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(rec, nil)
		_, err := f.uc.Complete(context.Background(), "admin", "ex-1", "")
		var sErr *StateError
		if !errors.As(err, &sErr) {
			t.Fatalf("expected state error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.expectAdmin("admin")
		rec := receivedExchange("ex-1", "owner-1")
		amount := int64(500)
		rec.CreditAmount = &amount
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(rec, nil)
		f.repo.EXPECT().Complete(gomock.Any(), "ex-1", "all done").
			Return(entities.ExchangeRequest{ID: "ex-1", Status: entities.ExchangeStatusCompleted}, nil)
		updated, err := f.uc.Complete(context.Background(), "admin", "ex-1", "all done")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.ExchangeStatusCompleted {
			t.Fatalf("expected completed, got %s", updated.Status)
		}
	})
}

func TestExchangeUseCase_Cancel(t *testing.T) {
	pending := entities.ExchangeRequest{ID: "ex-1", OwnerID: "owner-1", Status: entities.ExchangeStatusPending}

	t.Run("only the owner cancels", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(pending, nil)
		err := f.uc.Cancel(context.Background(), "owner-2", "ex-1")
		if !errors.Is(err, ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("only while pending", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(approvedExchange("ex-1", "owner-1"), nil)
		err := f.uc.Cancel(context.Background(), "owner-1", "ex-1")
		var sErr *StateError
		if !errors.As(err, &sErr) {
			t.Fatalf("expected state error, got %v", err)
		}
	})

	t.Run("lost race surfaces concurrent update", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(pending, nil)
		f.repo.EXPECT().DeleteIfPending(gomock.Any(), "ex-1").Return(false, nil)
		err := f.uc.Cancel(context.Background(), "owner-1", "ex-1")
		if !errors.Is(err, ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(pending, nil)
		f.repo.EXPECT().DeleteIfPending(gomock.Any(), "ex-1").Return(true, nil)
		if err := f.uc.Cancel(context.Background(), "owner-1", "ex-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestExchangeUseCase_AdminDelete(t *testing.T) {
	t.Run("completed records protected when configured", func(t *testing.T) {
		cfg := testConfig()
		cfg.AllowCompletedDelete = false
		f := newExchangeFixture(t, cfg)
		f.expectAdmin("admin")
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").
			Return(entities.ExchangeRequest{ID: "ex-1", Status: entities.ExchangeStatusCompleted}, nil)
		err := f.uc.AdminDelete(context.Background(), "admin", "ex-1")
		var sErr *StateError
		if !errors.As(err, &sErr) {
			t.Fatalf("expected state error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newExchangeFixture(t, testConfig())
		f.expectAdmin("admin")
		f.repo.EXPECT().GetByID(gomock.Any(), "ex-1").
			Return(entities.ExchangeRequest{ID: "ex-1", Status: entities.ExchangeStatusDeclined}, nil)
		f.repo.EXPECT().Delete(gomock.Any(), "ex-1").Return(nil)
		if err := f.uc.AdminDelete(context.Background(), "admin", "ex-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
