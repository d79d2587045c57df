package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"marketplace_payments/internal/adapter/persistence/memory"
	"marketplace_payments/internal/domain/entities"
	mock_interfaces "marketplace_payments/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type checkoutMocks struct {
	missions *mock_interfaces.MockIMissionRepository
	users    *mock_interfaces.MockIUserRepository
	payments *mock_interfaces.MockIPaymentRepository
	gateway  *mock_interfaces.MockIPaymentGateway
}

func newCheckoutFixture(t *testing.T) (*CheckoutUseCase, checkoutMocks) {
	ctrl := gomock.NewController(t)
	m := checkoutMocks{
		missions: mock_interfaces.NewMockIMissionRepository(ctrl),
		users:    mock_interfaces.NewMockIUserRepository(ctrl),
		payments: mock_interfaces.NewMockIPaymentRepository(ctrl),
		gateway:  mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	m.gateway.EXPECT().Provider().Return("stripe").AnyTimes()
	uc := NewCheckoutUseCase(m.missions, m.users, m.payments, m.gateway, CheckoutOptions{})
	return uc, m
}

func payableMission() entities.Mission {
	return entities.Mission{
		ID:          "mis-1",
		ClientID:    "cli-1",
		ProID:       "pro-1",
		Description: "Fix the sink",
		Price:       decimal.RequireFromString("50.00"),
		Status:      entities.MissionStatusProposed,
	}
}

func payablePro() entities.User {
	return entities.User{
		ID:              "pro-1",
		Role:            entities.UserRoleProfessional,
		PaymentAccounts: map[string]string{"stripe": "acct_123"},
	}
}

func TestCheckoutUseCase_CreateCheckout_Validations(t *testing.T) {
	t.Run("empty mission id", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, nil, CheckoutOptions{})
		_, err := uc.CreateCheckout(context.Background(), " ", "cli-1")
		if !errors.Is(err, ErrInvalidMissionID) {
			t.Fatalf("expected ErrInvalidMissionID, got %v", err)
		}
	})

	t.Run("empty client id", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, nil, CheckoutOptions{})
		_, err := uc.CreateCheckout(context.Background(), "mis-1", "")
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, nil, CheckoutOptions{})
		_, err := uc.CreateCheckout(context.Background(), "mis-1", "cli-1")
		if !errors.Is(err, ErrDependency) {
			t.Fatalf("expected ErrDependency, got %v", err)
		}
	})
}

func TestCheckoutUseCase_CreateCheckout_MissionChecks(t *testing.T) {
	t.Run("mission repository error", func(t *testing.T) {
		uc, m := newCheckoutFixture(t)
		m.missions.EXPECT().GetByID(gomock.Any(), "mis-1").Return(entities.Mission{}, errors.New("db"))

		_, err := uc.CreateCheckout(context.Background(), "mis-1", "cli-1")
		if !errors.Is(err, ErrDependency) {
			t.Fatalf("expected ErrDependency, got %v", err)
		}
	})

	t.Run("mission not found", func(t *testing.T) {
		uc, m := newCheckoutFixture(t)
		m.missions.EXPECT().GetByID(gomock.Any(), "mis-1").Return(entities.Mission{}, nil)

		_, err := uc.CreateCheckout(context.Background(), "mis-1", "cli-1")
		if !errors.Is(err, ErrMissionNotFound) {
			t.Fatalf("expected ErrMissionNotFound, got %v", err)
		}
	})

	t.Run("client mismatch", func(t *testing.T) {
		uc, m := newCheckoutFixture(t)
		m.missions.EXPECT().GetByID(gomock.Any(), "mis-1").Return(payableMission(), nil)

		_, err := uc.CreateCheckout(context.Background(), "mis-1", "cli-2")
		if !errors.Is(err, ErrMissionClientMismatch) {
			t.Fatalf("expected ErrMissionClientMismatch, got %v", err)
		}
	})

	t.Run("mission already confirmed", func(t *testing.T) {
		uc, m := newCheckoutFixture(t)
		mission := payableMission()
		mission.Status = entities.MissionStatusConfirmed
		m.missions.EXPECT().GetByID(gomock.Any(), "mis-1").Return(mission, nil)

		_, err := uc.CreateCheckout(context.Background(), "mis-1", "cli-1")
		if !errors.Is(err, ErrMissionNotPayable) {
			t.Fatalf("expected ErrMissionNotPayable, got %v", err)
		}
	})

	t.Run("zero price", func(t *testing.T) {
		uc, m := newCheckoutFixture(t)
		mission := payableMission()
		mission.Price = decimal.Zero
		m.missions.EXPECT().GetByID(gomock.Any(), "mis-1").Return(mission, nil)

		_, err := uc.CreateCheckout(context.Background(), "mis-1", "cli-1")
		if !errors.Is(err, ErrInvalidMissionPrice) {
			t.Fatalf("expected ErrInvalidMissionPrice, got %v", err)
		}
	})

	t.Run("professional without payment account", func(t *testing.T) {
		uc, m := newCheckoutFixture(t)
		m.missions.EXPECT().GetByID(gomock.Any(), "mis-1").Return(payableMission(), nil)
		m.users.EXPECT().GetByID(gomock.Any(), "pro-1").Return(entities.User{ID: "pro-1", Role: entities.UserRoleProfessional}, nil)

		_, err := uc.CreateCheckout(context.Background(), "mis-1", "cli-1")
		if !errors.Is(err, ErrProfessionalNotPayable) {
			t.Fatalf("expected ErrProfessionalNotPayable, got %v", err)
		}
	})

	t.Run("client account as professional", func(t *testing.T) {
		uc, m := newCheckoutFixture(t)
		m.missions.EXPECT().GetByID(gomock.Any(), "mis-1").Return(payableMission(), nil)
		m.users.EXPECT().GetByID(gomock.Any(), "pro-1").Return(entities.User{
			ID:              "pro-1",
			Role:            entities.UserRoleClient,
			PaymentAccounts: map[string]string{"stripe": "acct_123"},
		}, nil)

		_, err := uc.CreateCheckout(context.Background(), "mis-1", "cli-1")
		if !errors.Is(err, ErrProfessionalNotPayable) {
			t.Fatalf("expected ErrProfessionalNotPayable, got %v", err)
		}
	})

	t.Run("mission without professional", func(t *testing.T) {
		uc, m := newCheckoutFixture(t)
		mission := payableMission()
		mission.ProID = ""
		m.missions.EXPECT().GetByID(gomock.Any(), "mis-1").Return(mission, nil)

		_, err := uc.CreateCheckout(context.Background(), "mis-1", "cli-1")
		if !errors.Is(err, ErrProfessionalNotPayable) {
			t.Fatalf("expected ErrProfessionalNotPayable, got %v", err)
		}
	})
}

func TestCheckoutUseCase_CreateCheckout_Success(t *testing.T) {
	uc, m := newCheckoutFixture(t)
	m.missions.EXPECT().GetByID(gomock.Any(), "mis-1").Return(payableMission(), nil)
	m.users.EXPECT().GetByID(gomock.Any(), "pro-1").Return(payablePro(), nil)
	m.payments.EXPECT().ListByMissionID(gomock.Any(), "mis-1").Return(nil, nil)
	m.gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
			if req.Charge.Base != 5000 || req.Charge.Fee != 500 || req.Charge.Gross != 5500 {
				t.Fatalf("unexpected charge: %+v", req.Charge)
			}
			if req.PaymentAccount != "acct_123" || req.Currency != "eur" {
				t.Fatalf("unexpected request: %+v", req)
			}
			if req.MissionID != "mis-1" || req.ClientID != "cli-1" || req.ProID != "pro-1" {
				t.Fatalf("unexpected metadata: %+v", req)
			}
			return entities.CheckoutSession{ID: "cs_1", URL: "https://pay.example/cs_1"}, nil
		})
	m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.Payment) (entities.Payment, error) {
			return p, nil
		})

	res, err := uc.CreateCheckout(context.Background(), "mis-1", "cli-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.URL != "https://pay.example/cs_1" {
		t.Fatalf("unexpected url: %s", res.URL)
	}
	p := res.Payment
	if p.SessionID != "cs_1" || p.Status != entities.PaymentStatusPending {
		t.Fatalf("unexpected payment: %+v", p)
	}
	if p.GrossAmount != 5500 || p.PlatformFee != 500 || p.ProfessionalAmount() != 5000 {
		t.Fatalf("unexpected amounts: %+v", p)
	}
	if p.Provider != "stripe" || p.ID == "" {
		t.Fatalf("unexpected payment identity: %+v", p)
	}
	if p.CheckoutURL != "https://pay.example/cs_1" {
		t.Fatalf("checkout url not recorded: %+v", p)
	}
}

func TestCheckoutUseCase_CreateCheckout_GatewayFailures(t *testing.T) {
	t.Run("gateway error leaves no payment", func(t *testing.T) {
		uc, m := newCheckoutFixture(t)
		m.missions.EXPECT().GetByID(gomock.Any(), "mis-1").Return(payableMission(), nil)
		m.users.EXPECT().GetByID(gomock.Any(), "pro-1").Return(payablePro(), nil)
		m.payments.EXPECT().ListByMissionID(gomock.Any(), "mis-1").Return(nil, nil)
		m.gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return(entities.CheckoutSession{}, errors.New("timeout"))

		_, err := uc.CreateCheckout(context.Background(), "mis-1", "cli-1")
		if !errors.Is(err, ErrDependency) {
			t.Fatalf("expected ErrDependency, got %v", err)
		}
	})

	t.Run("incomplete session", func(t *testing.T) {
		uc, m := newCheckoutFixture(t)
		m.missions.EXPECT().GetByID(gomock.Any(), "mis-1").Return(payableMission(), nil)
		m.users.EXPECT().GetByID(gomock.Any(), "pro-1").Return(payablePro(), nil)
		m.payments.EXPECT().ListByMissionID(gomock.Any(), "mis-1").Return(nil, nil)
		m.gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return(entities.CheckoutSession{ID: "cs_1"}, nil)

		_, err := uc.CreateCheckout(context.Background(), "mis-1", "cli-1")
		if !errors.Is(err, ErrDependency) {
			t.Fatalf("expected ErrDependency, got %v", err)
		}
	})

	t.Run("insert failure expires the checkout", func(t *testing.T) {
		uc, m := newCheckoutFixture(t)
		m.missions.EXPECT().GetByID(gomock.Any(), "mis-1").Return(payableMission(), nil)
		m.users.EXPECT().GetByID(gomock.Any(), "pro-1").Return(payablePro(), nil)
		m.payments.EXPECT().ListByMissionID(gomock.Any(), "mis-1").Return(nil, nil)
		m.gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return(entities.CheckoutSession{ID: "cs_1", URL: "https://pay.example/cs_1"}, nil)
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Payment{}, errors.New("db"))
		m.gateway.EXPECT().ExpireCheckout(gomock.Any(), "cs_1", "acct_123").Return(nil)

		_, err := uc.CreateCheckout(context.Background(), "mis-1", "cli-1")
		if !errors.Is(err, ErrDependency) {
			t.Fatalf("expected ErrDependency, got %v", err)
		}
	})
}

func TestCheckoutUseCase_ListPaymentsByMissionID(t *testing.T) {
	t.Run("empty mission id", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, nil, CheckoutOptions{})
		_, err := uc.ListPaymentsByMissionID(context.Background(), "")
		if !errors.Is(err, ErrInvalidMissionID) {
			t.Fatalf("expected ErrInvalidMissionID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newCheckoutFixture(t)
		m.payments.EXPECT().ListByMissionID(gomock.Any(), "mis-1").Return([]entities.Payment{{SessionID: "cs_1"}}, nil)

		got, err := uc.ListPaymentsByMissionID(context.Background(), "mis-1")
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result: %v %v", got, err)
		}
	})
}

func newCheckoutLedger(t *testing.T) (*CheckoutUseCase, *memory.Store, *mock_interfaces.MockIPaymentGateway) {
	ctrl := gomock.NewController(t)
	store := memory.NewStore()
	store.PutMission(payableMission())
	store.PutUser(payablePro())
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	gateway.EXPECT().Provider().Return("stripe").AnyTimes()
	uc := NewCheckoutUseCase(store.Missions(), store.Users(), store.Payments(), gateway, CheckoutOptions{})
	return uc, store, gateway
}

func sessionSequence() func(context.Context, entities.CheckoutRequest) (entities.CheckoutSession, error) {
	n := 0
	return func(context.Context, entities.CheckoutRequest) (entities.CheckoutSession, error) {
		n++
		id := fmt.Sprintf("cs_%d", n)
		return entities.CheckoutSession{ID: id, URL: "https://pay.example/" + id}, nil
	}
}

func pendingPayments(t *testing.T, store *memory.Store) []entities.Payment {
	t.Helper()
	all, err := store.Payments().ListByMissionID(context.Background(), "mis-1")
	if err != nil {
		t.Fatalf("list payments: %v", err)
	}
	out := []entities.Payment{}
	for _, p := range all {
		if p.Status == entities.PaymentStatusPending {
			out = append(out, p)
		}
	}
	return out
}

func TestCheckoutUseCase_CreateCheckout_SingleOpenCheckout(t *testing.T) {
	t.Run("repeated request hands back the open checkout", func(t *testing.T) {
		uc, store, gateway := newCheckoutLedger(t)
		gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).DoAndReturn(sessionSequence()).Times(1)

		first, err1 := uc.CreateCheckout(context.Background(), "mis-1", "cli-1")
		second, err2 := uc.CreateCheckout(context.Background(), "mis-1", "cli-1")
		if err1 != nil || err2 != nil {
			t.Fatalf("unexpected errors: %v %v", err1, err2)
		}
		if second.URL != first.URL || second.Payment.SessionID != first.Payment.SessionID {
			t.Fatalf("expected the same checkout, got %s and %s", first.Payment.SessionID, second.Payment.SessionID)
		}
		if pending := pendingPayments(t, store); len(pending) != 1 {
			t.Fatalf("expected 1 live pending payment, got %d", len(pending))
		}
	})

	t.Run("changed price closes the previous checkout", func(t *testing.T) {
		uc, store, gateway := newCheckoutLedger(t)
		gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).DoAndReturn(sessionSequence()).Times(2)
		gateway.EXPECT().ExpireCheckout(gomock.Any(), "cs_1", "acct_123").Return(nil)

		if _, err := uc.CreateCheckout(context.Background(), "mis-1", "cli-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		repriced := payableMission()
		repriced.Price = decimal.RequireFromString("60.00")
		store.PutMission(repriced)

		res, err := uc.CreateCheckout(context.Background(), "mis-1", "cli-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Payment.SessionID != "cs_2" || res.Payment.GrossAmount != 6600 {
			t.Fatalf("unexpected payment: %+v", res.Payment)
		}
		pending := pendingPayments(t, store)
		if len(pending) != 1 || pending[0].SessionID != "cs_2" {
			t.Fatalf("expected only cs_2 pending, got %+v", pending)
		}
		old, _ := store.Payments().GetBySessionID(context.Background(), "cs_1")
		if old.Status != entities.PaymentStatusFailed {
			t.Fatalf("expected cs_1 failed, got %s", old.Status)
		}
	})

	t.Run("previous checkout that cannot be closed blocks a new one", func(t *testing.T) {
		uc, store, gateway := newCheckoutLedger(t)
		gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).DoAndReturn(sessionSequence()).Times(1)
		gateway.EXPECT().ExpireCheckout(gomock.Any(), "cs_1", "acct_123").Return(errors.New("unsupported"))

		if _, err := uc.CreateCheckout(context.Background(), "mis-1", "cli-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		repriced := payableMission()
		repriced.Price = decimal.RequireFromString("60.00")
		store.PutMission(repriced)

		_, err := uc.CreateCheckout(context.Background(), "mis-1", "cli-1")
		if !errors.Is(err, ErrCheckoutStillOpen) || !errors.Is(err, ErrStateConflict) {
			t.Fatalf("expected ErrCheckoutStillOpen, got %v", err)
		}
		if pending := pendingPayments(t, store); len(pending) != 1 {
			t.Fatalf("expected 1 live pending payment, got %d", len(pending))
		}
	})

	t.Run("paid mission never opens another checkout", func(t *testing.T) {
		uc, store, _ := newCheckoutLedger(t)
		if _, err := store.Payments().Create(context.Background(), entities.Payment{
			ID:        "pay-0",
			SessionID: "cs_0",
			Provider:  "stripe",
			MissionID: "mis-1",
			Status:    entities.PaymentStatusPaid,
		}); err != nil {
			t.Fatalf("seed payment: %v", err)
		}

		_, err := uc.CreateCheckout(context.Background(), "mis-1", "cli-1")
		if !errors.Is(err, ErrMissionNotPayable) {
			t.Fatalf("expected ErrMissionNotPayable, got %v", err)
		}
	})

	t.Run("list failure", func(t *testing.T) {
		uc, m := newCheckoutFixture(t)
		m.missions.EXPECT().GetByID(gomock.Any(), "mis-1").Return(payableMission(), nil)
		m.users.EXPECT().GetByID(gomock.Any(), "pro-1").Return(payablePro(), nil)
		m.payments.EXPECT().ListByMissionID(gomock.Any(), "mis-1").Return(nil, errors.New("db"))

		_, err := uc.CreateCheckout(context.Background(), "mis-1", "cli-1")
		if !errors.Is(err, ErrDependency) {
			t.Fatalf("expected ErrDependency, got %v", err)
		}
	})
}
