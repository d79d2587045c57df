package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace_payments/internal/adapter/persistence/memory"
	"marketplace_payments/internal/domain/entities"
	mock_interfaces "marketplace_payments/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func partiallyConfirmedStore(t *testing.T) *memory.Store {
	store := memory.NewStore()
	store.PutMission(entities.Mission{ID: "mis-1", ClientID: "cli-1", Status: entities.MissionStatusConfirmed, ProID: "pro-1"})
	store.PutBooking(entities.Booking{ID: "mis-1", ClientID: "cli-1", Status: entities.MissionStatusProposed})
	store.PutMission(entities.Mission{ID: "mis-2", ClientID: "cli-2", Status: entities.MissionStatusProposed})

	now := time.Now().UTC()
	for _, p := range []entities.Payment{
		{ID: "p1", SessionID: "cs_1", MissionID: "mis-1", ClientID: "cli-1", ProID: "pro-1", Status: entities.PaymentStatusPaid, UpdatedAt: now},
		{ID: "p2", SessionID: "cs_2", MissionID: "mis-2", ClientID: "cli-2", ProID: "pro-2", Status: entities.PaymentStatusPending, UpdatedAt: now},
	} {
		if _, err := store.Payments().Create(context.Background(), p); err != nil {
			t.Fatalf("seed payment: %v", err)
		}
	}
	return store
}

func TestReconciliationUseCase_ReconcileMission(t *testing.T) {
	t.Run("empty mission id", func(t *testing.T) {
		uc := NewReconciliationUseCase(nil, nil, nil, nil, ReconcileOptions{})
		if _, err := uc.ReconcileMission(context.Background(), ""); !errors.Is(err, ErrInvalidMissionID) {
			t.Fatalf("expected ErrInvalidMissionID, got %v", err)
		}
	})

	t.Run("repairs booking and chat", func(t *testing.T) {
		store := partiallyConfirmedStore(t)
		uc := NewReconciliationUseCase(store.Payments(), store.Missions(), store.Bookings(), NewConversationUseCase(store.Chats(), store.Messages()), ReconcileOptions{})

		res, err := uc.ReconcileMission(context.Background(), "mis-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.SessionID != "cs_1" || len(res.Repaired) != 2 || res.Repaired[0] != "booking" || res.Repaired[1] != "chat" {
			t.Fatalf("unexpected result: %+v", res)
		}

		again, err := uc.ReconcileMission(context.Background(), "mis-1")
		if err != nil || len(again.Repaired) != 0 {
			t.Fatalf("second run should be a no-op: %+v %v", again, err)
		}
	})

	t.Run("mission without paid payment", func(t *testing.T) {
		store := partiallyConfirmedStore(t)
		uc := NewReconciliationUseCase(store.Payments(), store.Missions(), store.Bookings(), NewConversationUseCase(store.Chats(), store.Messages()), ReconcileOptions{})

		res, err := uc.ReconcileMission(context.Background(), "mis-2")
		if err != nil || res.SessionID != "" || len(res.Repaired) != 0 {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
		m, _ := store.Missions().GetByID(context.Background(), "mis-2")
		if m.Status != entities.MissionStatusProposed {
			t.Fatalf("mission must stay proposed: %+v", m)
		}
	})
}

func TestReconciliationUseCase_ReconcilePaid(t *testing.T) {
	t.Run("sweeps paid missions", func(t *testing.T) {
		store := partiallyConfirmedStore(t)
		uc := NewReconciliationUseCase(store.Payments(), store.Missions(), store.Bookings(), NewConversationUseCase(store.Chats(), store.Messages()), ReconcileOptions{})

		summary, err := uc.ReconcilePaid(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Scanned != 1 || summary.Repaired != 1 || len(summary.Failed) != 0 {
			t.Fatalf("unexpected summary: %+v", summary)
		}
	})

	t.Run("payments paid before the window are left alone", func(t *testing.T) {
		store := partiallyConfirmedStore(t)
		uc := NewReconciliationUseCase(store.Payments(), store.Missions(), store.Bookings(), NewConversationUseCase(store.Chats(), store.Messages()), ReconcileOptions{Window: time.Hour})
		uc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

		summary, err := uc.ReconcilePaid(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Scanned != 0 || summary.Skipped != 1 || summary.Repaired != 0 {
			t.Fatalf("unexpected summary: %+v", summary)
		}
		b, _ := store.Bookings().GetByID(context.Background(), "mis-1")
		if b.Status != entities.MissionStatusProposed {
			t.Fatalf("booking outside the window must not be touched: %+v", b)
		}

		res, err := uc.ReconcileMission(context.Background(), "mis-1")
		if err != nil || len(res.Repaired) != 2 {
			t.Fatalf("targeted repair ignores the window: %+v %v", res, err)
		}
	})

	t.Run("listing error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		payments.EXPECT().ListByStatus(gomock.Any(), entities.PaymentStatusPaid).Return(nil, errors.New("db"))
		uc := NewReconciliationUseCase(payments, nil, nil, nil, ReconcileOptions{})

		if _, err := uc.ReconcilePaid(context.Background()); !errors.Is(err, ErrDependency) {
			t.Fatalf("expected ErrDependency, got %v", err)
		}
	})
}
