package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"marketplace_payments/internal/domain/entities"
	"marketplace_payments/internal/usecase/interfaces"
)

// IReconciliationUseCase repairs missions whose confirmation was only partially
// applied. Payment.status is the source of truth: a paid payment implies a
// confirmed mission, a confirmed booking and a provisioned chat.
//
// ReconcilePaid only revisits payments that became paid within the configured
// window; older missions are repaired one at a time with ReconcileMission.

type IReconciliationUseCase interface {
	ReconcileMission(ctx context.Context, missionID string) (ReconcileResult, error)
	ReconcilePaid(ctx context.Context) (ReconcileSummary, error)
}

type ReconcileResult struct {
	MissionID string
	SessionID string
	Repaired  []string
}

type ReconcileSummary struct {
	Scanned  int
	Repaired int
	Skipped  int
	Failed   []string
}

const defaultReconcileWindow = 72 * time.Hour

type ReconcileOptions struct {
	// Window bounds how far back ReconcilePaid looks, measured on the payment's
	// last update.
	Window time.Duration
}

type ReconciliationUseCase struct {
	payments  interfaces.IPaymentRepository
	confirmer missionConfirmer
	window    time.Duration
	now       func() time.Time
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(
	payments interfaces.IPaymentRepository,
	missions interfaces.IMissionRepository,
	bookings interfaces.IBookingRepository,
	conversations IConversationUseCase,
	opts ReconcileOptions,
) *ReconciliationUseCase {
	window := opts.Window
	if window <= 0 {
		window = defaultReconcileWindow
	}
	return &ReconciliationUseCase{
		payments: payments,
		confirmer: missionConfirmer{
			missions:      missions,
			bookings:      bookings,
			conversations: conversations,
		},
		window: window,
		now:    time.Now,
	}
}

func (u *ReconciliationUseCase) ReconcileMission(ctx context.Context, missionID string) (ReconcileResult, error) {
	missionID = strings.TrimSpace(missionID)
	if missionID == "" {
		return ReconcileResult{}, ErrInvalidMissionID
	}
	res := ReconcileResult{MissionID: missionID}

	payments, err := u.payments.ListByMissionID(ctx, missionID)
	if err != nil {
		log.Printf("[reconcile][usecase] list payments failed mission_id=%s err=%v", missionID, err)
		return res, dependencyError("list payments", err)
	}

	paid, ok := latestPaid(payments)
	if !ok {
		return res, nil
	}
	res.SessionID = paid.SessionID

	out, err := u.confirmer.confirm(ctx, missionID, paid.ProID, paid.ClientID)
	if err != nil {
		return res, err
	}
	if out.MissionApplied {
		res.Repaired = append(res.Repaired, "mission")
	}
	if out.BookingApplied {
		res.Repaired = append(res.Repaired, "booking")
	}
	if out.ChatCreated {
		res.Repaired = append(res.Repaired, "chat")
	}
	if len(res.Repaired) > 0 {
		log.Printf("[reconcile][usecase] mission repaired mission_id=%s session_id=%s steps=%s", missionID, paid.SessionID, strings.Join(res.Repaired, ","))
	}
	return res, nil
}

func (u *ReconciliationUseCase) ReconcilePaid(ctx context.Context) (ReconcileSummary, error) {
	var summary ReconcileSummary

	payments, err := u.payments.ListByStatus(ctx, entities.PaymentStatusPaid)
	if err != nil {
		log.Printf("[reconcile][usecase] list paid payments failed err=%v", err)
		return summary, dependencyError("list paid payments", err)
	}

	cutoff := u.now().Add(-u.window)
	seen := make(map[string]struct{}, len(payments))
	for _, p := range payments {
		if p.UpdatedAt.Before(cutoff) {
			summary.Skipped++
			continue
		}
		if _, dup := seen[p.MissionID]; dup || p.MissionID == "" {
			continue
		}
		seen[p.MissionID] = struct{}{}
		summary.Scanned++

		res, err := u.ReconcileMission(ctx, p.MissionID)
		if err != nil {
			summary.Failed = append(summary.Failed, p.MissionID)
			continue
		}
		if len(res.Repaired) > 0 {
			summary.Repaired++
		}
	}
	log.Printf("[reconcile][usecase] sweep done scanned=%d repaired=%d skipped=%d failed=%d window=%s", summary.Scanned, summary.Repaired, summary.Skipped, len(summary.Failed), u.window)
	return summary, nil
}

func latestPaid(payments []entities.Payment) (entities.Payment, bool) {
	var (
		latest entities.Payment
		found  bool
	)
	for _, p := range payments {
		if p.Status != entities.PaymentStatusPaid {
			continue
		}
		if !found || p.UpdatedAt.After(latest.UpdatedAt) {
			latest = p
			found = true
		}
	}
	return latest, found
}
