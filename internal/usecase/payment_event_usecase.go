package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"marketplace_payments/internal/domain/entities"
	"marketplace_payments/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IPaymentEventUseCase applies processor events to the ledger.
//
// Deliveries are at-least-once and may arrive out of order. Handling the same
// event again converges to the same state and the same acknowledgment.

type IPaymentEventUseCase interface {
	HandleEvent(ctx context.Context, payload entities.SignedPayload) (EventResult, error)
}

// EventResult describes what a delivery did. Ignored events and duplicates are
// still successful acknowledgments.
type EventResult struct {
	EventID   string
	Type      entities.PaymentEventType
	Ignored   bool
	Duplicate bool
	ChatID    string
}

type PaymentEventUseCase struct {
	verifier  interfaces.IPaymentEventVerifier
	payments  interfaces.IPaymentRepository
	confirmer missionConfirmer
	publisher interfaces.IEventPublisher
	processed interfaces.IProcessedEventStore
}

var _ IPaymentEventUseCase = (*PaymentEventUseCase)(nil)

// NewPaymentEventUseCase wires the handler. publisher and processed are
// optional and may be nil.
func NewPaymentEventUseCase(
	verifier interfaces.IPaymentEventVerifier,
	payments interfaces.IPaymentRepository,
	missions interfaces.IMissionRepository,
	bookings interfaces.IBookingRepository,
	conversations IConversationUseCase,
	publisher interfaces.IEventPublisher,
	processed interfaces.IProcessedEventStore,
) *PaymentEventUseCase {
	return &PaymentEventUseCase{
		verifier: verifier,
		payments: payments,
		confirmer: missionConfirmer{
			missions:      missions,
			bookings:      bookings,
			conversations: conversations,
		},
		publisher: publisher,
		processed: processed,
	}
}

func (u *PaymentEventUseCase) HandleEvent(ctx context.Context, payload entities.SignedPayload) (EventResult, error) {
	log.Printf("[webhook][usecase] handle start payload_len=%d", len(payload.Body))

	ev, err := u.verifier.ParseEvent(ctx, payload)
	switch {
	case errors.Is(err, interfaces.ErrSignatureVerification):
		log.Printf("[webhook][usecase] signature rejected err=%v", err)
		return EventResult{}, ErrInvalidSignature
	case errors.Is(err, interfaces.ErrMalformedPayload):
		log.Printf("[webhook][usecase] payload rejected err=%v", err)
		return EventResult{}, ErrMalformedEvent
	case err != nil:
		log.Printf("[webhook][usecase] event parsing failed err=%v", err)
		return EventResult{}, dependencyError("parse event", err)
	}

	res := EventResult{EventID: ev.ID, Type: ev.Type}
	log.Printf("[webhook][usecase] event verified event_id=%s type=%s raw_type=%s session_id=%s", ev.ID, ev.Type, ev.RawType, ev.SessionID)

	if ev.Type == entities.PaymentEventOther {
		log.Printf("[webhook][usecase] event ignored event_id=%s raw_type=%s", ev.ID, ev.RawType)
		res.Ignored = true
		return res, nil
	}
	if err := validateEvent(ev); err != nil {
		log.Printf("[webhook][usecase] malformed event event_id=%s type=%s err=%v", ev.ID, ev.Type, err)
		return EventResult{}, err
	}

	eventKey := ev.Provider + ":" + ev.ID
	if u.alreadyProcessed(ctx, eventKey) {
		log.Printf("[webhook][usecase] duplicate delivery acknowledged event_id=%s", ev.ID)
		res.Duplicate = true
		return res, nil
	}

	switch ev.Type {
	case entities.PaymentEventCheckoutCompleted:
		if ev.Unsettled {
			log.Printf("[webhook][usecase] checkout completed but unsettled; waiting event_id=%s session_id=%s", ev.ID, ev.SessionID)
			res.Ignored = true
			return res, nil
		}
		res.ChatID, err = u.handleCompleted(ctx, ev)
	case entities.PaymentEventCheckoutExpired:
		err = u.handleExpired(ctx, ev)
	case entities.PaymentEventPaymentRefunded:
		err = u.handleRefunded(ctx, ev)
	}
	if err != nil {
		return EventResult{}, err
	}

	u.markProcessed(ctx, eventKey)
	log.Printf("[webhook][usecase] handle success event_id=%s type=%s", ev.ID, ev.Type)
	return res, nil
}

func validateEvent(ev entities.PaymentEvent) error {
	switch ev.Type {
	case entities.PaymentEventCheckoutCompleted:
		if strings.TrimSpace(ev.MissionID) == "" || strings.TrimSpace(ev.ProID) == "" || strings.TrimSpace(ev.ClientID) == "" {
			return ErrMalformedEvent
		}
		if ev.SessionID == "" {
			return ErrMalformedEvent
		}
	case entities.PaymentEventCheckoutExpired:
		if ev.SessionID == "" {
			return ErrMalformedEvent
		}
	case entities.PaymentEventPaymentRefunded:
		if ev.SessionID == "" && ev.PaymentIntentID == "" {
			return ErrMalformedEvent
		}
	}
	return nil
}

func (u *PaymentEventUseCase) handleCompleted(ctx context.Context, ev entities.PaymentEvent) (string, error) {
	p, applied, err := u.payments.TransitionStatus(ctx, ev.SessionID, entities.PaymentStatusPaid, ev.PaymentIntentID)
	if err != nil {
		log.Printf("[webhook][usecase] payment transition failed session_id=%s err=%v", ev.SessionID, err)
		return "", dependencyError("mark payment paid", err)
	}
	if p.SessionID == "" {
		p, applied, err = u.recordPaidFromEvent(ctx, ev)
		if err != nil {
			return "", err
		}
	}
	switch {
	case applied:
		log.Printf("[webhook][usecase] step=payment done session_id=%s payment_id=%s status=%s", ev.SessionID, p.ID, p.Status)
	case p.Status != entities.PaymentStatusPaid:
		log.Printf("[webhook][usecase] step=payment skipped session_id=%s status=%s", ev.SessionID, p.Status)
	}

	out, err := u.confirmer.confirm(ctx, ev.MissionID, ev.ProID, ev.ClientID)
	if err != nil {
		return "", err
	}
	if applied {
		u.flagAnomalies(ctx, ev.MissionID, p, out.Mission)
	}

	if out.MissionApplied {
		u.publish(ctx, entities.RoutingKeyMissionConfirmed, entities.MissionConfirmedEvent{
			MissionID:  ev.MissionID,
			ProID:      ev.ProID,
			ClientID:   ev.ClientID,
			SessionID:  ev.SessionID,
			ChatID:     out.Chat.ID,
			OccurredAt: time.Now().UTC(),
		})
	}
	return out.Chat.ID, nil
}

// flagAnomalies reports a freshly paid payment that the mission cannot absorb.
func (u *PaymentEventUseCase) flagAnomalies(ctx context.Context, missionID string, p entities.Payment, m entities.Mission) {
	anomaly := entities.PaymentAnomalyEvent{
		PaymentID:     p.ID,
		SessionID:     p.SessionID,
		MissionID:     missionID,
		MissionStatus: m.Status,
		OccurredAt:    time.Now().UTC(),
	}
	switch {
	case m.ID == "":
		anomaly.Reason = entities.AnomalyMissionNotFound
	case m.Status == entities.MissionStatusCancelled:
		anomaly.Reason = entities.AnomalyMissionCancelled
	default:
		others, err := u.payments.ListByMissionID(ctx, missionID)
		if err != nil {
			log.Printf("[webhook][usecase] duplicate check failed mission_id=%s err=%v", missionID, err)
			return
		}
		for _, o := range others {
			if o.SessionID != p.SessionID && (o.Status == entities.PaymentStatusPaid || o.Status == entities.PaymentStatusRefunded) {
				anomaly.OtherSessions = append(anomaly.OtherSessions, o.SessionID)
			}
		}
		if len(anomaly.OtherSessions) == 0 {
			return
		}
		anomaly.Reason = entities.AnomalyDuplicatePayment
	}
	log.Printf("[webhook][usecase] payment anomaly reason=%s mission_id=%s session_id=%s mission_status=%s other_sessions=%v", anomaly.Reason, missionID, p.SessionID, m.Status, anomaly.OtherSessions)
	u.publish(ctx, entities.RoutingKeyPaymentAnomaly, anomaly)
}

// recordPaidFromEvent covers a completed checkout whose pending row was never
// written; the event carries everything the row needs.
func (u *PaymentEventUseCase) recordPaidFromEvent(ctx context.Context, ev entities.PaymentEvent) (entities.Payment, bool, error) {
	log.Printf("[webhook][usecase] payment row missing; recording from event session_id=%s", ev.SessionID)
	now := time.Now().UTC()
	p := entities.Payment{
		ID:              uuid.NewString(),
		SessionID:       ev.SessionID,
		PaymentIntentID: ev.PaymentIntentID,
		Provider:        ev.Provider,
		MissionID:       ev.MissionID,
		ClientID:        ev.ClientID,
		ProID:           ev.ProID,
		GrossAmount:     ev.AmountTotal,
		PlatformFee:     ev.PlatformFee,
		Currency:        ev.Currency,
		Status:          entities.PaymentStatusPaid,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	created, err := u.payments.Create(ctx, p)
	if errors.Is(err, ErrConflict) {
		return u.payments.TransitionStatus(ctx, ev.SessionID, entities.PaymentStatusPaid, ev.PaymentIntentID)
	}
	if err != nil {
		log.Printf("[webhook][usecase] payment record failed session_id=%s err=%v", ev.SessionID, err)
		return entities.Payment{}, false, dependencyError("record payment", err)
	}
	return created, true, nil
}

func (u *PaymentEventUseCase) handleExpired(ctx context.Context, ev entities.PaymentEvent) error {
	p, applied, err := u.payments.TransitionStatus(ctx, ev.SessionID, entities.PaymentStatusFailed, "")
	if err != nil {
		log.Printf("[webhook][usecase] payment transition failed session_id=%s err=%v", ev.SessionID, err)
		return dependencyError("mark payment failed", err)
	}
	switch {
	case p.SessionID == "":
		log.Printf("[webhook][usecase] expired session has no payment session_id=%s", ev.SessionID)
		return nil
	case !applied:
		log.Printf("[webhook][usecase] step=payment skipped session_id=%s status=%s", ev.SessionID, p.Status)
		return nil
	}
	log.Printf("[webhook][usecase] step=payment done session_id=%s payment_id=%s status=%s", ev.SessionID, p.ID, p.Status)

	u.publish(ctx, entities.RoutingKeyPaymentFailed, entities.PaymentStatusChangedEvent{
		PaymentID:  p.ID,
		SessionID:  p.SessionID,
		MissionID:  p.MissionID,
		Status:     p.Status,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

func (u *PaymentEventUseCase) handleRefunded(ctx context.Context, ev entities.PaymentEvent) error {
	sessionID := ev.SessionID
	if sessionID == "" {
		p, err := u.payments.GetByPaymentIntentID(ctx, ev.PaymentIntentID)
		if err != nil {
			return dependencyError("load payment", err)
		}
		if p.SessionID == "" {
			log.Printf("[webhook][usecase] refund for unknown payment payment_intent_id=%s", ev.PaymentIntentID)
			return nil
		}
		sessionID = p.SessionID
	}

	p, applied, err := u.payments.TransitionStatus(ctx, sessionID, entities.PaymentStatusRefunded, "")
	if err != nil {
		return dependencyError("mark payment refunded", err)
	}
	if p.SessionID == "" || !applied {
		log.Printf("[webhook][usecase] step=refund skipped session_id=%s status=%s", sessionID, p.Status)
		return nil
	}
	log.Printf("[webhook][usecase] step=refund done session_id=%s payment_id=%s", sessionID, p.ID)

	u.publish(ctx, entities.RoutingKeyPaymentRefunded, entities.PaymentStatusChangedEvent{
		PaymentID:  p.ID,
		SessionID:  p.SessionID,
		MissionID:  p.MissionID,
		Status:     p.Status,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

func (u *PaymentEventUseCase) alreadyProcessed(ctx context.Context, eventKey string) bool {
	if u.processed == nil {
		return false
	}
	seen, err := u.processed.Seen(ctx, eventKey)
	if err != nil {
		log.Printf("[webhook][usecase] processed-event lookup failed key=%s err=%v", eventKey, err)
		return false
	}
	return seen
}

func (u *PaymentEventUseCase) markProcessed(ctx context.Context, eventKey string) {
	if u.processed == nil {
		return
	}
	if err := u.processed.MarkProcessed(ctx, eventKey); err != nil {
		log.Printf("[webhook][usecase] processed-event mark failed key=%s err=%v", eventKey, err)
	}
}

func (u *PaymentEventUseCase) publish(ctx context.Context, routingKey string, body any) {
	if u.publisher == nil {
		return
	}
	if err := u.publisher.Publish(ctx, routingKey, body); err != nil {
		log.Printf("[webhook][usecase] publish failed routing_key=%s err=%v", routingKey, err)
	}
}
