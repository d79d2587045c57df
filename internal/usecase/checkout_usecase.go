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

const (
	defaultCheckoutCurrency = "eur"
	defaultCheckoutTimeout  = 10 * time.Second
	compensationTimeout     = 5 * time.Second
)

// ICheckoutUseCase builds hosted checkouts for missions.
//
// Requested behavior:
//   - Compute the charge from the mission price (10% platform fee on top).
//   - Open the checkout on the professional's payment account.
//   - Record a pending Payment only once the processor confirmed the checkout.
//   - Keep at most one open checkout per mission: a pending checkout with the
//     same charge is handed back, any other is closed before a new one opens.

type ICheckoutUseCase interface {
	CreateCheckout(ctx context.Context, missionID, clientID string) (CheckoutResult, error)
	ListPaymentsByMissionID(ctx context.Context, missionID string) ([]entities.Payment, error)
}

type CheckoutResult struct {
	URL     string
	Payment entities.Payment
}

type CheckoutOptions struct {
	Currency string
	Timeout  time.Duration
}

type CheckoutUseCase struct {
	missions interfaces.IMissionRepository
	users    interfaces.IUserRepository
	payments interfaces.IPaymentRepository
	gateway  interfaces.IPaymentGateway
	currency string
	timeout  time.Duration
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	missions interfaces.IMissionRepository,
	users interfaces.IUserRepository,
	payments interfaces.IPaymentRepository,
	gateway interfaces.IPaymentGateway,
	opts CheckoutOptions,
) *CheckoutUseCase {
	currency := strings.ToLower(strings.TrimSpace(opts.Currency))
	if currency == "" {
		currency = defaultCheckoutCurrency
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultCheckoutTimeout
	}
	return &CheckoutUseCase{
		missions: missions,
		users:    users,
		payments: payments,
		gateway:  gateway,
		currency: currency,
		timeout:  timeout,
	}
}

func (u *CheckoutUseCase) CreateCheckout(ctx context.Context, missionID, clientID string) (CheckoutResult, error) {
	missionID = strings.TrimSpace(missionID)
	clientID = strings.TrimSpace(clientID)
	log.Printf("[checkout][usecase] create start mission_id=%q client_id=%q", missionID, clientID)
	if missionID == "" {
		return CheckoutResult{}, ErrInvalidMissionID
	}
	if clientID == "" {
		return CheckoutResult{}, ErrInvalidClientID
	}
	if u.gateway == nil {
		log.Printf("[checkout][usecase] gateway not configured mission_id=%s", missionID)
		return CheckoutResult{}, dependencyError("checkout", errors.New("payment gateway not configured"))
	}

	mission, err := u.missions.GetByID(ctx, missionID)
	if err != nil {
		log.Printf("[checkout][usecase] failed loading mission mission_id=%s err=%v", missionID, err)
		return CheckoutResult{}, dependencyError("load mission", err)
	}
	if mission.ID == "" {
		log.Printf("[checkout][usecase] mission not found mission_id=%s", missionID)
		return CheckoutResult{}, ErrMissionNotFound
	}
	if mission.ClientID != clientID {
		log.Printf("[checkout][usecase] client mismatch mission_id=%s client_id=%s", missionID, clientID)
		return CheckoutResult{}, ErrMissionClientMismatch
	}
	if !mission.Payable() {
		log.Printf("[checkout][usecase] mission not payable mission_id=%s status=%s", missionID, mission.Status)
		return CheckoutResult{}, ErrMissionNotPayable
	}

	charge, err := entities.ComputeCharge(mission.Price)
	if err != nil {
		log.Printf("[checkout][usecase] invalid price mission_id=%s price=%s", missionID, mission.Price)
		return CheckoutResult{}, ErrInvalidMissionPrice
	}

	account, err := u.payableAccount(ctx, mission.ProID)
	if err != nil {
		log.Printf("[checkout][usecase] professional not payable mission_id=%s pro_id=%q err=%v", missionID, mission.ProID, err)
		return CheckoutResult{}, err
	}
	log.Printf("[checkout][usecase] charge computed mission_id=%s base=%d fee=%d gross=%d", missionID, charge.Base, charge.Fee, charge.Gross)

	gwCtx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	existing, err := u.settleOpenCheckouts(gwCtx, mission, charge, account)
	if err != nil {
		return CheckoutResult{}, err
	}
	if existing.SessionID != "" {
		log.Printf("[checkout][usecase] reusing open checkout mission_id=%s session_id=%s", missionID, existing.SessionID)
		return CheckoutResult{URL: existing.CheckoutURL, Payment: existing}, nil
	}

	session, err := u.gateway.CreateCheckout(gwCtx, entities.CheckoutRequest{
		MissionID:      mission.ID,
		ClientID:       clientID,
		ProID:          mission.ProID,
		Description:    mission.Description,
		Currency:       u.currency,
		Charge:         charge,
		PaymentAccount: account,
	})
	if err != nil {
		log.Printf("[checkout][usecase] gateway create failed mission_id=%s err=%v", missionID, err)
		return CheckoutResult{}, dependencyError("create checkout", err)
	}
	if session.ID == "" || session.URL == "" {
		log.Printf("[checkout][usecase] gateway returned incomplete session mission_id=%s session_id=%q", missionID, session.ID)
		return CheckoutResult{}, dependencyError("create checkout", errors.New("incomplete checkout session"))
	}
	log.Printf("[checkout][usecase] gateway create success mission_id=%s session_id=%s", missionID, session.ID)

	now := time.Now().UTC()
	p := entities.Payment{
		ID:          uuid.NewString(),
		SessionID:   session.ID,
		CheckoutURL: session.URL,
		Provider:    u.gateway.Provider(),
		MissionID:   mission.ID,
		ClientID:    clientID,
		ProID:       mission.ProID,
		GrossAmount: charge.Gross,
		PlatformFee: charge.Fee,
		Currency:    u.currency,
		Status:      entities.PaymentStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.payments.Create(ctx, p)
	if err != nil {
		log.Printf("[checkout][usecase] payment insert failed mission_id=%s session_id=%s err=%v", missionID, session.ID, err)
		u.compensate(ctx, session.ID, account)
		return CheckoutResult{}, dependencyError("record payment", err)
	}
	log.Printf("[checkout][usecase] create success mission_id=%s payment_id=%s session_id=%s", missionID, created.ID, created.SessionID)

	return CheckoutResult{URL: session.URL, Payment: created}, nil
}

// settleOpenCheckouts inspects the previous checkouts of a mission. It returns
// the pending checkout that can be handed back as is, if any. Every other
// pending checkout is closed on the processor and marked failed.
func (u *CheckoutUseCase) settleOpenCheckouts(ctx context.Context, mission entities.Mission, charge entities.Charge, account string) (entities.Payment, error) {
	previous, err := u.payments.ListByMissionID(ctx, mission.ID)
	if err != nil {
		log.Printf("[checkout][usecase] failed listing payments mission_id=%s err=%v", mission.ID, err)
		return entities.Payment{}, dependencyError("list payments", err)
	}
	for _, p := range previous {
		if p.Status == entities.PaymentStatusPaid {
			log.Printf("[checkout][usecase] mission already paid mission_id=%s session_id=%s", mission.ID, p.SessionID)
			return entities.Payment{}, ErrMissionNotPayable
		}
	}

	var reuse entities.Payment
	for _, p := range previous {
		if p.Status != entities.PaymentStatusPending {
			continue
		}
		if reuse.SessionID == "" && u.reusable(p, mission, charge) {
			reuse = p
			continue
		}
		if err := u.closeCheckout(ctx, p, account); err != nil {
			return entities.Payment{}, err
		}
	}
	return reuse, nil
}

func (u *CheckoutUseCase) reusable(p entities.Payment, mission entities.Mission, charge entities.Charge) bool {
	return p.CheckoutURL != "" &&
		p.Provider == u.gateway.Provider() &&
		p.ProID == mission.ProID &&
		p.Currency == u.currency &&
		p.GrossAmount == charge.Gross &&
		p.PlatformFee == charge.Fee
}

func (u *CheckoutUseCase) closeCheckout(ctx context.Context, p entities.Payment, account string) error {
	if p.Provider != u.gateway.Provider() {
		log.Printf("[checkout][usecase] open checkout on another provider mission_id=%s session_id=%s provider=%s", p.MissionID, p.SessionID, p.Provider)
		return ErrCheckoutStillOpen
	}
	if err := u.gateway.ExpireCheckout(ctx, p.SessionID, account); err != nil {
		log.Printf("[checkout][usecase] failed closing previous checkout mission_id=%s session_id=%s err=%v", p.MissionID, p.SessionID, err)
		return ErrCheckoutStillOpen
	}
	closed, _, err := u.payments.TransitionStatus(ctx, p.SessionID, entities.PaymentStatusFailed, "")
	if err != nil {
		log.Printf("[checkout][usecase] failed marking previous checkout mission_id=%s session_id=%s err=%v", p.MissionID, p.SessionID, err)
		return dependencyError("close previous checkout", err)
	}
	if closed.Status == entities.PaymentStatusPaid {
		log.Printf("[checkout][usecase] previous checkout paid while closing mission_id=%s session_id=%s", p.MissionID, p.SessionID)
		return ErrMissionNotPayable
	}
	log.Printf("[checkout][usecase] previous checkout closed mission_id=%s session_id=%s", p.MissionID, p.SessionID)
	return nil
}

func (u *CheckoutUseCase) payableAccount(ctx context.Context, proID string) (string, error) {
	if strings.TrimSpace(proID) == "" {
		return "", ErrProfessionalNotPayable
	}
	pro, err := u.users.GetByID(ctx, proID)
	if err != nil {
		return "", dependencyError("load professional", err)
	}
	if !pro.CanReceivePayouts() {
		return "", ErrProfessionalNotPayable
	}
	account := pro.PaymentAccount(u.gateway.Provider())
	if account == "" {
		return "", ErrProfessionalNotPayable
	}
	return account, nil
}

// compensate closes a checkout that has no Payment row so it can never be paid.
func (u *CheckoutUseCase) compensate(ctx context.Context, sessionID, account string) {
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()
	if err := u.gateway.ExpireCheckout(cctx, sessionID, account); err != nil {
		log.Printf("[checkout][usecase] compensation failed session_id=%s err=%v", sessionID, err)
		return
	}
	log.Printf("[checkout][usecase] compensation success session_id=%s", sessionID)
}

func (u *CheckoutUseCase) ListPaymentsByMissionID(ctx context.Context, missionID string) ([]entities.Payment, error) {
	missionID = strings.TrimSpace(missionID)
	if missionID == "" {
		return nil, ErrInvalidMissionID
	}
	payments, err := u.payments.ListByMissionID(ctx, missionID)
	if err != nil {
		return nil, dependencyError("list payments", err)
	}
	return payments, nil
}
