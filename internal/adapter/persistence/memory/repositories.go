package memory

import (
	"context"
	"sort"
	"time"

	"marketplace_payments/internal/domain/entities"
	"marketplace_payments/internal/usecase/interfaces"
)

func (r UserRepository) GetByID(_ context.Context, id string) (entities.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.users[id], nil
}

func (r MissionRepository) GetByID(_ context.Context, id string) (entities.Mission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.missions[id], nil
}

func (r MissionRepository) TransitionStatus(_ context.Context, id string, next entities.MissionStatus, proID string) (entities.Mission, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.missions[id]
	if !ok {
		return entities.Mission{}, false, nil
	}
	if !entities.MissionTransitionNeeded(m.Status, m.ProID, next, proID) {
		return m, false, nil
	}
	m.Status = next
	if proID != "" {
		m.ProID = proID
	}
	m.UpdatedAt = now()
	r.s.missions[id] = m
	return m, true, nil
}

func (r BookingRepository) GetByID(_ context.Context, id string) (entities.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.bookings[id], nil
}

func (r BookingRepository) TransitionStatus(_ context.Context, id string, next entities.MissionStatus, proID string) (entities.Booking, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bookings[id]
	if !ok {
		return entities.Booking{}, false, nil
	}
	if !entities.MissionTransitionNeeded(b.Status, b.ProID, next, proID) {
		return b, false, nil
	}
	b.Status = next
	if proID != "" {
		b.ProID = proID
	}
	b.UpdatedAt = now()
	r.s.bookings[id] = b
	return b, true, nil
}

func (r PaymentRepository) Create(_ context.Context, p entities.Payment) (entities.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.payments[p.SessionID]; exists {
		return entities.Payment{}, interfaces.ErrAlreadyExists
	}
	r.s.payments[p.SessionID] = p
	return p, nil
}

func (r PaymentRepository) GetBySessionID(_ context.Context, sessionID string) (entities.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.payments[sessionID], nil
}

func (r PaymentRepository) GetByPaymentIntentID(_ context.Context, paymentIntentID string) (entities.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.payments {
		if paymentIntentID != "" && p.PaymentIntentID == paymentIntentID {
			return p, nil
		}
	}
	return entities.Payment{}, nil
}

func (r PaymentRepository) ListByMissionID(_ context.Context, missionID string) ([]entities.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []entities.Payment{}
	for _, p := range r.s.payments {
		if p.MissionID == missionID {
			out = append(out, p)
		}
	}
	sortPayments(out)
	return out, nil
}

func (r PaymentRepository) ListByStatus(_ context.Context, status entities.PaymentStatus) ([]entities.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []entities.Payment{}
	for _, p := range r.s.payments {
		if p.Status == status {
			out = append(out, p)
		}
	}
	sortPayments(out)
	return out, nil
}

func (r PaymentRepository) TransitionStatus(_ context.Context, sessionID string, next entities.PaymentStatus, paymentIntentID string) (entities.Payment, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.payments[sessionID]
	if !ok {
		return entities.Payment{}, false, nil
	}
	if p.Status == next || !p.Status.CanTransitionTo(next) {
		return p, false, nil
	}
	p.Status = next
	if paymentIntentID != "" {
		p.PaymentIntentID = paymentIntentID
	}
	p.UpdatedAt = now()
	r.s.payments[sessionID] = p
	return p, true, nil
}

func (r ChatRepository) Create(_ context.Context, c entities.Chat) (entities.Chat, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.chats[c.ID]; exists {
		return entities.Chat{}, interfaces.ErrAlreadyExists
	}
	r.s.chats[c.ID] = c
	return c, nil
}

func (r ChatRepository) GetByID(_ context.Context, id string) (entities.Chat, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.chats[id], nil
}

func (r ChatRepository) ListByParticipant(_ context.Context, userID string) ([]entities.Chat, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []entities.Chat{}
	for _, c := range r.s.chats {
		if c.HasParticipant(userID) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastActivityAt.After(out[j].LastActivityAt) })
	return out, nil
}

func (r ChatRepository) Touch(_ context.Context, id string, preview string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.chats[id]
	if !ok || c.LastActivityAt.After(at) {
		return nil
	}
	c.LastActivityAt = at
	c.LastMessagePreview = preview
	r.s.chats[id] = c
	return nil
}

func (r MessageRepository) Create(_ context.Context, msg entities.Message) (entities.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.messages[msg.ID]; exists {
		return entities.Message{}, interfaces.ErrAlreadyExists
	}
	r.s.messages[msg.ID] = msg
	return msg, nil
}

func (r MessageRepository) ListByChatID(_ context.Context, chatID string) ([]entities.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []entities.Message{}
	for _, m := range r.s.messages {
		if m.ChatID == chatID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r MessageRepository) MarkRead(_ context.Context, chatID string, readerID string, at time.Time) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for id, m := range r.s.messages {
		if m.ChatID != chatID || m.SenderID == readerID || m.ReadAt != nil {
			continue
		}
		readAt := at
		m.ReadAt = &readAt
		r.s.messages[id] = m
		n++
	}
	return n, nil
}
