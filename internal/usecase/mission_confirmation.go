package usecase

import (
	"context"
	"log"

	"marketplace_payments/internal/domain/entities"
	"marketplace_payments/internal/usecase/interfaces"
)

// missionConfirmer applies the ledger effects of a successful payment:
// Mission -> confirmed, Booking -> confirmed, chat provisioned. Every step is
// idempotent and logged so a partially applied run can be repaired by running
// it again. No chat is provisioned for a mission the ledger does not know.
type missionConfirmer struct {
	missions      interfaces.IMissionRepository
	bookings      interfaces.IBookingRepository
	conversations IConversationUseCase
}

type confirmation struct {
	Mission        entities.Mission
	MissionApplied bool
	BookingApplied bool
	Chat           entities.Chat
	ChatCreated    bool
}

func (c missionConfirmer) confirm(ctx context.Context, missionID, proID, clientID string) (confirmation, error) {
	var out confirmation

	m, applied, err := c.missions.TransitionStatus(ctx, missionID, entities.MissionStatusConfirmed, proID)
	if err != nil {
		log.Printf("[confirm][usecase] mission transition failed mission_id=%s err=%v", missionID, err)
		return out, dependencyError("confirm mission", err)
	}
	out.Mission = m
	out.MissionApplied = applied
	switch {
	case m.ID == "":
		log.Printf("[confirm][usecase] mission missing mission_id=%s", missionID)
	case applied:
		log.Printf("[confirm][usecase] step=mission done mission_id=%s status=%s pro_id=%s", missionID, m.Status, m.ProID)
	case m.Status == entities.MissionStatusCancelled:
		log.Printf("[confirm][usecase] paid mission is cancelled mission_id=%s", missionID)
	case m.Status != entities.MissionStatusConfirmed:
		log.Printf("[confirm][usecase] mission not confirmable mission_id=%s status=%s", missionID, m.Status)
	}

	b, applied, err := c.bookings.TransitionStatus(ctx, missionID, entities.MissionStatusConfirmed, proID)
	if err != nil {
		log.Printf("[confirm][usecase] booking transition failed mission_id=%s err=%v", missionID, err)
		return out, dependencyError("confirm booking", err)
	}
	out.BookingApplied = applied
	if b.ID == "" {
		log.Printf("[confirm][usecase] step=booking skipped (no booking) mission_id=%s", missionID)
	} else if applied {
		log.Printf("[confirm][usecase] step=booking done mission_id=%s", missionID)
	}

	if m.ID == "" {
		log.Printf("[confirm][usecase] step=chat skipped (no mission) mission_id=%s", missionID)
		return out, nil
	}

	chat, created, err := c.conversations.EnsureChat(ctx, ProvisionRequest{
		MissionID:   missionID,
		ProID:       proID,
		ClientID:    clientID,
		Description: m.Description,
	})
	if err != nil {
		log.Printf("[confirm][usecase] chat provisioning failed mission_id=%s err=%v", missionID, err)
		return out, err
	}
	out.Chat = chat
	out.ChatCreated = created
	log.Printf("[confirm][usecase] step=chat done mission_id=%s chat_id=%s created=%t", missionID, chat.ID, created)

	return out, nil
}
