package memory

import (
	"sort"
	"sync"
	"time"

	"marketplace_payments/internal/domain/entities"
	"marketplace_payments/internal/usecase/interfaces"
)

// Store is an in-process ledger used in mock mode and tests.
//
// It enforces the same rules as the DynamoDB tables: conditional inserts on the
// primary key and status transitions that never move backwards.
type Store struct {
	mu       sync.Mutex
	users    map[string]entities.User
	missions map[string]entities.Mission
	bookings map[string]entities.Booking
	payments map[string]entities.Payment
	chats    map[string]entities.Chat
	messages map[string]entities.Message
}

func NewStore() *Store {
	return &Store{
		users:    map[string]entities.User{},
		missions: map[string]entities.Mission{},
		bookings: map[string]entities.Booking{},
		payments: map[string]entities.Payment{},
		chats:    map[string]entities.Chat{},
		messages: map[string]entities.Message{},
	}
}

func (s *Store) PutUser(u entities.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

func (s *Store) PutMission(m entities.Mission) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.missions[m.ID] = m
}

func (s *Store) PutBooking(b entities.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID] = b
}

// Counts reports the number of rows per table, keyed by table name.
func (s *Store) Counts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return map[string]int{
		"users":    len(s.users),
		"missions": len(s.missions),
		"bookings": len(s.bookings),
		"payments": len(s.payments),
		"chats":    len(s.chats),
		"messages": len(s.messages),
	}
}

type UserRepository struct{ s *Store }
type MissionRepository struct{ s *Store }
type BookingRepository struct{ s *Store }
type PaymentRepository struct{ s *Store }
type ChatRepository struct{ s *Store }
type MessageRepository struct{ s *Store }

var (
	_ interfaces.IUserRepository    = UserRepository{}
	_ interfaces.IMissionRepository = MissionRepository{}
	_ interfaces.IBookingRepository = BookingRepository{}
	_ interfaces.IPaymentRepository = PaymentRepository{}
	_ interfaces.IChatRepository    = ChatRepository{}
	_ interfaces.IMessageRepository = MessageRepository{}
)

func (s *Store) Users() UserRepository       { return UserRepository{s} }
func (s *Store) Missions() MissionRepository { return MissionRepository{s} }
func (s *Store) Bookings() BookingRepository { return BookingRepository{s} }
func (s *Store) Payments() PaymentRepository { return PaymentRepository{s} }
func (s *Store) Chats() ChatRepository       { return ChatRepository{s} }
func (s *Store) Messages() MessageRepository { return MessageRepository{s} }

func sortPayments(ps []entities.Payment) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].CreatedAt.Before(ps[j].CreatedAt) })
}

func now() time.Time { return time.Now().UTC() }
