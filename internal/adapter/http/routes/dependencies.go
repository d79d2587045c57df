package routes

import (
	"context"
	"fmt"
	"log"

	"marketplace_payments/internal/adapter/persistence/memory"
	"marketplace_payments/internal/adapter/persistence/repository"
	"marketplace_payments/internal/config"
	"marketplace_payments/internal/infrastructure/cache"
	"marketplace_payments/internal/infrastructure/database"
	"marketplace_payments/internal/infrastructure/messaging"
	"marketplace_payments/internal/infrastructure/payments"
	"marketplace_payments/internal/usecase"
	"marketplace_payments/internal/usecase/interfaces"
)

type paymentProvider interface {
	interfaces.IPaymentGateway
	interfaces.IPaymentEventVerifier
}

type ledger struct {
	users    interfaces.IUserRepository
	missions interfaces.IMissionRepository
	bookings interfaces.IBookingRepository
	payments interfaces.IPaymentRepository
	chats    interfaces.IChatRepository
	messages interfaces.IMessageRepository
}

type dependencies struct {
	useCases UseCases
	closers  []func()
}

func buildDependencies(ctx context.Context, cfg *config.Config) (dependencies, error) {
	var deps dependencies

	store, err := buildLedger(ctx, cfg)
	if err != nil {
		return deps, err
	}
	provider, err := buildPaymentProvider(cfg)
	if err != nil {
		return deps, err
	}

	var publisher interfaces.IEventPublisher
	if cfg.RabbitMQURL != "" {
		p, err := messaging.NewEventPublisher(cfg.RabbitMQURL, cfg.RabbitMQExchange)
		if err != nil {
			log.Printf("[events][rabbitmq] publisher unavailable; domain events disabled err=%v", err)
		} else {
			publisher = p
			deps.closers = append(deps.closers, p.Close)
		}
	}

	var processed interfaces.IProcessedEventStore
	if cfg.RedisURL != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Printf("[cache][redis] unavailable; processed-event cache disabled err=%v", err)
		} else {
			processed = cache.NewProcessedEventStore(client, "", cfg.ProcessedEventsTTL)
			deps.closers = append(deps.closers, func() { _ = client.Close() })
		}
	}

	conversations := usecase.NewConversationUseCase(store.chats, store.messages)
	deps.useCases = UseCases{
		Checkout: usecase.NewCheckoutUseCase(store.missions, store.users, store.payments, provider, usecase.CheckoutOptions{
			Currency: cfg.Currency,
			Timeout:  cfg.CheckoutTimeout,
		}),
		PaymentEvents:  usecase.NewPaymentEventUseCase(provider, store.payments, store.missions, store.bookings, conversations, publisher, processed),
		Conversations:  conversations,
		Messaging:      usecase.NewMessagingUseCase(store.chats, store.messages),
		Reconciliation: usecase.NewReconciliationUseCase(store.payments, store.missions, store.bookings, conversations, usecase.ReconcileOptions{
			Window: cfg.ReconcileWindow,
		}),
	}
	return deps, nil
}

func buildLedger(ctx context.Context, cfg *config.Config) (ledger, error) {
	if cfg.LedgerBackend == config.LedgerBackendMemory {
		log.Printf("[ledger][memory] using in-memory ledger; state is lost on restart")
		s := memory.NewStore()
		return ledger{
			users:    s.Users(),
			missions: s.Missions(),
			bookings: s.Bookings(),
			payments: s.Payments(),
			chats:    s.Chats(),
			messages: s.Messages(),
		}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return ledger{}, fmt.Errorf("connect dynamodb: %w", err)
	}
	return ledger{
		users:    repository.NewUserDynamoRepository(ddb, cfg.UsersTable),
		missions: repository.NewMissionDynamoRepository(ddb, cfg.MissionsTable),
		bookings: repository.NewBookingDynamoRepository(ddb, cfg.BookingsTable),
		payments: repository.NewPaymentDynamoRepository(ddb, cfg.PaymentsTable),
		chats:    repository.NewChatDynamoRepository(ddb, cfg.ChatsTable),
		messages: repository.NewMessageDynamoRepository(ddb, cfg.MessagesTable),
	}, nil
}

func buildPaymentProvider(cfg *config.Config) (paymentProvider, error) {
	switch cfg.PaymentProvider {
	case config.ProviderMercadoPago:
		g, err := payments.NewMercadoPagoGateway(payments.MercadoPagoOptions{
			AccessToken:     cfg.MercadoPagoAccessToken,
			WebhookSecret:   cfg.MercadoPagoWebhookSecret,
			SuccessURL:      cfg.CheckoutSuccessURL,
			CancelURL:       cfg.CheckoutCancelURL,
			NotificationURL: cfg.MercadoPagoNotifyURL,
			MockMode:        cfg.PaymentGatewayMock,
		})
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		g, err := payments.NewStripeGateway(payments.StripeOptions{
			SecretKey:     cfg.StripeSecretKey,
			WebhookSecret: cfg.StripeWebhookSecret,
			SuccessURL:    cfg.CheckoutSuccessURL,
			CancelURL:     cfg.CheckoutCancelURL,
			MockMode:      cfg.PaymentGatewayMock,
		})
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}
