package usecase

import (
	"errors"
	"fmt"

	"marketplace_payments/internal/usecase/interfaces"
)

// Error categories. Every error returned by a use case wraps exactly one of them.
//
//   - ErrValidation, ErrNotFound, ErrAuthenticity and ErrDependency are returned
//     before any mutation, or with no partial row left behind.
//   - ErrStateConflict reports a request that is valid but not allowed in the
//     current state (e.g. paying for a cancelled mission).
//   - ErrConflict is the store-level uniqueness rejection. It is absorbed by the
//     conversation provisioner and never reaches a caller.
var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("not found")
	ErrAuthenticity  = errors.New("authenticity error")
	ErrDependency    = errors.New("dependency error")
	ErrStateConflict = errors.New("state conflict")
	ErrConflict      = interfaces.ErrAlreadyExists
)

var (
	ErrInvalidMissionID       = fmt.Errorf("%w: invalid mission_id", ErrValidation)
	ErrInvalidClientID        = fmt.Errorf("%w: invalid client_id", ErrValidation)
	ErrInvalidMissionPrice    = fmt.Errorf("%w: mission price must be positive", ErrValidation)
	ErrMissionClientMismatch  = fmt.Errorf("%w: mission does not belong to client", ErrValidation)
	ErrProfessionalNotPayable = fmt.Errorf("%w: professional cannot receive payments", ErrValidation)
	ErrMalformedEvent         = fmt.Errorf("%w: malformed payment event", ErrValidation)
	ErrInvalidParticipants    = fmt.Errorf("%w: invalid conversation participants", ErrValidation)
	ErrInvalidChatID          = fmt.Errorf("%w: invalid chat_id", ErrValidation)
	ErrInvalidUserID          = fmt.Errorf("%w: invalid user id", ErrValidation)
	ErrEmptyMessage           = fmt.Errorf("%w: message content or attachment required", ErrValidation)
	ErrNotParticipant         = fmt.Errorf("%w: user is not a participant of this chat", ErrValidation)

	ErrMissionNotFound = fmt.Errorf("%w: mission not found", ErrNotFound)
	ErrChatNotFound    = fmt.Errorf("%w: chat not found", ErrNotFound)

	ErrInvalidSignature = fmt.Errorf("%w: invalid signature", ErrAuthenticity)

	ErrMissionNotPayable = fmt.Errorf("%w: mission is not awaiting payment", ErrStateConflict)
	ErrCheckoutStillOpen = fmt.Errorf("%w: a previous checkout for this mission is still open", ErrStateConflict)
)

func dependencyError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrDependency, op, err)
}
