package usecase

import (
	"github.com/google/uuid"

	"workbridge/internal/ws"
)

// Notifier is the push-channel port. Delivery is best effort: implementations
// never block and never fail the calling operation.
type Notifier interface {
	NotifyUser(userID uuid.UUID, evt ws.Event)
}
