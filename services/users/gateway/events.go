package gateway

import (
	"context"

	"github.com/dostavka-go/user-service/internal/pkg/logger"
	"github.com/dostavka-go/user-service/internal/pkg/models"
	"github.com/dostavka-go/user-service/internal/pkg/nsq"
)

// TopicLocationUpdated carries location change events
const TopicLocationUpdated = "user.location.updated"

// EventGateway publishes domain events over NSQ. A nil producer disables
// publishing entirely.
type EventGateway struct {
	producer *nsq.Producer
	log      *logger.ZapLogger
}

// NewEventGateway creates the event gateway. Pass a nil producer when NSQ is
// disabled.
func NewEventGateway(producer *nsq.Producer, log *logger.ZapLogger) *EventGateway {
	return &EventGateway{
		producer: producer,
		log:      log,
	}
}

// PublishLocationUpdate publishes a location change event
func (g *EventGateway) PublishLocationUpdate(_ context.Context, event models.LocationUpdateEvent) error {
	if g.producer == nil {
		return nil
	}

	if err := g.producer.Publish(TopicLocationUpdated, event); err != nil {
		g.log.Warn("failed to publish location update",
			logger.Int64("user_id", event.UserID),
			logger.ErrorField(err))
		return err
	}

	return nil
}
