package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/playplanner-service/internal/events"
)

// StartActivityWorker subscribes the activity log to every domain event.
func StartActivityWorker(dispatcher events.Dispatcher, logger *zap.Logger) {
	if dispatcher == nil {
		return
	}
	for _, eventType := range events.AllTypes {
		dispatcher.Subscribe(eventType, activityHandler(logger))
	}
}

func activityHandler(logger *zap.Logger) events.EventHandler {
	return func(_ context.Context, e events.Event) error {
		logger.Info("activity",
			zap.String("event_id", e.ID),
			zap.String("type", string(e.Type)),
			zap.Int64("actor_id", e.ActorID),
			zap.Int64("record_id", e.RecordID),
		)
		if p, ok := e.Payload.(events.UserRegisteredPayload); ok && p.BillingRequested {
			// Billing records are not persisted yet; the request is only recorded.
			logger.Info("billing info setup requested", zap.Int64("user_id", e.RecordID))
		}
		return nil
	}
}
