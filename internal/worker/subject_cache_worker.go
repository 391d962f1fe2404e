package worker

import (
	"context"

	"github.com/spec-kit/playplanner-service/internal/events"
)

// SubjectInvalidator drops cached token subjects.
type SubjectInvalidator interface {
	Invalidate(ctx context.Context, email string) error
}

// StartSubjectCacheWorker evicts the cached subject of every newly
// registered email, so a recreated account never resolves to a stale id.
func StartSubjectCacheWorker(dispatcher events.Dispatcher, cache SubjectInvalidator) {
	if dispatcher == nil || cache == nil {
		return
	}
	dispatcher.Subscribe(events.EventUserRegistered, func(ctx context.Context, e events.Event) error {
		p, ok := e.Payload.(events.UserRegisteredPayload)
		if !ok || p.Email == "" {
			return nil
		}
		return cache.Invalidate(ctx, p.Email)
	})
}
