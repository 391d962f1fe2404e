package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/playplanner-service/internal/events"
)

func TestActivityWorkerLogsBillingRequests(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	dispatcher := events.NewInMemoryDispatcher()
	StartActivityWorker(dispatcher, zap.New(core))

	payload := events.UserRegisteredPayload{Email: "a@b.com", BillingRequested: true}
	require.NoError(t, dispatcher.Publish(context.Background(),
		events.New(events.EventUserRegistered, 5, 5, time.Now(), payload)))

	assert.Equal(t, 1, logs.FilterMessage("activity").Len())
	assert.Equal(t, 1, logs.FilterMessage("billing info setup requested").Len())
}

func TestActivityWorkerCoversAllTypes(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	dispatcher := events.NewInMemoryDispatcher()
	StartActivityWorker(dispatcher, zap.New(core))

	for _, et := range events.AllTypes {
		require.NoError(t, dispatcher.Publish(context.Background(), events.New(et, 1, 1, time.Now(), nil)))
	}
	assert.Equal(t, len(events.AllTypes), logs.FilterMessage("activity").Len())
	assert.Equal(t, 0, logs.FilterMessage("billing info setup requested").Len())
}

func TestStartActivityWorkerNilDispatcher(t *testing.T) {
	assert.NotPanics(t, func() { StartActivityWorker(nil, zap.NewNop()) })
}
