// internal/service/activity_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localbzz/clientops/pkg/activity"

	_ "github.com/mattn/go-sqlite3"
)

func TestActivityService_LogActivityEvent(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	svc := NewActivityService(client)
	ctx := context.Background()

	actor := helpers.CreateAdminProfile("admin@example.com", "SecurePass123!")
	acme := helpers.CreateTestClient("Acme Fitness")

	t.Run("logs an actor event", func(t *testing.T) {
		err := svc.LogActivityEvent(ctx, &LogActivityEventRequest{
			ActorID:     actor.ID,
			ClientID:    acme.ID,
			EventType:   activity.EventTypeClientUpdated,
			Description: "Client profile updated",
			Severity:    activity.SeverityLow,
			IPAddress:   "10.0.0.1",
			Metadata:    map[string]interface{}{"field": "name"},
		})
		require.NoError(t, err)
	})

	t.Run("logs a system event without an actor", func(t *testing.T) {
		err := svc.LogSystemEvent(ctx, activity.EventTypeLoginFailed, "Failed login for ghost@example.com", activity.SeverityMedium, "10.0.0.2")
		require.NoError(t, err)
	})

	t.Run("rejects unknown event types", func(t *testing.T) {
		err := svc.LogActivityEvent(ctx, &LogActivityEventRequest{
			ActorID:     actor.ID,
			EventType:   "not_a_thing",
			Description: "bad",
			Severity:    activity.SeverityLow,
		})
		require.Error(t, err)
	})
}

func TestActivityService_GetActivityEvents(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	helpers := NewTestHelpers(t, client)
	svc := NewActivityService(client)
	ctx := context.Background()

	actor := helpers.CreateAdminProfile("admin@example.com", "SecurePass123!")
	acme := helpers.CreateTestClient("Acme Fitness")
	other := helpers.CreateTestClient("Other Co")

	require.NoError(t, svc.LogActorEvent(ctx, actor.ID, acme.ID, activity.EventTypeCycleStarted, "Cycle started for 2026-03", activity.SeverityLow, ""))
	require.NoError(t, svc.LogActorEvent(ctx, actor.ID, acme.ID, activity.EventTypeShootScheduled, "Shoot scheduled for 2026-03-10", activity.SeverityLow, ""))
	require.NoError(t, svc.LogActorEvent(ctx, actor.ID, other.ID, activity.EventTypeCycleStarted, "Cycle started for 2026-03", activity.SeverityLow, ""))

	t.Run("filters by client", func(t *testing.T) {
		resp, err := svc.GetActivityEvents(ctx, &GetActivityEventsRequest{
			ClientID: acme.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)
		assert.Len(t, resp.Events, 2)
	})

	t.Run("filters by event type", func(t *testing.T) {
		resp, err := svc.GetActivityEvents(ctx, &GetActivityEventsRequest{
			EventType: activity.EventTypeCycleStarted,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)
	})

	t.Run("pagination caps the page not the count", func(t *testing.T) {
		resp, err := svc.GetActivityEvents(ctx, &GetActivityEventsRequest{
			ActorID: actor.ID,
			Limit:   2,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Len(t, resp.Events, 2)
	})

	t.Run("unknown filter type rejected", func(t *testing.T) {
		_, err := svc.GetActivityEvents(ctx, &GetActivityEventsRequest{
			EventType: "bogus",
		})
		require.Error(t, err)
	})

	t.Run("unknown client yields nothing", func(t *testing.T) {
		resp, err := svc.GetActivityEvents(ctx, &GetActivityEventsRequest{
			ClientID: uuid.New(),
		})
		require.NoError(t, err)
		assert.Zero(t, resp.TotalCount)
	})
}
