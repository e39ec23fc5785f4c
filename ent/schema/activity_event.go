// ent/schema/activity_event.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ActivityEvent holds the schema definition for the operational audit trail.
type ActivityEvent struct {
	ent.Schema
}

// Fields of the ActivityEvent.
func (ActivityEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.UUID("actor_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Profile that performed the action; nil for system events"),

		field.UUID("client_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Client the event relates to, if any"),

		field.Enum("event_type").
			Values(
				"client_created",
				"client_updated",
				"clients_imported",
				"cycle_started",
				"shoot_scheduled",
				"shoot_status_changed",
				"checkin_completed",
				"role_changed",
				"invite_sent",
				"invite_accepted",
				"login_success",
				"login_failed",
			).
			Comment("Type of activity event"),

		field.String("description").
			Optional().
			Comment("Human-readable description of the event"),

		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Default(map[string]interface{}{}).
			Comment("Additional event metadata"),

		field.Enum("severity").
			Values("low", "medium", "high").
			Default("low").
			Comment("Event severity level"),

		field.String("ip_address").
			Optional().
			Comment("IP address where the event originated"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the event occurred"),
	}
}

// Edges of the ActivityEvent.
func (ActivityEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("actor", Profile.Type).
			Ref("activity_events").
			Unique().
			Field("actor_id"),
	}
}

// Indexes of the ActivityEvent.
func (ActivityEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("actor_id"),

		index.Fields("client_id"),

		index.Fields("event_type"),

		index.Fields("created_at"),
	}
}
