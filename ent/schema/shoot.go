// ent/schema/shoot.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Shoot holds the schema definition for a dated content-production event.
type Shoot struct {
	ent.Schema
}

// Fields of the Shoot.
func (Shoot) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.UUID("client_id", uuid.UUID{}).
			Comment("Owning client"),

		field.UUID("cycle_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Parent cycle; nil for an orphan/ad-hoc shoot"),

		field.Time("shoot_date").
			Comment("Anchor date for the shoot's task due dates"),

		field.String("shoot_time").
			Optional().
			Comment("Time of day as HH:MM"),

		field.String("location").
			Optional().
			Comment("Where the shoot takes place"),

		field.String("calendar_link").
			Optional().
			Comment("External calendar event URL"),

		field.Enum("status").
			Values("planned", "shot", "edited", "delivered").
			Default("planned").
			Comment("Production pipeline status; transitions complete handoff tasks"),

		field.Enum("type").
			Values("monthly", "adhoc").
			Default("monthly").
			Comment("Whether the shoot belongs to the monthly cadence"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Shoot.
func (Shoot) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("client", ClientAccount.Type).
			Ref("shoots").
			Unique().
			Required().
			Field("client_id"),

		edge.From("cycle", Cycle.Type).
			Ref("shoots").
			Unique().
			Field("cycle_id"),
	}
}

// Indexes of the Shoot.
func (Shoot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_id", "shoot_date"),

		// Upcoming-shoots query across clients
		index.Fields("shoot_date"),

		index.Fields("cycle_id"),
	}
}
