// ent/schema/cycle.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Cycle holds the schema definition for a client's monthly recurrence unit.
type Cycle struct {
	ent.Schema
}

// Fields of the Cycle.
func (Cycle) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.UUID("client_id", uuid.UUID{}).
			Comment("Owning client"),

		field.Time("month").
			Immutable().
			Comment("Anchor month, always normalized to the first of the month"),

		field.Enum("status").
			Values("planning", "active", "completed").
			Default("planning").
			Comment("Cycle lifecycle status"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Cycle.
func (Cycle) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("client", ClientAccount.Type).
			Ref("cycles").
			Unique().
			Required().
			Field("client_id"),

		edge.To("shoots", Shoot.Type).
			Comment("Shoots scheduled against this cycle"),

		edge.To("context_entries", ContextEntry.Type).
			Comment("Context entries captured during this cycle"),
	}
}

// Indexes of the Cycle.
func (Cycle) Indexes() []ent.Index {
	return []ent.Index{
		// "Current cycle" = most recent by month, always computed from this
		// index. One cycle per client per month.
		index.Fields("client_id", "month").
			Unique(),
	}
}
