// ent/schema/client_task_assignment.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ClientTaskAssignment holds the schema definition for a per-client override
// on a template: who the materialized task defaults to, and optionally a
// replacement days offset. The presence of a row is itself meaningful: a
// row with a nil assignee pins the task to "explicitly unassigned", while
// deleting the row removes the override entirely.
type ClientTaskAssignment struct {
	ent.Schema
}

// Fields of the ClientTaskAssignment.
func (ClientTaskAssignment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.UUID("client_id", uuid.UUID{}).
			Comment("Client the override applies to"),

		field.UUID("template_id", uuid.UUID{}).
			Comment("Template the override applies to"),

		field.UUID("assignee_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Default assignee; nil means explicitly unassigned"),

		field.Int("days_offset_override").
			Optional().
			Nillable().
			Comment("Replaces the template days_offset when set"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ClientTaskAssignment.
func (ClientTaskAssignment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("client", ClientAccount.Type).
			Ref("assignments").
			Unique().
			Required().
			Field("client_id"),

		edge.From("template", TaskTemplate.Type).
			Ref("assignments").
			Unique().
			Required().
			Field("template_id"),

		edge.From("assignee", Profile.Type).
			Ref("default_assignments").
			Unique().
			Field("assignee_id"),
	}
}

// Indexes of the ClientTaskAssignment.
func (ClientTaskAssignment) Indexes() []ent.Index {
	return []ent.Index{
		// One override per (client, template)
		index.Fields("client_id", "template_id").
			Unique(),
	}
}
