// ent/schema/task.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Task holds the schema definition for a materialized unit of work. Tasks
// are created only by the materializer, one per active template, and carry
// a polymorphic parent (parent_type + parent_id) instead of separate cycle
// and shoot foreign keys.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.Enum("parent_type").
			Values("cycle", "shoot").
			Immutable().
			Comment("Discriminator for the polymorphic parent"),

		field.UUID("parent_id", uuid.UUID{}).
			Immutable().
			Comment("ID of the owning cycle or shoot, per parent_type"),

		field.UUID("client_id", uuid.UUID{}).
			Immutable().
			Comment("Denormalized owning client for client-wide task listing"),

		field.UUID("template_id", uuid.UUID{}).
			Optional().
			Nillable().
			Immutable().
			Comment("Template this task was materialized from"),

		field.String("title").
			NotEmpty().
			MaxLen(200).
			Comment("Task title; special titles gate the status toggle"),

		field.Enum("role").
			Values("strategist", "scheduler", "shooter", "editor").
			Comment("Role tag copied from the template"),

		field.Int("sort_order").
			Default(0).
			Comment("Display and grouping order, copied verbatim from the template"),

		field.Time("due_date").
			Optional().
			Nillable().
			Comment("Anchor date plus the effective days offset"),

		field.UUID("assignee_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Assigned team member; nil means unassigned"),

		field.Enum("status").
			Values("todo", "done").
			Default("todo").
			Comment("Completion state"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("assignee", Profile.Type).
			Ref("assigned_tasks").
			Unique().
			Field("assignee_id"),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		// Task list for a parent, in template order
		index.Fields("parent_type", "parent_id", "sort_order"),

		// Guard: at most one materialized task per (parent, template)
		index.Fields("parent_type", "parent_id", "template_id").
			Unique(),

		index.Fields("client_id"),

		index.Fields("status", "due_date"),

		index.Fields("assignee_id"),
	}
}
