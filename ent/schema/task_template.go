// ent/schema/task_template.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// TaskTemplate holds the schema definition for a reusable task definition.
// A nil client_id means the template belongs to the global set; a non-nil
// client_id scopes it to one client and fully replaces the global set for
// that (client, parent_type) pair.
type TaskTemplate struct {
	ent.Schema
}

// Fields of the TaskTemplate.
func (TaskTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.UUID("client_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Owning client; nil for a global template"),

		field.Enum("parent_type").
			Values("cycle", "shoot").
			Comment("Which parent kind this template materializes under"),

		field.String("title").
			NotEmpty().
			MaxLen(200).
			Comment("Task title; well-known titles drive handoff behavior"),

		field.Enum("role").
			Values("strategist", "scheduler", "shooter", "editor").
			Comment("Role the materialized task is tagged with"),

		field.Int("sort_order").
			Default(0).
			Comment("Materialization order; sort_order <= 4 is pre-event by convention"),

		field.Int("days_offset").
			Default(0).
			Comment("Due date offset in calendar days from the parent anchor date"),

		field.Bool("is_active").
			Default(true).
			Comment("Inactive templates are skipped at materialization time"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the template was created; breaks sort_order ties"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the template was last updated"),
	}
}

// Edges of the TaskTemplate.
func (TaskTemplate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("client", ClientAccount.Type).
			Ref("templates").
			Unique().
			Field("client_id"),

		edge.To("assignments", ClientTaskAssignment.Type).
			Comment("Per-client assignment overrides for this template"),
	}
}

// Indexes of the TaskTemplate.
func (TaskTemplate) Indexes() []ent.Index {
	return []ent.Index{
		// Resolution query: client + parent type + active, ordered by sort_order
		index.Fields("client_id", "parent_type", "is_active", "sort_order"),

		index.Fields("parent_type", "sort_order"),
	}
}
