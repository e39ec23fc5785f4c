// ent/schema/client_account.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ClientAccount holds the schema definition for an agency client. Named
// ClientAccount because ent reserves the Client type name for its own
// generated database client.
type ClientAccount struct {
	ent.Schema
}

// Fields of the Client.
func (ClientAccount) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.String("name").
			NotEmpty().
			MaxLen(100).
			Comment("Client display name"),

		field.Enum("status").
			Values("active", "archived").
			Default("active").
			Comment("Clients are archived, never hard-deleted"),

		field.JSON("assets", map[string]string{}).
			Optional().
			Default(map[string]string{}).
			Comment("Free-form asset links: drive_url, schedule_url, brand_url, contact fields"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the client was created"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the client was last updated"),
	}
}

// Edges of the Client.
func (ClientAccount) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("cycles", Cycle.Type).
			Comment("Monthly cycles for this client"),

		edge.To("shoots", Shoot.Type).
			Comment("Shoots for this client"),

		edge.To("templates", TaskTemplate.Type).
			Comment("Client-scoped template overrides"),

		edge.To("assignments", ClientTaskAssignment.Type).
			Comment("Per-template default assignments"),

		edge.To("context_entries", ContextEntry.Type).
			Comment("Context feed entries for this client"),
	}
}

// Indexes of the Client.
func (ClientAccount) Indexes() []ent.Index {
	return []ent.Index{
		// Listing is ordered by name, filtered by status
		index.Fields("status", "name"),
	}
}
