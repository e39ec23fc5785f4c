// ent/schema/context_entry.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ContextEntry holds the schema definition for a freeform note, transcript,
// or report attached to a client, optionally tied to a cycle.
type ContextEntry struct {
	ent.Schema
}

// Fields of the ContextEntry.
func (ContextEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.UUID("client_id", uuid.UUID{}).
			Comment("Client the entry belongs to"),

		field.UUID("cycle_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Cycle the entry was captured during, if any"),

		field.UUID("author_id", uuid.UUID{}).
			Comment("Team member who wrote the entry"),

		field.Enum("type").
			Values("transcript", "report", "note").
			Comment("Kind of entry"),

		field.Text("content").
			NotEmpty().
			MaxLen(50000).
			SchemaType(map[string]string{dialect.Postgres: "text"}).
			Comment("Entry body, at most 50000 characters"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ContextEntry.
func (ContextEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("client", ClientAccount.Type).
			Ref("context_entries").
			Unique().
			Required().
			Field("client_id"),

		edge.From("cycle", Cycle.Type).
			Ref("context_entries").
			Unique().
			Field("cycle_id"),

		edge.From("author", Profile.Type).
			Ref("context_entries").
			Unique().
			Required().
			Field("author_id"),
	}
}

// Indexes of the ContextEntry.
func (ContextEntry) Indexes() []ent.Index {
	return []ent.Index{
		// Feed query: newest first per client
		index.Fields("client_id", "created_at"),

		index.Fields("cycle_id"),
	}
}
