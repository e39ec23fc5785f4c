// ent/schema/profile.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Profile holds the schema definition for a team member.
type Profile struct {
	ent.Schema
}

// Fields of the Profile.
func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.String("email").
			NotEmpty().
			Unique().
			Comment("Team member email address"),

		field.String("display_name").
			Optional().
			Default("").
			MaxLen(100).
			Comment("Name shown in assignee pickers"),

		field.String("avatar_url").
			Optional().
			Comment("Avatar image URL"),

		field.Enum("role").
			Values("admin", "contributor").
			Default("contributor").
			Comment("Role for authorization checks"),

		field.String("password_hash").
			Optional().
			Sensitive().
			Comment("Hashed password; empty until the invite is accepted"),

		field.Bool("is_active").
			Default(true).
			Comment("Whether the account can log in"),

		field.String("invite_token").
			Optional().
			Sensitive().
			Comment("Pending invitation token"),

		field.Time("invite_expires_at").
			Optional().
			Nillable().
			Comment("Invitation token expiration"),

		field.Time("last_login").
			Optional().
			Nillable().
			Comment("Last successful login timestamp"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the profile was created"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the profile was last updated"),
	}
}

// Edges of the Profile.
func (Profile) Edges() []ent.Edge {
	return []ent.Edge{
		// Tasks currently assigned to this team member
		edge.To("assigned_tasks", Task.Type).
			Comment("Tasks assigned to this profile"),

		// Context entries written by this team member
		edge.To("context_entries", ContextEntry.Type).
			Comment("Context entries authored by this profile"),

		// Default assignments pointing at this team member
		edge.To("default_assignments", ClientTaskAssignment.Type).
			Comment("Per-client default assignments targeting this profile"),

		// Activity trail
		edge.To("activity_events", ActivityEvent.Type).
			Comment("Activity events attributed to this profile"),
	}
}

// Indexes of the Profile.
func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").
			Unique(),

		index.Fields("invite_token").
			Unique(),

		// Role-based listing
		index.Fields("role", "is_active"),
	}
}
