// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivityEventsColumns holds the columns for the "activity_events" table.
	ActivityEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "client_id", Type: field.TypeUUID, Nullable: true},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"client_created", "client_updated", "clients_imported", "cycle_started", "shoot_scheduled", "shoot_status_changed", "checkin_completed", "role_changed", "invite_sent", "invite_accepted", "login_success", "login_failed"}},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}, Default: "low"},
		{Name: "ip_address", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "actor_id", Type: field.TypeUUID, Nullable: true},
	}
	// ActivityEventsTable holds the schema information for the "activity_events" table.
	ActivityEventsTable = &schema.Table{
		Name:       "activity_events",
		Columns:    ActivityEventsColumns,
		PrimaryKey: []*schema.Column{ActivityEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "activity_events_profiles_activity_events",
				Columns:    []*schema.Column{ActivityEventsColumns[8]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "activityevent_actor_id",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[8]},
			},
			{
				Name:    "activityevent_client_id",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[1]},
			},
			{
				Name:    "activityevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[2]},
			},
			{
				Name:    "activityevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[7]},
			},
		},
	}
	// ClientAccountsColumns holds the columns for the "client_accounts" table.
	ClientAccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "archived"}, Default: "active"},
		{Name: "assets", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ClientAccountsTable holds the schema information for the "client_accounts" table.
	ClientAccountsTable = &schema.Table{
		Name:       "client_accounts",
		Columns:    ClientAccountsColumns,
		PrimaryKey: []*schema.Column{ClientAccountsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "clientaccount_status_name",
				Unique:  false,
				Columns: []*schema.Column{ClientAccountsColumns[2], ClientAccountsColumns[1]},
			},
		},
	}
	// ClientTaskAssignmentsColumns holds the columns for the "client_task_assignments" table.
	ClientTaskAssignmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "days_offset_override", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "client_id", Type: field.TypeUUID},
		{Name: "assignee_id", Type: field.TypeUUID, Nullable: true},
		{Name: "template_id", Type: field.TypeUUID},
	}
	// ClientTaskAssignmentsTable holds the schema information for the "client_task_assignments" table.
	ClientTaskAssignmentsTable = &schema.Table{
		Name:       "client_task_assignments",
		Columns:    ClientTaskAssignmentsColumns,
		PrimaryKey: []*schema.Column{ClientTaskAssignmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "client_task_assignments_client_accounts_assignments",
				Columns:    []*schema.Column{ClientTaskAssignmentsColumns[4]},
				RefColumns: []*schema.Column{ClientAccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "client_task_assignments_profiles_default_assignments",
				Columns:    []*schema.Column{ClientTaskAssignmentsColumns[5]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "client_task_assignments_task_templates_assignments",
				Columns:    []*schema.Column{ClientTaskAssignmentsColumns[6]},
				RefColumns: []*schema.Column{TaskTemplatesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "clienttaskassignment_client_id_template_id",
				Unique:  true,
				Columns: []*schema.Column{ClientTaskAssignmentsColumns[4], ClientTaskAssignmentsColumns[6]},
			},
		},
	}
	// ContextEntriesColumns holds the columns for the "context_entries" table.
	ContextEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"transcript", "report", "note"}},
		{Name: "content", Type: field.TypeString, Size: 50000, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "client_id", Type: field.TypeUUID},
		{Name: "cycle_id", Type: field.TypeUUID, Nullable: true},
		{Name: "author_id", Type: field.TypeUUID},
	}
	// ContextEntriesTable holds the schema information for the "context_entries" table.
	ContextEntriesTable = &schema.Table{
		Name:       "context_entries",
		Columns:    ContextEntriesColumns,
		PrimaryKey: []*schema.Column{ContextEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "context_entries_client_accounts_context_entries",
				Columns:    []*schema.Column{ContextEntriesColumns[4]},
				RefColumns: []*schema.Column{ClientAccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "context_entries_cycles_context_entries",
				Columns:    []*schema.Column{ContextEntriesColumns[5]},
				RefColumns: []*schema.Column{CyclesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "context_entries_profiles_context_entries",
				Columns:    []*schema.Column{ContextEntriesColumns[6]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contextentry_client_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContextEntriesColumns[4], ContextEntriesColumns[3]},
			},
			{
				Name:    "contextentry_cycle_id",
				Unique:  false,
				Columns: []*schema.Column{ContextEntriesColumns[5]},
			},
		},
	}
	// CyclesColumns holds the columns for the "cycles" table.
	CyclesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "month", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"planning", "active", "completed"}, Default: "planning"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "client_id", Type: field.TypeUUID},
	}
	// CyclesTable holds the schema information for the "cycles" table.
	CyclesTable = &schema.Table{
		Name:       "cycles",
		Columns:    CyclesColumns,
		PrimaryKey: []*schema.Column{CyclesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "cycles_client_accounts_cycles",
				Columns:    []*schema.Column{CyclesColumns[5]},
				RefColumns: []*schema.Column{ClientAccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "cycle_client_id_month",
				Unique:  true,
				Columns: []*schema.Column{CyclesColumns[5], CyclesColumns[1]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString, Nullable: true, Size: 100, Default: ""},
		{Name: "avatar_url", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "contributor"}, Default: "contributor"},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "invite_token", Type: field.TypeString, Nullable: true},
		{Name: "invite_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_login", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profile_email",
				Unique:  true,
				Columns: []*schema.Column{ProfilesColumns[1]},
			},
			{
				Name:    "profile_invite_token",
				Unique:  true,
				Columns: []*schema.Column{ProfilesColumns[7]},
			},
			{
				Name:    "profile_role_is_active",
				Unique:  false,
				Columns: []*schema.Column{ProfilesColumns[4], ProfilesColumns[6]},
			},
		},
	}
	// ShootsColumns holds the columns for the "shoots" table.
	ShootsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "shoot_date", Type: field.TypeTime},
		{Name: "shoot_time", Type: field.TypeString, Nullable: true},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "calendar_link", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"planned", "shot", "edited", "delivered"}, Default: "planned"},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"monthly", "adhoc"}, Default: "monthly"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "client_id", Type: field.TypeUUID},
		{Name: "cycle_id", Type: field.TypeUUID, Nullable: true},
	}
	// ShootsTable holds the schema information for the "shoots" table.
	ShootsTable = &schema.Table{
		Name:       "shoots",
		Columns:    ShootsColumns,
		PrimaryKey: []*schema.Column{ShootsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "shoots_client_accounts_shoots",
				Columns:    []*schema.Column{ShootsColumns[9]},
				RefColumns: []*schema.Column{ClientAccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "shoots_cycles_shoots",
				Columns:    []*schema.Column{ShootsColumns[10]},
				RefColumns: []*schema.Column{CyclesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "shoot_client_id_shoot_date",
				Unique:  false,
				Columns: []*schema.Column{ShootsColumns[9], ShootsColumns[1]},
			},
			{
				Name:    "shoot_shoot_date",
				Unique:  false,
				Columns: []*schema.Column{ShootsColumns[1]},
			},
			{
				Name:    "shoot_cycle_id",
				Unique:  false,
				Columns: []*schema.Column{ShootsColumns[10]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "parent_type", Type: field.TypeEnum, Enums: []string{"cycle", "shoot"}},
		{Name: "parent_id", Type: field.TypeUUID},
		{Name: "client_id", Type: field.TypeUUID},
		{Name: "template_id", Type: field.TypeUUID, Nullable: true},
		{Name: "title", Type: field.TypeString, Size: 200},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"strategist", "scheduler", "shooter", "editor"}},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
		{Name: "due_date", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"todo", "done"}, Default: "todo"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "assignee_id", Type: field.TypeUUID, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_profiles_assigned_tasks",
				Columns:    []*schema.Column{TasksColumns[12]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_parent_type_parent_id_sort_order",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[2], TasksColumns[7]},
			},
			{
				Name:    "task_parent_type_parent_id_template_id",
				Unique:  true,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[2], TasksColumns[4]},
			},
			{
				Name:    "task_client_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[3]},
			},
			{
				Name:    "task_status_due_date",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[9], TasksColumns[8]},
			},
			{
				Name:    "task_assignee_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[12]},
			},
		},
	}
	// TaskTemplatesColumns holds the columns for the "task_templates" table.
	TaskTemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "parent_type", Type: field.TypeEnum, Enums: []string{"cycle", "shoot"}},
		{Name: "title", Type: field.TypeString, Size: 200},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"strategist", "scheduler", "shooter", "editor"}},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
		{Name: "days_offset", Type: field.TypeInt, Default: 0},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "client_id", Type: field.TypeUUID, Nullable: true},
	}
	// TaskTemplatesTable holds the schema information for the "task_templates" table.
	TaskTemplatesTable = &schema.Table{
		Name:       "task_templates",
		Columns:    TaskTemplatesColumns,
		PrimaryKey: []*schema.Column{TaskTemplatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_templates_client_accounts_templates",
				Columns:    []*schema.Column{TaskTemplatesColumns[9]},
				RefColumns: []*schema.Column{ClientAccountsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tasktemplate_client_id_parent_type_is_active_sort_order",
				Unique:  false,
				Columns: []*schema.Column{TaskTemplatesColumns[9], TaskTemplatesColumns[1], TaskTemplatesColumns[6], TaskTemplatesColumns[4]},
			},
			{
				Name:    "tasktemplate_parent_type_sort_order",
				Unique:  false,
				Columns: []*schema.Column{TaskTemplatesColumns[1], TaskTemplatesColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivityEventsTable,
		ClientAccountsTable,
		ClientTaskAssignmentsTable,
		ContextEntriesTable,
		CyclesTable,
		ProfilesTable,
		ShootsTable,
		TasksTable,
		TaskTemplatesTable,
	}
)

func init() {
	ActivityEventsTable.ForeignKeys[0].RefTable = ProfilesTable
	ClientTaskAssignmentsTable.ForeignKeys[0].RefTable = ClientAccountsTable
	ClientTaskAssignmentsTable.ForeignKeys[1].RefTable = ProfilesTable
	ClientTaskAssignmentsTable.ForeignKeys[2].RefTable = TaskTemplatesTable
	ContextEntriesTable.ForeignKeys[0].RefTable = ClientAccountsTable
	ContextEntriesTable.ForeignKeys[1].RefTable = CyclesTable
	ContextEntriesTable.ForeignKeys[2].RefTable = ProfilesTable
	CyclesTable.ForeignKeys[0].RefTable = ClientAccountsTable
	ShootsTable.ForeignKeys[0].RefTable = ClientAccountsTable
	ShootsTable.ForeignKeys[1].RefTable = CyclesTable
	TasksTable.ForeignKeys[0].RefTable = ProfilesTable
	TaskTemplatesTable.ForeignKeys[0].RefTable = ClientAccountsTable
}
