// Code generated by ent, DO NOT EDIT.

package generated

import (
	"github.com/localbzz/clientops/ent/generated/activityevent"
	"github.com/localbzz/clientops/ent/generated/clientaccount"
	"github.com/localbzz/clientops/ent/generated/clienttaskassignment"
	"github.com/localbzz/clientops/ent/generated/contextentry"
	"github.com/localbzz/clientops/ent/generated/cycle"
	"github.com/localbzz/clientops/ent/generated/predicate"
	"github.com/localbzz/clientops/ent/generated/profile"
	"github.com/localbzz/clientops/ent/generated/shoot"
	"github.com/localbzz/clientops/ent/generated/task"
	"github.com/localbzz/clientops/ent/generated/tasktemplate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/entql"
	"entgo.io/ent/schema/field"
)

// schemaGraph holds a representation of ent/schema at runtime.
var schemaGraph = func() *sqlgraph.Schema {
	graph := &sqlgraph.Schema{Nodes: make([]*sqlgraph.Node, 9)}
	graph.Nodes[0] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   activityevent.Table,
			Columns: activityevent.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: activityevent.FieldID,
			},
		},
		Type: "ActivityEvent",
		Fields: map[string]*sqlgraph.FieldSpec{
			activityevent.FieldActorID:     {Type: field.TypeUUID, Column: activityevent.FieldActorID},
			activityevent.FieldClientID:    {Type: field.TypeUUID, Column: activityevent.FieldClientID},
			activityevent.FieldEventType:   {Type: field.TypeEnum, Column: activityevent.FieldEventType},
			activityevent.FieldDescription: {Type: field.TypeString, Column: activityevent.FieldDescription},
			activityevent.FieldMetadata:    {Type: field.TypeJSON, Column: activityevent.FieldMetadata},
			activityevent.FieldSeverity:    {Type: field.TypeEnum, Column: activityevent.FieldSeverity},
			activityevent.FieldIPAddress:   {Type: field.TypeString, Column: activityevent.FieldIPAddress},
			activityevent.FieldCreatedAt:   {Type: field.TypeTime, Column: activityevent.FieldCreatedAt},
		},
	}
	graph.Nodes[1] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   clientaccount.Table,
			Columns: clientaccount.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: clientaccount.FieldID,
			},
		},
		Type: "ClientAccount",
		Fields: map[string]*sqlgraph.FieldSpec{
			clientaccount.FieldName:      {Type: field.TypeString, Column: clientaccount.FieldName},
			clientaccount.FieldStatus:    {Type: field.TypeEnum, Column: clientaccount.FieldStatus},
			clientaccount.FieldAssets:    {Type: field.TypeJSON, Column: clientaccount.FieldAssets},
			clientaccount.FieldCreatedAt: {Type: field.TypeTime, Column: clientaccount.FieldCreatedAt},
			clientaccount.FieldUpdatedAt: {Type: field.TypeTime, Column: clientaccount.FieldUpdatedAt},
		},
	}
	graph.Nodes[2] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   clienttaskassignment.Table,
			Columns: clienttaskassignment.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: clienttaskassignment.FieldID,
			},
		},
		Type: "ClientTaskAssignment",
		Fields: map[string]*sqlgraph.FieldSpec{
			clienttaskassignment.FieldClientID:           {Type: field.TypeUUID, Column: clienttaskassignment.FieldClientID},
			clienttaskassignment.FieldTemplateID:         {Type: field.TypeUUID, Column: clienttaskassignment.FieldTemplateID},
			clienttaskassignment.FieldAssigneeID:         {Type: field.TypeUUID, Column: clienttaskassignment.FieldAssigneeID},
			clienttaskassignment.FieldDaysOffsetOverride: {Type: field.TypeInt, Column: clienttaskassignment.FieldDaysOffsetOverride},
			clienttaskassignment.FieldCreatedAt:          {Type: field.TypeTime, Column: clienttaskassignment.FieldCreatedAt},
			clienttaskassignment.FieldUpdatedAt:          {Type: field.TypeTime, Column: clienttaskassignment.FieldUpdatedAt},
		},
	}
	graph.Nodes[3] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   contextentry.Table,
			Columns: contextentry.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: contextentry.FieldID,
			},
		},
		Type: "ContextEntry",
		Fields: map[string]*sqlgraph.FieldSpec{
			contextentry.FieldClientID:  {Type: field.TypeUUID, Column: contextentry.FieldClientID},
			contextentry.FieldCycleID:   {Type: field.TypeUUID, Column: contextentry.FieldCycleID},
			contextentry.FieldAuthorID:  {Type: field.TypeUUID, Column: contextentry.FieldAuthorID},
			contextentry.FieldType:      {Type: field.TypeEnum, Column: contextentry.FieldType},
			contextentry.FieldContent:   {Type: field.TypeString, Column: contextentry.FieldContent},
			contextentry.FieldCreatedAt: {Type: field.TypeTime, Column: contextentry.FieldCreatedAt},
		},
	}
	graph.Nodes[4] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   cycle.Table,
			Columns: cycle.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: cycle.FieldID,
			},
		},
		Type: "Cycle",
		Fields: map[string]*sqlgraph.FieldSpec{
			cycle.FieldClientID:  {Type: field.TypeUUID, Column: cycle.FieldClientID},
			cycle.FieldMonth:     {Type: field.TypeTime, Column: cycle.FieldMonth},
			cycle.FieldStatus:    {Type: field.TypeEnum, Column: cycle.FieldStatus},
			cycle.FieldCreatedAt: {Type: field.TypeTime, Column: cycle.FieldCreatedAt},
			cycle.FieldUpdatedAt: {Type: field.TypeTime, Column: cycle.FieldUpdatedAt},
		},
	}
	graph.Nodes[5] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   profile.Table,
			Columns: profile.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: profile.FieldID,
			},
		},
		Type: "Profile",
		Fields: map[string]*sqlgraph.FieldSpec{
			profile.FieldEmail:           {Type: field.TypeString, Column: profile.FieldEmail},
			profile.FieldDisplayName:     {Type: field.TypeString, Column: profile.FieldDisplayName},
			profile.FieldAvatarURL:       {Type: field.TypeString, Column: profile.FieldAvatarURL},
			profile.FieldRole:            {Type: field.TypeEnum, Column: profile.FieldRole},
			profile.FieldPasswordHash:    {Type: field.TypeString, Column: profile.FieldPasswordHash},
			profile.FieldIsActive:        {Type: field.TypeBool, Column: profile.FieldIsActive},
			profile.FieldInviteToken:     {Type: field.TypeString, Column: profile.FieldInviteToken},
			profile.FieldInviteExpiresAt: {Type: field.TypeTime, Column: profile.FieldInviteExpiresAt},
			profile.FieldLastLogin:       {Type: field.TypeTime, Column: profile.FieldLastLogin},
			profile.FieldCreatedAt:       {Type: field.TypeTime, Column: profile.FieldCreatedAt},
			profile.FieldUpdatedAt:       {Type: field.TypeTime, Column: profile.FieldUpdatedAt},
		},
	}
	graph.Nodes[6] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   shoot.Table,
			Columns: shoot.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: shoot.FieldID,
			},
		},
		Type: "Shoot",
		Fields: map[string]*sqlgraph.FieldSpec{
			shoot.FieldClientID:     {Type: field.TypeUUID, Column: shoot.FieldClientID},
			shoot.FieldCycleID:      {Type: field.TypeUUID, Column: shoot.FieldCycleID},
			shoot.FieldShootDate:    {Type: field.TypeTime, Column: shoot.FieldShootDate},
			shoot.FieldShootTime:    {Type: field.TypeString, Column: shoot.FieldShootTime},
			shoot.FieldLocation:     {Type: field.TypeString, Column: shoot.FieldLocation},
			shoot.FieldCalendarLink: {Type: field.TypeString, Column: shoot.FieldCalendarLink},
			shoot.FieldStatus:       {Type: field.TypeEnum, Column: shoot.FieldStatus},
			shoot.FieldType:         {Type: field.TypeEnum, Column: shoot.FieldType},
			shoot.FieldCreatedAt:    {Type: field.TypeTime, Column: shoot.FieldCreatedAt},
			shoot.FieldUpdatedAt:    {Type: field.TypeTime, Column: shoot.FieldUpdatedAt},
		},
	}
	graph.Nodes[7] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   task.Table,
			Columns: task.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: task.FieldID,
			},
		},
		Type: "Task",
		Fields: map[string]*sqlgraph.FieldSpec{
			task.FieldParentType: {Type: field.TypeEnum, Column: task.FieldParentType},
			task.FieldParentID:   {Type: field.TypeUUID, Column: task.FieldParentID},
			task.FieldClientID:   {Type: field.TypeUUID, Column: task.FieldClientID},
			task.FieldTemplateID: {Type: field.TypeUUID, Column: task.FieldTemplateID},
			task.FieldTitle:      {Type: field.TypeString, Column: task.FieldTitle},
			task.FieldRole:       {Type: field.TypeEnum, Column: task.FieldRole},
			task.FieldSortOrder:  {Type: field.TypeInt, Column: task.FieldSortOrder},
			task.FieldDueDate:    {Type: field.TypeTime, Column: task.FieldDueDate},
			task.FieldAssigneeID: {Type: field.TypeUUID, Column: task.FieldAssigneeID},
			task.FieldStatus:     {Type: field.TypeEnum, Column: task.FieldStatus},
			task.FieldCreatedAt:  {Type: field.TypeTime, Column: task.FieldCreatedAt},
			task.FieldUpdatedAt:  {Type: field.TypeTime, Column: task.FieldUpdatedAt},
		},
	}
	graph.Nodes[8] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   tasktemplate.Table,
			Columns: tasktemplate.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: tasktemplate.FieldID,
			},
		},
		Type: "TaskTemplate",
		Fields: map[string]*sqlgraph.FieldSpec{
			tasktemplate.FieldClientID:   {Type: field.TypeUUID, Column: tasktemplate.FieldClientID},
			tasktemplate.FieldParentType: {Type: field.TypeEnum, Column: tasktemplate.FieldParentType},
			tasktemplate.FieldTitle:      {Type: field.TypeString, Column: tasktemplate.FieldTitle},
			tasktemplate.FieldRole:       {Type: field.TypeEnum, Column: tasktemplate.FieldRole},
			tasktemplate.FieldSortOrder:  {Type: field.TypeInt, Column: tasktemplate.FieldSortOrder},
			tasktemplate.FieldDaysOffset: {Type: field.TypeInt, Column: tasktemplate.FieldDaysOffset},
			tasktemplate.FieldIsActive:   {Type: field.TypeBool, Column: tasktemplate.FieldIsActive},
			tasktemplate.FieldCreatedAt:  {Type: field.TypeTime, Column: tasktemplate.FieldCreatedAt},
			tasktemplate.FieldUpdatedAt:  {Type: field.TypeTime, Column: tasktemplate.FieldUpdatedAt},
		},
	}
	graph.MustAddE(
		"actor",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activityevent.ActorTable,
			Columns: []string{activityevent.ActorColumn},
			Bidi:    false,
		},
		"ActivityEvent",
		"Profile",
	)
	graph.MustAddE(
		"cycles",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clientaccount.CyclesTable,
			Columns: []string{clientaccount.CyclesColumn},
			Bidi:    false,
		},
		"ClientAccount",
		"Cycle",
	)
	graph.MustAddE(
		"shoots",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clientaccount.ShootsTable,
			Columns: []string{clientaccount.ShootsColumn},
			Bidi:    false,
		},
		"ClientAccount",
		"Shoot",
	)
	graph.MustAddE(
		"templates",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clientaccount.TemplatesTable,
			Columns: []string{clientaccount.TemplatesColumn},
			Bidi:    false,
		},
		"ClientAccount",
		"TaskTemplate",
	)
	graph.MustAddE(
		"assignments",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clientaccount.AssignmentsTable,
			Columns: []string{clientaccount.AssignmentsColumn},
			Bidi:    false,
		},
		"ClientAccount",
		"ClientTaskAssignment",
	)
	graph.MustAddE(
		"context_entries",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clientaccount.ContextEntriesTable,
			Columns: []string{clientaccount.ContextEntriesColumn},
			Bidi:    false,
		},
		"ClientAccount",
		"ContextEntry",
	)
	graph.MustAddE(
		"client",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clienttaskassignment.ClientTable,
			Columns: []string{clienttaskassignment.ClientColumn},
			Bidi:    false,
		},
		"ClientTaskAssignment",
		"ClientAccount",
	)
	graph.MustAddE(
		"template",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clienttaskassignment.TemplateTable,
			Columns: []string{clienttaskassignment.TemplateColumn},
			Bidi:    false,
		},
		"ClientTaskAssignment",
		"TaskTemplate",
	)
	graph.MustAddE(
		"assignee",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clienttaskassignment.AssigneeTable,
			Columns: []string{clienttaskassignment.AssigneeColumn},
			Bidi:    false,
		},
		"ClientTaskAssignment",
		"Profile",
	)
	graph.MustAddE(
		"client",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contextentry.ClientTable,
			Columns: []string{contextentry.ClientColumn},
			Bidi:    false,
		},
		"ContextEntry",
		"ClientAccount",
	)
	graph.MustAddE(
		"cycle",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contextentry.CycleTable,
			Columns: []string{contextentry.CycleColumn},
			Bidi:    false,
		},
		"ContextEntry",
		"Cycle",
	)
	graph.MustAddE(
		"author",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contextentry.AuthorTable,
			Columns: []string{contextentry.AuthorColumn},
			Bidi:    false,
		},
		"ContextEntry",
		"Profile",
	)
	graph.MustAddE(
		"client",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cycle.ClientTable,
			Columns: []string{cycle.ClientColumn},
			Bidi:    false,
		},
		"Cycle",
		"ClientAccount",
	)
	graph.MustAddE(
		"shoots",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cycle.ShootsTable,
			Columns: []string{cycle.ShootsColumn},
			Bidi:    false,
		},
		"Cycle",
		"Shoot",
	)
	graph.MustAddE(
		"context_entries",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cycle.ContextEntriesTable,
			Columns: []string{cycle.ContextEntriesColumn},
			Bidi:    false,
		},
		"Cycle",
		"ContextEntry",
	)
	graph.MustAddE(
		"assigned_tasks",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.AssignedTasksTable,
			Columns: []string{profile.AssignedTasksColumn},
			Bidi:    false,
		},
		"Profile",
		"Task",
	)
	graph.MustAddE(
		"context_entries",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ContextEntriesTable,
			Columns: []string{profile.ContextEntriesColumn},
			Bidi:    false,
		},
		"Profile",
		"ContextEntry",
	)
	graph.MustAddE(
		"default_assignments",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.DefaultAssignmentsTable,
			Columns: []string{profile.DefaultAssignmentsColumn},
			Bidi:    false,
		},
		"Profile",
		"ClientTaskAssignment",
	)
	graph.MustAddE(
		"activity_events",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ActivityEventsTable,
			Columns: []string{profile.ActivityEventsColumn},
			Bidi:    false,
		},
		"Profile",
		"ActivityEvent",
	)
	graph.MustAddE(
		"client",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   shoot.ClientTable,
			Columns: []string{shoot.ClientColumn},
			Bidi:    false,
		},
		"Shoot",
		"ClientAccount",
	)
	graph.MustAddE(
		"cycle",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   shoot.CycleTable,
			Columns: []string{shoot.CycleColumn},
			Bidi:    false,
		},
		"Shoot",
		"Cycle",
	)
	graph.MustAddE(
		"assignee",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.AssigneeTable,
			Columns: []string{task.AssigneeColumn},
			Bidi:    false,
		},
		"Task",
		"Profile",
	)
	graph.MustAddE(
		"client",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tasktemplate.ClientTable,
			Columns: []string{tasktemplate.ClientColumn},
			Bidi:    false,
		},
		"TaskTemplate",
		"ClientAccount",
	)
	graph.MustAddE(
		"assignments",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tasktemplate.AssignmentsTable,
			Columns: []string{tasktemplate.AssignmentsColumn},
			Bidi:    false,
		},
		"TaskTemplate",
		"ClientTaskAssignment",
	)
	return graph
}()

// predicateAdder wraps the addPredicate method.
// All update, update-one and query builders implement this interface.
type predicateAdder interface {
	addPredicate(func(s *sql.Selector))
}

// addPredicate implements the predicateAdder interface.
func (aeq *ActivityEventQuery) addPredicate(pred func(s *sql.Selector)) {
	aeq.predicates = append(aeq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the ActivityEventQuery builder.
func (aeq *ActivityEventQuery) Filter() *ActivityEventFilter {
	return &ActivityEventFilter{config: aeq.config, predicateAdder: aeq}
}

// addPredicate implements the predicateAdder interface.
func (m *ActivityEventMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the ActivityEventMutation builder.
func (m *ActivityEventMutation) Filter() *ActivityEventFilter {
	return &ActivityEventFilter{config: m.config, predicateAdder: m}
}

// ActivityEventFilter provides a generic filtering capability at runtime for ActivityEventQuery.
type ActivityEventFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *ActivityEventFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[0].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *ActivityEventFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(activityevent.FieldID))
}

// WhereActorID applies the entql [16]byte predicate on the actor_id field.
func (f *ActivityEventFilter) WhereActorID(p entql.ValueP) {
	f.Where(p.Field(activityevent.FieldActorID))
}

// WhereClientID applies the entql [16]byte predicate on the client_id field.
func (f *ActivityEventFilter) WhereClientID(p entql.ValueP) {
	f.Where(p.Field(activityevent.FieldClientID))
}

// WhereEventType applies the entql string predicate on the event_type field.
func (f *ActivityEventFilter) WhereEventType(p entql.StringP) {
	f.Where(p.Field(activityevent.FieldEventType))
}

// WhereDescription applies the entql string predicate on the description field.
func (f *ActivityEventFilter) WhereDescription(p entql.StringP) {
	f.Where(p.Field(activityevent.FieldDescription))
}

// WhereMetadata applies the entql json.RawMessage predicate on the metadata field.
func (f *ActivityEventFilter) WhereMetadata(p entql.BytesP) {
	f.Where(p.Field(activityevent.FieldMetadata))
}

// WhereSeverity applies the entql string predicate on the severity field.
func (f *ActivityEventFilter) WhereSeverity(p entql.StringP) {
	f.Where(p.Field(activityevent.FieldSeverity))
}

// WhereIPAddress applies the entql string predicate on the ip_address field.
func (f *ActivityEventFilter) WhereIPAddress(p entql.StringP) {
	f.Where(p.Field(activityevent.FieldIPAddress))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *ActivityEventFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(activityevent.FieldCreatedAt))
}

// WhereHasActor applies a predicate to check if query has an edge actor.
func (f *ActivityEventFilter) WhereHasActor() {
	f.Where(entql.HasEdge("actor"))
}

// WhereHasActorWith applies a predicate to check if query has an edge actor with a given conditions (other predicates).
func (f *ActivityEventFilter) WhereHasActorWith(preds ...predicate.Profile) {
	f.Where(entql.HasEdgeWith("actor", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (caq *ClientAccountQuery) addPredicate(pred func(s *sql.Selector)) {
	caq.predicates = append(caq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the ClientAccountQuery builder.
func (caq *ClientAccountQuery) Filter() *ClientAccountFilter {
	return &ClientAccountFilter{config: caq.config, predicateAdder: caq}
}

// addPredicate implements the predicateAdder interface.
func (m *ClientAccountMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the ClientAccountMutation builder.
func (m *ClientAccountMutation) Filter() *ClientAccountFilter {
	return &ClientAccountFilter{config: m.config, predicateAdder: m}
}

// ClientAccountFilter provides a generic filtering capability at runtime for ClientAccountQuery.
type ClientAccountFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *ClientAccountFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[1].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *ClientAccountFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(clientaccount.FieldID))
}

// WhereName applies the entql string predicate on the name field.
func (f *ClientAccountFilter) WhereName(p entql.StringP) {
	f.Where(p.Field(clientaccount.FieldName))
}

// WhereStatus applies the entql string predicate on the status field.
func (f *ClientAccountFilter) WhereStatus(p entql.StringP) {
	f.Where(p.Field(clientaccount.FieldStatus))
}

// WhereAssets applies the entql json.RawMessage predicate on the assets field.
func (f *ClientAccountFilter) WhereAssets(p entql.BytesP) {
	f.Where(p.Field(clientaccount.FieldAssets))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *ClientAccountFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(clientaccount.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *ClientAccountFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(clientaccount.FieldUpdatedAt))
}

// WhereHasCycles applies a predicate to check if query has an edge cycles.
func (f *ClientAccountFilter) WhereHasCycles() {
	f.Where(entql.HasEdge("cycles"))
}

// WhereHasCyclesWith applies a predicate to check if query has an edge cycles with a given conditions (other predicates).
func (f *ClientAccountFilter) WhereHasCyclesWith(preds ...predicate.Cycle) {
	f.Where(entql.HasEdgeWith("cycles", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasShoots applies a predicate to check if query has an edge shoots.
func (f *ClientAccountFilter) WhereHasShoots() {
	f.Where(entql.HasEdge("shoots"))
}

// WhereHasShootsWith applies a predicate to check if query has an edge shoots with a given conditions (other predicates).
func (f *ClientAccountFilter) WhereHasShootsWith(preds ...predicate.Shoot) {
	f.Where(entql.HasEdgeWith("shoots", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasTemplates applies a predicate to check if query has an edge templates.
func (f *ClientAccountFilter) WhereHasTemplates() {
	f.Where(entql.HasEdge("templates"))
}

// WhereHasTemplatesWith applies a predicate to check if query has an edge templates with a given conditions (other predicates).
func (f *ClientAccountFilter) WhereHasTemplatesWith(preds ...predicate.TaskTemplate) {
	f.Where(entql.HasEdgeWith("templates", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasAssignments applies a predicate to check if query has an edge assignments.
func (f *ClientAccountFilter) WhereHasAssignments() {
	f.Where(entql.HasEdge("assignments"))
}

// WhereHasAssignmentsWith applies a predicate to check if query has an edge assignments with a given conditions (other predicates).
func (f *ClientAccountFilter) WhereHasAssignmentsWith(preds ...predicate.ClientTaskAssignment) {
	f.Where(entql.HasEdgeWith("assignments", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasContextEntries applies a predicate to check if query has an edge context_entries.
func (f *ClientAccountFilter) WhereHasContextEntries() {
	f.Where(entql.HasEdge("context_entries"))
}

// WhereHasContextEntriesWith applies a predicate to check if query has an edge context_entries with a given conditions (other predicates).
func (f *ClientAccountFilter) WhereHasContextEntriesWith(preds ...predicate.ContextEntry) {
	f.Where(entql.HasEdgeWith("context_entries", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (ctaq *ClientTaskAssignmentQuery) addPredicate(pred func(s *sql.Selector)) {
	ctaq.predicates = append(ctaq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the ClientTaskAssignmentQuery builder.
func (ctaq *ClientTaskAssignmentQuery) Filter() *ClientTaskAssignmentFilter {
	return &ClientTaskAssignmentFilter{config: ctaq.config, predicateAdder: ctaq}
}

// addPredicate implements the predicateAdder interface.
func (m *ClientTaskAssignmentMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the ClientTaskAssignmentMutation builder.
func (m *ClientTaskAssignmentMutation) Filter() *ClientTaskAssignmentFilter {
	return &ClientTaskAssignmentFilter{config: m.config, predicateAdder: m}
}

// ClientTaskAssignmentFilter provides a generic filtering capability at runtime for ClientTaskAssignmentQuery.
type ClientTaskAssignmentFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *ClientTaskAssignmentFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[2].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *ClientTaskAssignmentFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(clienttaskassignment.FieldID))
}

// WhereClientID applies the entql [16]byte predicate on the client_id field.
func (f *ClientTaskAssignmentFilter) WhereClientID(p entql.ValueP) {
	f.Where(p.Field(clienttaskassignment.FieldClientID))
}

// WhereTemplateID applies the entql [16]byte predicate on the template_id field.
func (f *ClientTaskAssignmentFilter) WhereTemplateID(p entql.ValueP) {
	f.Where(p.Field(clienttaskassignment.FieldTemplateID))
}

// WhereAssigneeID applies the entql [16]byte predicate on the assignee_id field.
func (f *ClientTaskAssignmentFilter) WhereAssigneeID(p entql.ValueP) {
	f.Where(p.Field(clienttaskassignment.FieldAssigneeID))
}

// WhereDaysOffsetOverride applies the entql int predicate on the days_offset_override field.
func (f *ClientTaskAssignmentFilter) WhereDaysOffsetOverride(p entql.IntP) {
	f.Where(p.Field(clienttaskassignment.FieldDaysOffsetOverride))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *ClientTaskAssignmentFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(clienttaskassignment.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *ClientTaskAssignmentFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(clienttaskassignment.FieldUpdatedAt))
}

// WhereHasClient applies a predicate to check if query has an edge client.
func (f *ClientTaskAssignmentFilter) WhereHasClient() {
	f.Where(entql.HasEdge("client"))
}

// WhereHasClientWith applies a predicate to check if query has an edge client with a given conditions (other predicates).
func (f *ClientTaskAssignmentFilter) WhereHasClientWith(preds ...predicate.ClientAccount) {
	f.Where(entql.HasEdgeWith("client", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasTemplate applies a predicate to check if query has an edge template.
func (f *ClientTaskAssignmentFilter) WhereHasTemplate() {
	f.Where(entql.HasEdge("template"))
}

// WhereHasTemplateWith applies a predicate to check if query has an edge template with a given conditions (other predicates).
func (f *ClientTaskAssignmentFilter) WhereHasTemplateWith(preds ...predicate.TaskTemplate) {
	f.Where(entql.HasEdgeWith("template", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasAssignee applies a predicate to check if query has an edge assignee.
func (f *ClientTaskAssignmentFilter) WhereHasAssignee() {
	f.Where(entql.HasEdge("assignee"))
}

// WhereHasAssigneeWith applies a predicate to check if query has an edge assignee with a given conditions (other predicates).
func (f *ClientTaskAssignmentFilter) WhereHasAssigneeWith(preds ...predicate.Profile) {
	f.Where(entql.HasEdgeWith("assignee", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (ceq *ContextEntryQuery) addPredicate(pred func(s *sql.Selector)) {
	ceq.predicates = append(ceq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the ContextEntryQuery builder.
func (ceq *ContextEntryQuery) Filter() *ContextEntryFilter {
	return &ContextEntryFilter{config: ceq.config, predicateAdder: ceq}
}

// addPredicate implements the predicateAdder interface.
func (m *ContextEntryMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the ContextEntryMutation builder.
func (m *ContextEntryMutation) Filter() *ContextEntryFilter {
	return &ContextEntryFilter{config: m.config, predicateAdder: m}
}

// ContextEntryFilter provides a generic filtering capability at runtime for ContextEntryQuery.
type ContextEntryFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *ContextEntryFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[3].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *ContextEntryFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(contextentry.FieldID))
}

// WhereClientID applies the entql [16]byte predicate on the client_id field.
func (f *ContextEntryFilter) WhereClientID(p entql.ValueP) {
	f.Where(p.Field(contextentry.FieldClientID))
}

// WhereCycleID applies the entql [16]byte predicate on the cycle_id field.
func (f *ContextEntryFilter) WhereCycleID(p entql.ValueP) {
	f.Where(p.Field(contextentry.FieldCycleID))
}

// WhereAuthorID applies the entql [16]byte predicate on the author_id field.
func (f *ContextEntryFilter) WhereAuthorID(p entql.ValueP) {
	f.Where(p.Field(contextentry.FieldAuthorID))
}

// WhereType applies the entql string predicate on the type field.
func (f *ContextEntryFilter) WhereType(p entql.StringP) {
	f.Where(p.Field(contextentry.FieldType))
}

// WhereContent applies the entql string predicate on the content field.
func (f *ContextEntryFilter) WhereContent(p entql.StringP) {
	f.Where(p.Field(contextentry.FieldContent))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *ContextEntryFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(contextentry.FieldCreatedAt))
}

// WhereHasClient applies a predicate to check if query has an edge client.
func (f *ContextEntryFilter) WhereHasClient() {
	f.Where(entql.HasEdge("client"))
}

// WhereHasClientWith applies a predicate to check if query has an edge client with a given conditions (other predicates).
func (f *ContextEntryFilter) WhereHasClientWith(preds ...predicate.ClientAccount) {
	f.Where(entql.HasEdgeWith("client", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasCycle applies a predicate to check if query has an edge cycle.
func (f *ContextEntryFilter) WhereHasCycle() {
	f.Where(entql.HasEdge("cycle"))
}

// WhereHasCycleWith applies a predicate to check if query has an edge cycle with a given conditions (other predicates).
func (f *ContextEntryFilter) WhereHasCycleWith(preds ...predicate.Cycle) {
	f.Where(entql.HasEdgeWith("cycle", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasAuthor applies a predicate to check if query has an edge author.
func (f *ContextEntryFilter) WhereHasAuthor() {
	f.Where(entql.HasEdge("author"))
}

// WhereHasAuthorWith applies a predicate to check if query has an edge author with a given conditions (other predicates).
func (f *ContextEntryFilter) WhereHasAuthorWith(preds ...predicate.Profile) {
	f.Where(entql.HasEdgeWith("author", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (cq *CycleQuery) addPredicate(pred func(s *sql.Selector)) {
	cq.predicates = append(cq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the CycleQuery builder.
func (cq *CycleQuery) Filter() *CycleFilter {
	return &CycleFilter{config: cq.config, predicateAdder: cq}
}

// addPredicate implements the predicateAdder interface.
func (m *CycleMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the CycleMutation builder.
func (m *CycleMutation) Filter() *CycleFilter {
	return &CycleFilter{config: m.config, predicateAdder: m}
}

// CycleFilter provides a generic filtering capability at runtime for CycleQuery.
type CycleFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *CycleFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[4].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *CycleFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(cycle.FieldID))
}

// WhereClientID applies the entql [16]byte predicate on the client_id field.
func (f *CycleFilter) WhereClientID(p entql.ValueP) {
	f.Where(p.Field(cycle.FieldClientID))
}

// WhereMonth applies the entql time.Time predicate on the month field.
func (f *CycleFilter) WhereMonth(p entql.TimeP) {
	f.Where(p.Field(cycle.FieldMonth))
}

// WhereStatus applies the entql string predicate on the status field.
func (f *CycleFilter) WhereStatus(p entql.StringP) {
	f.Where(p.Field(cycle.FieldStatus))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *CycleFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(cycle.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *CycleFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(cycle.FieldUpdatedAt))
}

// WhereHasClient applies a predicate to check if query has an edge client.
func (f *CycleFilter) WhereHasClient() {
	f.Where(entql.HasEdge("client"))
}

// WhereHasClientWith applies a predicate to check if query has an edge client with a given conditions (other predicates).
func (f *CycleFilter) WhereHasClientWith(preds ...predicate.ClientAccount) {
	f.Where(entql.HasEdgeWith("client", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasShoots applies a predicate to check if query has an edge shoots.
func (f *CycleFilter) WhereHasShoots() {
	f.Where(entql.HasEdge("shoots"))
}

// WhereHasShootsWith applies a predicate to check if query has an edge shoots with a given conditions (other predicates).
func (f *CycleFilter) WhereHasShootsWith(preds ...predicate.Shoot) {
	f.Where(entql.HasEdgeWith("shoots", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasContextEntries applies a predicate to check if query has an edge context_entries.
func (f *CycleFilter) WhereHasContextEntries() {
	f.Where(entql.HasEdge("context_entries"))
}

// WhereHasContextEntriesWith applies a predicate to check if query has an edge context_entries with a given conditions (other predicates).
func (f *CycleFilter) WhereHasContextEntriesWith(preds ...predicate.ContextEntry) {
	f.Where(entql.HasEdgeWith("context_entries", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (pq *ProfileQuery) addPredicate(pred func(s *sql.Selector)) {
	pq.predicates = append(pq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the ProfileQuery builder.
func (pq *ProfileQuery) Filter() *ProfileFilter {
	return &ProfileFilter{config: pq.config, predicateAdder: pq}
}

// addPredicate implements the predicateAdder interface.
func (m *ProfileMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the ProfileMutation builder.
func (m *ProfileMutation) Filter() *ProfileFilter {
	return &ProfileFilter{config: m.config, predicateAdder: m}
}

// ProfileFilter provides a generic filtering capability at runtime for ProfileQuery.
type ProfileFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *ProfileFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[5].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *ProfileFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(profile.FieldID))
}

// WhereEmail applies the entql string predicate on the email field.
func (f *ProfileFilter) WhereEmail(p entql.StringP) {
	f.Where(p.Field(profile.FieldEmail))
}

// WhereDisplayName applies the entql string predicate on the display_name field.
func (f *ProfileFilter) WhereDisplayName(p entql.StringP) {
	f.Where(p.Field(profile.FieldDisplayName))
}

// WhereAvatarURL applies the entql string predicate on the avatar_url field.
func (f *ProfileFilter) WhereAvatarURL(p entql.StringP) {
	f.Where(p.Field(profile.FieldAvatarURL))
}

// WhereRole applies the entql string predicate on the role field.
func (f *ProfileFilter) WhereRole(p entql.StringP) {
	f.Where(p.Field(profile.FieldRole))
}

// WherePasswordHash applies the entql string predicate on the password_hash field.
func (f *ProfileFilter) WherePasswordHash(p entql.StringP) {
	f.Where(p.Field(profile.FieldPasswordHash))
}

// WhereIsActive applies the entql bool predicate on the is_active field.
func (f *ProfileFilter) WhereIsActive(p entql.BoolP) {
	f.Where(p.Field(profile.FieldIsActive))
}

// WhereInviteToken applies the entql string predicate on the invite_token field.
func (f *ProfileFilter) WhereInviteToken(p entql.StringP) {
	f.Where(p.Field(profile.FieldInviteToken))
}

// WhereInviteExpiresAt applies the entql time.Time predicate on the invite_expires_at field.
func (f *ProfileFilter) WhereInviteExpiresAt(p entql.TimeP) {
	f.Where(p.Field(profile.FieldInviteExpiresAt))
}

// WhereLastLogin applies the entql time.Time predicate on the last_login field.
func (f *ProfileFilter) WhereLastLogin(p entql.TimeP) {
	f.Where(p.Field(profile.FieldLastLogin))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *ProfileFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(profile.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *ProfileFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(profile.FieldUpdatedAt))
}

// WhereHasAssignedTasks applies a predicate to check if query has an edge assigned_tasks.
func (f *ProfileFilter) WhereHasAssignedTasks() {
	f.Where(entql.HasEdge("assigned_tasks"))
}

// WhereHasAssignedTasksWith applies a predicate to check if query has an edge assigned_tasks with a given conditions (other predicates).
func (f *ProfileFilter) WhereHasAssignedTasksWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("assigned_tasks", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasContextEntries applies a predicate to check if query has an edge context_entries.
func (f *ProfileFilter) WhereHasContextEntries() {
	f.Where(entql.HasEdge("context_entries"))
}

// WhereHasContextEntriesWith applies a predicate to check if query has an edge context_entries with a given conditions (other predicates).
func (f *ProfileFilter) WhereHasContextEntriesWith(preds ...predicate.ContextEntry) {
	f.Where(entql.HasEdgeWith("context_entries", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasDefaultAssignments applies a predicate to check if query has an edge default_assignments.
func (f *ProfileFilter) WhereHasDefaultAssignments() {
	f.Where(entql.HasEdge("default_assignments"))
}

// WhereHasDefaultAssignmentsWith applies a predicate to check if query has an edge default_assignments with a given conditions (other predicates).
func (f *ProfileFilter) WhereHasDefaultAssignmentsWith(preds ...predicate.ClientTaskAssignment) {
	f.Where(entql.HasEdgeWith("default_assignments", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasActivityEvents applies a predicate to check if query has an edge activity_events.
func (f *ProfileFilter) WhereHasActivityEvents() {
	f.Where(entql.HasEdge("activity_events"))
}

// WhereHasActivityEventsWith applies a predicate to check if query has an edge activity_events with a given conditions (other predicates).
func (f *ProfileFilter) WhereHasActivityEventsWith(preds ...predicate.ActivityEvent) {
	f.Where(entql.HasEdgeWith("activity_events", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (sq *ShootQuery) addPredicate(pred func(s *sql.Selector)) {
	sq.predicates = append(sq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the ShootQuery builder.
func (sq *ShootQuery) Filter() *ShootFilter {
	return &ShootFilter{config: sq.config, predicateAdder: sq}
}

// addPredicate implements the predicateAdder interface.
func (m *ShootMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the ShootMutation builder.
func (m *ShootMutation) Filter() *ShootFilter {
	return &ShootFilter{config: m.config, predicateAdder: m}
}

// ShootFilter provides a generic filtering capability at runtime for ShootQuery.
type ShootFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *ShootFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[6].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *ShootFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(shoot.FieldID))
}

// WhereClientID applies the entql [16]byte predicate on the client_id field.
func (f *ShootFilter) WhereClientID(p entql.ValueP) {
	f.Where(p.Field(shoot.FieldClientID))
}

// WhereCycleID applies the entql [16]byte predicate on the cycle_id field.
func (f *ShootFilter) WhereCycleID(p entql.ValueP) {
	f.Where(p.Field(shoot.FieldCycleID))
}

// WhereShootDate applies the entql time.Time predicate on the shoot_date field.
func (f *ShootFilter) WhereShootDate(p entql.TimeP) {
	f.Where(p.Field(shoot.FieldShootDate))
}

// WhereShootTime applies the entql string predicate on the shoot_time field.
func (f *ShootFilter) WhereShootTime(p entql.StringP) {
	f.Where(p.Field(shoot.FieldShootTime))
}

// WhereLocation applies the entql string predicate on the location field.
func (f *ShootFilter) WhereLocation(p entql.StringP) {
	f.Where(p.Field(shoot.FieldLocation))
}

// WhereCalendarLink applies the entql string predicate on the calendar_link field.
func (f *ShootFilter) WhereCalendarLink(p entql.StringP) {
	f.Where(p.Field(shoot.FieldCalendarLink))
}

// WhereStatus applies the entql string predicate on the status field.
func (f *ShootFilter) WhereStatus(p entql.StringP) {
	f.Where(p.Field(shoot.FieldStatus))
}

// WhereType applies the entql string predicate on the type field.
func (f *ShootFilter) WhereType(p entql.StringP) {
	f.Where(p.Field(shoot.FieldType))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *ShootFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(shoot.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *ShootFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(shoot.FieldUpdatedAt))
}

// WhereHasClient applies a predicate to check if query has an edge client.
func (f *ShootFilter) WhereHasClient() {
	f.Where(entql.HasEdge("client"))
}

// WhereHasClientWith applies a predicate to check if query has an edge client with a given conditions (other predicates).
func (f *ShootFilter) WhereHasClientWith(preds ...predicate.ClientAccount) {
	f.Where(entql.HasEdgeWith("client", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasCycle applies a predicate to check if query has an edge cycle.
func (f *ShootFilter) WhereHasCycle() {
	f.Where(entql.HasEdge("cycle"))
}

// WhereHasCycleWith applies a predicate to check if query has an edge cycle with a given conditions (other predicates).
func (f *ShootFilter) WhereHasCycleWith(preds ...predicate.Cycle) {
	f.Where(entql.HasEdgeWith("cycle", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (tq *TaskQuery) addPredicate(pred func(s *sql.Selector)) {
	tq.predicates = append(tq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the TaskQuery builder.
func (tq *TaskQuery) Filter() *TaskFilter {
	return &TaskFilter{config: tq.config, predicateAdder: tq}
}

// addPredicate implements the predicateAdder interface.
func (m *TaskMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the TaskMutation builder.
func (m *TaskMutation) Filter() *TaskFilter {
	return &TaskFilter{config: m.config, predicateAdder: m}
}

// TaskFilter provides a generic filtering capability at runtime for TaskQuery.
type TaskFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *TaskFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[7].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *TaskFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(task.FieldID))
}

// WhereParentType applies the entql string predicate on the parent_type field.
func (f *TaskFilter) WhereParentType(p entql.StringP) {
	f.Where(p.Field(task.FieldParentType))
}

// WhereParentID applies the entql [16]byte predicate on the parent_id field.
func (f *TaskFilter) WhereParentID(p entql.ValueP) {
	f.Where(p.Field(task.FieldParentID))
}

// WhereClientID applies the entql [16]byte predicate on the client_id field.
func (f *TaskFilter) WhereClientID(p entql.ValueP) {
	f.Where(p.Field(task.FieldClientID))
}

// WhereTemplateID applies the entql [16]byte predicate on the template_id field.
func (f *TaskFilter) WhereTemplateID(p entql.ValueP) {
	f.Where(p.Field(task.FieldTemplateID))
}

// WhereTitle applies the entql string predicate on the title field.
func (f *TaskFilter) WhereTitle(p entql.StringP) {
	f.Where(p.Field(task.FieldTitle))
}

// WhereRole applies the entql string predicate on the role field.
func (f *TaskFilter) WhereRole(p entql.StringP) {
	f.Where(p.Field(task.FieldRole))
}

// WhereSortOrder applies the entql int predicate on the sort_order field.
func (f *TaskFilter) WhereSortOrder(p entql.IntP) {
	f.Where(p.Field(task.FieldSortOrder))
}

// WhereDueDate applies the entql time.Time predicate on the due_date field.
func (f *TaskFilter) WhereDueDate(p entql.TimeP) {
	f.Where(p.Field(task.FieldDueDate))
}

// WhereAssigneeID applies the entql [16]byte predicate on the assignee_id field.
func (f *TaskFilter) WhereAssigneeID(p entql.ValueP) {
	f.Where(p.Field(task.FieldAssigneeID))
}

// WhereStatus applies the entql string predicate on the status field.
func (f *TaskFilter) WhereStatus(p entql.StringP) {
	f.Where(p.Field(task.FieldStatus))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *TaskFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(task.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *TaskFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(task.FieldUpdatedAt))
}

// WhereHasAssignee applies a predicate to check if query has an edge assignee.
func (f *TaskFilter) WhereHasAssignee() {
	f.Where(entql.HasEdge("assignee"))
}

// WhereHasAssigneeWith applies a predicate to check if query has an edge assignee with a given conditions (other predicates).
func (f *TaskFilter) WhereHasAssigneeWith(preds ...predicate.Profile) {
	f.Where(entql.HasEdgeWith("assignee", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (ttq *TaskTemplateQuery) addPredicate(pred func(s *sql.Selector)) {
	ttq.predicates = append(ttq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the TaskTemplateQuery builder.
func (ttq *TaskTemplateQuery) Filter() *TaskTemplateFilter {
	return &TaskTemplateFilter{config: ttq.config, predicateAdder: ttq}
}

// addPredicate implements the predicateAdder interface.
func (m *TaskTemplateMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the TaskTemplateMutation builder.
func (m *TaskTemplateMutation) Filter() *TaskTemplateFilter {
	return &TaskTemplateFilter{config: m.config, predicateAdder: m}
}

// TaskTemplateFilter provides a generic filtering capability at runtime for TaskTemplateQuery.
type TaskTemplateFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *TaskTemplateFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[8].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *TaskTemplateFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(tasktemplate.FieldID))
}

// WhereClientID applies the entql [16]byte predicate on the client_id field.
func (f *TaskTemplateFilter) WhereClientID(p entql.ValueP) {
	f.Where(p.Field(tasktemplate.FieldClientID))
}

// WhereParentType applies the entql string predicate on the parent_type field.
func (f *TaskTemplateFilter) WhereParentType(p entql.StringP) {
	f.Where(p.Field(tasktemplate.FieldParentType))
}

// WhereTitle applies the entql string predicate on the title field.
func (f *TaskTemplateFilter) WhereTitle(p entql.StringP) {
	f.Where(p.Field(tasktemplate.FieldTitle))
}

// WhereRole applies the entql string predicate on the role field.
func (f *TaskTemplateFilter) WhereRole(p entql.StringP) {
	f.Where(p.Field(tasktemplate.FieldRole))
}

// WhereSortOrder applies the entql int predicate on the sort_order field.
func (f *TaskTemplateFilter) WhereSortOrder(p entql.IntP) {
	f.Where(p.Field(tasktemplate.FieldSortOrder))
}

// WhereDaysOffset applies the entql int predicate on the days_offset field.
func (f *TaskTemplateFilter) WhereDaysOffset(p entql.IntP) {
	f.Where(p.Field(tasktemplate.FieldDaysOffset))
}

// WhereIsActive applies the entql bool predicate on the is_active field.
func (f *TaskTemplateFilter) WhereIsActive(p entql.BoolP) {
	f.Where(p.Field(tasktemplate.FieldIsActive))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *TaskTemplateFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(tasktemplate.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *TaskTemplateFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(tasktemplate.FieldUpdatedAt))
}

// WhereHasClient applies a predicate to check if query has an edge client.
func (f *TaskTemplateFilter) WhereHasClient() {
	f.Where(entql.HasEdge("client"))
}

// WhereHasClientWith applies a predicate to check if query has an edge client with a given conditions (other predicates).
func (f *TaskTemplateFilter) WhereHasClientWith(preds ...predicate.ClientAccount) {
	f.Where(entql.HasEdgeWith("client", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasAssignments applies a predicate to check if query has an edge assignments.
func (f *TaskTemplateFilter) WhereHasAssignments() {
	f.Where(entql.HasEdge("assignments"))
}

// WhereHasAssignmentsWith applies a predicate to check if query has an edge assignments with a given conditions (other predicates).
func (f *TaskTemplateFilter) WhereHasAssignmentsWith(preds ...predicate.ClientTaskAssignment) {
	f.Where(entql.HasEdgeWith("assignments", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}
