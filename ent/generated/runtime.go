// Code generated by ent, DO NOT EDIT.

package generated

import (
	"time"

	"github.com/google/uuid"
	"github.com/localbzz/clientops/ent/generated/activityevent"
	"github.com/localbzz/clientops/ent/generated/clientaccount"
	"github.com/localbzz/clientops/ent/generated/clienttaskassignment"
	"github.com/localbzz/clientops/ent/generated/contextentry"
	"github.com/localbzz/clientops/ent/generated/cycle"
	"github.com/localbzz/clientops/ent/generated/profile"
	"github.com/localbzz/clientops/ent/generated/shoot"
	"github.com/localbzz/clientops/ent/generated/task"
	"github.com/localbzz/clientops/ent/generated/tasktemplate"
	"github.com/localbzz/clientops/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityeventFields := schema.ActivityEvent{}.Fields()
	_ = activityeventFields
	// activityeventDescMetadata is the schema descriptor for metadata field.
	activityeventDescMetadata := activityeventFields[5].Descriptor()
	// activityevent.DefaultMetadata holds the default value on creation for the metadata field.
	activityevent.DefaultMetadata = activityeventDescMetadata.Default.(map[string]interface{})
	// activityeventDescCreatedAt is the schema descriptor for created_at field.
	activityeventDescCreatedAt := activityeventFields[8].Descriptor()
	// activityevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	activityevent.DefaultCreatedAt = activityeventDescCreatedAt.Default.(func() time.Time)
	// activityeventDescID is the schema descriptor for id field.
	activityeventDescID := activityeventFields[0].Descriptor()
	// activityevent.DefaultID holds the default value on creation for the id field.
	activityevent.DefaultID = activityeventDescID.Default.(func() uuid.UUID)
	clientaccountFields := schema.ClientAccount{}.Fields()
	_ = clientaccountFields
	// clientaccountDescName is the schema descriptor for name field.
	clientaccountDescName := clientaccountFields[1].Descriptor()
	// clientaccount.NameValidator is a validator for the "name" field. It is called by the builders before save.
	clientaccount.NameValidator = func() func(string) error {
		validators := clientaccountDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clientaccountDescAssets is the schema descriptor for assets field.
	clientaccountDescAssets := clientaccountFields[3].Descriptor()
	// clientaccount.DefaultAssets holds the default value on creation for the assets field.
	clientaccount.DefaultAssets = clientaccountDescAssets.Default.(map[string]string)
	// clientaccountDescCreatedAt is the schema descriptor for created_at field.
	clientaccountDescCreatedAt := clientaccountFields[4].Descriptor()
	// clientaccount.DefaultCreatedAt holds the default value on creation for the created_at field.
	clientaccount.DefaultCreatedAt = clientaccountDescCreatedAt.Default.(func() time.Time)
	// clientaccountDescUpdatedAt is the schema descriptor for updated_at field.
	clientaccountDescUpdatedAt := clientaccountFields[5].Descriptor()
	// clientaccount.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clientaccount.DefaultUpdatedAt = clientaccountDescUpdatedAt.Default.(func() time.Time)
	// clientaccount.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clientaccount.UpdateDefaultUpdatedAt = clientaccountDescUpdatedAt.UpdateDefault.(func() time.Time)
	// clientaccountDescID is the schema descriptor for id field.
	clientaccountDescID := clientaccountFields[0].Descriptor()
	// clientaccount.DefaultID holds the default value on creation for the id field.
	clientaccount.DefaultID = clientaccountDescID.Default.(func() uuid.UUID)
	clienttaskassignmentFields := schema.ClientTaskAssignment{}.Fields()
	_ = clienttaskassignmentFields
	// clienttaskassignmentDescCreatedAt is the schema descriptor for created_at field.
	clienttaskassignmentDescCreatedAt := clienttaskassignmentFields[5].Descriptor()
	// clienttaskassignment.DefaultCreatedAt holds the default value on creation for the created_at field.
	clienttaskassignment.DefaultCreatedAt = clienttaskassignmentDescCreatedAt.Default.(func() time.Time)
	// clienttaskassignmentDescUpdatedAt is the schema descriptor for updated_at field.
	clienttaskassignmentDescUpdatedAt := clienttaskassignmentFields[6].Descriptor()
	// clienttaskassignment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clienttaskassignment.DefaultUpdatedAt = clienttaskassignmentDescUpdatedAt.Default.(func() time.Time)
	// clienttaskassignment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clienttaskassignment.UpdateDefaultUpdatedAt = clienttaskassignmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// clienttaskassignmentDescID is the schema descriptor for id field.
	clienttaskassignmentDescID := clienttaskassignmentFields[0].Descriptor()
	// clienttaskassignment.DefaultID holds the default value on creation for the id field.
	clienttaskassignment.DefaultID = clienttaskassignmentDescID.Default.(func() uuid.UUID)
	contextentryFields := schema.ContextEntry{}.Fields()
	_ = contextentryFields
	// contextentryDescContent is the schema descriptor for content field.
	contextentryDescContent := contextentryFields[5].Descriptor()
	// contextentry.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	contextentry.ContentValidator = func() func(string) error {
		validators := contextentryDescContent.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(content string) error {
			for _, fn := range fns {
				if err := fn(content); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contextentryDescCreatedAt is the schema descriptor for created_at field.
	contextentryDescCreatedAt := contextentryFields[6].Descriptor()
	// contextentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	contextentry.DefaultCreatedAt = contextentryDescCreatedAt.Default.(func() time.Time)
	// contextentryDescID is the schema descriptor for id field.
	contextentryDescID := contextentryFields[0].Descriptor()
	// contextentry.DefaultID holds the default value on creation for the id field.
	contextentry.DefaultID = contextentryDescID.Default.(func() uuid.UUID)
	cycleFields := schema.Cycle{}.Fields()
	_ = cycleFields
	// cycleDescCreatedAt is the schema descriptor for created_at field.
	cycleDescCreatedAt := cycleFields[4].Descriptor()
	// cycle.DefaultCreatedAt holds the default value on creation for the created_at field.
	cycle.DefaultCreatedAt = cycleDescCreatedAt.Default.(func() time.Time)
	// cycleDescUpdatedAt is the schema descriptor for updated_at field.
	cycleDescUpdatedAt := cycleFields[5].Descriptor()
	// cycle.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	cycle.DefaultUpdatedAt = cycleDescUpdatedAt.Default.(func() time.Time)
	// cycle.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	cycle.UpdateDefaultUpdatedAt = cycleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// cycleDescID is the schema descriptor for id field.
	cycleDescID := cycleFields[0].Descriptor()
	// cycle.DefaultID holds the default value on creation for the id field.
	cycle.DefaultID = cycleDescID.Default.(func() uuid.UUID)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescEmail is the schema descriptor for email field.
	profileDescEmail := profileFields[1].Descriptor()
	// profile.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	profile.EmailValidator = profileDescEmail.Validators[0].(func(string) error)
	// profileDescDisplayName is the schema descriptor for display_name field.
	profileDescDisplayName := profileFields[2].Descriptor()
	// profile.DefaultDisplayName holds the default value on creation for the display_name field.
	profile.DefaultDisplayName = profileDescDisplayName.Default.(string)
	// profile.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	profile.DisplayNameValidator = profileDescDisplayName.Validators[0].(func(string) error)
	// profileDescIsActive is the schema descriptor for is_active field.
	profileDescIsActive := profileFields[6].Descriptor()
	// profile.DefaultIsActive holds the default value on creation for the is_active field.
	profile.DefaultIsActive = profileDescIsActive.Default.(bool)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[10].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[11].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileFields[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() uuid.UUID)
	shootFields := schema.Shoot{}.Fields()
	_ = shootFields
	// shootDescCreatedAt is the schema descriptor for created_at field.
	shootDescCreatedAt := shootFields[9].Descriptor()
	// shoot.DefaultCreatedAt holds the default value on creation for the created_at field.
	shoot.DefaultCreatedAt = shootDescCreatedAt.Default.(func() time.Time)
	// shootDescUpdatedAt is the schema descriptor for updated_at field.
	shootDescUpdatedAt := shootFields[10].Descriptor()
	// shoot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	shoot.DefaultUpdatedAt = shootDescUpdatedAt.Default.(func() time.Time)
	// shoot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	shoot.UpdateDefaultUpdatedAt = shootDescUpdatedAt.UpdateDefault.(func() time.Time)
	// shootDescID is the schema descriptor for id field.
	shootDescID := shootFields[0].Descriptor()
	// shoot.DefaultID holds the default value on creation for the id field.
	shoot.DefaultID = shootDescID.Default.(func() uuid.UUID)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescTitle is the schema descriptor for title field.
	taskDescTitle := taskFields[5].Descriptor()
	// task.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	task.TitleValidator = func() func(string) error {
		validators := taskDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// taskDescSortOrder is the schema descriptor for sort_order field.
	taskDescSortOrder := taskFields[7].Descriptor()
	// task.DefaultSortOrder holds the default value on creation for the sort_order field.
	task.DefaultSortOrder = taskDescSortOrder.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[11].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[12].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	// taskDescID is the schema descriptor for id field.
	taskDescID := taskFields[0].Descriptor()
	// task.DefaultID holds the default value on creation for the id field.
	task.DefaultID = taskDescID.Default.(func() uuid.UUID)
	tasktemplateFields := schema.TaskTemplate{}.Fields()
	_ = tasktemplateFields
	// tasktemplateDescTitle is the schema descriptor for title field.
	tasktemplateDescTitle := tasktemplateFields[3].Descriptor()
	// tasktemplate.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	tasktemplate.TitleValidator = func() func(string) error {
		validators := tasktemplateDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// tasktemplateDescSortOrder is the schema descriptor for sort_order field.
	tasktemplateDescSortOrder := tasktemplateFields[5].Descriptor()
	// tasktemplate.DefaultSortOrder holds the default value on creation for the sort_order field.
	tasktemplate.DefaultSortOrder = tasktemplateDescSortOrder.Default.(int)
	// tasktemplateDescDaysOffset is the schema descriptor for days_offset field.
	tasktemplateDescDaysOffset := tasktemplateFields[6].Descriptor()
	// tasktemplate.DefaultDaysOffset holds the default value on creation for the days_offset field.
	tasktemplate.DefaultDaysOffset = tasktemplateDescDaysOffset.Default.(int)
	// tasktemplateDescIsActive is the schema descriptor for is_active field.
	tasktemplateDescIsActive := tasktemplateFields[7].Descriptor()
	// tasktemplate.DefaultIsActive holds the default value on creation for the is_active field.
	tasktemplate.DefaultIsActive = tasktemplateDescIsActive.Default.(bool)
	// tasktemplateDescCreatedAt is the schema descriptor for created_at field.
	tasktemplateDescCreatedAt := tasktemplateFields[8].Descriptor()
	// tasktemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	tasktemplate.DefaultCreatedAt = tasktemplateDescCreatedAt.Default.(func() time.Time)
	// tasktemplateDescUpdatedAt is the schema descriptor for updated_at field.
	tasktemplateDescUpdatedAt := tasktemplateFields[9].Descriptor()
	// tasktemplate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tasktemplate.DefaultUpdatedAt = tasktemplateDescUpdatedAt.Default.(func() time.Time)
	// tasktemplate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tasktemplate.UpdateDefaultUpdatedAt = tasktemplateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tasktemplateDescID is the schema descriptor for id field.
	tasktemplateDescID := tasktemplateFields[0].Descriptor()
	// tasktemplate.DefaultID holds the default value on creation for the id field.
	tasktemplate.DefaultID = tasktemplateDescID.Default.(func() uuid.UUID)
}
