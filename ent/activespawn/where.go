// Code generated by ent, DO NOT EDIT.

package activespawn

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/praxisworks/supervisor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldContainsFold(FieldID, id))
}

// InstanceID applies equality check predicate on the "instance_id" field. It's identical to InstanceIDEQ.
func InstanceID(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldInstanceID, v))
}

// ProjectPath applies equality check predicate on the "project_path" field. It's identical to ProjectPathEQ.
func ProjectPath(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldProjectPath, v))
}

// ProjectName applies equality check predicate on the "project_name" field. It's identical to ProjectNameEQ.
func ProjectName(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldProjectName, v))
}

// TaskType applies equality check predicate on the "task_type" field. It's identical to TaskTypeEQ.
func TaskType(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldTaskType, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldDescription, v))
}

// Service applies equality check predicate on the "service" field. It's identical to ServiceEQ.
func Service(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldService, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldModel, v))
}

// InstructionsPath applies equality check predicate on the "instructions_path" field. It's identical to InstructionsPathEQ.
func InstructionsPath(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldInstructionsPath, v))
}

// OutputPath applies equality check predicate on the "output_path" field. It's identical to OutputPathEQ.
func OutputPath(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldOutputPath, v))
}

// ExitCode applies equality check predicate on the "exit_code" field. It's identical to ExitCodeEQ.
func ExitCode(v int) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldExitCode, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldErrorMessage, v))
}

// HostMachine applies equality check predicate on the "host_machine" field. It's identical to HostMachineEQ.
func HostMachine(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldHostMachine, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldStartedAt, v))
}

// DeadlineAt applies equality check predicate on the "deadline_at" field. It's identical to DeadlineAtEQ.
func DeadlineAt(v time.Time) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldDeadlineAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldEndedAt, v))
}

// InstanceIDEQ applies the EQ predicate on the "instance_id" field.
func InstanceIDEQ(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldInstanceID, v))
}

// InstanceIDNEQ applies the NEQ predicate on the "instance_id" field.
func InstanceIDNEQ(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNEQ(FieldInstanceID, v))
}

// InstanceIDIn applies the In predicate on the "instance_id" field.
func InstanceIDIn(vs ...string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldIn(FieldInstanceID, vs...))
}

// InstanceIDNotIn applies the NotIn predicate on the "instance_id" field.
func InstanceIDNotIn(vs ...string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNotIn(FieldInstanceID, vs...))
}

// InstanceIDGT applies the GT predicate on the "instance_id" field.
func InstanceIDGT(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGT(FieldInstanceID, v))
}

// InstanceIDGTE applies the GTE predicate on the "instance_id" field.
func InstanceIDGTE(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGTE(FieldInstanceID, v))
}

// InstanceIDLT applies the LT predicate on the "instance_id" field.
func InstanceIDLT(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLT(FieldInstanceID, v))
}

// InstanceIDLTE applies the LTE predicate on the "instance_id" field.
func InstanceIDLTE(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLTE(FieldInstanceID, v))
}

// InstanceIDContains applies the Contains predicate on the "instance_id" field.
func InstanceIDContains(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldContains(FieldInstanceID, v))
}

// InstanceIDHasPrefix applies the HasPrefix predicate on the "instance_id" field.
func InstanceIDHasPrefix(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldHasPrefix(FieldInstanceID, v))
}

// InstanceIDHasSuffix applies the HasSuffix predicate on the "instance_id" field.
func InstanceIDHasSuffix(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldHasSuffix(FieldInstanceID, v))
}

// InstanceIDIsNil applies the IsNil predicate on the "instance_id" field.
func InstanceIDIsNil() predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldIsNull(FieldInstanceID))
}

// InstanceIDNotNil applies the NotNil predicate on the "instance_id" field.
func InstanceIDNotNil() predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNotNull(FieldInstanceID))
}

// InstanceIDEqualFold applies the EqualFold predicate on the "instance_id" field.
func InstanceIDEqualFold(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEqualFold(FieldInstanceID, v))
}

// InstanceIDContainsFold applies the ContainsFold predicate on the "instance_id" field.
func InstanceIDContainsFold(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldContainsFold(FieldInstanceID, v))
}

// ProjectPathEQ applies the EQ predicate on the "project_path" field.
func ProjectPathEQ(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldProjectPath, v))
}

// ProjectPathNEQ applies the NEQ predicate on the "project_path" field.
func ProjectPathNEQ(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNEQ(FieldProjectPath, v))
}

// ProjectPathIn applies the In predicate on the "project_path" field.
func ProjectPathIn(vs ...string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldIn(FieldProjectPath, vs...))
}

// ProjectPathNotIn applies the NotIn predicate on the "project_path" field.
func ProjectPathNotIn(vs ...string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNotIn(FieldProjectPath, vs...))
}

// ProjectPathGT applies the GT predicate on the "project_path" field.
func ProjectPathGT(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGT(FieldProjectPath, v))
}

// ProjectPathGTE applies the GTE predicate on the "project_path" field.
func ProjectPathGTE(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGTE(FieldProjectPath, v))
}

// ProjectPathLT applies the LT predicate on the "project_path" field.
func ProjectPathLT(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLT(FieldProjectPath, v))
}

// ProjectPathLTE applies the LTE predicate on the "project_path" field.
func ProjectPathLTE(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLTE(FieldProjectPath, v))
}

// ProjectPathContains applies the Contains predicate on the "project_path" field.
func ProjectPathContains(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldContains(FieldProjectPath, v))
}

// ProjectPathHasPrefix applies the HasPrefix predicate on the "project_path" field.
func ProjectPathHasPrefix(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldHasPrefix(FieldProjectPath, v))
}

// ProjectPathHasSuffix applies the HasSuffix predicate on the "project_path" field.
func ProjectPathHasSuffix(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldHasSuffix(FieldProjectPath, v))
}

// ProjectPathEqualFold applies the EqualFold predicate on the "project_path" field.
func ProjectPathEqualFold(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEqualFold(FieldProjectPath, v))
}

// ProjectPathContainsFold applies the ContainsFold predicate on the "project_path" field.
func ProjectPathContainsFold(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldContainsFold(FieldProjectPath, v))
}

// ProjectNameEQ applies the EQ predicate on the "project_name" field.
func ProjectNameEQ(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldProjectName, v))
}

// ProjectNameNEQ applies the NEQ predicate on the "project_name" field.
func ProjectNameNEQ(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNEQ(FieldProjectName, v))
}

// ProjectNameIn applies the In predicate on the "project_name" field.
func ProjectNameIn(vs ...string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldIn(FieldProjectName, vs...))
}

// ProjectNameNotIn applies the NotIn predicate on the "project_name" field.
func ProjectNameNotIn(vs ...string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNotIn(FieldProjectName, vs...))
}

// ProjectNameGT applies the GT predicate on the "project_name" field.
func ProjectNameGT(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGT(FieldProjectName, v))
}

// ProjectNameGTE applies the GTE predicate on the "project_name" field.
func ProjectNameGTE(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGTE(FieldProjectName, v))
}

// ProjectNameLT applies the LT predicate on the "project_name" field.
func ProjectNameLT(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLT(FieldProjectName, v))
}

// ProjectNameLTE applies the LTE predicate on the "project_name" field.
func ProjectNameLTE(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLTE(FieldProjectName, v))
}

// ProjectNameContains applies the Contains predicate on the "project_name" field.
func ProjectNameContains(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldContains(FieldProjectName, v))
}

// ProjectNameHasPrefix applies the HasPrefix predicate on the "project_name" field.
func ProjectNameHasPrefix(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldHasPrefix(FieldProjectName, v))
}

// ProjectNameHasSuffix applies the HasSuffix predicate on the "project_name" field.
func ProjectNameHasSuffix(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldHasSuffix(FieldProjectName, v))
}

// ProjectNameEqualFold applies the EqualFold predicate on the "project_name" field.
func ProjectNameEqualFold(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEqualFold(FieldProjectName, v))
}

// ProjectNameContainsFold applies the ContainsFold predicate on the "project_name" field.
func ProjectNameContainsFold(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldContainsFold(FieldProjectName, v))
}

// TaskTypeEQ applies the EQ predicate on the "task_type" field.
func TaskTypeEQ(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldTaskType, v))
}

// TaskTypeNEQ applies the NEQ predicate on the "task_type" field.
func TaskTypeNEQ(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNEQ(FieldTaskType, v))
}

// TaskTypeIn applies the In predicate on the "task_type" field.
func TaskTypeIn(vs ...string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldIn(FieldTaskType, vs...))
}

// TaskTypeNotIn applies the NotIn predicate on the "task_type" field.
func TaskTypeNotIn(vs ...string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNotIn(FieldTaskType, vs...))
}

// TaskTypeGT applies the GT predicate on the "task_type" field.
func TaskTypeGT(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGT(FieldTaskType, v))
}

// TaskTypeGTE applies the GTE predicate on the "task_type" field.
func TaskTypeGTE(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGTE(FieldTaskType, v))
}

// TaskTypeLT applies the LT predicate on the "task_type" field.
func TaskTypeLT(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLT(FieldTaskType, v))
}

// TaskTypeLTE applies the LTE predicate on the "task_type" field.
func TaskTypeLTE(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLTE(FieldTaskType, v))
}

// TaskTypeContains applies the Contains predicate on the "task_type" field.
func TaskTypeContains(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldContains(FieldTaskType, v))
}

// TaskTypeHasPrefix applies the HasPrefix predicate on the "task_type" field.
func TaskTypeHasPrefix(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldHasPrefix(FieldTaskType, v))
}

// TaskTypeHasSuffix applies the HasSuffix predicate on the "task_type" field.
func TaskTypeHasSuffix(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldHasSuffix(FieldTaskType, v))
}

// TaskTypeEqualFold applies the EqualFold predicate on the "task_type" field.
func TaskTypeEqualFold(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEqualFold(FieldTaskType, v))
}

// TaskTypeContainsFold applies the ContainsFold predicate on the "task_type" field.
func TaskTypeContainsFold(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldContainsFold(FieldTaskType, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldContainsFold(FieldDescription, v))
}

// ContextIsNil applies the IsNil predicate on the "context" field.
func ContextIsNil() predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldIsNull(FieldContext))
}

// ContextNotNil applies the NotNil predicate on the "context" field.
func ContextNotNil() predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNotNull(FieldContext))
}

// ServiceEQ applies the EQ predicate on the "service" field.
func ServiceEQ(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldService, v))
}

// ServiceNEQ applies the NEQ predicate on the "service" field.
func ServiceNEQ(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNEQ(FieldService, v))
}

// ServiceIn applies the In predicate on the "service" field.
func ServiceIn(vs ...string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldIn(FieldService, vs...))
}

// ServiceNotIn applies the NotIn predicate on the "service" field.
func ServiceNotIn(vs ...string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNotIn(FieldService, vs...))
}

// ServiceGT applies the GT predicate on the "service" field.
func ServiceGT(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGT(FieldService, v))
}

// ServiceGTE applies the GTE predicate on the "service" field.
func ServiceGTE(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGTE(FieldService, v))
}

// ServiceLT applies the LT predicate on the "service" field.
func ServiceLT(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLT(FieldService, v))
}

// ServiceLTE applies the LTE predicate on the "service" field.
func ServiceLTE(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLTE(FieldService, v))
}

// ServiceContains applies the Contains predicate on the "service" field.
func ServiceContains(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldContains(FieldService, v))
}

// ServiceHasPrefix applies the HasPrefix predicate on the "service" field.
func ServiceHasPrefix(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldHasPrefix(FieldService, v))
}

// ServiceHasSuffix applies the HasSuffix predicate on the "service" field.
func ServiceHasSuffix(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldHasSuffix(FieldService, v))
}

// ServiceEqualFold applies the EqualFold predicate on the "service" field.
func ServiceEqualFold(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEqualFold(FieldService, v))
}

// ServiceContainsFold applies the ContainsFold predicate on the "service" field.
func ServiceContainsFold(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldContainsFold(FieldService, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldContainsFold(FieldModel, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNotIn(FieldStatus, vs...))
}

// InstructionsPathEQ applies the EQ predicate on the "instructions_path" field.
func InstructionsPathEQ(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldInstructionsPath, v))
}

// InstructionsPathNEQ applies the NEQ predicate on the "instructions_path" field.
func InstructionsPathNEQ(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNEQ(FieldInstructionsPath, v))
}

// InstructionsPathIn applies the In predicate on the "instructions_path" field.
func InstructionsPathIn(vs ...string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldIn(FieldInstructionsPath, vs...))
}

// InstructionsPathNotIn applies the NotIn predicate on the "instructions_path" field.
func InstructionsPathNotIn(vs ...string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNotIn(FieldInstructionsPath, vs...))
}

// InstructionsPathGT applies the GT predicate on the "instructions_path" field.
func InstructionsPathGT(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGT(FieldInstructionsPath, v))
}

// InstructionsPathGTE applies the GTE predicate on the "instructions_path" field.
func InstructionsPathGTE(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGTE(FieldInstructionsPath, v))
}

// InstructionsPathLT applies the LT predicate on the "instructions_path" field.
func InstructionsPathLT(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLT(FieldInstructionsPath, v))
}

// InstructionsPathLTE applies the LTE predicate on the "instructions_path" field.
func InstructionsPathLTE(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLTE(FieldInstructionsPath, v))
}

// InstructionsPathContains applies the Contains predicate on the "instructions_path" field.
func InstructionsPathContains(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldContains(FieldInstructionsPath, v))
}

// InstructionsPathHasPrefix applies the HasPrefix predicate on the "instructions_path" field.
func InstructionsPathHasPrefix(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldHasPrefix(FieldInstructionsPath, v))
}

// InstructionsPathHasSuffix applies the HasSuffix predicate on the "instructions_path" field.
func InstructionsPathHasSuffix(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldHasSuffix(FieldInstructionsPath, v))
}

// InstructionsPathEqualFold applies the EqualFold predicate on the "instructions_path" field.
func InstructionsPathEqualFold(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEqualFold(FieldInstructionsPath, v))
}

// InstructionsPathContainsFold applies the ContainsFold predicate on the "instructions_path" field.
func InstructionsPathContainsFold(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldContainsFold(FieldInstructionsPath, v))
}

// OutputPathEQ applies the EQ predicate on the "output_path" field.
func OutputPathEQ(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldOutputPath, v))
}

// OutputPathNEQ applies the NEQ predicate on the "output_path" field.
func OutputPathNEQ(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNEQ(FieldOutputPath, v))
}

// OutputPathIn applies the In predicate on the "output_path" field.
func OutputPathIn(vs ...string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldIn(FieldOutputPath, vs...))
}

// OutputPathNotIn applies the NotIn predicate on the "output_path" field.
func OutputPathNotIn(vs ...string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNotIn(FieldOutputPath, vs...))
}

// OutputPathGT applies the GT predicate on the "output_path" field.
func OutputPathGT(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGT(FieldOutputPath, v))
}

// OutputPathGTE applies the GTE predicate on the "output_path" field.
func OutputPathGTE(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGTE(FieldOutputPath, v))
}

// OutputPathLT applies the LT predicate on the "output_path" field.
func OutputPathLT(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLT(FieldOutputPath, v))
}

// OutputPathLTE applies the LTE predicate on the "output_path" field.
func OutputPathLTE(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLTE(FieldOutputPath, v))
}

// OutputPathContains applies the Contains predicate on the "output_path" field.
func OutputPathContains(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldContains(FieldOutputPath, v))
}

// OutputPathHasPrefix applies the HasPrefix predicate on the "output_path" field.
func OutputPathHasPrefix(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldHasPrefix(FieldOutputPath, v))
}

// OutputPathHasSuffix applies the HasSuffix predicate on the "output_path" field.
func OutputPathHasSuffix(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldHasSuffix(FieldOutputPath, v))
}

// OutputPathEqualFold applies the EqualFold predicate on the "output_path" field.
func OutputPathEqualFold(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEqualFold(FieldOutputPath, v))
}

// OutputPathContainsFold applies the ContainsFold predicate on the "output_path" field.
func OutputPathContainsFold(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldContainsFold(FieldOutputPath, v))
}

// ExitCodeEQ applies the EQ predicate on the "exit_code" field.
func ExitCodeEQ(v int) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldExitCode, v))
}

// ExitCodeNEQ applies the NEQ predicate on the "exit_code" field.
func ExitCodeNEQ(v int) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNEQ(FieldExitCode, v))
}

// ExitCodeIn applies the In predicate on the "exit_code" field.
func ExitCodeIn(vs ...int) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldIn(FieldExitCode, vs...))
}

// ExitCodeNotIn applies the NotIn predicate on the "exit_code" field.
func ExitCodeNotIn(vs ...int) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNotIn(FieldExitCode, vs...))
}

// ExitCodeGT applies the GT predicate on the "exit_code" field.
func ExitCodeGT(v int) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGT(FieldExitCode, v))
}

// ExitCodeGTE applies the GTE predicate on the "exit_code" field.
func ExitCodeGTE(v int) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGTE(FieldExitCode, v))
}

// ExitCodeLT applies the LT predicate on the "exit_code" field.
func ExitCodeLT(v int) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLT(FieldExitCode, v))
}

// ExitCodeLTE applies the LTE predicate on the "exit_code" field.
func ExitCodeLTE(v int) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLTE(FieldExitCode, v))
}

// ExitCodeIsNil applies the IsNil predicate on the "exit_code" field.
func ExitCodeIsNil() predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldIsNull(FieldExitCode))
}

// ExitCodeNotNil applies the NotNil predicate on the "exit_code" field.
func ExitCodeNotNil() predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNotNull(FieldExitCode))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HostMachineEQ applies the EQ predicate on the "host_machine" field.
func HostMachineEQ(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldHostMachine, v))
}

// HostMachineNEQ applies the NEQ predicate on the "host_machine" field.
func HostMachineNEQ(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNEQ(FieldHostMachine, v))
}

// HostMachineIn applies the In predicate on the "host_machine" field.
func HostMachineIn(vs ...string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldIn(FieldHostMachine, vs...))
}

// HostMachineNotIn applies the NotIn predicate on the "host_machine" field.
func HostMachineNotIn(vs ...string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNotIn(FieldHostMachine, vs...))
}

// HostMachineGT applies the GT predicate on the "host_machine" field.
func HostMachineGT(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGT(FieldHostMachine, v))
}

// HostMachineGTE applies the GTE predicate on the "host_machine" field.
func HostMachineGTE(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGTE(FieldHostMachine, v))
}

// HostMachineLT applies the LT predicate on the "host_machine" field.
func HostMachineLT(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLT(FieldHostMachine, v))
}

// HostMachineLTE applies the LTE predicate on the "host_machine" field.
func HostMachineLTE(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLTE(FieldHostMachine, v))
}

// HostMachineContains applies the Contains predicate on the "host_machine" field.
func HostMachineContains(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldContains(FieldHostMachine, v))
}

// HostMachineHasPrefix applies the HasPrefix predicate on the "host_machine" field.
func HostMachineHasPrefix(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldHasPrefix(FieldHostMachine, v))
}

// HostMachineHasSuffix applies the HasSuffix predicate on the "host_machine" field.
func HostMachineHasSuffix(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldHasSuffix(FieldHostMachine, v))
}

// HostMachineIsNil applies the IsNil predicate on the "host_machine" field.
func HostMachineIsNil() predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldIsNull(FieldHostMachine))
}

// HostMachineNotNil applies the NotNil predicate on the "host_machine" field.
func HostMachineNotNil() predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNotNull(FieldHostMachine))
}

// HostMachineEqualFold applies the EqualFold predicate on the "host_machine" field.
func HostMachineEqualFold(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEqualFold(FieldHostMachine, v))
}

// HostMachineContainsFold applies the ContainsFold predicate on the "host_machine" field.
func HostMachineContainsFold(v string) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldContainsFold(FieldHostMachine, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLTE(FieldStartedAt, v))
}

// DeadlineAtEQ applies the EQ predicate on the "deadline_at" field.
func DeadlineAtEQ(v time.Time) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldDeadlineAt, v))
}

// DeadlineAtNEQ applies the NEQ predicate on the "deadline_at" field.
func DeadlineAtNEQ(v time.Time) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNEQ(FieldDeadlineAt, v))
}

// DeadlineAtIn applies the In predicate on the "deadline_at" field.
func DeadlineAtIn(vs ...time.Time) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldIn(FieldDeadlineAt, vs...))
}

// DeadlineAtNotIn applies the NotIn predicate on the "deadline_at" field.
func DeadlineAtNotIn(vs ...time.Time) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNotIn(FieldDeadlineAt, vs...))
}

// DeadlineAtGT applies the GT predicate on the "deadline_at" field.
func DeadlineAtGT(v time.Time) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGT(FieldDeadlineAt, v))
}

// DeadlineAtGTE applies the GTE predicate on the "deadline_at" field.
func DeadlineAtGTE(v time.Time) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGTE(FieldDeadlineAt, v))
}

// DeadlineAtLT applies the LT predicate on the "deadline_at" field.
func DeadlineAtLT(v time.Time) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLT(FieldDeadlineAt, v))
}

// DeadlineAtLTE applies the LTE predicate on the "deadline_at" field.
func DeadlineAtLTE(v time.Time) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLTE(FieldDeadlineAt, v))
}

// DeadlineAtIsNil applies the IsNil predicate on the "deadline_at" field.
func DeadlineAtIsNil() predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldIsNull(FieldDeadlineAt))
}

// DeadlineAtNotNil applies the NotNil predicate on the "deadline_at" field.
func DeadlineAtNotNil() predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNotNull(FieldDeadlineAt))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.FieldNotNull(FieldEndedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ActiveSpawn) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ActiveSpawn) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ActiveSpawn) predicate.ActiveSpawn {
	return predicate.ActiveSpawn(sql.NotPredicates(p))
}
