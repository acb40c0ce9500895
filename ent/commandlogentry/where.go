// Code generated by ent, DO NOT EDIT.

package commandlogentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/praxisworks/supervisor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldLTE(FieldID, id))
}

// InstanceID applies equality check predicate on the "instance_id" field. It's identical to InstanceIDEQ.
func InstanceID(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldEQ(FieldInstanceID, v))
}

// CommandType applies equality check predicate on the "command_type" field. It's identical to CommandTypeEQ.
func CommandType(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldEQ(FieldCommandType, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldEQ(FieldAction, v))
}

// ToolName applies equality check predicate on the "tool_name" field. It's identical to ToolNameEQ.
func ToolName(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldEQ(FieldToolName, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldEQ(FieldSuccess, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldEQ(FieldErrorMessage, v))
}

// ExecutionTimeMs applies equality check predicate on the "execution_time_ms" field. It's identical to ExecutionTimeMsEQ.
func ExecutionTimeMs(v int64) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldEQ(FieldExecutionTimeMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// InstanceIDEQ applies the EQ predicate on the "instance_id" field.
func InstanceIDEQ(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldEQ(FieldInstanceID, v))
}

// InstanceIDNEQ applies the NEQ predicate on the "instance_id" field.
func InstanceIDNEQ(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldNEQ(FieldInstanceID, v))
}

// InstanceIDIn applies the In predicate on the "instance_id" field.
func InstanceIDIn(vs ...string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldIn(FieldInstanceID, vs...))
}

// InstanceIDNotIn applies the NotIn predicate on the "instance_id" field.
func InstanceIDNotIn(vs ...string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldNotIn(FieldInstanceID, vs...))
}

// InstanceIDGT applies the GT predicate on the "instance_id" field.
func InstanceIDGT(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldGT(FieldInstanceID, v))
}

// InstanceIDGTE applies the GTE predicate on the "instance_id" field.
func InstanceIDGTE(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldGTE(FieldInstanceID, v))
}

// InstanceIDLT applies the LT predicate on the "instance_id" field.
func InstanceIDLT(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldLT(FieldInstanceID, v))
}

// InstanceIDLTE applies the LTE predicate on the "instance_id" field.
func InstanceIDLTE(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldLTE(FieldInstanceID, v))
}

// InstanceIDContains applies the Contains predicate on the "instance_id" field.
func InstanceIDContains(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldContains(FieldInstanceID, v))
}

// InstanceIDHasPrefix applies the HasPrefix predicate on the "instance_id" field.
func InstanceIDHasPrefix(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldHasPrefix(FieldInstanceID, v))
}

// InstanceIDHasSuffix applies the HasSuffix predicate on the "instance_id" field.
func InstanceIDHasSuffix(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldHasSuffix(FieldInstanceID, v))
}

// InstanceIDIsNil applies the IsNil predicate on the "instance_id" field.
func InstanceIDIsNil() predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldIsNull(FieldInstanceID))
}

// InstanceIDNotNil applies the NotNil predicate on the "instance_id" field.
func InstanceIDNotNil() predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldNotNull(FieldInstanceID))
}

// InstanceIDEqualFold applies the EqualFold predicate on the "instance_id" field.
func InstanceIDEqualFold(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldEqualFold(FieldInstanceID, v))
}

// InstanceIDContainsFold applies the ContainsFold predicate on the "instance_id" field.
func InstanceIDContainsFold(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldContainsFold(FieldInstanceID, v))
}

// CommandTypeEQ applies the EQ predicate on the "command_type" field.
func CommandTypeEQ(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldEQ(FieldCommandType, v))
}

// CommandTypeNEQ applies the NEQ predicate on the "command_type" field.
func CommandTypeNEQ(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldNEQ(FieldCommandType, v))
}

// CommandTypeIn applies the In predicate on the "command_type" field.
func CommandTypeIn(vs ...string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldIn(FieldCommandType, vs...))
}

// CommandTypeNotIn applies the NotIn predicate on the "command_type" field.
func CommandTypeNotIn(vs ...string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldNotIn(FieldCommandType, vs...))
}

// CommandTypeGT applies the GT predicate on the "command_type" field.
func CommandTypeGT(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldGT(FieldCommandType, v))
}

// CommandTypeGTE applies the GTE predicate on the "command_type" field.
func CommandTypeGTE(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldGTE(FieldCommandType, v))
}

// CommandTypeLT applies the LT predicate on the "command_type" field.
func CommandTypeLT(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldLT(FieldCommandType, v))
}

// CommandTypeLTE applies the LTE predicate on the "command_type" field.
func CommandTypeLTE(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldLTE(FieldCommandType, v))
}

// CommandTypeContains applies the Contains predicate on the "command_type" field.
func CommandTypeContains(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldContains(FieldCommandType, v))
}

// CommandTypeHasPrefix applies the HasPrefix predicate on the "command_type" field.
func CommandTypeHasPrefix(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldHasPrefix(FieldCommandType, v))
}

// CommandTypeHasSuffix applies the HasSuffix predicate on the "command_type" field.
func CommandTypeHasSuffix(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldHasSuffix(FieldCommandType, v))
}

// CommandTypeEqualFold applies the EqualFold predicate on the "command_type" field.
func CommandTypeEqualFold(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldEqualFold(FieldCommandType, v))
}

// CommandTypeContainsFold applies the ContainsFold predicate on the "command_type" field.
func CommandTypeContainsFold(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldContainsFold(FieldCommandType, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldContainsFold(FieldAction, v))
}

// ToolNameEQ applies the EQ predicate on the "tool_name" field.
func ToolNameEQ(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldEQ(FieldToolName, v))
}

// ToolNameNEQ applies the NEQ predicate on the "tool_name" field.
func ToolNameNEQ(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldNEQ(FieldToolName, v))
}

// ToolNameIn applies the In predicate on the "tool_name" field.
func ToolNameIn(vs ...string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldIn(FieldToolName, vs...))
}

// ToolNameNotIn applies the NotIn predicate on the "tool_name" field.
func ToolNameNotIn(vs ...string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldNotIn(FieldToolName, vs...))
}

// ToolNameGT applies the GT predicate on the "tool_name" field.
func ToolNameGT(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldGT(FieldToolName, v))
}

// ToolNameGTE applies the GTE predicate on the "tool_name" field.
func ToolNameGTE(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldGTE(FieldToolName, v))
}

// ToolNameLT applies the LT predicate on the "tool_name" field.
func ToolNameLT(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldLT(FieldToolName, v))
}

// ToolNameLTE applies the LTE predicate on the "tool_name" field.
func ToolNameLTE(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldLTE(FieldToolName, v))
}

// ToolNameContains applies the Contains predicate on the "tool_name" field.
func ToolNameContains(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldContains(FieldToolName, v))
}

// ToolNameHasPrefix applies the HasPrefix predicate on the "tool_name" field.
func ToolNameHasPrefix(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldHasPrefix(FieldToolName, v))
}

// ToolNameHasSuffix applies the HasSuffix predicate on the "tool_name" field.
func ToolNameHasSuffix(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldHasSuffix(FieldToolName, v))
}

// ToolNameIsNil applies the IsNil predicate on the "tool_name" field.
func ToolNameIsNil() predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldIsNull(FieldToolName))
}

// ToolNameNotNil applies the NotNil predicate on the "tool_name" field.
func ToolNameNotNil() predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldNotNull(FieldToolName))
}

// ToolNameEqualFold applies the EqualFold predicate on the "tool_name" field.
func ToolNameEqualFold(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldEqualFold(FieldToolName, v))
}

// ToolNameContainsFold applies the ContainsFold predicate on the "tool_name" field.
func ToolNameContainsFold(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldContainsFold(FieldToolName, v))
}

// ParametersIsNil applies the IsNil predicate on the "parameters" field.
func ParametersIsNil() predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldIsNull(FieldParameters))
}

// ParametersNotNil applies the NotNil predicate on the "parameters" field.
func ParametersNotNil() predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldNotNull(FieldParameters))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldNotNull(FieldResult))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldNEQ(FieldSuccess, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ExecutionTimeMsEQ applies the EQ predicate on the "execution_time_ms" field.
func ExecutionTimeMsEQ(v int64) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldEQ(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsNEQ applies the NEQ predicate on the "execution_time_ms" field.
func ExecutionTimeMsNEQ(v int64) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldNEQ(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsIn applies the In predicate on the "execution_time_ms" field.
func ExecutionTimeMsIn(vs ...int64) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldIn(FieldExecutionTimeMs, vs...))
}

// ExecutionTimeMsNotIn applies the NotIn predicate on the "execution_time_ms" field.
func ExecutionTimeMsNotIn(vs ...int64) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldNotIn(FieldExecutionTimeMs, vs...))
}

// ExecutionTimeMsGT applies the GT predicate on the "execution_time_ms" field.
func ExecutionTimeMsGT(v int64) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldGT(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsGTE applies the GTE predicate on the "execution_time_ms" field.
func ExecutionTimeMsGTE(v int64) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldGTE(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsLT applies the LT predicate on the "execution_time_ms" field.
func ExecutionTimeMsLT(v int64) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldLT(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsLTE applies the LTE predicate on the "execution_time_ms" field.
func ExecutionTimeMsLTE(v int64) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldLTE(FieldExecutionTimeMs, v))
}

// ExecutionTimeMsIsNil applies the IsNil predicate on the "execution_time_ms" field.
func ExecutionTimeMsIsNil() predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldIsNull(FieldExecutionTimeMs))
}

// ExecutionTimeMsNotNil applies the NotNil predicate on the "execution_time_ms" field.
func ExecutionTimeMsNotNil() predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldNotNull(FieldExecutionTimeMs))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldNotNull(FieldTags))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// HasInstance applies the HasEdge predicate on the "instance" edge.
func HasInstance() predicate.CommandLogEntry {
	return predicate.CommandLogEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InstanceTable, InstanceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInstanceWith applies the HasEdge predicate on the "instance" edge with a given conditions (other predicates).
func HasInstanceWith(preds ...predicate.Instance) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(func(s *sql.Selector) {
		step := newInstanceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CommandLogEntry) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CommandLogEntry) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CommandLogEntry) predicate.CommandLogEntry {
	return predicate.CommandLogEntry(sql.NotPredicates(p))
}
