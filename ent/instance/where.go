// Code generated by ent, DO NOT EDIT.

package instance

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/praxisworks/supervisor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Instance {
	return predicate.Instance(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Instance {
	return predicate.Instance(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Instance {
	return predicate.Instance(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Instance {
	return predicate.Instance(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Instance {
	return predicate.Instance(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Instance {
	return predicate.Instance(sql.FieldContainsFold(FieldID, id))
}

// Project applies equality check predicate on the "project" field. It's identical to ProjectEQ.
func Project(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldProject, v))
}

// ContextPercent applies equality check predicate on the "context_percent" field. It's identical to ContextPercentEQ.
func ContextPercent(v int) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldContextPercent, v))
}

// CurrentEpic applies equality check predicate on the "current_epic" field. It's identical to CurrentEpicEQ.
func CurrentEpic(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldCurrentEpic, v))
}

// HostMachine applies equality check predicate on the "host_machine" field. It's identical to HostMachineEQ.
func HostMachine(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldHostMachine, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldCreatedAt, v))
}

// LastHeartbeat applies equality check predicate on the "last_heartbeat" field. It's identical to LastHeartbeatEQ.
func LastHeartbeat(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldLastHeartbeat, v))
}

// ClosedAt applies equality check predicate on the "closed_at" field. It's identical to ClosedAtEQ.
func ClosedAt(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldClosedAt, v))
}

// ProjectEQ applies the EQ predicate on the "project" field.
func ProjectEQ(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldProject, v))
}

// ProjectNEQ applies the NEQ predicate on the "project" field.
func ProjectNEQ(v string) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldProject, v))
}

// ProjectIn applies the In predicate on the "project" field.
func ProjectIn(vs ...string) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldProject, vs...))
}

// ProjectNotIn applies the NotIn predicate on the "project" field.
func ProjectNotIn(vs ...string) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldProject, vs...))
}

// ProjectGT applies the GT predicate on the "project" field.
func ProjectGT(v string) predicate.Instance {
	return predicate.Instance(sql.FieldGT(FieldProject, v))
}

// ProjectGTE applies the GTE predicate on the "project" field.
func ProjectGTE(v string) predicate.Instance {
	return predicate.Instance(sql.FieldGTE(FieldProject, v))
}

// ProjectLT applies the LT predicate on the "project" field.
func ProjectLT(v string) predicate.Instance {
	return predicate.Instance(sql.FieldLT(FieldProject, v))
}

// ProjectLTE applies the LTE predicate on the "project" field.
func ProjectLTE(v string) predicate.Instance {
	return predicate.Instance(sql.FieldLTE(FieldProject, v))
}

// ProjectContains applies the Contains predicate on the "project" field.
func ProjectContains(v string) predicate.Instance {
	return predicate.Instance(sql.FieldContains(FieldProject, v))
}

// ProjectHasPrefix applies the HasPrefix predicate on the "project" field.
func ProjectHasPrefix(v string) predicate.Instance {
	return predicate.Instance(sql.FieldHasPrefix(FieldProject, v))
}

// ProjectHasSuffix applies the HasSuffix predicate on the "project" field.
func ProjectHasSuffix(v string) predicate.Instance {
	return predicate.Instance(sql.FieldHasSuffix(FieldProject, v))
}

// ProjectEqualFold applies the EqualFold predicate on the "project" field.
func ProjectEqualFold(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEqualFold(FieldProject, v))
}

// ProjectContainsFold applies the ContainsFold predicate on the "project" field.
func ProjectContainsFold(v string) predicate.Instance {
	return predicate.Instance(sql.FieldContainsFold(FieldProject, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldStatus, vs...))
}

// ContextPercentEQ applies the EQ predicate on the "context_percent" field.
func ContextPercentEQ(v int) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldContextPercent, v))
}

// ContextPercentNEQ applies the NEQ predicate on the "context_percent" field.
func ContextPercentNEQ(v int) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldContextPercent, v))
}

// ContextPercentIn applies the In predicate on the "context_percent" field.
func ContextPercentIn(vs ...int) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldContextPercent, vs...))
}

// ContextPercentNotIn applies the NotIn predicate on the "context_percent" field.
func ContextPercentNotIn(vs ...int) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldContextPercent, vs...))
}

// ContextPercentGT applies the GT predicate on the "context_percent" field.
func ContextPercentGT(v int) predicate.Instance {
	return predicate.Instance(sql.FieldGT(FieldContextPercent, v))
}

// ContextPercentGTE applies the GTE predicate on the "context_percent" field.
func ContextPercentGTE(v int) predicate.Instance {
	return predicate.Instance(sql.FieldGTE(FieldContextPercent, v))
}

// ContextPercentLT applies the LT predicate on the "context_percent" field.
func ContextPercentLT(v int) predicate.Instance {
	return predicate.Instance(sql.FieldLT(FieldContextPercent, v))
}

// ContextPercentLTE applies the LTE predicate on the "context_percent" field.
func ContextPercentLTE(v int) predicate.Instance {
	return predicate.Instance(sql.FieldLTE(FieldContextPercent, v))
}

// CurrentEpicEQ applies the EQ predicate on the "current_epic" field.
func CurrentEpicEQ(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldCurrentEpic, v))
}

// CurrentEpicNEQ applies the NEQ predicate on the "current_epic" field.
func CurrentEpicNEQ(v string) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldCurrentEpic, v))
}

// CurrentEpicIn applies the In predicate on the "current_epic" field.
func CurrentEpicIn(vs ...string) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldCurrentEpic, vs...))
}

// CurrentEpicNotIn applies the NotIn predicate on the "current_epic" field.
func CurrentEpicNotIn(vs ...string) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldCurrentEpic, vs...))
}

// CurrentEpicGT applies the GT predicate on the "current_epic" field.
func CurrentEpicGT(v string) predicate.Instance {
	return predicate.Instance(sql.FieldGT(FieldCurrentEpic, v))
}

// CurrentEpicGTE applies the GTE predicate on the "current_epic" field.
func CurrentEpicGTE(v string) predicate.Instance {
	return predicate.Instance(sql.FieldGTE(FieldCurrentEpic, v))
}

// CurrentEpicLT applies the LT predicate on the "current_epic" field.
func CurrentEpicLT(v string) predicate.Instance {
	return predicate.Instance(sql.FieldLT(FieldCurrentEpic, v))
}

// CurrentEpicLTE applies the LTE predicate on the "current_epic" field.
func CurrentEpicLTE(v string) predicate.Instance {
	return predicate.Instance(sql.FieldLTE(FieldCurrentEpic, v))
}

// CurrentEpicContains applies the Contains predicate on the "current_epic" field.
func CurrentEpicContains(v string) predicate.Instance {
	return predicate.Instance(sql.FieldContains(FieldCurrentEpic, v))
}

// CurrentEpicHasPrefix applies the HasPrefix predicate on the "current_epic" field.
func CurrentEpicHasPrefix(v string) predicate.Instance {
	return predicate.Instance(sql.FieldHasPrefix(FieldCurrentEpic, v))
}

// CurrentEpicHasSuffix applies the HasSuffix predicate on the "current_epic" field.
func CurrentEpicHasSuffix(v string) predicate.Instance {
	return predicate.Instance(sql.FieldHasSuffix(FieldCurrentEpic, v))
}

// CurrentEpicIsNil applies the IsNil predicate on the "current_epic" field.
func CurrentEpicIsNil() predicate.Instance {
	return predicate.Instance(sql.FieldIsNull(FieldCurrentEpic))
}

// CurrentEpicNotNil applies the NotNil predicate on the "current_epic" field.
func CurrentEpicNotNil() predicate.Instance {
	return predicate.Instance(sql.FieldNotNull(FieldCurrentEpic))
}

// CurrentEpicEqualFold applies the EqualFold predicate on the "current_epic" field.
func CurrentEpicEqualFold(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEqualFold(FieldCurrentEpic, v))
}

// CurrentEpicContainsFold applies the ContainsFold predicate on the "current_epic" field.
func CurrentEpicContainsFold(v string) predicate.Instance {
	return predicate.Instance(sql.FieldContainsFold(FieldCurrentEpic, v))
}

// HostMachineEQ applies the EQ predicate on the "host_machine" field.
func HostMachineEQ(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldHostMachine, v))
}

// HostMachineNEQ applies the NEQ predicate on the "host_machine" field.
func HostMachineNEQ(v string) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldHostMachine, v))
}

// HostMachineIn applies the In predicate on the "host_machine" field.
func HostMachineIn(vs ...string) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldHostMachine, vs...))
}

// HostMachineNotIn applies the NotIn predicate on the "host_machine" field.
func HostMachineNotIn(vs ...string) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldHostMachine, vs...))
}

// HostMachineGT applies the GT predicate on the "host_machine" field.
func HostMachineGT(v string) predicate.Instance {
	return predicate.Instance(sql.FieldGT(FieldHostMachine, v))
}

// HostMachineGTE applies the GTE predicate on the "host_machine" field.
func HostMachineGTE(v string) predicate.Instance {
	return predicate.Instance(sql.FieldGTE(FieldHostMachine, v))
}

// HostMachineLT applies the LT predicate on the "host_machine" field.
func HostMachineLT(v string) predicate.Instance {
	return predicate.Instance(sql.FieldLT(FieldHostMachine, v))
}

// HostMachineLTE applies the LTE predicate on the "host_machine" field.
func HostMachineLTE(v string) predicate.Instance {
	return predicate.Instance(sql.FieldLTE(FieldHostMachine, v))
}

// HostMachineContains applies the Contains predicate on the "host_machine" field.
func HostMachineContains(v string) predicate.Instance {
	return predicate.Instance(sql.FieldContains(FieldHostMachine, v))
}

// HostMachineHasPrefix applies the HasPrefix predicate on the "host_machine" field.
func HostMachineHasPrefix(v string) predicate.Instance {
	return predicate.Instance(sql.FieldHasPrefix(FieldHostMachine, v))
}

// HostMachineHasSuffix applies the HasSuffix predicate on the "host_machine" field.
func HostMachineHasSuffix(v string) predicate.Instance {
	return predicate.Instance(sql.FieldHasSuffix(FieldHostMachine, v))
}

// HostMachineIsNil applies the IsNil predicate on the "host_machine" field.
func HostMachineIsNil() predicate.Instance {
	return predicate.Instance(sql.FieldIsNull(FieldHostMachine))
}

// HostMachineNotNil applies the NotNil predicate on the "host_machine" field.
func HostMachineNotNil() predicate.Instance {
	return predicate.Instance(sql.FieldNotNull(FieldHostMachine))
}

// HostMachineEqualFold applies the EqualFold predicate on the "host_machine" field.
func HostMachineEqualFold(v string) predicate.Instance {
	return predicate.Instance(sql.FieldEqualFold(FieldHostMachine, v))
}

// HostMachineContainsFold applies the ContainsFold predicate on the "host_machine" field.
func HostMachineContainsFold(v string) predicate.Instance {
	return predicate.Instance(sql.FieldContainsFold(FieldHostMachine, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldLTE(FieldCreatedAt, v))
}

// LastHeartbeatEQ applies the EQ predicate on the "last_heartbeat" field.
func LastHeartbeatEQ(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatNEQ applies the NEQ predicate on the "last_heartbeat" field.
func LastHeartbeatNEQ(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatIn applies the In predicate on the "last_heartbeat" field.
func LastHeartbeatIn(vs ...time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatNotIn applies the NotIn predicate on the "last_heartbeat" field.
func LastHeartbeatNotIn(vs ...time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatGT applies the GT predicate on the "last_heartbeat" field.
func LastHeartbeatGT(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldGT(FieldLastHeartbeat, v))
}

// LastHeartbeatGTE applies the GTE predicate on the "last_heartbeat" field.
func LastHeartbeatGTE(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldGTE(FieldLastHeartbeat, v))
}

// LastHeartbeatLT applies the LT predicate on the "last_heartbeat" field.
func LastHeartbeatLT(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldLT(FieldLastHeartbeat, v))
}

// LastHeartbeatLTE applies the LTE predicate on the "last_heartbeat" field.
func LastHeartbeatLTE(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldLTE(FieldLastHeartbeat, v))
}

// ClosedAtEQ applies the EQ predicate on the "closed_at" field.
func ClosedAtEQ(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldEQ(FieldClosedAt, v))
}

// ClosedAtNEQ applies the NEQ predicate on the "closed_at" field.
func ClosedAtNEQ(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldNEQ(FieldClosedAt, v))
}

// ClosedAtIn applies the In predicate on the "closed_at" field.
func ClosedAtIn(vs ...time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldIn(FieldClosedAt, vs...))
}

// ClosedAtNotIn applies the NotIn predicate on the "closed_at" field.
func ClosedAtNotIn(vs ...time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldNotIn(FieldClosedAt, vs...))
}

// ClosedAtGT applies the GT predicate on the "closed_at" field.
func ClosedAtGT(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldGT(FieldClosedAt, v))
}

// ClosedAtGTE applies the GTE predicate on the "closed_at" field.
func ClosedAtGTE(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldGTE(FieldClosedAt, v))
}

// ClosedAtLT applies the LT predicate on the "closed_at" field.
func ClosedAtLT(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldLT(FieldClosedAt, v))
}

// ClosedAtLTE applies the LTE predicate on the "closed_at" field.
func ClosedAtLTE(v time.Time) predicate.Instance {
	return predicate.Instance(sql.FieldLTE(FieldClosedAt, v))
}

// ClosedAtIsNil applies the IsNil predicate on the "closed_at" field.
func ClosedAtIsNil() predicate.Instance {
	return predicate.Instance(sql.FieldIsNull(FieldClosedAt))
}

// ClosedAtNotNil applies the NotNil predicate on the "closed_at" field.
func ClosedAtNotNil() predicate.Instance {
	return predicate.Instance(sql.FieldNotNull(FieldClosedAt))
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Instance {
	return predicate.Instance(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.Instance {
	return predicate.Instance(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCommandEntries applies the HasEdge predicate on the "command_entries" edge.
func HasCommandEntries() predicate.Instance {
	return predicate.Instance(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CommandEntriesTable, CommandEntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCommandEntriesWith applies the HasEdge predicate on the "command_entries" edge with a given conditions (other predicates).
func HasCommandEntriesWith(preds ...predicate.CommandLogEntry) predicate.Instance {
	return predicate.Instance(func(s *sql.Selector) {
		step := newCommandEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCheckpoints applies the HasEdge predicate on the "checkpoints" edge.
func HasCheckpoints() predicate.Instance {
	return predicate.Instance(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CheckpointsTable, CheckpointsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCheckpointsWith applies the HasEdge predicate on the "checkpoints" edge with a given conditions (other predicates).
func HasCheckpointsWith(preds ...predicate.Checkpoint) predicate.Instance {
	return predicate.Instance(func(s *sql.Selector) {
		step := newCheckpointsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Instance) predicate.Instance {
	return predicate.Instance(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Instance) predicate.Instance {
	return predicate.Instance(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Instance) predicate.Instance {
	return predicate.Instance(sql.NotPredicates(p))
}
