// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActiveSpawnsColumns holds the columns for the "active_spawns" table.
	ActiveSpawnsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "instance_id", Type: field.TypeString, Nullable: true},
		{Name: "project_path", Type: field.TypeString},
		{Name: "project_name", Type: field.TypeString},
		{Name: "task_type", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "service", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed", "stalled", "abandoned"}, Default: "running"},
		{Name: "instructions_path", Type: field.TypeString},
		{Name: "output_path", Type: field.TypeString},
		{Name: "exit_code", Type: field.TypeInt, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "host_machine", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "deadline_at", Type: field.TypeTime, Nullable: true},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
	}
	// ActiveSpawnsTable holds the schema information for the "active_spawns" table.
	ActiveSpawnsTable = &schema.Table{
		Name:       "active_spawns",
		Columns:    ActiveSpawnsColumns,
		PrimaryKey: []*schema.Column{ActiveSpawnsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activespawn_status",
				Unique:  false,
				Columns: []*schema.Column{ActiveSpawnsColumns[9]},
			},
			{
				Name:    "activespawn_instance_id",
				Unique:  false,
				Columns: []*schema.Column{ActiveSpawnsColumns[1]},
			},
			{
				Name:    "activespawn_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ActiveSpawnsColumns[9], ActiveSpawnsColumns[15]},
			},
			{
				Name:    "activespawn_status_deadline_at",
				Unique:  false,
				Columns: []*schema.Column{ActiveSpawnsColumns[9], ActiveSpawnsColumns[16]},
			},
		},
	}
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "checkpoint_id", Type: field.TypeString, Unique: true},
		{Name: "sequence_num", Type: field.TypeInt},
		{Name: "checkpoint_type", Type: field.TypeEnum, Enums: []string{"manual", "automatic"}},
		{Name: "context_window_percent", Type: field.TypeInt},
		{Name: "work_state", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "instance_id", Type: field.TypeString},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "checkpoints_instances_checkpoints",
				Columns:    []*schema.Column{CheckpointsColumns[6]},
				RefColumns: []*schema.Column{InstancesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "checkpoint_instance_id_sequence_num",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[6], CheckpointsColumns[1]},
			},
			{
				Name:    "checkpoint_instance_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[6], CheckpointsColumns[5]},
			},
		},
	}
	// CommandLogEntriesColumns holds the columns for the "command_log_entries" table.
	CommandLogEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "command_type", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "tool_name", Type: field.TypeString, Nullable: true},
		{Name: "parameters", Type: field.TypeJSON, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "execution_time_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "instance_id", Type: field.TypeString, Nullable: true},
	}
	// CommandLogEntriesTable holds the schema information for the "command_log_entries" table.
	CommandLogEntriesTable = &schema.Table{
		Name:       "command_log_entries",
		Columns:    CommandLogEntriesColumns,
		PrimaryKey: []*schema.Column{CommandLogEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "command_log_entries_instances_command_entries",
				Columns:    []*schema.Column{CommandLogEntriesColumns[11]},
				RefColumns: []*schema.Column{InstancesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "commandlogentry_instance_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CommandLogEntriesColumns[11], CommandLogEntriesColumns[10]},
			},
			{
				Name:    "commandlogentry_command_type",
				Unique:  false,
				Columns: []*schema.Column{CommandLogEntriesColumns[1]},
			},
			{
				Name:    "commandlogentry_success_created_at",
				Unique:  false,
				Columns: []*schema.Column{CommandLogEntriesColumns[6], CommandLogEntriesColumns[10]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "sequence_num", Type: field.TypeInt},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"instance_registered", "instance_heartbeat", "instance_stale", "instance_closed", "epic_started", "epic_planned", "epic_completed", "epic_failed", "test_started", "test_passed", "test_failed", "validation_passed", "validation_failed", "commit_created", "pr_created", "pr_merged", "deployment_started", "deployment_completed", "deployment_failed", "context_window_updated", "checkpoint_created", "checkpoint_loaded", "feature_requested", "task_spawned"}},
		{Name: "event_data", Type: field.TypeJSON},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "instance_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_instances_events",
				Columns:    []*schema.Column{EventsColumns[7]},
				RefColumns: []*schema.Column{InstancesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_instance_id_sequence_num",
				Unique:  true,
				Columns: []*schema.Column{EventsColumns[7], EventsColumns[1]},
			},
			{
				Name:    "event_event_type",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[6]},
			},
		},
	}
	// InstancesColumns holds the columns for the "instances" table.
	InstancesColumns = []*schema.Column{
		{Name: "instance_id", Type: field.TypeString, Unique: true},
		{Name: "project", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"PS", "MS"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "stale", "closed"}, Default: "active"},
		{Name: "context_percent", Type: field.TypeInt, Default: 0},
		{Name: "current_epic", Type: field.TypeString, Nullable: true},
		{Name: "host_machine", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_heartbeat", Type: field.TypeTime},
		{Name: "closed_at", Type: field.TypeTime, Nullable: true},
	}
	// InstancesTable holds the schema information for the "instances" table.
	InstancesTable = &schema.Table{
		Name:       "instances",
		Columns:    InstancesColumns,
		PrimaryKey: []*schema.Column{InstancesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "instance_status",
				Unique:  false,
				Columns: []*schema.Column{InstancesColumns[3]},
			},
			{
				Name:    "instance_project",
				Unique:  false,
				Columns: []*schema.Column{InstancesColumns[1]},
			},
			{
				Name:    "instance_project_last_heartbeat",
				Unique:  false,
				Columns: []*schema.Column{InstancesColumns[1], InstancesColumns[8]},
			},
			{
				Name:    "instance_status_last_heartbeat",
				Unique:  false,
				Columns: []*schema.Column{InstancesColumns[3], InstancesColumns[8]},
			},
		},
	}
	// SecretsColumns holds the columns for the "secrets" table.
	SecretsColumns = []*schema.Column{
		{Name: "secret_id", Type: field.TypeString, Unique: true},
		{Name: "key_path", Type: field.TypeString, Unique: true},
		{Name: "encrypted_value", Type: field.TypeBytes},
		{Name: "encryption_key_id", Type: field.TypeString},
		{Name: "secret_type", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "access_count", Type: field.TypeInt, Default: 0},
		{Name: "last_accessed_at", Type: field.TypeTime, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SecretsTable holds the schema information for the "secrets" table.
	SecretsTable = &schema.Table{
		Name:       "secrets",
		Columns:    SecretsColumns,
		PrimaryKey: []*schema.Column{SecretsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "secret_key_path",
				Unique:  false,
				Columns: []*schema.Column{SecretsColumns[1]},
			},
			{
				Name:    "secret_secret_type",
				Unique:  false,
				Columns: []*schema.Column{SecretsColumns[4]},
			},
			{
				Name:    "secret_expires_at",
				Unique:  false,
				Columns: []*schema.Column{SecretsColumns[8]},
				Annotation: &entsql.IndexAnnotation{
					Where: "expires_at IS NOT NULL",
				},
			},
		},
	}
	// SecretAccessLogsColumns holds the columns for the "secret_access_logs" table.
	SecretAccessLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "secret_id", Type: field.TypeString, Nullable: true},
		{Name: "key_path", Type: field.TypeString},
		{Name: "accessed_by", Type: field.TypeString},
		{Name: "access_type", Type: field.TypeEnum, Enums: []string{"get", "set", "delete", "list"}},
		{Name: "success", Type: field.TypeBool},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "accessed_at", Type: field.TypeTime},
	}
	// SecretAccessLogsTable holds the schema information for the "secret_access_logs" table.
	SecretAccessLogsTable = &schema.Table{
		Name:       "secret_access_logs",
		Columns:    SecretAccessLogsColumns,
		PrimaryKey: []*schema.Column{SecretAccessLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "secretaccesslog_key_path_accessed_at",
				Unique:  false,
				Columns: []*schema.Column{SecretAccessLogsColumns[2], SecretAccessLogsColumns[7]},
			},
			{
				Name:    "secretaccesslog_accessed_by",
				Unique:  false,
				Columns: []*schema.Column{SecretAccessLogsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActiveSpawnsTable,
		CheckpointsTable,
		CommandLogEntriesTable,
		EventsTable,
		InstancesTable,
		SecretsTable,
		SecretAccessLogsTable,
	}
)

func init() {
	CheckpointsTable.ForeignKeys[0].RefTable = InstancesTable
	CommandLogEntriesTable.ForeignKeys[0].RefTable = InstancesTable
	EventsTable.ForeignKeys[0].RefTable = InstancesTable
}
