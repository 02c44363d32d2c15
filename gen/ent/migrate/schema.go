// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContactsColumns holds the columns for the "contacts" table.
	ContactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "company", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "website", Type: field.TypeString, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "ocr_confidence", Type: field.TypeJSON, Nullable: true},
		{Name: "scan_source", Type: field.TypeString, Default: "MANUAL"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ContactsTable holds the schema information for the "contacts" table.
	ContactsTable = &schema.Table{
		Name:       "contacts",
		Columns:    ContactsColumns,
		PrimaryKey: []*schema.Column{ContactsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contact_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[1], ContactsColumns[12]},
			},
			{
				Name:    "contact_owner_id_email",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[1], ContactsColumns[5]},
			},
		},
	}
	// ScanJobsColumns holds the columns for the "scan_jobs" table.
	ScanJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "raw_text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "source", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "is_duplicate", Type: field.TypeBool, Default: false},
		{Name: "match_score", Type: field.TypeInt, Default: 0},
		{Name: "matched_contact_id", Type: field.TypeUUID, Nullable: true},
		{Name: "match_reasons", Type: field.TypeJSON, Nullable: true},
		{Name: "contact_id", Type: field.TypeUUID, Nullable: true},
	}
	// ScanJobsTable holds the schema information for the "scan_jobs" table.
	ScanJobsTable = &schema.Table{
		Name:       "scan_jobs",
		Columns:    ScanJobsColumns,
		PrimaryKey: []*schema.Column{ScanJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "scan_jobs_contacts_scans",
				Columns:    []*schema.Column{ScanJobsColumns[13]},
				RefColumns: []*schema.Column{ContactsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "scanjob_owner_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ScanJobsColumns[1], ScanJobsColumns[6], ScanJobsColumns[4]},
			},
			{
				Name:    "scanjob_contact_id",
				Unique:  false,
				Columns: []*schema.Column{ScanJobsColumns[13]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContactsTable,
		ScanJobsTable,
	}
)

func init() {
	ContactsTable.Annotation = &entsql.Annotation{
		Table: "contacts",
	}
	ScanJobsTable.ForeignKeys[0].RefTable = ContactsTable
	ScanJobsTable.Annotation = &entsql.Annotation{
		Table: "scan_jobs",
	}
}
