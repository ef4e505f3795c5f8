// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContractDraftsColumns holds the columns for the "contract_drafts" table.
	ContractDraftsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "DRAFT"},
		{Name: "company_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "company_provenance", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ContractDraftsTable holds the schema information for the "contract_drafts" table.
	ContractDraftsTable = &schema.Table{
		Name:       "contract_drafts",
		Columns:    ContractDraftsColumns,
		PrimaryKey: []*schema.Column{ContractDraftsColumns[0]},
	}
	// DraftDocumentsColumns holds the columns for the "draft_documents" table.
	DraftDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "partner_position", Type: field.TypeInt, Default: -1},
		{Name: "role", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString},
		{Name: "source_path", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, Size: 32},
		{Name: "document_class", Type: field.TypeString, Nullable: true},
		{Name: "provider", Type: field.TypeString, Nullable: true},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "draft_id", Type: field.TypeUUID},
	}
	// DraftDocumentsTable holds the schema information for the "draft_documents" table.
	DraftDocumentsTable = &schema.Table{
		Name:       "draft_documents",
		Columns:    DraftDocumentsColumns,
		PrimaryKey: []*schema.Column{DraftDocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "draft_documents_contract_drafts_documents",
				Columns:    []*schema.Column{DraftDocumentsColumns[14]},
				RefColumns: []*schema.Column{ContractDraftsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// DraftPartnersColumns holds the columns for the "draft_partners" table.
	DraftPartnersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "position", Type: field.TypeInt},
		{Name: "fields", Type: field.TypeJSON, Nullable: true},
		{Name: "provenance", Type: field.TypeJSON, Nullable: true},
		{Name: "draft_id", Type: field.TypeUUID},
	}
	// DraftPartnersTable holds the schema information for the "draft_partners" table.
	DraftPartnersTable = &schema.Table{
		Name:       "draft_partners",
		Columns:    DraftPartnersColumns,
		PrimaryKey: []*schema.Column{DraftPartnersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "draft_partners_contract_drafts_partners",
				Columns:    []*schema.Column{DraftPartnersColumns[4]},
				RefColumns: []*schema.Column{ContractDraftsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "partner_draft_id_position",
				Unique:  true,
				Columns: []*schema.Column{DraftPartnersColumns[4], DraftPartnersColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContractDraftsTable,
		DraftDocumentsTable,
		DraftPartnersTable,
	}
)

func init() {
	ContractDraftsTable.Annotation = &entsql.Annotation{
		Table: "contract_drafts",
	}
	DraftDocumentsTable.ForeignKeys[0].RefTable = ContractDraftsTable
	DraftDocumentsTable.Annotation = &entsql.Annotation{
		Table: "draft_documents",
	}
	DraftPartnersTable.ForeignKeys[0].RefTable = ContractDraftsTable
	DraftPartnersTable.Annotation = &entsql.Annotation{
		Table: "draft_partners",
	}
}
