// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/pcaldeira/contractdraft/db/ent/schema"
	"github.com/pcaldeira/contractdraft/gen/ent/contractdraft"
	"github.com/pcaldeira/contractdraft/gen/ent/draftdocument"
	"github.com/pcaldeira/contractdraft/gen/ent/partner"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contractdraftFields := schema.ContractDraft{}.Fields()
	_ = contractdraftFields
	// contractdraftDescName is the schema descriptor for name field.
	contractdraftDescName := contractdraftFields[1].Descriptor()
	// contractdraft.NameValidator is a validator for the "name" field. It is called by the builders before save.
	contractdraft.NameValidator = contractdraftDescName.Validators[0].(func(string) error)
	// contractdraftDescStatus is the schema descriptor for status field.
	contractdraftDescStatus := contractdraftFields[2].Descriptor()
	// contractdraft.DefaultStatus holds the default value on creation for the status field.
	contractdraft.DefaultStatus = contractdraftDescStatus.Default.(string)
	// contractdraft.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	contractdraft.StatusValidator = contractdraftDescStatus.Validators[0].(func(string) error)
	// contractdraftDescCreatedAt is the schema descriptor for created_at field.
	contractdraftDescCreatedAt := contractdraftFields[5].Descriptor()
	// contractdraft.DefaultCreatedAt holds the default value on creation for the created_at field.
	contractdraft.DefaultCreatedAt = contractdraftDescCreatedAt.Default.(func() time.Time)
	// contractdraftDescUpdatedAt is the schema descriptor for updated_at field.
	contractdraftDescUpdatedAt := contractdraftFields[6].Descriptor()
	// contractdraft.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contractdraft.DefaultUpdatedAt = contractdraftDescUpdatedAt.Default.(func() time.Time)
	// contractdraft.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contractdraft.UpdateDefaultUpdatedAt = contractdraftDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contractdraftDescID is the schema descriptor for id field.
	contractdraftDescID := contractdraftFields[0].Descriptor()
	// contractdraft.DefaultID holds the default value on creation for the id field.
	contractdraft.DefaultID = contractdraftDescID.Default.(func() uuid.UUID)
	draftdocumentFields := schema.DraftDocument{}.Fields()
	_ = draftdocumentFields
	// draftdocumentDescPartnerPosition is the schema descriptor for partner_position field.
	draftdocumentDescPartnerPosition := draftdocumentFields[2].Descriptor()
	// draftdocument.DefaultPartnerPosition holds the default value on creation for the partner_position field.
	draftdocument.DefaultPartnerPosition = draftdocumentDescPartnerPosition.Default.(int)
	// draftdocumentDescRole is the schema descriptor for role field.
	draftdocumentDescRole := draftdocumentFields[3].Descriptor()
	// draftdocument.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	draftdocument.RoleValidator = func() func(string) error {
		validators := draftdocumentDescRole.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(role string) error {
			for _, fn := range fns {
				if err := fn(role); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// draftdocumentDescFilename is the schema descriptor for filename field.
	draftdocumentDescFilename := draftdocumentFields[4].Descriptor()
	// draftdocument.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	draftdocument.FilenameValidator = draftdocumentDescFilename.Validators[0].(func(string) error)
	// draftdocumentDescSourcePath is the schema descriptor for source_path field.
	draftdocumentDescSourcePath := draftdocumentFields[5].Descriptor()
	// draftdocument.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	draftdocument.SourcePathValidator = draftdocumentDescSourcePath.Validators[0].(func(string) error)
	// draftdocumentDescFileExt is the schema descriptor for file_ext field.
	draftdocumentDescFileExt := draftdocumentFields[6].Descriptor()
	// draftdocument.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	draftdocument.FileExtValidator = draftdocumentDescFileExt.Validators[0].(func(string) error)
	// draftdocumentDescContentHash is the schema descriptor for content_hash field.
	draftdocumentDescContentHash := draftdocumentFields[7].Descriptor()
	// draftdocument.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	draftdocument.ContentHashValidator = draftdocumentDescContentHash.Validators[0].(func([]byte) error)
	// draftdocumentDescAttempts is the schema descriptor for attempts field.
	draftdocumentDescAttempts := draftdocumentFields[10].Descriptor()
	// draftdocument.DefaultAttempts holds the default value on creation for the attempts field.
	draftdocument.DefaultAttempts = draftdocumentDescAttempts.Default.(int)
	// draftdocumentDescUploadedAt is the schema descriptor for uploaded_at field.
	draftdocumentDescUploadedAt := draftdocumentFields[13].Descriptor()
	// draftdocument.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	draftdocument.DefaultUploadedAt = draftdocumentDescUploadedAt.Default.(func() time.Time)
	// draftdocumentDescID is the schema descriptor for id field.
	draftdocumentDescID := draftdocumentFields[0].Descriptor()
	// draftdocument.DefaultID holds the default value on creation for the id field.
	draftdocument.DefaultID = draftdocumentDescID.Default.(func() uuid.UUID)
	partnerFields := schema.Partner{}.Fields()
	_ = partnerFields
	// partnerDescPosition is the schema descriptor for position field.
	partnerDescPosition := partnerFields[2].Descriptor()
	// partner.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	partner.PositionValidator = partnerDescPosition.Validators[0].(func(int) error)
	// partnerDescID is the schema descriptor for id field.
	partnerDescID := partnerFields[0].Descriptor()
	// partner.DefaultID holds the default value on creation for the id field.
	partner.DefaultID = partnerDescID.Default.(func() uuid.UUID)
}
