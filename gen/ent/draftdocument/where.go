// Code generated by ent, DO NOT EDIT.

package draftdocument

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/pcaldeira/contractdraft/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldLTE(FieldID, id))
}

// DraftID applies equality check predicate on the "draft_id" field. It's identical to DraftIDEQ.
func DraftID(v uuid.UUID) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldDraftID, v))
}

// PartnerPosition applies equality check predicate on the "partner_position" field. It's identical to PartnerPositionEQ.
func PartnerPosition(v int) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldPartnerPosition, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldRole, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldFilename, v))
}

// SourcePath applies equality check predicate on the "source_path" field. It's identical to SourcePathEQ.
func SourcePath(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldSourcePath, v))
}

// FileExt applies equality check predicate on the "file_ext" field. It's identical to FileExtEQ.
func FileExt(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldFileExt, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v []byte) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldContentHash, v))
}

// DocumentClass applies equality check predicate on the "document_class" field. It's identical to DocumentClassEQ.
func DocumentClass(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldDocumentClass, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldProvider, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldAttempts, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldErrorMessage, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldUploadedAt, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldProcessedAt, v))
}

// DraftIDEQ applies the EQ predicate on the "draft_id" field.
func DraftIDEQ(v uuid.UUID) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldDraftID, v))
}

// DraftIDNEQ applies the NEQ predicate on the "draft_id" field.
func DraftIDNEQ(v uuid.UUID) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNEQ(FieldDraftID, v))
}

// DraftIDIn applies the In predicate on the "draft_id" field.
func DraftIDIn(vs ...uuid.UUID) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldIn(FieldDraftID, vs...))
}

// DraftIDNotIn applies the NotIn predicate on the "draft_id" field.
func DraftIDNotIn(vs ...uuid.UUID) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNotIn(FieldDraftID, vs...))
}

// PartnerPositionEQ applies the EQ predicate on the "partner_position" field.
func PartnerPositionEQ(v int) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldPartnerPosition, v))
}

// PartnerPositionNEQ applies the NEQ predicate on the "partner_position" field.
func PartnerPositionNEQ(v int) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNEQ(FieldPartnerPosition, v))
}

// PartnerPositionIn applies the In predicate on the "partner_position" field.
func PartnerPositionIn(vs ...int) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldIn(FieldPartnerPosition, vs...))
}

// PartnerPositionNotIn applies the NotIn predicate on the "partner_position" field.
func PartnerPositionNotIn(vs ...int) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNotIn(FieldPartnerPosition, vs...))
}

// PartnerPositionGT applies the GT predicate on the "partner_position" field.
func PartnerPositionGT(v int) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldGT(FieldPartnerPosition, v))
}

// PartnerPositionGTE applies the GTE predicate on the "partner_position" field.
func PartnerPositionGTE(v int) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldGTE(FieldPartnerPosition, v))
}

// PartnerPositionLT applies the LT predicate on the "partner_position" field.
func PartnerPositionLT(v int) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldLT(FieldPartnerPosition, v))
}

// PartnerPositionLTE applies the LTE predicate on the "partner_position" field.
func PartnerPositionLTE(v int) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldLTE(FieldPartnerPosition, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldContainsFold(FieldRole, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldContainsFold(FieldFilename, v))
}

// SourcePathEQ applies the EQ predicate on the "source_path" field.
func SourcePathEQ(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldSourcePath, v))
}

// SourcePathNEQ applies the NEQ predicate on the "source_path" field.
func SourcePathNEQ(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNEQ(FieldSourcePath, v))
}

// SourcePathIn applies the In predicate on the "source_path" field.
func SourcePathIn(vs ...string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldIn(FieldSourcePath, vs...))
}

// SourcePathNotIn applies the NotIn predicate on the "source_path" field.
func SourcePathNotIn(vs ...string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNotIn(FieldSourcePath, vs...))
}

// SourcePathGT applies the GT predicate on the "source_path" field.
func SourcePathGT(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldGT(FieldSourcePath, v))
}

// SourcePathGTE applies the GTE predicate on the "source_path" field.
func SourcePathGTE(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldGTE(FieldSourcePath, v))
}

// SourcePathLT applies the LT predicate on the "source_path" field.
func SourcePathLT(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldLT(FieldSourcePath, v))
}

// SourcePathLTE applies the LTE predicate on the "source_path" field.
func SourcePathLTE(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldLTE(FieldSourcePath, v))
}

// SourcePathContains applies the Contains predicate on the "source_path" field.
func SourcePathContains(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldContains(FieldSourcePath, v))
}

// SourcePathHasPrefix applies the HasPrefix predicate on the "source_path" field.
func SourcePathHasPrefix(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldHasPrefix(FieldSourcePath, v))
}

// SourcePathHasSuffix applies the HasSuffix predicate on the "source_path" field.
func SourcePathHasSuffix(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldHasSuffix(FieldSourcePath, v))
}

// SourcePathEqualFold applies the EqualFold predicate on the "source_path" field.
func SourcePathEqualFold(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEqualFold(FieldSourcePath, v))
}

// SourcePathContainsFold applies the ContainsFold predicate on the "source_path" field.
func SourcePathContainsFold(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldContainsFold(FieldSourcePath, v))
}

// FileExtEQ applies the EQ predicate on the "file_ext" field.
func FileExtEQ(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldFileExt, v))
}

// FileExtNEQ applies the NEQ predicate on the "file_ext" field.
func FileExtNEQ(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNEQ(FieldFileExt, v))
}

// FileExtIn applies the In predicate on the "file_ext" field.
func FileExtIn(vs ...string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldIn(FieldFileExt, vs...))
}

// FileExtNotIn applies the NotIn predicate on the "file_ext" field.
func FileExtNotIn(vs ...string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNotIn(FieldFileExt, vs...))
}

// FileExtGT applies the GT predicate on the "file_ext" field.
func FileExtGT(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldGT(FieldFileExt, v))
}

// FileExtGTE applies the GTE predicate on the "file_ext" field.
func FileExtGTE(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldGTE(FieldFileExt, v))
}

// FileExtLT applies the LT predicate on the "file_ext" field.
func FileExtLT(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldLT(FieldFileExt, v))
}

// FileExtLTE applies the LTE predicate on the "file_ext" field.
func FileExtLTE(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldLTE(FieldFileExt, v))
}

// FileExtContains applies the Contains predicate on the "file_ext" field.
func FileExtContains(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldContains(FieldFileExt, v))
}

// FileExtHasPrefix applies the HasPrefix predicate on the "file_ext" field.
func FileExtHasPrefix(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldHasPrefix(FieldFileExt, v))
}

// FileExtHasSuffix applies the HasSuffix predicate on the "file_ext" field.
func FileExtHasSuffix(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldHasSuffix(FieldFileExt, v))
}

// FileExtEqualFold applies the EqualFold predicate on the "file_ext" field.
func FileExtEqualFold(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEqualFold(FieldFileExt, v))
}

// FileExtContainsFold applies the ContainsFold predicate on the "file_ext" field.
func FileExtContainsFold(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldContainsFold(FieldFileExt, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v []byte) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v []byte) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...[]byte) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...[]byte) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v []byte) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v []byte) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v []byte) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v []byte) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldLTE(FieldContentHash, v))
}

// DocumentClassEQ applies the EQ predicate on the "document_class" field.
func DocumentClassEQ(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldDocumentClass, v))
}

// DocumentClassNEQ applies the NEQ predicate on the "document_class" field.
func DocumentClassNEQ(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNEQ(FieldDocumentClass, v))
}

// DocumentClassIn applies the In predicate on the "document_class" field.
func DocumentClassIn(vs ...string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldIn(FieldDocumentClass, vs...))
}

// DocumentClassNotIn applies the NotIn predicate on the "document_class" field.
func DocumentClassNotIn(vs ...string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNotIn(FieldDocumentClass, vs...))
}

// DocumentClassGT applies the GT predicate on the "document_class" field.
func DocumentClassGT(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldGT(FieldDocumentClass, v))
}

// DocumentClassGTE applies the GTE predicate on the "document_class" field.
func DocumentClassGTE(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldGTE(FieldDocumentClass, v))
}

// DocumentClassLT applies the LT predicate on the "document_class" field.
func DocumentClassLT(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldLT(FieldDocumentClass, v))
}

// DocumentClassLTE applies the LTE predicate on the "document_class" field.
func DocumentClassLTE(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldLTE(FieldDocumentClass, v))
}

// DocumentClassContains applies the Contains predicate on the "document_class" field.
func DocumentClassContains(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldContains(FieldDocumentClass, v))
}

// DocumentClassHasPrefix applies the HasPrefix predicate on the "document_class" field.
func DocumentClassHasPrefix(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldHasPrefix(FieldDocumentClass, v))
}

// DocumentClassHasSuffix applies the HasSuffix predicate on the "document_class" field.
func DocumentClassHasSuffix(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldHasSuffix(FieldDocumentClass, v))
}

// DocumentClassIsNil applies the IsNil predicate on the "document_class" field.
func DocumentClassIsNil() predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldIsNull(FieldDocumentClass))
}

// DocumentClassNotNil applies the NotNil predicate on the "document_class" field.
func DocumentClassNotNil() predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNotNull(FieldDocumentClass))
}

// DocumentClassEqualFold applies the EqualFold predicate on the "document_class" field.
func DocumentClassEqualFold(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEqualFold(FieldDocumentClass, v))
}

// DocumentClassContainsFold applies the ContainsFold predicate on the "document_class" field.
func DocumentClassContainsFold(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldContainsFold(FieldDocumentClass, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderIsNil applies the IsNil predicate on the "provider" field.
func ProviderIsNil() predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldIsNull(FieldProvider))
}

// ProviderNotNil applies the NotNil predicate on the "provider" field.
func ProviderNotNil() predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNotNull(FieldProvider))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldContainsFold(FieldProvider, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldLTE(FieldAttempts, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusIsNil applies the IsNil predicate on the "status" field.
func StatusIsNil() predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldIsNull(FieldStatus))
}

// StatusNotNil applies the NotNil predicate on the "status" field.
func StatusNotNil() predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNotNull(FieldStatus))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldContainsFold(FieldErrorMessage, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldLTE(FieldUploadedAt, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldLTE(FieldProcessedAt, v))
}

// ProcessedAtIsNil applies the IsNil predicate on the "processed_at" field.
func ProcessedAtIsNil() predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldIsNull(FieldProcessedAt))
}

// ProcessedAtNotNil applies the NotNil predicate on the "processed_at" field.
func ProcessedAtNotNil() predicate.DraftDocument {
	return predicate.DraftDocument(sql.FieldNotNull(FieldProcessedAt))
}

// HasDraft applies the HasEdge predicate on the "draft" edge.
func HasDraft() predicate.DraftDocument {
	return predicate.DraftDocument(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DraftTable, DraftColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDraftWith applies the HasEdge predicate on the "draft" edge with a given conditions (other predicates).
func HasDraftWith(preds ...predicate.ContractDraft) predicate.DraftDocument {
	return predicate.DraftDocument(func(s *sql.Selector) {
		step := newDraftStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DraftDocument) predicate.DraftDocument {
	return predicate.DraftDocument(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DraftDocument) predicate.DraftDocument {
	return predicate.DraftDocument(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DraftDocument) predicate.DraftDocument {
	return predicate.DraftDocument(sql.NotPredicates(p))
}
