package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pcaldeira/contractdraft/constants"
	"github.com/pcaldeira/contractdraft/gen/ent"
	entdraft "github.com/pcaldeira/contractdraft/gen/ent/contractdraft"
	entpartner "github.com/pcaldeira/contractdraft/gen/ent/partner"
	"github.com/pcaldeira/contractdraft/internal/common"
	"github.com/pcaldeira/contractdraft/internal/draft"
)

type DraftRepository interface {
	Create(ctx context.Context, name string, partnerCount int) (*draft.ContractDraft, error)
	GetByID(ctx context.Context, id uuid.UUID) (*draft.ContractDraft, error)
	List(ctx context.Context) ([]*draft.ContractDraft, error)
	Save(ctx context.Context, d *draft.ContractDraft) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type draftRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDraftRepository(entc *ent.Client, logger *slog.Logger) DraftRepository {
	return &draftRepo{ent: entc, logger: logger}
}

func (r *draftRepo) Create(ctx context.Context, name string, partnerCount int) (*draft.ContractDraft, error) {
	d := draft.NewContractDraft(name, partnerCount)

	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, err
	}
	row, err := tx.ContractDraft.Create().
		SetID(d.ID).
		SetName(d.Name).
		SetStatus(string(d.Status)).
		SetCreatedAt(d.CreatedAt).
		SetUpdatedAt(d.UpdatedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create draft", "name", name, "error", err)
		return nil, rollback(tx, err)
	}
	for _, p := range d.Partners {
		_, err := tx.Partner.Create().
			SetDraftID(row.ID).
			SetPosition(p.Index).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to create partner slot", "draft_id", row.ID, "position", p.Index, "error", err)
			return nil, rollback(tx, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	r.logger.Info("draft created", "draft_id", d.ID, "name", name, "partners", partnerCount)
	return d, nil
}

func (r *draftRepo) GetByID(ctx context.Context, id uuid.UUID) (*draft.ContractDraft, error) {
	row, err := r.ent.ContractDraft.Query().
		Where(entdraft.ID(id)).
		WithPartners(func(q *ent.PartnerQuery) {
			q.Order(ent.Asc(entpartner.FieldPosition))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("draft %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to get draft", "draft_id", id, "error", err)
		return nil, err
	}
	return toDraft(row), nil
}

func (r *draftRepo) List(ctx context.Context) ([]*draft.ContractDraft, error) {
	rows, err := r.ent.ContractDraft.Query().
		WithPartners(func(q *ent.PartnerQuery) {
			q.Order(ent.Asc(entpartner.FieldPosition))
		}).
		Order(ent.Desc(entdraft.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list drafts", "error", err)
		return nil, err
	}
	out := make([]*draft.ContractDraft, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDraft(row))
	}
	return out, nil
}

// Save persists a draft snapshot. Partner rows are replaced wholesale,
// which keeps the write path trivial at the cost of a few extra deletes.
func (r *draftRepo) Save(ctx context.Context, d *draft.ContractDraft) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return err
	}

	companyFields, companyProv := fieldSetToMaps(d.Company)
	err = tx.ContractDraft.UpdateOneID(d.ID).
		SetName(d.Name).
		SetStatus(string(d.Status)).
		SetCompanyFields(companyFields).
		SetCompanyProvenance(companyProv).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return rollback(tx, fmt.Errorf("draft %s: %w", d.ID, common.ErrNotFound))
		}
		r.logger.Error("failed to save draft", "draft_id", d.ID, "error", err)
		return rollback(tx, err)
	}

	if _, err := tx.Partner.Delete().Where(entpartner.DraftID(d.ID)).Exec(ctx); err != nil {
		r.logger.Error("failed to clear partner rows", "draft_id", d.ID, "error", err)
		return rollback(tx, err)
	}
	for _, p := range d.Partners {
		fields, prov := fieldSetToMaps(p.FieldSet)
		_, err := tx.Partner.Create().
			SetDraftID(d.ID).
			SetPosition(p.Index).
			SetFields(fields).
			SetProvenance(prov).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to save partner", "draft_id", d.ID, "position", p.Index, "error", err)
			return rollback(tx, err)
		}
	}
	return tx.Commit()
}

func (r *draftRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.Partner.Delete().Where(entpartner.DraftID(id)).Exec(ctx); err != nil {
		return rollback(tx, err)
	}
	if err := tx.ContractDraft.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return rollback(tx, fmt.Errorf("draft %s: %w", id, common.ErrNotFound))
		}
		r.logger.Error("failed to delete draft", "draft_id", id, "error", err)
		return rollback(tx, err)
	}
	return tx.Commit()
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w: rollback failed: %v", err, rerr)
	}
	return err
}

func toDraft(row *ent.ContractDraft) *draft.ContractDraft {
	d := &draft.ContractDraft{
		ID:        row.ID,
		Name:      row.Name,
		Status:    constants.DraftStatus(row.Status),
		Company:   fieldSetFromMaps(row.CompanyFields, row.CompanyProvenance),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	for _, p := range row.Edges.Partners {
		d.Partners = append(d.Partners, &draft.PartnerDraft{
			Index:    p.Position,
			FieldSet: fieldSetFromMaps(p.Fields, p.Provenance),
		})
	}
	return d
}

func fieldSetToMaps(fs draft.FieldSet) (map[string]string, map[string]string) {
	fields := make(map[string]string)
	prov := make(map[string]string)
	for _, key := range fs.Fields.PresentKeys() {
		fields[string(key)] = fs.Fields.Get(key)
		if src, ok := fs.Provenance[key]; ok {
			prov[string(key)] = string(src)
		}
	}
	return fields, prov
}

func fieldSetFromMaps(fields, prov map[string]string) draft.FieldSet {
	var fs draft.FieldSet
	for k, v := range fields {
		key := draft.FieldKey(k)
		if !draft.IsCanonical(key) {
			continue
		}
		fs.Fields.Set(key, v)
	}
	if len(prov) > 0 {
		fs.Provenance = make(map[draft.FieldKey]draft.Source, len(prov))
		for k, v := range prov {
			key := draft.FieldKey(k)
			if draft.IsCanonical(key) {
				fs.Provenance[key] = draft.Source(v)
			}
		}
	}
	return fs
}
