package utils

import (
	"time"

	contractspb "github.com/pcaldeira/contractdraft/gen/proto/contracts/v1"
	"github.com/pcaldeira/contractdraft/internal/draft"
)

func toPBFields(fs draft.FieldSet) []*contractspb.FieldEntry {
	keys := fs.Fields.PresentKeys()
	out := make([]*contractspb.FieldEntry, 0, len(keys))
	for _, key := range keys {
		entry := &contractspb.FieldEntry{
			Key:   string(key),
			Value: fs.Fields.Get(key),
		}
		if src, ok := fs.Provenance[key]; ok {
			entry.Source = string(src)
		}
		out = append(out, entry)
	}
	return out
}

func ToPBDraft(d *draft.ContractDraft) *contractspb.Draft {
	partners := make([]*contractspb.PartnerView, 0, len(d.Partners))
	for _, p := range d.Partners {
		partners = append(partners, &contractspb.PartnerView{
			Index:  int32(p.Index),
			Fields: toPBFields(p.FieldSet),
		})
	}
	return &contractspb.Draft{
		Id:            d.ID.String(),
		Name:          d.Name,
		Status:        string(d.Status),
		Partners:      partners,
		CompanyFields: toPBFields(d.Company),
		MissingFields: d.MissingFields(),
		Complete:      d.IsComplete(),
		CreatedAt:     d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     d.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
