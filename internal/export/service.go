// Package export produces review artifacts for contract drafts. The
// workbook layout is aimed at a human double-checking extracted fields
// before the draft is finalized.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pcaldeira/contractdraft/internal/draft"
)

// Renderer turns a draft into a downloadable artifact.
type Renderer interface {
	Render(ctx context.Context, d *draft.ContractDraft) ([]byte, error)
}

// Service renders a draft review workbook: one sheet per partner, one for
// the company, and a summary sheet listing completeness gaps.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

var _ Renderer = (*Service)(nil)

// Render returns an XLSX workbook (as bytes) for the given draft.
func (s *Service) Render(_ context.Context, d *draft.ContractDraft) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const summary = "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return nil, err
	}

	writeSummary(f, summary, d)

	for _, p := range d.Partners {
		sheet := "Partner " + strconv.Itoa(p.Index+1)
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
		writeFieldSet(f, sheet, personAndAddressKeys(), p.FieldSet)
	}

	const company = "Company"
	if _, err := f.NewSheet(company); err != nil {
		return nil, err
	}
	writeFieldSet(f, company, companyKeys(), d.Company)

	idx, _ := f.GetSheetIndex(summary)
	f.SetActiveSheet(idx)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"draft_id", d.ID.String(),
		"partners", len(d.Partners),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func writeSummary(f *excelize.File, sheet string, d *draft.ContractDraft) {
	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	write(1, 1, "Draft")
	write(2, 1, d.Name)
	write(1, 2, "Status")
	write(2, 2, string(d.Status))
	write(1, 3, "Updated")
	write(2, 3, d.UpdatedAt.UTC().Format(time.RFC3339))

	missing := d.MissingFields()
	write(1, 5, "Missing Fields")
	if len(missing) == 0 {
		write(2, 5, "none")
	}
	for i, m := range missing {
		write(2, 5+i, m)
	}

	_ = f.SetColWidth(sheet, "A", "A", 18)
	_ = f.SetColWidth(sheet, "B", "B", 48)
}

func writeFieldSet(f *excelize.File, sheet string, keys []draft.FieldKey, fs draft.FieldSet) {
	headers := []string{"Field", "Value", "Source"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, key := range keys {
		value := fs.Value(key)
		source := ""
		if src, ok := fs.Provenance[key]; ok {
			source = string(src)
		}
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, string(key))
		write(2, value)
		write(3, source)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 24)
	_ = f.SetColWidth(sheet, "B", "B", 48)
	_ = f.SetColWidth(sheet, "C", "C", 14)
}

// personAndAddressKeys lists the partner sheet rows in display order.
func personAndAddressKeys() []draft.FieldKey {
	return []draft.FieldKey{
		draft.KeyFullName,
		draft.KeyDocumentNumber,
		draft.KeyDocumentType,
		draft.KeyBirthDate,
		draft.KeyNationality,
		draft.KeyMaritalStatus,
		draft.KeyMarriageRegime,
		draft.KeyProfession,
		draft.KeyStreet,
		draft.KeyNumber,
		draft.KeyComplement,
		draft.KeyNeighborhood,
		draft.KeyCity,
		draft.KeyState,
		draft.KeyPostalCode,
	}
}

func companyKeys() []draft.FieldKey {
	return []draft.FieldKey{
		draft.KeyLegalName,
		draft.KeyRegistrationNumber,
		draft.KeyBusinessObject,
		draft.KeyCNAEList,
		draft.KeyIncorporationDate,
		draft.KeyCapital,
		draft.KeyForumCity,
		draft.KeyStreet,
		draft.KeyNumber,
		draft.KeyComplement,
		draft.KeyNeighborhood,
		draft.KeyCity,
		draft.KeyState,
		draft.KeyPostalCode,
	}
}
