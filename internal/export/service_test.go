package export

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/pcaldeira/contractdraft/internal/draft"
)

func TestRenderWorkbookShape(t *testing.T) {
	d := draft.NewContractDraft("silva-souza", 2)
	d.Partner(0).Merge(fieldsWith(draft.KeyFullName, "Maria Silva"))
	d.Partner(0).SetManual(draft.KeyProfession, "Engenheira")
	d.Company.Merge(fieldsWith(draft.KeyLegalName, "Acme LTDA"))

	svc := NewService(slog.New(slog.DiscardHandler))
	out, err := svc.Render(context.Background(), d)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{"Summary", "Partner 1", "Partner 2", "Company"}
	if len(sheets) != len(want) {
		t.Fatalf("sheets = %v, want %v", sheets, want)
	}
	for i, name := range want {
		if sheets[i] != name {
			t.Errorf("sheet[%d] = %q, want %q", i, sheets[i], name)
		}
	}

	name, _ := f.GetCellValue("Partner 1", "B2")
	if name != "Maria Silva" {
		t.Errorf("Partner 1 B2 = %q, want full name", name)
	}
	src, _ := f.GetCellValue("Partner 1", "C2")
	if src != string(draft.SourceExtraction) {
		t.Errorf("Partner 1 C2 = %q, want extraction provenance", src)
	}

	legal, _ := f.GetCellValue("Company", "B2")
	if legal != "Acme LTDA" {
		t.Errorf("Company B2 = %q", legal)
	}

	status, _ := f.GetCellValue("Summary", "B2")
	if status != "DRAFT" {
		t.Errorf("Summary B2 = %q, want DRAFT", status)
	}
	firstMissing, _ := f.GetCellValue("Summary", "B5")
	if firstMissing == "" || firstMissing == "none" {
		t.Errorf("Summary B5 = %q, want a missing-field label", firstMissing)
	}
}

func fieldsWith(key draft.FieldKey, value string) draft.CanonicalFields {
	var c draft.CanonicalFields
	c.Set(key, value)
	return c
}
