package normalize

import (
	"testing"

	"github.com/pcaldeira/contractdraft/constants"
	"github.com/pcaldeira/contractdraft/internal/draft"
	"github.com/pcaldeira/contractdraft/internal/provider"
)

func TestNormalizeIdentityFromVisionPayload(t *testing.T) {
	raw := provider.RawResult{
		Provider: provider.VisionProvider,
		Payload: map[string]any{
			"nome":       "Maria Silva",
			"documento":  "12.345.678-9",
			"nascimento": "1990-05-10",
		},
	}

	got := Normalize(raw, constants.RoleIdentity)

	want := map[draft.FieldKey]string{
		draft.KeyFullName:       "Maria Silva",
		draft.KeyDocumentNumber: "123456789",
		draft.KeyDocumentType:   "identity",
		draft.KeyBirthDate:      "1990-05-10",
	}
	for key, v := range want {
		if got.Get(key) != v {
			t.Errorf("%s = %q, want %q", key, got.Get(key), v)
		}
	}
	if got.Get(draft.KeyNationality) != "" {
		t.Errorf("nationality should be absent, got %q", got.Get(draft.KeyNationality))
	}
}

func TestNormalizeDropsUnknownKeys(t *testing.T) {
	raw := provider.RawResult{
		Provider: provider.TextProvider,
		Payload: map[string]any{
			"name":        "João Souza",
			"shoe_size":   "42",
			"confidence":  "0.98",
			"observacoes": "documento legível",
		},
	}

	got := Normalize(raw, constants.RoleIdentity)
	if got.Get(draft.KeyFullName) != "João Souza" {
		t.Fatalf("full_name = %q", got.Get(draft.KeyFullName))
	}
	present := got.PresentKeys()
	for _, k := range present {
		if k != draft.KeyFullName && k != draft.KeyDocumentType {
			t.Errorf("unexpected canonical field %s", k)
		}
	}
}

func TestNormalizeDocumentNumberPriority(t *testing.T) {
	// A CPF outranks an RG when the payload carries both.
	raw := provider.RawResult{
		Provider: provider.TextProvider,
		Payload: map[string]any{
			"cpf": "123.456.789-00",
			"rg":  "9.876.543",
		},
	}
	got := Normalize(raw, constants.RoleIdentity)
	if got.Get(draft.KeyDocumentNumber) != "12345678900" {
		t.Fatalf("document_number = %q, want CPF digits", got.Get(draft.KeyDocumentNumber))
	}
}

func TestNormalizeCompany(t *testing.T) {
	raw := provider.RawResult{
		Provider: provider.TextProvider,
		Payload: map[string]any{
			"company_name":      "Acme Serviços LTDA",
			"cnpj":              "12.345.678/0001-90",
			"start_date":        "03/02/2015",
			"company_object":    "Consultoria em tecnologia",
			"company_cnae_list": "6201-5/01",
			"capital_currency":  "R$ 100.000,00",
			"forum_city":        "Florianópolis",
		},
	}

	got := Normalize(raw, constants.RoleCompany)

	cases := map[draft.FieldKey]string{
		draft.KeyLegalName:          "Acme Serviços LTDA",
		draft.KeyRegistrationNumber: "12345678000190",
		draft.KeyIncorporationDate:  "2015-02-03",
		draft.KeyBusinessObject:     "Consultoria em tecnologia",
		draft.KeyCNAEList:           "6201-5/01",
		draft.KeyCapital:            "R$ 100.000,00",
		draft.KeyForumCity:          "Florianópolis",
	}
	for key, want := range cases {
		if got.Get(key) != want {
			t.Errorf("%s = %q, want %q", key, got.Get(key), want)
		}
	}
}

func TestNormalizeAddressProofSplitsFreeText(t *testing.T) {
	raw := provider.RawResult{
		Provider: provider.TextProvider,
		Payload: map[string]any{
			"full_address": "Rua das Flores, 123, Apto 45, Centro, Florianópolis/SC, CEP 88000-000",
		},
	}

	got := Normalize(raw, constants.RoleAddressProof)

	cases := map[draft.FieldKey]string{
		draft.KeyStreet:       "Rua das Flores",
		draft.KeyNumber:       "123",
		draft.KeyComplement:   "Apto 45",
		draft.KeyNeighborhood: "Centro",
		draft.KeyCity:         "Florianópolis",
		draft.KeyState:        "SC",
		draft.KeyPostalCode:   "88000-000",
	}
	for key, want := range cases {
		if got.Get(key) != want {
			t.Errorf("%s = %q, want %q", key, got.Get(key), want)
		}
	}
}

func TestNormalizeStructuredAddressBeatsSplit(t *testing.T) {
	raw := provider.RawResult{
		Provider: provider.TextProvider,
		Payload: map[string]any{
			"street":       "Av. Brasil",
			"number":       "500",
			"city":         "Curitiba",
			"full_address": "Rua Errada, 1, Cidade Errada/PR",
		},
	}

	got := Normalize(raw, constants.RoleAddressProof)
	if got.Get(draft.KeyStreet) != "Av. Brasil" {
		t.Errorf("street = %q, structured key should win", got.Get(draft.KeyStreet))
	}
	if got.Get(draft.KeyNumber) != "500" {
		t.Errorf("number = %q", got.Get(draft.KeyNumber))
	}
	if got.Get(draft.KeyCity) != "Curitiba" {
		t.Errorf("city = %q", got.Get(draft.KeyCity))
	}
	if got.Get(draft.KeyState) != "PR" {
		t.Errorf("state = %q, split should fill unset fields", got.Get(draft.KeyState))
	}
}

func TestAsDate(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"10/05/1990", "1990-05-10"},
		{"10-05-1990", "1990-05-10"},
		{"10.05.1990", "1990-05-10"},
		{"1990-05-10", "1990-05-10"},
		{" 10/05/1990 ", "1990-05-10"},
		{"May 10, 1990", ""},
		{"10/5/1990", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := asDate(tc.in); got != tc.want {
			t.Errorf("asDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAsDocNumber(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"12.345.678-9", "123456789"},
		{"12.345.678/0001-90", "12345678000190"},
		{"MG-12.345.678", "MG12345678"},
		{" 123 456 ", "123456"},
	}
	for _, tc := range cases {
		if got := asDocNumber(tc.in); got != tc.want {
			t.Errorf("asDocNumber(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAsPostalCode(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"88000-000", "88000-000"},
		{"88000000", "88000-000"},
		{"CEP 88000-000", "88000-000"},
		{"cep: 88000000", "88000-000"},
	}
	for _, tc := range cases {
		if got := asPostalCode(tc.in); got != tc.want {
			t.Errorf("asPostalCode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeEmptyPayload(t *testing.T) {
	got := Normalize(provider.RawResult{Provider: provider.TextProvider}, constants.RoleIdentity)
	if !got.IsEmpty() {
		t.Fatalf("expected empty fields, got %v", got.PresentKeys())
	}
}
