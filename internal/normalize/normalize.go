// Package normalize maps raw provider payloads into the canonical field
// schema. The schema is closed: unknown provider keys are dropped, and a
// field that cannot be normalized is omitted rather than propagated.
package normalize

import (
	"strings"

	"github.com/pcaldeira/contractdraft/constants"
	"github.com/pcaldeira/contractdraft/internal/draft"
	"github.com/pcaldeira/contractdraft/internal/provider"
)

// mapping ties one canonical key to the raw keys that may carry it, in
// priority order (e.g. a CPF beats an RG for the document number).
type mapping struct {
	target    draft.FieldKey
	raw       []string
	transform func(string) string
}

var personMappings = []mapping{
	{draft.KeyFullName, []string{"name", "full_name", "nome_completo"}, asText},
	{draft.KeyDocumentNumber, []string{"cpf", "document_number", "rg"}, asDocNumber},
	{draft.KeyBirthDate, []string{"birth_date", "data_nascimento"}, asDate},
	{draft.KeyNationality, []string{"nationality", "nacionalidade"}, asText},
	{draft.KeyMaritalStatus, []string{"civil_state", "marital_status", "estado_civil"}, asText},
	{draft.KeyMarriageRegime, []string{"regime", "regime_de_bens"}, asText},
	{draft.KeyProfession, []string{"profession", "profissao"}, asText},
}

var addressMappings = []mapping{
	{draft.KeyStreet, []string{"street", "rua", "logradouro"}, asText},
	{draft.KeyNumber, []string{"number", "numero"}, asText},
	{draft.KeyComplement, []string{"complement", "complemento"}, asText},
	{draft.KeyNeighborhood, []string{"neighborhood", "bairro"}, asText},
	{draft.KeyCity, []string{"city", "cidade"}, asText},
	{draft.KeyState, []string{"state", "uf", "estado"}, asText},
	{draft.KeyPostalCode, []string{"zip_code", "cep", "postal_code"}, asPostalCode},
}

var companyMappings = []mapping{
	{draft.KeyLegalName, []string{"company_name", "razao_social", "legal_name"}, asText},
	{draft.KeyRegistrationNumber, []string{"cnpj", "registration_number"}, asDocNumber},
	{draft.KeyBusinessObject, []string{"company_object", "objeto_social"}, asText},
	{draft.KeyCNAEList, []string{"company_cnae_list", "cnae_list", "cnaes"}, asText},
	{draft.KeyIncorporationDate, []string{"start_date", "data_inicio"}, asDate},
	{draft.KeyCapital, []string{"capital_currency", "capital_social", "capital"}, asText},
	{draft.KeyForumCity, []string{"forum_city", "foro"}, asText},
}

// providerSynonyms layers provider-specific raw keys over the shared
// tables. Both chat providers drift into short Portuguese labels when the
// document itself is Portuguese, the vision provider more than the text
// one.
var providerSynonyms = map[provider.ID]map[draft.FieldKey][]string{
	provider.VisionProvider: {
		draft.KeyFullName:       {"nome"},
		draft.KeyDocumentNumber: {"documento"},
		draft.KeyBirthDate:      {"nascimento"},
	},
	provider.TextProvider: {
		draft.KeyFullName:  {"nome"},
		draft.KeyBirthDate: {"nascimento"},
	},
}

// Normalize maps one raw extraction payload into canonical fields for the
// given document role. It never fails: whatever cannot be mapped or
// normalized is left absent.
func Normalize(raw provider.RawResult, role constants.DocumentRole) draft.CanonicalFields {
	var out draft.CanonicalFields
	if len(raw.Payload) == 0 {
		return out
	}

	switch role {
	case constants.RoleAddressProof:
		applyMappings(&out, raw, addressMappings)
		splitUnstructured(&out, raw, []string{"full_address", "address", "endereco"})

	case constants.RoleCompany:
		applyMappings(&out, raw, companyMappings)
		splitUnstructured(&out, raw, []string{"company_address", "endereco_sede", "address"})

	default: // identity
		applyMappings(&out, raw, personMappings)
		applyMappings(&out, raw, addressMappings)
		splitUnstructured(&out, raw, []string{"address", "endereco"})
		if out.DocumentType == "" {
			out.DocumentType = strings.ToLower(string(constants.RoleIdentity))
		}
	}
	return out
}

func applyMappings(out *draft.CanonicalFields, raw provider.RawResult, mappings []mapping) {
	extra := providerSynonyms[raw.Provider]
	for _, m := range mappings {
		keys := m.raw
		if syn, ok := extra[m.target]; ok {
			keys = append(append([]string{}, m.raw...), syn...)
		}
		for _, k := range keys {
			v := payloadString(raw.Payload, k)
			if v == "" {
				continue
			}
			if norm := m.transform(v); norm != "" {
				out.Set(m.target, norm)
				break
			}
		}
	}
}

// splitUnstructured decomposes a free-text address into components for
// every address field still unset.
func splitUnstructured(out *draft.CanonicalFields, raw provider.RawResult, keys []string) {
	for _, k := range keys {
		if v := payloadString(raw.Payload, k); v != "" {
			SplitAddress(v, out)
			return
		}
	}
}

func payloadString(payload map[string]any, key string) string {
	v, ok := payload[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func asText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
