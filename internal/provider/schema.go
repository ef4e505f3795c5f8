package provider

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/pcaldeira/contractdraft/constants"
)

// BuildRoleJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// payload a provider is asked to produce for a document role. Extra keys
// are allowed — providers fall back to their own labels for fields the
// prompt did not anticipate — and the normalizer drops whatever it does not
// recognize. The schema pins down the shape: an object with scalar string
// values for the keys we know about.
func BuildRoleJSONSchema(role constants.DocumentRole) map[string]any {
	var keys []string
	switch role {
	case constants.RoleAddressProof:
		keys = []string{
			"holder_name", "street", "number", "complement", "neighborhood",
			"city", "state", "zip_code", "full_address",
		}
	case constants.RoleCompany:
		keys = []string{
			"company_name", "cnpj", "company_address", "company_object",
			"company_cnae_list", "start_date", "capital_currency",
			"total_quotas", "quota_value", "forum_city",
		}
	default:
		keys = []string{
			"name", "birth_date", "cpf", "rg", "rg_issuer", "nationality",
			"civil_state", "regime", "profession", "address",
		}
	}

	props := make(map[string]any, len(keys))
	for _, k := range keys {
		props[k] = map[string]any{"type": "string"}
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
