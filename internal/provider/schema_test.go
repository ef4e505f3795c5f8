package provider

import (
	"testing"

	"github.com/pcaldeira/contractdraft/constants"
)

func TestBuildRoleJSONSchemaKeys(t *testing.T) {
	tests := []struct {
		role    constants.DocumentRole
		wantKey string
	}{
		{constants.RoleIdentity, "cpf"},
		{constants.RoleAddressProof, "zip_code"},
		{constants.RoleCompany, "cnpj"},
	}
	for _, tc := range tests {
		schema := BuildRoleJSONSchema(tc.role)
		props, ok := schema["properties"].(map[string]any)
		if !ok {
			t.Fatalf("role %s: schema has no properties map", tc.role)
		}
		if _, ok := props[tc.wantKey]; !ok {
			t.Errorf("role %s: schema missing %q", tc.role, tc.wantKey)
		}
	}
}

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := BuildRoleJSONSchema(constants.RoleIdentity)

	if err := ValidateJSONAgainstSchema(schema, []byte(`{"name":"Maria Silva","cpf":"12345678901"}`)); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}
	// Extra keys are allowed; providers fall back to their own labels.
	if err := ValidateJSONAgainstSchema(schema, []byte(`{"nome_completo":"Maria Silva"}`)); err != nil {
		t.Errorf("payload with unknown keys rejected: %v", err)
	}
	// Known keys must be strings.
	if err := ValidateJSONAgainstSchema(schema, []byte(`{"cpf":12345678901}`)); err == nil {
		t.Error("numeric cpf accepted")
	}
	if err := ValidateJSONAgainstSchema(schema, []byte(`["not","an","object"]`)); err == nil {
		t.Error("array accepted")
	}
}
