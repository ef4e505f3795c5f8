package constants

import "strings"

// DocumentRole tags what an uploaded document is expected to contain.
type DocumentRole string

// Stable values (stored as-is in draft records).
const (
	RoleIdentity     DocumentRole = "IDENTITY"      // ID card, CNH, RG, CIN
	RoleAddressProof DocumentRole = "ADDRESS_PROOF" // utility bill, bank statement
	RoleCompany      DocumentRole = "COMPANY"       // registration record, CNPJ card
)

var allRoles = []DocumentRole{RoleIdentity, RoleAddressProof, RoleCompany}

// ParseRole resolves a role label case-insensitively.
func ParseRole(s string) (DocumentRole, bool) {
	n := strings.ToUpper(strings.TrimSpace(s))
	for _, r := range allRoles {
		if string(r) == n {
			return r, true
		}
	}
	return "", false
}

// RolesAsStrings returns the role labels for validation messages.
func RolesAsStrings() []string {
	out := make([]string, len(allRoles))
	for i, r := range allRoles {
		out[i] = string(r)
	}
	return out
}
