package ingest

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/pcaldeira/contractdraft/constants"
)

func TestParseIntakePath(t *testing.T) {
	root := filepath.Join("/srv", "intake")
	id := uuid.New()

	tests := []struct {
		name    string
		path    string
		want    IntakeBinding
		wantErr bool
	}{
		{
			name: "partner identity",
			path: filepath.Join(root, id.String(), "partner-0", "identity", "rg.pdf"),
			want: IntakeBinding{DraftID: id, Partner: 0, Role: constants.RoleIdentity},
		},
		{
			name: "second partner address proof",
			path: filepath.Join(root, id.String(), "partner-1", "address_proof", "conta-luz.jpg"),
			want: IntakeBinding{DraftID: id, Partner: 1, Role: constants.RoleAddressProof},
		},
		{
			name: "company section",
			path: filepath.Join(root, id.String(), "company", "company", "contrato.pdf"),
			want: IntakeBinding{DraftID: id, Partner: -1, Role: constants.RoleCompany},
		},
		{
			name: "section is case-insensitive",
			path: filepath.Join(root, id.String(), "Partner-2", "IDENTITY", "cnh.png"),
			want: IntakeBinding{DraftID: id, Partner: 2, Role: constants.RoleIdentity},
		},
		{
			name:    "company section with person role",
			path:    filepath.Join(root, id.String(), "company", "identity", "rg.pdf"),
			wantErr: true,
		},
		{
			name:    "not a uuid",
			path:    filepath.Join(root, "my-draft", "partner-0", "identity", "rg.pdf"),
			wantErr: true,
		},
		{
			name:    "unknown section",
			path:    filepath.Join(root, id.String(), "witnesses", "identity", "rg.pdf"),
			wantErr: true,
		},
		{
			name:    "negative partner",
			path:    filepath.Join(root, id.String(), "partner--1", "identity", "rg.pdf"),
			wantErr: true,
		},
		{
			name:    "unknown role",
			path:    filepath.Join(root, id.String(), "partner-0", "passport", "doc.pdf"),
			wantErr: true,
		},
		{
			name:    "too shallow",
			path:    filepath.Join(root, id.String(), "rg.pdf"),
			wantErr: true,
		},
		{
			name:    "too deep",
			path:    filepath.Join(root, id.String(), "partner-0", "identity", "extra", "rg.pdf"),
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseIntakePath(root, tc.path)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseIntakePath(%q) accepted, want error", tc.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseIntakePath(%q): %v", tc.path, err)
			}
			if got != tc.want {
				t.Errorf("binding = %+v, want %+v", got, tc.want)
			}
		})
	}
}
