package ingest

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/pcaldeira/contractdraft/constants"
)

// IntakeBinding is the draft section a dropped file belongs to, derived
// from its position under an intake root:
//
//	<root>/<draft-id>/company/<role>/file.pdf
//	<root>/<draft-id>/partner-0/<role>/file.pdf
type IntakeBinding struct {
	DraftID uuid.UUID
	// Partner is the partner index, or -1 for a company document.
	Partner int
	Role    constants.DocumentRole
}

// ParseIntakePath derives the binding for a file under root. Paths that
// do not follow the intake layout are rejected.
func ParseIntakePath(root, path string) (IntakeBinding, error) {
	var b IntakeBinding

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return b, fmt.Errorf("intake path outside root: %w", err)
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) != 4 {
		return b, fmt.Errorf("intake path %q: want <draft-id>/<section>/<role>/<file>", rel)
	}

	b.DraftID, err = uuid.Parse(parts[0])
	if err != nil {
		return b, fmt.Errorf("intake path %q: first segment must be a draft UUID", rel)
	}

	switch section := strings.ToLower(parts[1]); {
	case section == "company":
		b.Partner = -1
	case strings.HasPrefix(section, "partner-"):
		idx, err := strconv.Atoi(strings.TrimPrefix(section, "partner-"))
		if err != nil || idx < 0 {
			return b, fmt.Errorf("intake path %q: bad partner segment %q", rel, section)
		}
		b.Partner = idx
	default:
		return b, fmt.Errorf("intake path %q: section must be company or partner-N", rel)
	}

	role, ok := constants.ParseRole(parts[2])
	if !ok {
		return b, fmt.Errorf("intake path %q: unknown role %q", rel, parts[2])
	}
	b.Role = role
	if b.Partner == -1 && b.Role != constants.RoleCompany {
		return b, fmt.Errorf("intake path %q: company section requires company role", rel)
	}
	return b, nil
}
