package normalize

import (
	"regexp"
	"strings"

	"github.com/pcaldeira/contractdraft/internal/draft"
)

var (
	reISODate   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	reBRDate    = regexp.MustCompile(`^(\d{2})[/.\-](\d{2})[/.\-](\d{4})$`)
	rePostal    = regexp.MustCompile(`(?i)^(?:CEP[\s:]*)?(\d{5})-?(\d{3})$`)
	reHouseNum  = regexp.MustCompile(`(?i)^(?:n[ºo°.]?\s*)?(\d+[A-Za-z]?)$`)
	reCityState = regexp.MustCompile(`^(.{2,})\s*[/-]\s*([A-Za-z]{2})$`)
)

// asDate unifies the date formats the providers emit to YYYY-MM-DD.
// Brazilian documents carry DD/MM/YYYY (also with '.' or '-' separators);
// the providers sometimes pre-normalize to ISO already. Anything else is
// dropped rather than guessed at.
func asDate(s string) string {
	s = strings.TrimSpace(s)
	if m := reISODate.FindStringSubmatch(s); m != nil {
		return m[1] + "-" + m[2] + "-" + m[3]
	}
	if m := reBRDate.FindStringSubmatch(s); m != nil {
		return m[3] + "-" + m[2] + "-" + m[1]
	}
	return ""
}

// asDocNumber strips formatting punctuation from CPF, RG and CNPJ values
// so that "12.345.678-9" and "123456789" compare equal downstream.
func asDocNumber(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func asPostalCode(s string) string {
	if m := rePostal.FindStringSubmatch(strings.TrimSpace(s)); m != nil {
		return m[1] + "-" + m[2]
	}
	return asText(s)
}

// SplitAddress decomposes a comma-separated free-text address into the
// canonical address components, filling only fields that are still unset.
// Tokens it cannot place are preserved in the complement field so no
// extracted text is silently lost.
func SplitAddress(full string, out *draft.CanonicalFields) {
	tokens := strings.Split(full, ",")
	var leftovers []string

	setIfEmpty := func(key draft.FieldKey, v string) bool {
		if out.Get(key) != "" {
			return false
		}
		out.Set(key, v)
		return true
	}

	for i, tok := range tokens {
		tok = asText(tok)
		if tok == "" {
			continue
		}
		switch {
		case rePostal.MatchString(tok):
			if !setIfEmpty(draft.KeyPostalCode, asPostalCode(tok)) {
				leftovers = append(leftovers, tok)
			}
		case reCityState.MatchString(tok):
			m := reCityState.FindStringSubmatch(tok)
			placed := setIfEmpty(draft.KeyCity, asText(m[1]))
			if setIfEmpty(draft.KeyState, strings.ToUpper(m[2])) {
				placed = true
			}
			if !placed {
				leftovers = append(leftovers, tok)
			}
		case i == 0:
			if !setIfEmpty(draft.KeyStreet, tok) {
				leftovers = append(leftovers, tok)
			}
		case reHouseNum.MatchString(tok):
			num := reHouseNum.FindStringSubmatch(tok)[1]
			if !setIfEmpty(draft.KeyNumber, num) {
				leftovers = append(leftovers, tok)
			}
		default:
			leftovers = append(leftovers, tok)
		}
	}

	if len(leftovers) == 0 {
		return
	}
	// First leftover doubles as the neighborhood when both slots are
	// open, matching the common "street, number, bairro, city/UF" shape.
	if out.Get(draft.KeyNeighborhood) == "" && len(leftovers) > 1 {
		out.Set(draft.KeyNeighborhood, leftovers[len(leftovers)-1])
		leftovers = leftovers[:len(leftovers)-1]
	}
	if out.Get(draft.KeyComplement) == "" {
		out.Set(draft.KeyComplement, strings.Join(leftovers, ", "))
	}
}
