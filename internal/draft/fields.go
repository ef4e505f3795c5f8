// Package draft holds the canonical field schema, the per-field provenance
// model, and the accumulating contract draft the pipeline merges into.
package draft

// FieldKey names one canonical field. The set is closed: nothing outside
// this registry can appear in a draft, which is what keeps raw provider
// keys from leaking past the normalizer.
type FieldKey string

// Person fields.
const (
	KeyFullName       FieldKey = "full_name"
	KeyDocumentNumber FieldKey = "document_number"
	KeyDocumentType   FieldKey = "document_type"
	KeyBirthDate      FieldKey = "birth_date"
	KeyNationality    FieldKey = "nationality"
	KeyMaritalStatus  FieldKey = "marital_status"
	KeyMarriageRegime FieldKey = "marriage_regime"
	KeyProfession     FieldKey = "profession"
)

// Address fields.
const (
	KeyStreet       FieldKey = "street"
	KeyNumber       FieldKey = "number"
	KeyComplement   FieldKey = "complement"
	KeyNeighborhood FieldKey = "neighborhood"
	KeyCity         FieldKey = "city"
	KeyState        FieldKey = "state"
	KeyPostalCode   FieldKey = "postal_code"
)

// Company fields.
const (
	KeyLegalName          FieldKey = "legal_name"
	KeyRegistrationNumber FieldKey = "registration_number"
	KeyBusinessObject     FieldKey = "business_object"
	KeyCNAEList           FieldKey = "cnae_list"
	KeyIncorporationDate  FieldKey = "incorporation_date"
	KeyCapital            FieldKey = "capital"
	KeyForumCity          FieldKey = "forum_city"
)

// CanonicalFields is the normalized target schema. Empty string means the
// field is not yet known.
type CanonicalFields struct {
	FullName       string `json:"full_name,omitempty"`
	DocumentNumber string `json:"document_number,omitempty"`
	DocumentType   string `json:"document_type,omitempty"`
	BirthDate      string `json:"birth_date,omitempty"` // YYYY-MM-DD
	Nationality    string `json:"nationality,omitempty"`
	MaritalStatus  string `json:"marital_status,omitempty"`
	MarriageRegime string `json:"marriage_regime,omitempty"`
	Profession     string `json:"profession,omitempty"`

	Street       string `json:"street,omitempty"`
	Number       string `json:"number,omitempty"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`

	LegalName          string `json:"legal_name,omitempty"`
	RegistrationNumber string `json:"registration_number,omitempty"`
	BusinessObject     string `json:"business_object,omitempty"`
	CNAEList           string `json:"cnae_list,omitempty"`
	IncorporationDate  string `json:"incorporation_date,omitempty"` // YYYY-MM-DD
	Capital            string `json:"capital,omitempty"`
	ForumCity          string `json:"forum_city,omitempty"`
}

type fieldAccessor struct {
	key FieldKey
	get func(*CanonicalFields) *string
}

var fieldRegistry = []fieldAccessor{
	{KeyFullName, func(c *CanonicalFields) *string { return &c.FullName }},
	{KeyDocumentNumber, func(c *CanonicalFields) *string { return &c.DocumentNumber }},
	{KeyDocumentType, func(c *CanonicalFields) *string { return &c.DocumentType }},
	{KeyBirthDate, func(c *CanonicalFields) *string { return &c.BirthDate }},
	{KeyNationality, func(c *CanonicalFields) *string { return &c.Nationality }},
	{KeyMaritalStatus, func(c *CanonicalFields) *string { return &c.MaritalStatus }},
	{KeyMarriageRegime, func(c *CanonicalFields) *string { return &c.MarriageRegime }},
	{KeyProfession, func(c *CanonicalFields) *string { return &c.Profession }},
	{KeyStreet, func(c *CanonicalFields) *string { return &c.Street }},
	{KeyNumber, func(c *CanonicalFields) *string { return &c.Number }},
	{KeyComplement, func(c *CanonicalFields) *string { return &c.Complement }},
	{KeyNeighborhood, func(c *CanonicalFields) *string { return &c.Neighborhood }},
	{KeyCity, func(c *CanonicalFields) *string { return &c.City }},
	{KeyState, func(c *CanonicalFields) *string { return &c.State }},
	{KeyPostalCode, func(c *CanonicalFields) *string { return &c.PostalCode }},
	{KeyLegalName, func(c *CanonicalFields) *string { return &c.LegalName }},
	{KeyRegistrationNumber, func(c *CanonicalFields) *string { return &c.RegistrationNumber }},
	{KeyBusinessObject, func(c *CanonicalFields) *string { return &c.BusinessObject }},
	{KeyCNAEList, func(c *CanonicalFields) *string { return &c.CNAEList }},
	{KeyIncorporationDate, func(c *CanonicalFields) *string { return &c.IncorporationDate }},
	{KeyCapital, func(c *CanonicalFields) *string { return &c.Capital }},
	{KeyForumCity, func(c *CanonicalFields) *string { return &c.ForumCity }},
}

// AllKeys returns every canonical field key, in registry order.
func AllKeys() []FieldKey {
	keys := make([]FieldKey, len(fieldRegistry))
	for i, a := range fieldRegistry {
		keys[i] = a.key
	}
	return keys
}

// IsCanonical reports whether key belongs to the canonical schema.
func IsCanonical(key FieldKey) bool {
	for _, a := range fieldRegistry {
		if a.key == key {
			return true
		}
	}
	return false
}

// Get returns the value for a canonical key ("" if absent or unknown key).
func (c *CanonicalFields) Get(key FieldKey) string {
	for _, a := range fieldRegistry {
		if a.key == key {
			return *a.get(c)
		}
	}
	return ""
}

// Set assigns a canonical key; unknown keys are ignored.
func (c *CanonicalFields) Set(key FieldKey, value string) {
	for _, a := range fieldRegistry {
		if a.key == key {
			*a.get(c) = value
			return
		}
	}
}

// PresentKeys lists the keys that currently carry a value.
func (c *CanonicalFields) PresentKeys() []FieldKey {
	var keys []FieldKey
	for _, a := range fieldRegistry {
		if *a.get(c) != "" {
			keys = append(keys, a.key)
		}
	}
	return keys
}

// IsEmpty reports whether no field carries a value.
func (c *CanonicalFields) IsEmpty() bool {
	return len(c.PresentKeys()) == 0
}
