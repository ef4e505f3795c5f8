// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ContractDraft is the predicate function for contractdraft builders.
type ContractDraft func(*sql.Selector)

// DraftDocument is the predicate function for draftdocument builders.
type DraftDocument func(*sql.Selector)

// Partner is the predicate function for partner builders.
type Partner func(*sql.Selector)
