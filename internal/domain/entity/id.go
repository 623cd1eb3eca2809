// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// EntityType tags a generated identifier with the category of the entity it
// belongs to, so an opaque ID can later be disambiguated.
type EntityType string

const (
	EntityTypeAccount EntityType = "acct"
	EntityTypeProduct EntityType = "prod"
)

// ID is a globally unique, typed identifier of the form "<tag>_<uuid>".
type ID string

// NewID generates a fresh identifier for the given entity category.
// It is a pure function of the entropy source and cannot fail.
func NewID(entityType EntityType) ID {
	return ID(string(entityType) + "_" + uuid.NewString())
}

// ParseID validates the wire form of an identifier and returns it typed.
func ParseID(raw string) (ID, error) {
	tag, rest, found := strings.Cut(raw, "_")
	if !found {
		return "", errors.Errorf("malformed id %q", raw)
	}
	switch EntityType(tag) {
	case EntityTypeAccount, EntityTypeProduct:
	default:
		return "", errors.Errorf("unknown entity type tag %q", tag)
	}
	if _, err := uuid.Parse(rest); err != nil {
		return "", errors.Wrapf(err, "invalid id %q", raw)
	}

	return ID(raw), nil
}

// Type returns the entity category encoded in the identifier.
func (id ID) Type() EntityType {
	tag, _, _ := strings.Cut(string(id), "_")

	return EntityType(tag)
}

// String returns the wire form of the identifier.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is unset.
func (id ID) IsZero() bool {
	return id == ""
}
