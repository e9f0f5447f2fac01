// Package domain provides type-safe identifiers to prevent mixing up IDs at compile time.
package domain

import (
	"time"

	"github.com/google/uuid"

	dErrors "pessoas/pkg/domain-errors"
)

// PersonID identifies a registered person. Values are minted by the registry,
// never accepted from callers on create.
type PersonID uuid.UUID

// ParsePersonID is used at trust boundaries (URL params).
func ParsePersonID(s string) (PersonID, error) {
	id, err := parseUUID(s, "person ID")
	return PersonID(id), err
}

func (id PersonID) String() string { return uuid.UUID(id).String() }

func (id PersonID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// CreatedAt returns the millisecond timestamp embedded in a version 7 id.
func (id PersonID) CreatedAt() time.Time {
	sec, nsec := uuid.UUID(id).Time().UnixTime()
	return time.Unix(sec, nsec)
}

// Version reports the UUID version of the id.
func (id PersonID) Version() int { return int(uuid.UUID(id).Version()) }

// MarshalText lets PersonID be used directly as a JSON string or map key.
func (id PersonID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// Nil UUIDs are allowed here. Use IsNil() in the service layer so store
// lookups return a proper "not found" instead of a parse error.
func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeBadRequest, label+" cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeBadRequest, "invalid "+label+" format")
	}
	return id, nil
}
