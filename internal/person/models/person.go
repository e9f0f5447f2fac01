package models

import (
	"slices"

	id "pessoas/pkg/domain"
)

// Person is an immutable registry record. It can only be assembled from
// validated values, so every Person satisfies the field constraints.
type Person struct {
	id        id.PersonID
	name      PersonName
	nick      Nick
	birthDate BirthDate
	stack     []TechName
}

// NewPerson assembles a Person. A nil stack means "absent" and stays
// distinct from an empty one. The stack is copied.
func NewPerson(personID id.PersonID, name PersonName, nick Nick, birthDate BirthDate, stack []TechName) *Person {
	return &Person{
		id:        personID,
		name:      name,
		nick:      nick,
		birthDate: birthDate,
		stack:     slices.Clone(stack),
	}
}

func (p *Person) ID() id.PersonID      { return p.id }
func (p *Person) Name() PersonName     { return p.name }
func (p *Person) Nick() Nick           { return p.nick }
func (p *Person) BirthDate() BirthDate { return p.birthDate }

// Stack returns a copy of the stack, nil when the person has none.
func (p *Person) Stack() []TechName { return slices.Clone(p.stack) }

// HasStack distinguishes an absent stack from an empty one.
func (p *Person) HasStack() bool { return p.stack != nil }

// Clone returns a deep copy that shares no memory with p.
func (p *Person) Clone() *Person {
	c := *p
	c.stack = slices.Clone(p.stack)
	return &c
}

// StackStrings returns the stack as plain strings, nil when absent.
func (p *Person) StackStrings() []string {
	if p.stack == nil {
		return nil
	}
	out := make([]string, len(p.stack))
	for i, t := range p.stack {
		out[i] = string(t)
	}
	return out
}
