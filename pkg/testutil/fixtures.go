package testutil

import (
	"time"

	"github.com/google/uuid"

	"pessoas/internal/person/models"
	id "pessoas/pkg/domain"
)

// TestIDs provides fixed version 7 ids for deterministic test data.
var TestIDs = struct {
	PersonID1 id.PersonID
	PersonID2 id.PersonID
	Unknown   id.PersonID
}{
	PersonID1: id.PersonID(uuid.MustParse("0190a4b2-7c3d-7000-8000-000000000001")),
	PersonID2: id.PersonID(uuid.MustParse("0190a4b2-7c3d-7000-8000-000000000002")),
	Unknown:   id.PersonID(uuid.MustParse("0190a4b2-7c3d-7fff-bfff-ffffffffffff")),
}

// PersonBuilder provides a fluent interface for building test persons.
// Values bypass the smart constructors, so callers are responsible for
// keeping them within the field limits.
type PersonBuilder struct {
	id        id.PersonID
	name      models.PersonName
	nick      models.Nick
	birthDate models.BirthDate
	stack     []models.TechName
}

// NewPersonBuilder starts from João, born 1990-05-01, stack ["Go", "Rust"].
func NewPersonBuilder() *PersonBuilder {
	return &PersonBuilder{
		id:        TestIDs.PersonID1,
		name:      "João",
		nick:      "joao",
		birthDate: models.NewBirthDate(1990, time.May, 1),
		stack:     []models.TechName{"Go", "Rust"},
	}
}

func (b *PersonBuilder) WithID(personID id.PersonID) *PersonBuilder {
	b.id = personID
	return b
}

func (b *PersonBuilder) WithName(name string) *PersonBuilder {
	b.name = models.PersonName(name)
	return b
}

func (b *PersonBuilder) WithNick(nick string) *PersonBuilder {
	b.nick = models.Nick(nick)
	return b
}

func (b *PersonBuilder) WithBirthDate(year int, month time.Month, day int) *PersonBuilder {
	b.birthDate = models.NewBirthDate(year, month, day)
	return b
}

// WithStack replaces the stack. Pass no arguments for an empty, present stack.
func (b *PersonBuilder) WithStack(techs ...string) *PersonBuilder {
	b.stack = make([]models.TechName, 0, len(techs))
	for _, t := range techs {
		b.stack = append(b.stack, models.TechName(t))
	}
	return b
}

// WithoutStack marks the stack as absent.
func (b *PersonBuilder) WithoutStack() *PersonBuilder {
	b.stack = nil
	return b
}

func (b *PersonBuilder) Build() *models.Person {
	return models.NewPerson(b.id, b.name, b.nick, b.birthDate, b.stack)
}

// Ptr returns a pointer to v, handy for optional request fields.
func Ptr[T any](v T) *T {
	return &v
}
