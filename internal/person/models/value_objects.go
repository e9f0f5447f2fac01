package models

import (
	"errors"
	"time"

	dErrors "pessoas/pkg/domain-errors"
	"pessoas/pkg/platform/validation"
)

// BirthDateLayout is the only accepted wire format for birth dates.
const BirthDateLayout = "2006-01-02"

// Variants carried inside validation errors. Match with errors.Is.
var (
	ErrNameTooLong        = errors.New("name too long")
	ErrNickTooLong        = errors.New("nick too long")
	ErrTechTooLong        = errors.New("tech name too long")
	ErrMalformedBirthDate = errors.New("malformed birth date")
	ErrEmptyField         = errors.New("empty field")
)

// PersonName is a full name of 1 to 100 bytes.
type PersonName string

// Nick is a nickname of 1 to 32 bytes. Nicks are not unique across persons.
type Nick string

// TechName is a single stack entry of 1 to 32 bytes.
type TechName string

// BirthDate is a calendar date with no time-of-day or zone.
type BirthDate struct {
	t time.Time
}

func NewPersonName(raw string) (PersonName, error) {
	if err := checkLength("nome", raw, validation.MaxNameLength, ErrNameTooLong); err != nil {
		return "", err
	}
	return PersonName(raw), nil
}

func NewNick(raw string) (Nick, error) {
	if err := checkLength("apelido", raw, validation.MaxNickLength, ErrNickTooLong); err != nil {
		return "", err
	}
	return Nick(raw), nil
}

func NewTechName(raw string) (TechName, error) {
	if err := checkLength("stack", raw, validation.MaxTechLength, ErrTechTooLong); err != nil {
		return "", err
	}
	return TechName(raw), nil
}

// ParseBirthDate accepts exactly YYYY-MM-DD. Impossible dates such as
// 2023-02-30 are rejected.
func ParseBirthDate(raw string) (BirthDate, error) {
	if raw == "" {
		return BirthDate{}, validationError("nascimento must not be empty", ErrEmptyField)
	}
	t, err := time.Parse(BirthDateLayout, raw)
	if err != nil {
		return BirthDate{}, validationError("nascimento must be a date in YYYY-MM-DD format", ErrMalformedBirthDate)
	}
	return BirthDate{t: t}, nil
}

// NewBirthDate builds a BirthDate from calendar components, normalized like time.Date.
func NewBirthDate(year int, month time.Month, day int) BirthDate {
	return BirthDate{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d BirthDate) Year() int         { return d.t.Year() }
func (d BirthDate) Month() time.Month { return d.t.Month() }
func (d BirthDate) Day() int          { return d.t.Day() }
func (d BirthDate) IsZero() bool      { return d.t.IsZero() }

// Time returns midnight UTC of the date.
func (d BirthDate) Time() time.Time { return d.t }

func (d BirthDate) String() string { return d.t.Format(BirthDateLayout) }

func (d BirthDate) Equal(other BirthDate) bool { return d.t.Equal(other.t) }

func (n PersonName) String() string { return string(n) }
func (n Nick) String() string       { return string(n) }
func (n TechName) String() string   { return string(n) }

func checkLength(field, raw string, max int, tooLong error) error {
	if err := validation.CheckNotEmpty(field, raw); err != nil {
		return validationError(err.Error(), ErrEmptyField)
	}
	if err := validation.CheckStringLength(field, raw, max); err != nil {
		return validationError(err.Error(), tooLong)
	}
	return nil
}

func validationError(msg string, variant error) error {
	return &dErrors.Error{Code: dErrors.CodeValidation, Message: msg, Err: variant}
}
