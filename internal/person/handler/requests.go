package handler

import (
	"pessoas/internal/person/service"
	"pessoas/pkg/platform/validation"
)

// CreatePersonRequest is the POST /pessoas body. Scalars are pointers so a
// missing or null field can be told apart from a present one; an "id" field
// is ignored.
type CreatePersonRequest struct {
	Nome       *string  `json:"nome" validate:"required"`
	Apelido    *string  `json:"apelido" validate:"required"`
	Nascimento *string  `json:"nascimento" validate:"required"`
	Stack      []string `json:"stack"`
}

// Validate checks presence only. Field rules live in the person models.
func (r *CreatePersonRequest) Validate() error {
	return validation.Validate(r)
}

func (r *CreatePersonRequest) ToCommand() service.CreateCommand {
	return service.CreateCommand{
		Name:      *r.Nome,
		Nick:      *r.Apelido,
		BirthDate: *r.Nascimento,
		Stack:     r.Stack,
	}
}
