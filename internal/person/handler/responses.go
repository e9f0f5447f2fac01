package handler

import "pessoas/internal/person/models"

// PersonResponse is the wire form of a stored person. Stack is null when
// the person was created without one and [] when created with an empty one.
type PersonResponse struct {
	ID         string   `json:"id"`
	Nome       string   `json:"nome"`
	Apelido    string   `json:"apelido"`
	Nascimento string   `json:"nascimento"`
	Stack      []string `json:"stack"`
}

func toPersonResponse(p *models.Person) *PersonResponse {
	return &PersonResponse{
		ID:         p.ID().String(),
		Nome:       p.Name().String(),
		Apelido:    p.Nick().String(),
		Nascimento: p.BirthDate().String(),
		Stack:      p.StackStrings(),
	}
}

// toPersonResponses never returns nil so an empty result encodes as [].
func toPersonResponses(persons []*models.Person) []*PersonResponse {
	out := make([]*PersonResponse, 0, len(persons))
	for _, p := range persons {
		out = append(out, toPersonResponse(p))
	}
	return out
}
