package service

// CreateCommand carries raw, unvalidated input for Create. A nil Stack means
// the caller sent no stack, which is kept distinct from an empty one.
type CreateCommand struct {
	Name      string
	Nick      string
	BirthDate string
	Stack     []string
}
