package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "pessoas/pkg/domain-errors"
)

type sample struct {
	Nome  *string  `json:"nome" validate:"required"`
	Stack []string `json:"stack" validate:"omitempty,max=2"`
}

func TestValidate(t *testing.T) {
	nome := "João"

	t.Run("nil pointer is required", func(t *testing.T) {
		err := Validate(&sample{})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		assert.Equal(t, "nome is required", err.Error())
	})

	t.Run("present value passes", func(t *testing.T) {
		assert.NoError(t, Validate(&sample{Nome: &nome}))
	})

	t.Run("empty string behind pointer is present", func(t *testing.T) {
		empty := ""
		assert.NoError(t, Validate(&sample{Nome: &empty}))
	})

	t.Run("max reports wire name", func(t *testing.T) {
		err := Validate(&sample{Nome: &nome, Stack: []string{"a", "b", "c"}})
		require.Error(t, err)
		assert.Equal(t, "stack must be at most 2", err.Error())
	})
}
