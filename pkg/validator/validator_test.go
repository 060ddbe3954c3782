package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `validate:"notblank"`
	Email string `validate:"required,email"`
	Pct   int    `validate:"min=0,max=100"`
}

func TestValidateStruct(t *testing.T) {
	errs := ValidateStruct(sample{Name: "Latte", Email: "a@b.co", Pct: 10})
	assert.Empty(t, errs)

	errs = ValidateStruct(sample{Name: "   ", Email: "a@b.co", Pct: 10})
	require.Len(t, errs, 1)
	assert.Equal(t, "Name", errs[0].FailedField)
	assert.Equal(t, "notblank", errs[0].Tag)

	errs = ValidateStruct(sample{Name: "x", Email: "nope", Pct: 101})
	require.Len(t, errs, 2)
	assert.Equal(t, "email", errs[0].Tag)
	assert.Equal(t, "max", errs[1].Tag)
	assert.Equal(t, "100", errs[1].Value)
}
