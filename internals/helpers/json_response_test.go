package helper

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20, 20)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
	assert.Equal(t, 20, p.Count)

	empty := BuildPaginationFromPage(0, 1, 20, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}

func TestFieldErrors(t *testing.T) {
	type form struct {
		Email string `validate:"required,email"`
		Age   int    `validate:"min=10"`
	}

	err := validator.New().Struct(form{Email: "nope", Age: 3})
	require.Error(t, err)

	out := FieldErrors(err)
	assert.Contains(t, out["email"], "email")
	assert.Contains(t, out["age"], "min")

	assert.Empty(t, FieldErrors(nil))
	assert.Equal(t, []string{assert.AnError.Error()}, FieldErrors(assert.AnError)["_"])
}
