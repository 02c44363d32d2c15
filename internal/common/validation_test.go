package common

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidatorRequired(t *testing.T) {
	v := NewValidator().
		Field("name", "", Required).
		Field("owner_id", "   ", Required)

	assert.True(t, v.HasErrors())
	assert.Len(t, v.Errors(), 2)
	assert.Contains(t, v.ErrorMessage(), "name")
}

func TestValidatorUUID(t *testing.T) {
	v := NewValidator().
		Field("owner_id", uuid.New().String(), UUID).
		Field("contact_id", "not-a-uuid", UUID)

	assert.Len(t, v.Errors(), 1)
	assert.Equal(t, "contact_id", v.Errors()[0].Field)
}

func TestValidatorEmail(t *testing.T) {
	assert.False(t, NewValidator().Field("email", "john@acme.com", Email).HasErrors())
	assert.False(t, NewValidator().Field("email", "", Email).HasErrors())
	assert.True(t, NewValidator().Field("email", "not-an-email", Email).HasErrors())
}

func TestValidatorMaxLength(t *testing.T) {
	assert.False(t, NewValidator().Field("name", "John", MaxLength(10)).HasErrors())
	assert.True(t, NewValidator().Field("name", "John Jacob Jingleheimer", MaxLength(10)).HasErrors())
}

func TestValidatorTag(t *testing.T) {
	assert.False(t, NewValidator().Field("tags", "client", Tag).HasErrors())
	assert.False(t, NewValidator().Field("tags", "Customer", Tag).HasErrors())
	assert.True(t, NewValidator().Field("tags", "archnemesis", Tag).HasErrors())
}

func TestValidateAndReturnError(t *testing.T) {
	assert.NoError(t, ValidateAndReturnError(NewValidator()))

	err := ValidateAndReturnError(NewValidator().Field("name", "", Required))
	assert.Error(t, err)
}
