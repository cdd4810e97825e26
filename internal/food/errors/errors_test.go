package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFields_FlattensAggregate(t *testing.T) {
	ve := &ValidationErrors{}
	ve.Add(NewRequiredError("title"))
	ve.Add(NewValidationError("title", "Ensure this field has no more than 255 characters."))
	ve.Add(NewValidationError("", "The fields user, ingredient must make a unique set."))

	fields := Fields(fmt.Errorf("create: %w", ve.Err()))

	assert.Equal(t, []string{"This field is required.", "Ensure this field has no more than 255 characters."}, fields["title"])
	assert.Equal(t, []string{"The fields user, ingredient must make a unique set."}, fields[NonFieldErrors])
}

func TestValidationErrors_ErrIsNilWhenEmpty(t *testing.T) {
	ve := &ValidationErrors{}
	assert.NoError(t, ve.Err())
	assert.Nil(t, Fields(ErrNotFound))
}

func TestIsValidationError_Wrapped(t *testing.T) {
	err := fmt.Errorf("update recipe: %w", NewDoesNotExistError("category_id", 42))
	assert.True(t, IsValidationError(err))
	assert.False(t, IsValidationErrors(err))
	assert.Equal(t, map[string][]string{"category_id": {`Invalid pk "42" - object does not exist.`}}, Fields(err))
}
