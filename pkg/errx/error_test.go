package errx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationMessageNamesFirstField(t *testing.T) {
	err := Validation([]FieldError{{Field: "email", Tag: "email"}, {Field: "message", Tag: "required"}})

	assert.Equal(t, http.StatusUnprocessableEntity, err.Status)
	assert.Equal(t, "Validation failed: field 'email' failed on tag 'email'", err.Error())
	assert.Len(t, err.Details, 2)
}

func TestWrapStore(t *testing.T) {
	assert.Nil(t, WrapStore(nil))

	cause := errors.New("connection refused")
	err := WrapStore(cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusServiceUnavailable, StatusOf(err))
}

func TestStatusOf(t *testing.T) {
	wrapped := fmt.Errorf("listing: %w", New(nil, http.StatusBadRequest, "bad"))

	assert.Equal(t, http.StatusBadRequest, StatusOf(wrapped))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("boom")))
}
