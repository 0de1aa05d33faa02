package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDetails(t *testing.T) {
	cause := errors.New("invalid `to` field")
	err := BadGateway("Internal email failed", cause)

	assert.Equal(t, http.StatusBadGateway, err.Code)
	assert.Equal(t, "invalid `to` field", err.Details)
	assert.Equal(t, "Internal email failed: invalid `to` field", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestMethodNotAllowed(t *testing.T) {
	err := MethodNotAllowed()
	assert.Equal(t, http.StatusMethodNotAllowed, err.Code)
	assert.Equal(t, "Method not allowed", err.Error())
	assert.Empty(t, err.Details)
}
