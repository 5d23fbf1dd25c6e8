package apierr

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImmutable(t *testing.T) {
	e := New(400, "INVALID_REQUEST", "invalid request: some or all request parameters are invalid")
	changedE := e.Msg("%s", "changed")
	if e.Message == "changed" {
		t.Errorf("Expected immutable error with message not equal to 'changed', got '%s'", e.Message)
	}
	if changedE.Message != "changed" {
		t.Errorf("Expected immutable error with message equal to 'changed', got '%s'", changedE.Message)
	}
}

func TestNewInvalidViolations(t *testing.T) {
	violations := []string{"restaurant is required"}
	e := NewInvalidViolations(violations)

	assert.Equal(t, http.StatusBadRequest, e.StatusCode)
	assert.Equal(t, CodeInvalidRequest, e.ErrorCode)
	if assert.NotNil(t, e.Extras) {
		assert.Equal(t, violations, (*e.Extras)["violations"])
	}
	assert.Nil(t, ErrInvalidReq.Extras, "shared sentinel must not be mutated")
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "NOT_FOUND: no such restaurant", ErrNotFound.Msg("no such restaurant").Error())
}
