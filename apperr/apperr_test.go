package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{Validation("bad input"), http.StatusBadRequest},
		{Auth("bad token"), http.StatusUnauthorized},
		{Forbidden("not allowed"), http.StatusForbidden},
		{NotFound("missing"), http.StatusNotFound},
		{Conflict("duplicate"), http.StatusConflict},
		{Internal(errors.New("db down")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, HTTPStatus(tc.err))
	}
}

func TestClientMessage(t *testing.T) {
	assert.Equal(t, "missing", ClientMessage(NotFound("missing")))
	assert.Equal(t, "Internal server error", ClientMessage(errors.New("secret detail")))
	assert.Equal(t, "Internal server error", ClientMessage(Internal(errors.New("secret detail"))))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(CodeConflict, "duplicate key", cause)

	assert.ErrorIs(t, err, cause)

	var e *Error
	assert.ErrorAs(t, error(err), &e)
	assert.Equal(t, CodeConflict, e.Code)
	assert.Contains(t, err.Error(), "root cause")
}
