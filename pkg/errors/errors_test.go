package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_WrapsSentinel(t *testing.T) {
	err := NotFound("product", "p-1")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Contains(t, err.Error(), "p-1")
}

func TestUnreachable_JoinsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Unreachable(cause)

	assert.ErrorIs(t, err, ErrUnreachable)
	assert.ErrorIs(t, err, cause)
	assert.Zero(t, err.Status)
	assert.Equal(t, "unable to reach server", err.Message)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"app error", InvalidInput("bad"), http.StatusBadRequest},
		{"wrapped app error", fmt.Errorf("ctx: %w", Forbidden("no")), http.StatusForbidden},
		{"bare sentinel", ErrConflict, http.StatusConflict},
		{"payment sentinel", ErrPaymentFailed, http.StatusUnprocessableEntity},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "quantity exceeds stock", Message(InvalidInput("quantity exceeds stock")))
	assert.Equal(t, "quantity exceeds stock", Message(fmt.Errorf("update cart: %w", InvalidInput("quantity exceeds stock"))))
	assert.Equal(t, "plain failure", Message(errors.New("plain failure")))
}

func TestWrap_PreservesChain(t *testing.T) {
	err := Wrap(ErrUnauthorized, "refresh profile")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "refresh profile")
}
