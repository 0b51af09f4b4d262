package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTypeChecks(t *testing.T) {
	cause := stderrors.New("unexpected token")

	parseErr := NewParseError("could not parse upload", cause)
	assert.True(t, IsParse(parseErr))
	assert.False(t, IsMalformedInput(parseErr))
	assert.Equal(t, http.StatusBadRequest, parseErr.HTTPStatus)

	malformedErr := NewMalformedInputError("missing records array")
	assert.True(t, IsMalformedInput(malformedErr))
	assert.False(t, IsParse(malformedErr))

	notFoundErr := NewNotFoundError("meal record")
	assert.True(t, IsNotFound(notFoundErr))
	assert.Equal(t, http.StatusNotFound, notFoundErr.HTTPStatus)

	transportErr := NewTransportError("list meals", cause)
	assert.True(t, IsTransport(transportErr))
	assert.Equal(t, http.StatusBadGateway, transportErr.HTTPStatus)
}

func TestErrorMessageIncludesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := NewStorageError("write cache", cause)

	assert.Contains(t, err.Error(), "write cache")
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))

	// Wrapping an AppError prepends context and keeps the type
	appErr := NewValidationError("calories must be positive")
	wrapped := Wrap(appErr, "create meal")
	require.True(t, IsValidation(wrapped))
	assert.Contains(t, wrapped.Error(), "create meal")
	assert.Contains(t, wrapped.Error(), "calories must be positive")

	// Wrapping a plain error produces an internal AppError
	plain := fmt.Errorf("boom")
	wrapped = Wrap(plain, "load snapshot")
	require.True(t, IsType(wrapped, ErrorTypeInternal))
	assert.True(t, stderrors.Is(wrapped, plain))
}

func TestGetAppError(t *testing.T) {
	appErr := NewInternalError("broken")
	chained := fmt.Errorf("outer: %w", appErr)

	assert.True(t, IsAppError(chained))
	assert.Equal(t, appErr, GetAppError(chained))
	assert.Nil(t, GetAppError(stderrors.New("plain")))
}

func TestWithCodeAndDetails(t *testing.T) {
	err := NewValidationError("invalid meal").
		WithCode("VALIDATION_ERROR").
		WithDetails(map[string]interface{}{"calories": "must be greater than 0"})

	assert.Equal(t, "VALIDATION_ERROR", err.Code)
	assert.Equal(t, "must be greater than 0", err.Details["calories"])
	assert.NotEmpty(t, err.StackTrace)
}
