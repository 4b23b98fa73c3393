package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors_StatusCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("bad"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("missing"), ErrorTypeNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("dup"), ErrorTypeConflict, http.StatusConflict},
		{"invalid selection", NewInvalidSelectionError("pick one"), ErrorTypeInvalidSelection, http.StatusBadRequest},
		{"insufficient stock", NewInsufficientStockError("short"), ErrorTypeInsufficientStock, http.StatusConflict},
		{"invalid quantity", NewInvalidQuantityError("below used"), ErrorTypeInvalidQuantity, http.StatusUnprocessableEntity},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantType, tc.err.Type)
			assert.Equal(t, tc.wantCode, tc.err.Code)
		})
	}
}

func TestAppError_ErrorString(t *testing.T) {
	assert.Equal(t, "not_found: carton not found", NewNotFoundError("carton not found").Error())
	assert.Equal(t, "validation_error: bad input (name is required)",
		NewValidationError("bad input", "name is required").Error())
}

func TestGetAppError_Wrapped(t *testing.T) {
	base := NewInsufficientStockError("not enough stock").WithMeta([]string{"ctn_a"})
	wrapped := fmt.Errorf("allocate: %w", base)

	appErr := GetAppError(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeInsufficientStock, appErr.Type)
	assert.Equal(t, []string{"ctn_a"}, appErr.Meta)
	assert.True(t, IsType(wrapped, ErrorTypeInsufficientStock))
	assert.False(t, IsNotFoundError(wrapped))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(fmt.Errorf("Error 1062: Duplicate entry 'x' for key 'uk'")))
	assert.True(t, IsDuplicateError(fmt.Errorf("UNIQUE constraint failed: cartons.sid")))
	assert.False(t, IsDuplicateError(fmt.Errorf("connection refused")))
	assert.False(t, IsDuplicateError(nil))
}
