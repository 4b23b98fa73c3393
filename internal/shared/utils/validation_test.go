package utils

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartonworks/stockline/internal/shared/errors"
)

type cartonRow struct {
	Name      string  `json:"name" validate:"required,max=200"`
	Length    float64 `json:"length" validate:"gt=0"`
	Total     int     `json:"total_quantity" validate:"gte=0"`
	Available int     `json:"available_quantity" validate:"gte=0,ltefield=Total"`
}

func TestValidateStruct(t *testing.T) {
	require.NoError(t, ValidateStruct(cartonRow{Name: "Kraft 5-ply", Length: 150, Total: 10, Available: 4}))

	err := ValidateStruct(cartonRow{Length: 0, Total: 3, Available: 5})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Details, "name is required")
	assert.Contains(t, appErr.Details, "length must be greater than 0")
	assert.Contains(t, appErr.Details, "available_quantity must not exceed Total")
}

func TestBindError(t *testing.T) {
	assert.Nil(t, BindError(nil))

	err := BindError(validate.Struct(cartonRow{Length: 1}))
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Details, "name is required")

	err = BindError(stderrors.New("unexpected EOF"))
	appErr = errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Invalid request body", appErr.Message)
	assert.Equal(t, 400, appErr.Code)
}
