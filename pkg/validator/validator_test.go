package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Count int    `json:"count" validate:"min=0,max=10"`
}

func TestValidateStructPasses(t *testing.T) {
	require.NoError(t, ValidateStruct(&samplePayload{Name: "ok", Email: "a@b.example", Count: 3}))
	require.NoError(t, ValidateStruct(&samplePayload{Name: "ok"}))
}

func TestValidateStructReportsJSONFieldNames(t *testing.T) {
	err := ValidateStruct(&samplePayload{Email: "not-an-email"})
	require.Error(t, err)

	failures, ok := err.(ValidationErrors)
	require.True(t, ok)
	require.Len(t, failures, 2)

	byField := map[string]ValidationError{}
	for _, f := range failures {
		byField[f.Field] = f
	}
	require.Equal(t, "required", byField["name"].Tag)
	require.Equal(t, "email", byField["email"].Tag)
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Tag: "required"},
		{Field: "count", Tag: "max", Param: "10"},
	}
	require.Equal(t, "name failed on required; count failed on max=10", errs.Error())
	require.Equal(t, "validation failed", ValidationErrors{}.Error())
}
