package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name   *string `json:"name" validate:"required"`
	Active *bool   `json:"is_active,omitempty" validate:"required"`
}

func TestValidate_ReportsMissingFieldsByJSONName(t *testing.T) {
	errs := Validate(sample{})

	assert.Equal(t, map[string]string{
		"name":      "required",
		"is_active": "required",
	}, errs)
}

func TestValidate_ZeroValuesCountAsPresent(t *testing.T) {
	name := ""
	active := false

	assert.Nil(t, Validate(sample{Name: &name, Active: &active}))
}

func TestValidate_NonStruct(t *testing.T) {
	errs := Validate(42)

	assert.Len(t, errs, 1)
	assert.Contains(t, errs, "_")
}
