package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/git-pranav2004/getdeal/common/apirequests"
)

type sample struct {
	Name  string `validate:"required"`
	Level string `validate:"oneof=debug info"`
}

func TestStructAcceptsValidPayload(t *testing.T) {
	assert.NoError(t, Struct(&sample{Name: "catalog", Level: "info"}))
}

func TestStructNamesEachFailedField(t *testing.T) {
	err := Struct(&sample{Level: "trace"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "field 'Name' failed validation on 'required' tag")
	assert.Contains(t, err.Error(), "field 'Level' failed validation on 'oneof' tag")

	var vErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &vErrs)
}

func TestRequestPayloadsCarryNoLimits(t *testing.T) {
	long := string(make([]byte, 10000))
	assert.NoError(t, Struct(&apirequests.AddProductRequest{Title: long, Description: long}))
	assert.NoError(t, Struct(&apirequests.CatalogQuery{Query: long, Category: long}))
}
