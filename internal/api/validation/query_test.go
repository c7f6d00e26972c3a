package validation

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryNumber(t *testing.T) {
	request := httptest.NewRequest("GET", "/?page=3", nil)

	value, err := QueryNumber(request, "page", false, 1, 1, 100)
	require.Nil(t, err)
	assert.Equal(t, int64(3), value)

	value, err = QueryNumber(request, "page_size", false, 8, 1, 100)
	require.Nil(t, err)
	assert.Equal(t, int64(8), value)

	_, err = QueryNumber(request, "page_size", true, 8, 1, 100)
	require.NotNil(t, err)
	assert.Equal(t, "validation.query.parameter.missing", err.Type)

	request = httptest.NewRequest("GET", "/?page=abc", nil)
	_, err = QueryNumber(request, "page", false, 1, 1, 100)
	require.NotNil(t, err)
	assert.Equal(t, "validation.query.parameter.invalidType", err.Type)

	request = httptest.NewRequest("GET", "/?page=0", nil)
	_, err = QueryNumber(request, "page", false, 1, 1, 100)
	require.NotNil(t, err)
	assert.Equal(t, "validation.query.parameter.number.outOfRange", err.Type)
}

func TestQueryOneOf(t *testing.T) {
	request := httptest.NewRequest("GET", "/?format=xlsx", nil)

	value, err := QueryOneOf(request, "format", "csv", "csv", "xlsx")
	require.Nil(t, err)
	assert.Equal(t, "xlsx", value)

	value, err = QueryOneOf(request, "missing", "csv", "csv", "xlsx")
	require.Nil(t, err)
	assert.Equal(t, "csv", value)

	request = httptest.NewRequest("GET", "/?format=pdf", nil)
	_, err = QueryOneOf(request, "format", "csv", "csv", "xlsx")
	require.NotNil(t, err)
	assert.Equal(t, "validation.query.parameter.notOneOf", err.Type)
}
