package schema

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequired(t *testing.T) {
	fields := []string{"name", "email"}

	assert.Empty(t, ValidateRequired(json.RawMessage(`{"name":"Jane","email":"jane@example.com"}`), fields))

	errs := ValidateRequired(json.RawMessage(`{"name":"Jane"}`), fields)
	require.Len(t, errs, 1)
	assert.Equal(t, "validation.requestBody.parameter.missing", errs[0].Type)

	errs = ValidateRequired(json.RawMessage(`{"name":"  ","email":null}`), fields)
	require.Len(t, errs, 2)
	assert.Equal(t, "validation.requestBody.parameter.empty", errs[0].Type)
	assert.Equal(t, "validation.requestBody.parameter.missing", errs[1].Type)

	errs = ValidateRequired(json.RawMessage(`not json`), fields)
	require.Len(t, errs, 1)
	assert.Equal(t, "validation.requestBody.invalidJSON", errs[0].Type)
}

type loginPayload struct {
	Email    *string `json:"email" required:"true"`
	Password *string `json:"password" required:"true"`
}

func TestUnmarshalBody(t *testing.T) {
	request := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"jane@example.com","password":"secret"}`))
	payload, errs, err := UnmarshalBody[loginPayload](request)
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.Equal(t, "jane@example.com", *payload.Email)

	request = httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"jane@example.com"}`))
	_, errs, err = UnmarshalBody[loginPayload](request)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "validation.requestBody.parameter.missing", errs[0].Type)

	request = httptest.NewRequest("POST", "/", strings.NewReader(`{"email":42}`))
	_, errs, err = UnmarshalBody[loginPayload](request)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "validation.requestBody.parameter.invalidType", errs[0].Type)
}

func TestWriterErrorEnvelope(t *testing.T) {
	writer := &Writer{InternalErrorHook: func(error) {}}
	recorder := httptest.NewRecorder()

	writer.WriteErrors(recorder, 404, ErrNotFound)

	assert.Equal(t, 404, recorder.Code)
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, 404, response.Status)
	require.Len(t, response.Errors, 1)
	assert.Equal(t, "generic.notFound", response.Errors[0].Type)
}
