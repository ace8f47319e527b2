package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, "Created", map[string]string{"id": "42"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decode(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Created", resp.Message)
	assert.NotNil(t, resp.Data)
	assert.Nil(t, resp.Error)
}

func TestErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusConflict, "Email already exists", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)

	resp := decode(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Email already exists", resp.Message)
}

func TestValidationErrorCarriesFieldMap(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"Email": "Email is required"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decode(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Validation failed", resp.Message)

	fields, ok := resp.Error.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "Email is required", fields["Email"])
}

func TestForbiddenIsNotNotFound(t *testing.T) {
	forbidden := httptest.NewRecorder()
	Forbidden(forbidden, "")

	notFound := httptest.NewRecorder()
	NotFound(notFound, "")

	assert.Equal(t, http.StatusForbidden, forbidden.Code)
	assert.Equal(t, http.StatusNotFound, notFound.Code)
	assert.NotEqual(t, forbidden.Code, notFound.Code)
}

func TestDefaultMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	Unauthorized(rec, "")
	assert.Equal(t, "Unauthorized", decode(t, rec).Message)

	rec = httptest.NewRecorder()
	InternalServerError(rec, "")
	assert.Equal(t, "Internal server error", decode(t, rec).Message)
}
