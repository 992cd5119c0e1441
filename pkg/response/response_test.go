package response

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "repairlink/pkg/errors"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestErrorMapsAppErrorStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{apperrors.NotFound("Repair", nil), http.StatusNotFound, "NOT_FOUND"},
		{apperrors.BadRequest("bad input", nil), http.StatusBadRequest, "BAD_REQUEST"},
		{apperrors.Forbidden("nope", nil), http.StatusForbidden, "FORBIDDEN"},
		{apperrors.Conflict("already claimed"), http.StatusConflict, "CONFLICT"},
		{apperrors.Unauthorized("who are you", nil), http.StatusUnauthorized, "UNAUTHORIZED"},
		{apperrors.Internal("boom", nil), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		c, rec := newTestContext()
		require.NoError(t, Error(c, tc.err))
		assert.Equal(t, tc.status, rec.Code, tc.code)
		assert.Contains(t, rec.Body.String(), tc.code)
	}
}

func TestErrorHidesUnknownErrors(t *testing.T) {
	c, rec := newTestContext()
	require.NoError(t, Error(c, fmt.Errorf("firestore: connection reset")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}

func TestSuccessEnvelope(t *testing.T) {
	c, rec := newTestContext()
	require.NoError(t, Success(c, map[string]string{"hello": "world"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"hello":"world"`)
}

func TestListEnvelope(t *testing.T) {
	c, rec := newTestContext()
	require.NoError(t, List(c, []string{"a", "b"}, 2))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":2`)
	assert.Contains(t, rec.Body.String(), `"items":["a","b"]`)
}
