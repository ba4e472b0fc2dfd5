package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindStatus(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:             http.StatusUnprocessableEntity,
		KindAuthentication:         http.StatusUnauthorized,
		KindAuthorization:          http.StatusForbidden,
		KindNotFound:               http.StatusNotFound,
		KindNotFoundOrUnauthorized: http.StatusNotFound,
		Kind(0):                    http.StatusInternalServerError,
	}
	for kind, status := range cases {
		assert.Equal(t, status, kind.Status(), "kind %d", kind)
	}
}

func TestIsBusinessUnwraps(t *testing.T) {
	err := fmt.Errorf("update contact: %w", Forbidden("contact_forbidden", "Unauthorized"))

	assert.True(t, IsBusiness(err, "contact_forbidden"))
	assert.True(t, IsKind(err, KindAuthorization))
	assert.False(t, IsKind(err, KindNotFound))
	assert.False(t, IsBusiness(errors.New("boom"), "contact_forbidden"))
}

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("business error keeps code and fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		Respond(c, ValidationFields("validation_failed", "The given data was invalid.",
			map[string][]string{"email": {"The email field is required."}}))

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var body HTTPError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "validation_failed", body.Code)
		assert.Equal(t, []string{"The email field is required."}, body.Errors["email"])
	})

	t.Run("unknown error becomes internal_error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		Respond(c, errors.New("db down"))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "db down")
		assert.Contains(t, w.Body.String(), "internal_error")
	})
}
