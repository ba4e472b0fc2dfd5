package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/crm-api/internal/httperr"
)

func TestEnsureOwner(t *testing.T) {
	assert.NoError(t, EnsureOwner(7, 7, "contact"))

	err := EnsureOwner(7, 8, "contact")
	assert.True(t, httperr.IsKind(err, httperr.KindAuthorization))
	assert.True(t, httperr.IsBusiness(err, "contact_forbidden"))

	err = EnsureOwner(0, 0, "project")
	assert.True(t, httperr.IsBusiness(err, "project_forbidden"))
}
