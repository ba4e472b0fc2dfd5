package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/crm-api/internal/models"
)

func ptr[T any](v T) *T { return &v }

func TestResolveOwnerSource(t *testing.T) {
	cases := []struct {
		name string
		in   OwnerRequest
		want OwnerSource
	}{
		{"user id wins over name", OwnerRequest{UserID: ptr(uint(4)), Name: ptr("Alice")}, OwnerExistingUser},
		{"user id alone", OwnerRequest{UserID: ptr(uint(4))}, OwnerExistingUser},
		{"zero user id is not filled", OwnerRequest{UserID: ptr(uint(0)), Name: ptr("Alice")}, OwnerNewUser},
		{"name alone", OwnerRequest{Name: ptr("Alice")}, OwnerNewUser},
		{"blank name is not filled", OwnerRequest{Name: ptr("   ")}, OwnerDefault},
		{"nothing", OwnerRequest{}, OwnerDefault},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveOwnerSource(tc.in))
		})
	}
}

func TestOwnerSourceString(t *testing.T) {
	assert.Equal(t, "existing_user", OwnerExistingUser.String())
	assert.Equal(t, "new_user", OwnerNewUser.String())
	assert.Equal(t, "default", OwnerDefault.String())
	assert.Equal(t, "unknown", OwnerSource(0).String())
}

func TestMatches(t *testing.T) {
	c := models.Contact{Name: ptr("Jane Roe"), Email: "jane@globex.test", Company: ptr("ACME Corp")}

	assert.True(t, Matches(c, ""))
	assert.True(t, Matches(c, "acme"))
	assert.True(t, Matches(c, "GLOBEX"))
	assert.True(t, Matches(c, "roe"))
	assert.False(t, Matches(c, "initech"))

	nameless := models.Contact{Email: "x@y.test"}
	assert.False(t, Matches(nameless, "acme"))
}
