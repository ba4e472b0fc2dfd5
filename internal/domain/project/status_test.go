package project

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/crm-api/internal/httperr"
	"github.com/BruksfildServices01/crm-api/internal/models"
)

func TestStatusText(t *testing.T) {
	assert.Equal(t, "To Do", StatusText(1))
	assert.Equal(t, "In Progress", StatusText(2))
	assert.Equal(t, "Completed", StatusText(3))
	assert.Equal(t, "Unknown", StatusText(99))
	assert.Equal(t, "Unknown", StatusText(0))
	assert.Equal(t, "Unknown", StatusText(-1))
}

func TestValidateStatus(t *testing.T) {
	for _, s := range Statuses {
		assert.NoError(t, ValidateStatus(int(s)))
	}

	for _, s := range []int{0, 4, 99, -3} {
		err := ValidateStatus(s)
		assert.True(t, httperr.IsKind(err, httperr.KindValidation), "status %d", s)
	}
}

func TestMatches(t *testing.T) {
	desc := "Website rebuild for Acme"
	p := models.Project{Name: "Portal", Description: &desc, Status: int(StatusInProgress)}

	inProgress := int(StatusInProgress)
	done := int(StatusCompleted)

	assert.True(t, Matches(p, "", nil))
	assert.True(t, Matches(p, "ACME", nil))
	assert.True(t, Matches(p, "portal", &inProgress))
	assert.False(t, Matches(p, "acme", &done))
	assert.False(t, Matches(p, "globex", nil))

	assert.False(t, Matches(models.Project{Name: "Other"}, "acme", nil))
}
