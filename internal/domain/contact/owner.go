package contact

import (
	"strings"

	"github.com/BruksfildServices01/crm-api/internal/models"
)

// PlaceholderPassword is the fixed credential given to users spawned from a
// named contact.
const PlaceholderPassword = "password"

// OwnerSource says where a contact's user_id comes from.
type OwnerSource int

const (
	// OwnerExistingUser links to the user named by user_id.
	OwnerExistingUser OwnerSource = iota + 1
	// OwnerNewUser mints a user from the contact's name and email.
	OwnerNewUser
	// OwnerDefault uses the principal on create and keeps the stored owner on update.
	OwnerDefault
)

func (s OwnerSource) String() string {
	switch s {
	case OwnerExistingUser:
		return "existing_user"
	case OwnerNewUser:
		return "new_user"
	case OwnerDefault:
		return "default"
	default:
		return "unknown"
	}
}

type OwnerRequest struct {
	UserID *uint
	Name   *string
}

// ResolveOwnerSource applies the priority user_id > name > default.
func ResolveOwnerSource(r OwnerRequest) OwnerSource {
	if r.UserID != nil && *r.UserID != 0 {
		return OwnerExistingUser
	}
	if Filled(r.Name) {
		return OwnerNewUser
	}
	return OwnerDefault
}

// Filled is true for a present, non-blank string.
func Filled(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// Matches is the in-process form of the list search: case-insensitive
// substring over name, email or company.
func Matches(c models.Contact, search string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}

	fields := []string{c.Email}
	if c.Name != nil {
		fields = append(fields, *c.Name)
	}
	if c.Company != nil {
		fields = append(fields, *c.Company)
	}

	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}
