package access

import (
	"github.com/BruksfildServices01/crm-api/internal/httperr"
)

// EnsureOwner is the single ownership rule for owned records: only the
// principal whose id equals the record's user_id may see or change it.
// A mismatch is an authorization failure, never a not-found.
func EnsureOwner(principalID, ownerID uint, resource string) error {
	if principalID == 0 || principalID != ownerID {
		return httperr.Forbidden(resource+"_forbidden", "Unauthorized")
	}
	return nil
}
