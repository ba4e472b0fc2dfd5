package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/crm-api/internal/httperr"
	"github.com/BruksfildServices01/crm-api/internal/validators"
)

// pathID reads :id. A malformed id is answered as not found.
func pathID(c *gin.Context, resource string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.NotFound(c, resource+"_not_found", "Not found.")
		return 0, false
	}
	return uint(id), true
}

// queryFlag is true when the key is present and not "false" or "0".
func queryFlag(c *gin.Context, key string) bool {
	v, ok := c.GetQuery(key)
	if !ok {
		return false
	}
	return v != "false" && v != "0"
}

// respondBindFailure answers a body that failed to bind. The ownership
// check runs first so a foreign or missing record is never reported as a
// validation problem.
func respondBindFailure(c *gin.Context, err error, checkOwner func() error) {
	if ownErr := checkOwner(); ownErr != nil {
		httperr.Respond(c, ownErr)
		return
	}
	httperr.Respond(c, validators.BindError(err))
}

// optionalID is a JSON id where null and "" both mean "not sent".
// Numeric strings are accepted the same as numbers.
type optionalID struct {
	id *uint
}

func (o *optionalID) UnmarshalJSON(b []byte) error {
	o.id = nil

	raw := bytes.TrimSpace(b)
	if bytes.Equal(raw, []byte("null")) {
		return nil
	}

	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		raw = []byte(s)
	}

	n, err := strconv.ParseUint(string(raw), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", raw)
	}
	v := uint(n)
	o.id = &v
	return nil
}

func (o optionalID) ptr() *uint { return o.id }
