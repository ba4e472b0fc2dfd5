package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalIDUnmarshal(t *testing.T) {
	cases := []struct {
		body string
		want *uint
	}{
		{`{}`, nil},
		{`{"user_id":null}`, nil},
		{`{"user_id":""}`, nil},
		{`{"user_id":"  "}`, nil},
		{`{"user_id":7}`, ptr(uint(7))},
		{`{"user_id":"7"}`, ptr(uint(7))},
	}

	for _, tc := range cases {
		var req UpdateContactRequest
		require.NoError(t, json.Unmarshal([]byte(tc.body), &req), tc.body)
		assert.Equal(t, tc.want, req.UserID.ptr(), tc.body)
	}

	for _, body := range []string{`{"user_id":"abc"}`, `{"user_id":-1}`, `{"user_id":1.5}`, `{"user_id":true}`} {
		var req UpdateContactRequest
		assert.Error(t, json.Unmarshal([]byte(body), &req), body)
	}
}

func ptr[T any](v T) *T { return &v }
