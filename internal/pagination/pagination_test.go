package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewMeta(t *testing.T) {
	assert.Equal(t, Meta{CurrentPage: 1, LastPage: 1, PerPage: 15, Total: 0}, NewMeta(Params{Page: 1, PerPage: 15}, 0))
	assert.Equal(t, 1, NewMeta(Params{Page: 1, PerPage: 15}, 15).LastPage)
	assert.Equal(t, 2, NewMeta(Params{Page: 1, PerPage: 15}, 16).LastPage)
}

func TestWindow(t *testing.T) {
	start, end := Params{Page: 2, PerPage: 10}.Window(25)
	assert.Equal(t, 10, start)
	assert.Equal(t, 20, end)

	start, end = Params{Page: 3, PerPage: 10}.Window(25)
	assert.Equal(t, 20, start)
	assert.Equal(t, 25, end)

	start, end = Params{Page: 9, PerPage: 10}.Window(25)
	assert.Equal(t, 25, start)
	assert.Equal(t, 25, end)
}

func TestFromQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	parse := func(query string) Params {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?"+query, nil)
		return FromQuery(c, 15)
	}

	assert.Equal(t, Params{Page: 1, PerPage: 15}, parse(""))
	assert.Equal(t, Params{Page: 3, PerPage: 50}, parse("page=3&per_page=50"))
	assert.Equal(t, Params{Page: 1, PerPage: 15}, parse("page=-2&per_page=5000"))
	assert.Equal(t, Params{Page: 1, PerPage: 15}, parse("page=abc&per_page=x"))
}
