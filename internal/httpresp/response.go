package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/crm-api/internal/pagination"
)

// ListResponse is the one envelope every list endpoint returns.
type ListResponse[T any] struct {
	Data       []T             `json:"data"`
	Pagination pagination.Meta `json:"pagination"`
}

type ItemResponse struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, ItemResponse{Data: data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, ItemResponse{Message: message, Data: data})
}

func Updated(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, ItemResponse{Message: message, Data: data})
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func List[T any](c *gin.Context, data []T, meta pagination.Meta) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:       data,
		Pagination: meta,
	})
}
