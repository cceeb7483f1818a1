// Package response defines the JSON body shape shared by every handler.
// The numeric status is mirrored inside the body next to the transport
// status code.
package response

import (
	"net/http"
	"nutristore/catalog-api/pagination"

	"github.com/gin-gonic/gin"
)

type Envelope struct {
	Success    bool                   `json:"success,omitempty"`
	Message    string                 `json:"message"`
	Status     int                    `json:"status"`
	Data       any                    `json:"data,omitempty"`
	Errors     any                    `json:"errors,omitempty"`
	Pagination *pagination.Pagination `json:"pagination,omitempty"`
}

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{
		Message: message,
		Status:  http.StatusOK,
		Data:    data,
	})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{
		Message: message,
		Status:  http.StatusCreated,
		Data:    data,
	})
}

// List writes a paged collection with its pagination metadata attached.
func List(c *gin.Context, message string, data any, pg *pagination.Pagination) {
	c.JSON(http.StatusOK, Envelope{
		Message:    message,
		Status:     http.StatusOK,
		Data:       data,
		Pagination: pg,
	})
}

func Error(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{
		Message: message,
		Status:  status,
	})
}

// ValidationError maps a failed input check to a 422 body.
func ValidationError(c *gin.Context, err error) {
	Error(c, http.StatusUnprocessableEntity, err.Error())
}
