// Package controllers translates between HTTP and the storage layer. Every
// controller holds an injected *storage.Store and keeps no state of its own.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SankarPatnaik/dataflow-studio/middleware"
	"github.com/SankarPatnaik/dataflow-studio/validation"
)

// currentUserID returns the authenticated user id set by the identity
// middleware, falling back to the stub default.
func currentUserID(c *gin.Context) int {
	if v, ok := c.Get(middleware.UserContextKey); ok {
		if id, ok := v.(int); ok {
			return id
		}
	}
	return middleware.DefaultUserID
}

// pathID parses the named path parameter as an entity id. Non-numeric ids
// cannot match any record, so callers treat a false return as not found.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, false
	}
	return id, true
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"message": message})
}

// invalid reports a failed structural validation with one entry per
// violated field.
func invalid(c *gin.Context, message string, errs []validation.FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message, "errors": errs})
}

// badBody reports a request body that could not be decoded at all.
func badBody(c *gin.Context, message string, err error) {
	invalid(c, message, []validation.FieldError{{Message: err.Error()}})
}
