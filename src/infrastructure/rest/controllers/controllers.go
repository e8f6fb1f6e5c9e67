package controllers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	ErrContentType = errors.New("Content-Type must be application/json")
	ErrInvalidJSON = errors.New("request body must be a valid JSON object")
)

// BindJSON decodes and validates a JSON body. Validation failures come back as
// validator.ValidationErrors, everything else as one of the errors above.
func BindJSON(c *gin.Context, obj any) error {
	if !strings.EqualFold(c.ContentType(), binding.MIMEJSON) {
		return ErrContentType
	}
	if err := c.ShouldBindJSON(obj); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return ve
		}
		return ErrInvalidJSON
	}
	return nil
}
