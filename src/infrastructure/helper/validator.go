package helper

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	logger "go-scheduler-api/src/infrastructure/logger"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// NotBlankTag rejects strings that are empty once surrounding whitespace is removed.
const NotBlankTag = "notblank"

type Validator interface {
	GetErrorMsg(fe validator.FieldError) string
}

type validatorHelper struct {
	Logger *logger.Logger
}

var registerOnce sync.Once

// NewValidator returns the field error translator and makes sure the custom
// binding rules are registered on gin's validator engine.
func NewValidator(loggerInstance *logger.Logger) Validator {
	registerOnce.Do(func() {
		if err := RegisterValidations(binding.Validator.Engine()); err != nil {
			loggerInstance.Error("Couldn't register custom validations", zap.Error(err))
		}
	})
	return &validatorHelper{Logger: loggerInstance}
}

// RegisterValidations adds the custom rules to a validator engine.
func RegisterValidations(engine any) error {
	v, ok := engine.(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	return v.RegisterValidation(NotBlankTag, NotBlank)
}

// NotBlank is the validator.Func behind the notblank tag. Non-string fields always pass.
func NotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

func (v *validatorHelper) GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case NotBlankTag:
		return "This field must not be empty"
	case "email":
		return "Invalid email"
	case "max":
		return "Should be at most " + fe.Param() + " characters"
	case "min":
		return "Should be at least " + fe.Param()
	case "oneof":
		return "Should be one of: " + fe.Param()
	}
	v.Logger.Debug("No message for validation tag", zap.String("tag", fe.Tag()))
	return "Invalid value"
}
