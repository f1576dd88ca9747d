package validatorx

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/wpangestu/contacts-api/constant"
	"github.com/wpangestu/contacts-api/utils/errors"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	// report fields by their json name so envelope messages match the wire format
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct validates a struct using go-playground/validator.
// Fields are checked in declaration order; the first failure becomes
// the error message.
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(gpvalidator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return errors.SetCustomError(constant.ErrValidation)
	}
	return errors.SetCustomErrorMessage(constant.ErrValidation, fieldMessage(fieldErrs[0]))
}

func fieldMessage(fe gpvalidator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gt":
		if fe.Param() == "0" {
			return fmt.Sprintf("%s must be a positive number", field)
		}
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is not valid", field)
	}
}
