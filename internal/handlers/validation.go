package handlers

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators adds the custom binding rules used by request DTOs to gin's validator.
// It is safe to call more than once.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not a go-playground validator")
	}
	// Validate decimals through their string form so struct tags act on the value.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	if err := v.RegisterValidation("positive_amount", positiveAmount); err != nil {
		return fmt.Errorf("failed to register positive_amount: %w", err)
	}
	return nil
}

// positiveAmount accepts values strictly greater than zero in whole centavos.
func positiveAmount(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return domain.ValidatePositiveAmount("amount", d) == nil
}
