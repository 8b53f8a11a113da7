// Package validator wraps go-playground/validator with the project's error
// format and the custom rules used for payment requests.
//
// Besides the stock tags it understands decimal.Decimal fields and adds the
// "btc_amount" tag: a strictly positive amount with at most eight fractional
// digits (one satoshi).
package validator

import (
	"errors"
	"fmt"
	"reflect"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
var ErrValidationFailed = errors.New("struct validation failed")

// maxBTCDecimals is the number of fractional digits of one satoshi.
const maxBTCDecimals = 8

// errStringFormat describes a single field failure.
//
// Example: "'RequiredAmount': value '0' does not meet the requirements for the 'btc_amount' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

var validator *gvalidator.Validate

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	// decimal.Decimal is a struct; expose its canonical string so stock
	// tags like "required" see a scalar.
	validator.RegisterCustomTypeFunc(func(v reflect.Value) any {
		d, ok := v.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}
		return d.String()
	}, decimal.Decimal{})

	if err := validator.RegisterValidation("btc_amount", validateBTCAmount); err != nil {
		panic(err)
	}
}

// IsBTCAmount reports whether d is a positive amount representable in satoshis.
func IsBTCAmount(d decimal.Decimal) bool {
	return d.IsPositive() && d.Equal(d.Truncate(maxBTCDecimals))
}

// validateBTCAmount backs the "btc_amount" tag. The field arrives as the
// string produced by the decimal type func.
func validateBTCAmount(fl gvalidator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return false
	}

	return IsBTCAmount(d)
}

// formatError turns validator field errors into a chain rooted at
// ErrValidationFailed. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` struct tags.
//
//	type WatchRequest struct {
//	    Address        string          `validate:"required"`
//	    RequiredAmount decimal.Decimal `validate:"btc_amount"`
//	}
//
//	if err := validator.Validate(req); errors.Is(err, validator.ErrValidationFailed) {
//	    // reject the request
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
