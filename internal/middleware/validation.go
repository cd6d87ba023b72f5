package middleware

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/erp_backend/internal/utils/accounting"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ErrValidatorInit is returned when the binding engine cannot be extended.
var ErrValidatorInit = errors.New("validator initialization failed")

var setupOnce sync.Once
var setupErr error

// SetupValidator registers the decimal rules used by request DTOs on gin's binding
// engine and reports field names by their json tag. Safe to call more than once.
//
//	dgte0:  decimal.Decimal >= 0
//	dscale: decimal.Decimal with at most four fractional digits
func SetupValidator() error {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			setupErr = fmt.Errorf("%w: unexpected binding engine %T", ErrValidatorInit, binding.Validator.Engine())
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		// decimal.Decimal is a struct; validate it through its string form.
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.String()
			}
			return nil
		}, decimal.Decimal{})

		if err := v.RegisterValidation("dgte0", decimalNotNegative); err != nil {
			setupErr = fmt.Errorf("%w: dgte0: %w", ErrValidatorInit, err)
			return
		}
		if err := v.RegisterValidation("dscale", decimalWithinScale); err != nil {
			setupErr = fmt.Errorf("%w: dscale: %w", ErrValidatorInit, err)
		}
	})
	return setupErr
}

func fieldDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	switch v := fl.Field().Interface().(type) {
	case decimal.Decimal:
		return v, true
	case string:
		d, err := decimal.NewFromString(v)
		return d, err == nil
	}
	return decimal.Decimal{}, false
}

func decimalNotNegative(fl validator.FieldLevel) bool {
	d, ok := fieldDecimal(fl)
	return ok && !d.IsNegative()
}

func decimalWithinScale(fl validator.FieldLevel) bool {
	d, ok := fieldDecimal(fl)
	return ok && !accounting.ExceedsMoneyScale(d)
}

// ValidationMessage flattens binding errors into a single readable message.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "dgte0":
			msgs = append(msgs, fe.Field()+" must not be negative")
		case "gt":
			msgs = append(msgs, fe.Field()+" must be greater than zero")
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		case "dscale":
			msgs = append(msgs, fmt.Sprintf("%s must have at most %d decimal places", fe.Field(), accounting.MoneyScale))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
