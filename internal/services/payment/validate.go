package payment

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// amountPattern accepts plain positive decimals: no sign, exponent or
// leading zeros.
var amountPattern = regexp.MustCompile(`^(0|[1-9][0-9]*)(\.[0-9]+)?$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		return validAmount(fl.Field().String())
	})
	return v
}

func validAmount(s string) bool {
	if !amountPattern.MatchString(s) {
		return false
	}
	return strings.Trim(s, "0.") != ""
}

// describe turns validator output into one line naming each failed field.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fe.Field()+": "+fe.Tag()+"="+fe.Param())
		} else {
			msgs = append(msgs, fe.Field()+": "+fe.Tag())
		}
	}
	return strings.Join(msgs, ", ")
}
