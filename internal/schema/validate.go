package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON name so locations match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkConstraints runs the validate tags of rec and records one detail per
// violated constraint. Fields that already failed coercion are skipped.
func checkConstraints(rec any, o *object) {
	err := validate.Struct(rec)
	if err == nil {
		return
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		o.errs.add(ErrorDetail{Type: typeValueError, Loc: o.loc, Msg: "Value error, " + err.Error(), Input: o.raw})
		return
	}
	for _, fe := range fieldErrs {
		if o.failed[fe.Field()] {
			continue
		}
		o.failed[fe.Field()] = true
		o.errs.add(constraintDetail(fe, at(o.loc, fe.Field()), o.fields[fe.Field()]))
	}
}

func constraintDetail(fe validator.FieldError, loc []any, input any) ErrorDetail {
	param := json.Number(fe.Param())
	switch fe.Tag() {
	case "max":
		if fe.Kind() == reflect.String {
			return ErrorDetail{
				Type:  typeStringTooLong,
				Loc:   loc,
				Msg:   fmt.Sprintf("String should have at most %s characters", fe.Param()),
				Input: input,
				Ctx:   map[string]any{"max_length": param},
			}
		}
		return ErrorDetail{
			Type:  "less_than_equal",
			Loc:   loc,
			Msg:   fmt.Sprintf("Input should be less than or equal to %s", fe.Param()),
			Input: input,
			Ctx:   map[string]any{"le": param},
		}
	case "gte":
		return ErrorDetail{
			Type:  typeGreaterThanEqual,
			Loc:   loc,
			Msg:   fmt.Sprintf("Input should be greater than or equal to %s", fe.Param()),
			Input: input,
			Ctx:   map[string]any{"ge": param},
		}
	default:
		return ErrorDetail{
			Type:  typeValueError,
			Loc:   loc,
			Msg:   fmt.Sprintf("Value error, failed on the '%s' rule", fe.Tag()),
			Input: input,
		}
	}
}
