package request

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"cemiterio_api/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

// RegisterValidators adds the custom tags used by the request DTOs to the
// validator engine behind gin's binding. Field errors are reported under
// their JSON names.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(wireFieldName)
	return v.RegisterValidation("cpf", validateCPF)
}

// wireFieldName prefers the json tag and falls back to the form tag used by
// query structs.
func wireFieldName(f reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(key), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return ""
}

// BindErrorMessage lists the fields a bind failure rejected, as
// "field: tag" pairs. It returns "" when err names no field.
func BindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			parts = append(parts, fe.Field()+": "+fe.Tag())
		}
		return strings.Join(parts, ", ")
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return typeErr.Field + ": expected " + typeErr.Type.String()
	}
	return ""
}

func validateCPF(fl validator.FieldLevel) bool {
	return IsCPF(fl.Field().String())
}

// IsCPF reports whether s holds 11 digits once punctuation is stripped.
func IsCPF(s string) bool {
	n := entities.NormalizeCPF(s)
	if len(n) != 11 {
		return false
	}
	for _, r := range n {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(entities.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
