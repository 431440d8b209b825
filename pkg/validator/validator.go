package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// youtubePrefix is the shape every recommendation link must start with.
const youtubePrefix = "https://www.youtube.com/"

// Validator wraps go-playground validator with the service's custom tags.
type Validator struct {
	validate *validator.Validate
}

// FieldError describes a single invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// Error is returned by Struct when at least one field is invalid.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

// New creates a new validator instance.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json names instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("youtube", func(fl validator.FieldLevel) bool {
		return strings.HasPrefix(fl.Field().String(), youtubePrefix)
	})

	return &Validator{validate: v}
}

// Struct validates a struct and returns *Error listing every invalid field.
func (v *Validator) Struct(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	res := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		res.Fields = append(res.Fields, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: msgForTag(fe),
		})
	}
	return res
}

func msgForTag(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "youtube":
		return fmt.Sprintf("%s must be a link starting with %s", field, youtubePrefix)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation for tag: %s", field, fe.Tag())
	}
}
