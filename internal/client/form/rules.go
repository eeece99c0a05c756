package form

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Field names a form input. Values match the wire field names.
type Field string

const (
	FieldName        Field = "name"
	FieldPosterPath  Field = "posterPath"
	FieldDescription Field = "description"
	FieldRating      Field = "rating"
	FieldStatus      Field = "status"
)

// Fields lists every input in display order.
var Fields = []Field{FieldName, FieldPosterPath, FieldDescription, FieldRating, FieldStatus}

// ParseField maps user input to a Field, ignoring case.
func ParseField(s string) (Field, bool) {
	for _, f := range Fields {
		if strings.EqualFold(string(f), strings.TrimSpace(s)) {
			return f, true
		}
	}
	return "", false
}

const (
	msgRequired = "This field is required"
	msgImageURL = "Must be a valid image URL (jpg, jpeg, png, gif, webp)"
	msgInvalid  = "Invalid field"
)

var imageURLPattern = regexp.MustCompile(`(?i)^https?://.+\.(jpg|jpeg|png|gif|webp)$`)

// IsImageURL reports whether s looks like an http(s) link to an image file.
func IsImageURL(s string) bool {
	return imageURLPattern.MatchString(s)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(sf reflect.StructField) string {
		name, _, _ := strings.Cut(sf.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return sf.Name
		}
		return name
	})

	if err := v.RegisterValidation("imageurl", func(fl validator.FieldLevel) bool {
		return IsImageURL(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// check validates d and returns the first failing rule of every invalid
// field, rendered as a message.
func check(d Draft) map[Field]string {
	out := make(map[Field]string)

	err := validate.Struct(d)
	if err == nil {
		return out
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Struct only fails this way on programmer error.
		panic(err)
	}
	for _, fe := range verrs {
		f := Field(fe.Field())
		if _, seen := out[f]; !seen {
			out[f] = message(fe)
		}
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	case "imageurl":
		return msgImageURL
	case "min", "max":
		label := "Minimum"
		if fe.Tag() == "max" {
			label = "Maximum"
		}
		if fe.Kind() == reflect.String {
			n := utf8.RuneCountInString(reflect.ValueOf(fe.Value()).String())
			return fmt.Sprintf("%s %s characters (current: %d)", label, fe.Param(), n)
		}
		return fmt.Sprintf("%s value is %s", label, fe.Param())
	}
	return msgInvalid
}
