package util

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var Validate = validator.New()

type ErrorResponse struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Msg   string `json:"message"`
}

// ValidateStruct returns one message per failed field, or nil.
func ValidateStruct(s interface{}) []*ErrorResponse {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []*ErrorResponse{{Field: "", Tag: "invalid", Msg: err.Error()}}
	}

	var out []*ErrorResponse
	for _, fe := range validationErrors {
		element := ErrorResponse{Field: fe.Field(), Tag: fe.Tag()}

		switch fe.Tag() {
		case "required":
			element.Msg = fmt.Sprintf("Field '%s' is required.", element.Field)
		case "min":
			element.Msg = fmt.Sprintf("Field '%s' must be at least %s.", element.Field, fe.Param())
		case "max":
			element.Msg = fmt.Sprintf("Field '%s' must be at most %s.", element.Field, fe.Param())
		case "email":
			element.Msg = "Email format is not valid."
		case "oneof":
			element.Msg = fmt.Sprintf("Field '%s' must be one of: %s.", element.Field, fe.Param())
		case "datetime":
			element.Msg = fmt.Sprintf("Field '%s' must match the format %s.", element.Field, fe.Param())
		case "latitude", "longitude":
			element.Msg = fmt.Sprintf("Field '%s' is not a valid %s.", element.Field, fe.Tag())
		default:
			element.Msg = fmt.Sprintf("Field '%s' failed validation '%s'.", element.Field, element.Tag)
		}
		out = append(out, &element)
	}
	return out
}
