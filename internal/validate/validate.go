package validate

import "github.com/go-playground/validator/v10"

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var v = validator.New()

// Struct validates data against its `validate` struct tags.
func Struct(data interface{}) []*ErrorResponse {
	var out []*ErrorResponse
	if err := v.Struct(data); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			out = append(out, &ErrorResponse{
				FailedField: fe.StructNamespace(),
				Tag:         fe.Tag(),
				Value:       fe.Param(),
			})
		}
	}
	return out
}
