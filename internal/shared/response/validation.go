package response

import (
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FromValidationErrors flattens an ozzo validation.Errors into the wire
// shape. Non-validation errors become a single entry with an empty param.
// Entries are sorted by param so the output is deterministic.
func FromValidationErrors(err error) []FieldError {
	if err == nil {
		return nil
	}

	errs, ok := err.(validation.Errors)
	if !ok {
		return []FieldError{{Msg: err.Error(), Param: "", Location: "body"}}
	}

	fieldErrors := make([]FieldError, 0, len(errs))
	for param, fieldErr := range errs {
		fieldErrors = append(fieldErrors, FieldError{
			Msg:      fieldErr.Error(),
			Param:    param,
			Location: "body",
		})
	}

	sort.Slice(fieldErrors, func(i, j int) bool {
		return fieldErrors[i].Param < fieldErrors[j].Param
	})

	return fieldErrors
}
