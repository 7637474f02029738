package errors

import (
	stdErrors "errors"

	"go.uber.org/multierr"
)

func (f FieldError) Error() string {
	return f.Field + " " + f.Message
}

// AppendField adds a field failure to an aggregate built with multierr.
func AppendField(agg error, field, message string) error {
	return multierr.Append(agg, FieldError{Field: field, Message: message})
}

// FromFieldErrors turns an aggregate of FieldError values into one validation
// error. Non-field errors in the aggregate are reported under "body". A nil
// aggregate yields nil.
func FromFieldErrors(message string, agg error) error {
	if agg == nil {
		return nil
	}
	var fields []FieldError
	for _, err := range multierr.Errors(agg) {
		var fe FieldError
		if stdErrors.As(err, &fe) {
			fields = append(fields, fe)
			continue
		}
		fields = append(fields, FieldError{Field: "body", Message: err.Error()})
	}
	return Validation(message, fields)
}
