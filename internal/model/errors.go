package model

import "fmt"

type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func ErrFieldRequired(field string) error {
	return &ValidationError{Field: field, Msg: "is required"}
}

func ErrBadEnum(field, got string) error {
	return &ValidationError{Field: field, Msg: fmt.Sprintf("invalid value %q", got)}
}
