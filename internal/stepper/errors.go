package stepper

import "errors"

var (
	// ErrValidation means the submit attempt left visible field errors.
	ErrValidation = errors.New("form has validation errors")
	// ErrNotLastStep means Submit was called before reaching the final step.
	ErrNotLastStep = errors.New("submit is only available on the final step")
)
