package goerror

import "fmt"

// NullEntityError reports that no record was supplied at all.
type NullEntityError struct {
	Entity string
}

func (e *NullEntityError) Error() string {
	return e.Entity + " is null"
}

// InvalidFieldError reports the first field of a record that holds a
// default, empty or otherwise unacceptable value.
type InvalidFieldError struct {
	Entity string
	Field  string
	Value  any
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid %s, parameter name: %s, parameter value: %v", e.Entity, e.Field, e.Value)
}

// NotFoundError reports that no stored record has the requested id.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("couldn't find %s with id: %v", e.Entity, e.ID)
}

// DependencyError reports that a field references a record that does not exist.
type DependencyError struct {
	Entity string
	Field  string
	ID     any
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("invalid %s reference, %s: %v does not exist", e.Entity, e.Field, e.ID)
}
