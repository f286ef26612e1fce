package validator

// Validator checks struct values against their `validate` tags.
type Validator interface {
	// Validate returns a V10ValidationError holding every failing field.
	Validate(data any) error
	// FirstViolation returns the first failing field in declaration order,
	// or nil when data is valid.
	FirstViolation(data any) (*Violation, error)
}

// Violation describes a single field that failed validation.
type Violation struct {
	// Field is the Go struct field name, e.g. "UserName".
	Field string
	// Namespace is the dotted path from the root struct, e.g. "User.UserName".
	Namespace string
	// Tag is the rule that failed, e.g. "notblank".
	Tag string
	// Value is the offending field value.
	Value any
}
