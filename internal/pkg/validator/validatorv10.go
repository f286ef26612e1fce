package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/shandysiswandi/campus/internal/pkg/strcase"
)

// ErrTranslatorNotFound indicates the requested translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

// V10Validator implements Validator using go-playground/validator v10.
type V10Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// V10ValidationError is a field-to-message map returned when validation fails.
//
// Keys are field names in snake_case to match typical JSON conventions.
type V10ValidationError map[string]string

// Error implements the error interface.
func (vs V10ValidationError) Error() string {
	if len(vs) == 0 {
		return "validation error"
	}

	b, err := json.Marshal(vs)
	if err != nil {
		return fmt.Sprintf("validation error (failed to marshal: %v)", err)
	}
	return string(b)
}

// Values returns the field error map.
func (vs V10ValidationError) Values() map[string]string {
	return vs
}

// NewV10Validator constructs a V10Validator with English translations and custom rules.
func NewV10Validator() (*V10Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	if err := v10CustomValidation(validate, enTrans); err != nil {
		return nil, err
	}

	return &V10Validator{
		validate:   validate,
		translator: enTrans,
	}, nil
}

// Validate validates a struct and returns a V10ValidationError on failure.
func (v *V10Validator) Validate(data any) error {
	validateErrs, err := v.run(data)
	if err != nil || len(validateErrs) == 0 {
		return err
	}

	errV10 := make(V10ValidationError, len(validateErrs))
	for _, fe := range validateErrs {
		errV10[strcase.ToLowerSnake(fe.Field())] = fe.Translate(v.translator)
	}

	return errV10
}

// FirstViolation validates a struct and reports only the first failing field.
//
// go-playground walks fields in declaration order, so the first entry of
// ValidationErrors is the first field declared on the struct that failed.
func (v *V10Validator) FirstViolation(data any) (*Violation, error) {
	validateErrs, err := v.run(data)
	if err != nil || len(validateErrs) == 0 {
		return nil, err
	}

	fe := validateErrs[0]
	return &Violation{
		Field:     fe.StructField(),
		Namespace: fe.StructNamespace(),
		Tag:       fe.Tag(),
		Value:     fe.Value(),
	}, nil
}

func (v *V10Validator) run(data any) (validator.ValidationErrors, error) {
	err := v.validate.Struct(data)
	if err == nil {
		return nil, nil
	}

	var validateErrs validator.ValidationErrors
	if !errors.As(err, &validateErrs) {
		return nil, err
	}

	return validateErrs, nil
}

func v10CustomValidation(validate *validator.Validate, enTrans ut.Translator) error {
	// notblank rejects "", whitespace-only strings and zero values of other kinds.
	if err := validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		if s, ok := fl.Field().Interface().(string); ok {
			return strings.TrimSpace(s) != ""
		}

		return !fl.Field().IsZero()
	}); err != nil {
		return err
	}

	return validate.RegisterTranslation("notblank", enTrans,
		func(ut ut.Translator) error {
			return ut.Add("notblank", "{0} must not be blank", false)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, err := ut.T(fe.Tag(), fe.Field())
			if err != nil {
				slog.Warn("warning: error translating", "FieldError", fe, "error", err)
				return fe.Error()
			}

			return t
		},
	)
}
