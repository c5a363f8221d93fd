package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	emailOrPhoneTag  = "email_or_phone"
	emailOrPhoneText = "please enter a valid email or 10-digit phone number"
	emailRegex       = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex       = regexp.MustCompile(`^\d{10}$`)

	requiredTag  = "required"
	requiredText = "this field is required"
)

// FieldError is a message attached to a single request field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// Error is returned when a request fails validation.
type Error struct {
	Err    error
	Fields []FieldError
}

func NewError(err error, fields ...FieldError) error {
	return &Error{Err: err, Fields: fields}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "validation failed"
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// FieldMap returns the field messages keyed by field name.
func (e *Error) FieldMap() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Field] = f.Error
	}
	return out
}

var ErrValidation = errors.New("validation failed")

type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func New() *Validator {
	locale := en.New()
	uni := ut.New(locale, locale)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// report JSON names instead of Go field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(emailOrPhoneTag, emailOrPhoneValidation)
	registerTranslation(validate, translator, emailOrPhoneTag, emailOrPhoneText, false)
	registerTranslation(validate, translator, requiredTag, requiredText, true)

	return &Validator{validate: validate, translator: translator}
}

func registerTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override bool) {
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, override) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// Struct validates v and converts failures into *Error.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Error: fe.Translate(v.translator)})
	}
	return NewError(ErrValidation, fields...)
}

// IsEmailOrPhone reports whether s is an email address or a 10-digit phone number.
func IsEmailOrPhone(s string) bool {
	return emailRegex.MatchString(s) || phoneRegex.MatchString(s)
}

func emailOrPhoneValidation(fl validator.FieldLevel) bool {
	return IsEmailOrPhone(fl.Field().String())
}
