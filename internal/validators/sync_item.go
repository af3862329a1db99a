package validators

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/MKhiriev/go-sync-governor/models"
)

// Go field names accepted by [SyncItemValidator.Validate] to scope validation.
const (
	FieldID       = "ID"
	FieldType     = "Type"
	FieldData     = "Data"
	FieldPriority = "Priority"
)

// custom validation tags
const (
	notBlankTag = "notblank"
	rawJSONTag  = "rawjson"
)

// SyncItemValidator checks sync items against their struct tags.
type SyncItemValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func NewSyncItemValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Register the english error messages for validation errors.
	english := en.New()
	uni := ut.New(english, english)
	translator, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, translator)

	// Use JSON tag names for errors instead of Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation(notBlankTag, notBlankValidation)
	_ = v.RegisterValidation(rawJSONTag, rawJSONValidation)

	registerFn := func(ut.Translator) error { return nil }
	for _, tag := range []string{notBlankTag, rawJSONTag} {
		_ = v.RegisterTranslation(tag, translator, registerFn, translateCustomErrs)
	}

	return &SyncItemValidator{validate: v, translator: translator}
}

// Validate accepts [models.NewSyncItem] and [models.SyncItem], by value or
// pointer. When fields are given only those fields are checked.
func (s *SyncItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewSyncItem, models.SyncItem:
		return s.validateStruct(ctx, value, fields...)
	case *models.NewSyncItem:
		if value == nil {
			return ErrUnsupportedType
		}
		return s.validateStruct(ctx, *value, fields...)
	case *models.SyncItem:
		if value == nil {
			return ErrUnsupportedType
		}
		return s.validateStruct(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (s *SyncItemValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		t := reflect.TypeOf(obj)
		for _, f := range fields {
			if _, ok := t.FieldByName(f); !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, f)
			}
		}
		err = s.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = s.validate.StructCtx(ctx, obj)
	}

	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return err
	}

	fldErrs := make(FieldErrors, len(vErrs))
	for _, vErr := range vErrs {
		fldErrs[vErr.Field()] = vErr.Translate(s.translator)
	}
	return fldErrs
}

func translateCustomErrs(_ ut.Translator, fe validator.FieldError) string {
	switch fe.Tag() {
	case notBlankTag:
		return "this field cannot be blank"
	case rawJSONTag:
		return "this field must be valid JSON"
	default:
		return ""
	}
}

func notBlankValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}

func rawJSONValidation(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return false
	}
	data := field.Bytes()
	if len(data) == 0 {
		return true
	}
	return json.Valid(data)
}
