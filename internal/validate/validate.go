// Package validate checks user-supplied structs (profile, quiz options,
// API payloads) with go-playground/validator and renders English messages
// keyed by JSON field name.
package validate

import (
	"errors"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/abhisek/mentorai/internal/config"
)

var (
	once  sync.Once
	v     *govalidator.Validate
	trans ut.Translator
)

func engine() *govalidator.Validate {
	once.Do(func() {
		v = govalidator.New(govalidator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})

		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		trans, _ = uni.GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		// catalog=<name> accepts any entry of the named option list.
		_ = v.RegisterValidation("catalog", func(fl govalidator.FieldLevel) bool {
			s := fl.Field().String()
			if s == "" {
				return true
			}
			_, ok := config.Match(fl.Param(), s)
			return ok
		})
		_ = v.RegisterTranslation("catalog", trans,
			func(ut ut.Translator) error {
				return ut.Add("catalog", "{0} must be one of the known {1} values", true)
			},
			func(ut ut.Translator, fe govalidator.FieldError) string {
				msg, _ := ut.T("catalog", fe.Field(), fe.Param())
				return msg
			})
	})
	return v
}

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	return engine().Struct(s)
}

// TranslateErrors maps each failing field to a readable message. Errors
// that are not validation errors come back under "detail".
func TranslateErrors(err error) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		engine()
		for _, fe := range ve {
			fields[fe.Field()] = fe.Translate(trans)
		}
		return fields
	}

	fields["detail"] = err.Error()
	return fields
}

// Message flattens TranslateErrors into one line, fields sorted.
func Message(err error) string {
	fields := TranslateErrors(err)
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fields[k])
	}
	return strings.Join(parts, "; ")
}
