// Package urlvalidator registers the url_kind tag for go-playground/validator.
// URLs themselves are validated by the domain constructors, which report the
// precise reason a value was rejected.
package urlvalidator

import (
	"reflect"
	"sync"

	domain "url-toolkit/internal/domain/url"

	"github.com/go-playground/validator/v10"
)

const TagKind = "url_kind"

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator with url_kind registered.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		if err := Register(validate); err != nil {
			panic("urlvalidator: " + err.Error())
		}
	})

	return validate
}

// Register adds url_kind to v. The tag accepts the names understood by
// domain.ParseKind.
func Register(v *validator.Validate) error {
	return v.RegisterValidation(TagKind, func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		_, err := domain.ParseKind(fl.Field().String())
		return err == nil
	})
}
