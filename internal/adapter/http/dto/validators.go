package dto

import (
	"html"
	"reflect"
	"strings"

	"did-payment-splitter/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/holiman/uint256"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("did", validateBytes32)
		_ = v.RegisterValidation("bytes32", validateBytes32)
		_ = v.RegisterValidation("address", validateAddress)
		_ = v.RegisterValidation("uint256", validateUint256)
	}
}

// validateBytes32 accepts a 0x-prefixed 32-byte hex string.
func validateBytes32(fl validator.FieldLevel) bool {
	_, err := domain.ParseDID(fl.Field().String())
	return err == nil
}

// validateAddress accepts a 0x-prefixed 20-byte hex string.
func validateAddress(fl validator.FieldLevel) bool {
	_, err := domain.ParsePrincipal(fl.Field().String())
	return err == nil
}

// validateUint256 accepts a base-10 integer in [0, 2^256).
func validateUint256(fl validator.FieldLevel) bool {
	_, err := uint256.FromDecimal(strings.TrimSpace(fl.Field().String()))
	return err == nil
}

// SanitizeStruct trims whitespace and HTML-escapes every exported string
// field (including *string) of a struct pointer.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				s := sanitize(elem.String())
				elem.SetString(s)
			}
		}
	}
}

func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
