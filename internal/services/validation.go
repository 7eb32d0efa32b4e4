package services

import (
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/poofware/pm-dashboard/internal/models"
)

var validate = newValidator()

// newValidator teaches the validator that an invalid ID or Amount counts
// as missing for `required`.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		id, ok := field.Interface().(models.ID)
		if !ok || !id.Valid {
			return nil
		}
		return id.Value
	}, models.ID{})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		a, ok := field.Interface().(models.Amount)
		if !ok || !a.Valid {
			return nil
		}
		return a.Decimal.String()
	}, models.Amount{})
	return v
}
