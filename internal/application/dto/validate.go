package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/panel-admin/internal/domain"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// Los mensajes usan la etiqueta "label" del campo.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			if l := f.Tag.Get("label"); l != "" {
				return l
			}
			return f.Name
		})
		// Date y Decimal se validan por su valor escalar: "" / float64.
		v.RegisterCustomTypeFunc(func(f reflect.Value) interface{} {
			d, _ := f.Interface().(entity.Date)
			return d.Input()
		}, entity.Date{})
		v.RegisterCustomTypeFunc(func(f reflect.Value) interface{} {
			d, _ := f.Interface().(decimal.Decimal)
			fl, _ := d.Float64()
			return fl
		}, decimal.Decimal{})
		validate = v
	})
	return validate
}

// ValidationError agrupa los mensajes de validación de un formulario.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Unwrap permite errors.Is(err, domain.ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return domain.ErrInvalidInput
}

// Validate valida in según sus etiquetas "validate" y devuelve *ValidationError con
// mensajes en español.
func Validate(in interface{}) error {
	err := validatorInstance().Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Messages: []string{err.Error()}}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return &ValidationError{Messages: msgs}
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es obligatorio", field)
	case "email":
		return fmt.Sprintf("%s debe ser un email válido", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s debe tener al menos %s caracteres", field, fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s debe tener al menos %s elemento(s)", field, fe.Param())
		}
		return fmt.Sprintf("%s debe ser al menos %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s no puede superar %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s debe ser mayor que %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s debe ser menor o igual que %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s debe ser mayor o igual que %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "eqfield":
		return fmt.Sprintf("%s no coincide", field)
	default:
		return fmt.Sprintf("%s es inválido", field)
	}
}
