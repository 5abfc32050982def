package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const (
	MaxCorreoLength     = 25
	MaxContrasenaLength = 10
)

var correoPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
var duiPattern = regexp.MustCompile(`^[0-9]{8}-[0-9]$`)

// fieldMessages maps "<json field>.<tag>" to the text shown next to the field.
var fieldMessages = map[string]string{
	"correo.required":     "El correo es obligatorio.",
	"correo.max":          fmt.Sprintf("El correo no puede exceder %d caracteres.", MaxCorreoLength),
	"correo.correo":       "Ingrese un correo válido.",
	"usuario.required":    "El usuario es obligatorio.",
	"usuario.max":         fmt.Sprintf("El usuario no puede exceder %d caracteres.", MaxCorreoLength),
	"usuario.correo":      "Ingrese un correo válido.",
	"contrasena.required": "La contraseña es obligatoria.",
	"contrasena.max":      fmt.Sprintf("La contraseña no puede exceder %d caracteres.", MaxContrasenaLength),
	"dui.required":        "El DUI es obligatorio.",
	"dui.dui":             "El DUI debe tener el formato 00000000-0.",
	"numero.required":     "El número de cuenta es obligatorio.",
	"tipoUsuario.oneof":   "El tipo de usuario debe ser cliente o administrador.",
}

// ValidationErrors holds one message per invalid field, keyed by JSON name.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+v[k])
	}
	return strings.Join(parts, "; ")
}

// Fields returns the invalid field names in a stable order.
func (v ValidationErrors) Fields() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func formValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("correo", func(fl validator.FieldLevel) bool {
			return correoPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("dui", func(fl validator.FieldLevel) bool {
			return duiPattern.MatchString(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// validateStruct runs the struct tags and folds failures into ValidationErrors.
// Only the first failing rule of each field is reported.
func validateStruct(s any) error {
	err := formValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := ValidationErrors{}
	for _, fe := range fieldErrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		msg, ok := fieldMessages[field+"."+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("El campo %s no es válido.", field)
		}
		out[field] = msg
	}
	return out
}

// IsValidDUI reports whether s has the 00000000-0 shape.
func IsValidDUI(s string) bool {
	return duiPattern.MatchString(s)
}
