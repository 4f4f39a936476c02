package materia

import (
	"fmt"

	"escuela/internal/utils/validation"
)

func validateStruct(s any) error {
	errs := validation.Struct(s)
	if len(errs) == 0 {
		return nil
	}

	fe := errs[0]
	return &ValidationError{Field: fe.Field, Message: fieldMessage(fe)}
}

func fieldMessage(fe validation.FieldError) string {
	switch fe.Tag {
	case "required", "notblank":
		if fe.Field == "nombre" {
			return "El nombre de la materia es obligatorio"
		}
		return fmt.Sprintf("%s es obligatorio", fe.Field)
	case "gtefield":
		return fmt.Sprintf("%s no puede ser anterior a %s", fe.Field, fe.Param)
	default:
		return fmt.Sprintf("%s no es válido", fe.Field)
	}
}
