package materia

import "time"

// Patch is a partial update. A nil field is absent and keeps the stored value.
type Patch struct {
	Nombre           *string
	Descripcion      *string
	PlanEstudio      map[string]any
	PuntosEvaluacion []any
}

// IsEmpty reports whether the patch carries no field at all.
func (p Patch) IsEmpty() bool {
	return p.Nombre == nil && p.Descripcion == nil && p.PlanEstudio == nil && p.PuntosEvaluacion == nil
}

// Merge applies p over current and refreshes UpdatedAt, whether or not any
// field changed. UpdatedAt never moves backwards. The result is validated, so
// a patch that blanks the name yields a *ValidationError.
func Merge(current Materia, p Patch, now time.Time) (Materia, error) {
	next := current
	if p.Nombre != nil {
		next.Nombre = *p.Nombre
	}
	if p.Descripcion != nil {
		next.Descripcion = *p.Descripcion
	}
	if p.PlanEstudio != nil {
		next.PlanEstudio = p.PlanEstudio
	}
	if p.PuntosEvaluacion != nil {
		next.PuntosEvaluacion = p.PuntosEvaluacion
	}

	next.UpdatedAt = now
	if next.UpdatedAt.Before(current.UpdatedAt) {
		next.UpdatedAt = current.UpdatedAt
	}
	if next.UpdatedAt.Before(next.CreatedAt) {
		next.UpdatedAt = next.CreatedAt
	}

	if err := next.Validate(); err != nil {
		return Materia{}, err
	}
	return next, nil
}
