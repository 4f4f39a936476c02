package materia

import (
	"escuela/internal/domain/materia"
)

type idParam struct {
	ID string `path:"id" doc:"Materia identifier"`
}

type listOutput struct {
	Body []materia.Materia
}

type findInput struct {
	idParam
}

type findOutput struct {
	Body materia.Materia
}

type n8nOutput struct {
	Body materia.N8nPayload
}

type createInput struct {
	Body createRequest
}

// createRequest leaves nombre optional in the schema so that a missing name
// reaches the domain validation and is reported with its message.
type createRequest struct {
	ID               string         `json:"id,omitempty" doc:"Identifier, generated when omitted"`
	Nombre           string         `json:"nombre,omitempty" doc:"Subject name" example:"Matemáticas"`
	Descripcion      *string        `json:"descripcion,omitempty" nullable:"true" doc:"Free text description"`
	PlanEstudio      map[string]any `json:"planEstudio,omitempty" doc:"Study plan"`
	PuntosEvaluacion []any          `json:"puntosEvaluacion,omitempty" doc:"Evaluation criteria"`
}

func (r createRequest) toDomain() materia.NewInput {
	in := materia.NewInput{
		ID:               r.ID,
		Nombre:           r.Nombre,
		PlanEstudio:      r.PlanEstudio,
		PuntosEvaluacion: r.PuntosEvaluacion,
	}
	if r.Descripcion != nil {
		in.Descripcion = *r.Descripcion
	}
	return in
}

type updateInput struct {
	idParam
	Body updateRequest
}

type updateRequest struct {
	Nombre           *string        `json:"nombre,omitempty" doc:"Subject name"`
	Descripcion      *string        `json:"descripcion,omitempty" nullable:"true" doc:"Free text description"`
	PlanEstudio      map[string]any `json:"planEstudio,omitempty" doc:"Study plan"`
	PuntosEvaluacion []any          `json:"puntosEvaluacion,omitempty" doc:"Evaluation criteria"`
}

func (r updateRequest) toPatch() materia.Patch {
	return materia.Patch{
		Nombre:           r.Nombre,
		Descripcion:      r.Descripcion,
		PlanEstudio:      r.PlanEstudio,
		PuntosEvaluacion: r.PuntosEvaluacion,
	}
}

type deleteInput struct {
	idParam
}

type deleteOutput struct{}
