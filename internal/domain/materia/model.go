package materia

import (
	"time"

	"github.com/google/uuid"
)

// Materia is a subject of the school catalog.
type Materia struct {
	ID               string         `json:"id" validate:"required"`
	Nombre           string         `json:"nombre" validate:"notblank"`
	Descripcion      string         `json:"descripcion"`
	PlanEstudio      map[string]any `json:"planEstudio"`
	PuntosEvaluacion []any          `json:"puntosEvaluacion"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt" validate:"gtefield=CreatedAt"`
}

// NewInput carries the caller supplied fields of a new Materia. Zero values
// are replaced with defaults by New.
type NewInput struct {
	ID               string
	Nombre           string
	Descripcion      string
	PlanEstudio      map[string]any
	PuntosEvaluacion []any
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// New builds a valid Materia or returns a *ValidationError. The identifier
// and both timestamps are assigned when the input leaves them empty.
func New(in NewInput, now time.Time) (Materia, error) {
	m := Materia{
		ID:               in.ID,
		Nombre:           in.Nombre,
		Descripcion:      in.Descripcion,
		PlanEstudio:      in.PlanEstudio,
		PuntosEvaluacion: in.PuntosEvaluacion,
		CreatedAt:        in.CreatedAt,
		UpdatedAt:        in.UpdatedAt,
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.applyDefaults(now)

	if err := m.Validate(); err != nil {
		return Materia{}, err
	}
	return m, nil
}

// Validate checks the required fields and the timestamp ordering.
func (m Materia) Validate() error {
	return validateStruct(m)
}

func (m *Materia) applyDefaults(now time.Time) {
	if m.PlanEstudio == nil {
		m.PlanEstudio = map[string]any{}
	}
	if m.PuntosEvaluacion == nil {
		m.PuntosEvaluacion = []any{}
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = now
	}
}

// N8nPayload is the envelope n8n workflows expect when they pull a Materia.
type N8nPayload struct {
	JSON Materia `json:"json"`
}

func (m Materia) N8nPayload() N8nPayload {
	return N8nPayload{JSON: m}
}
