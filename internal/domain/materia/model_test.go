package materia

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

func TestNew(t *testing.T) {
	t.Run("assigns id, defaults and timestamps", func(t *testing.T) {
		m, err := New(NewInput{Nombre: "Matemáticas"}, t0)
		require.NoError(t, err)

		_, parseErr := uuid.Parse(m.ID)
		assert.NoError(t, parseErr)
		assert.Equal(t, "Matemáticas", m.Nombre)
		assert.Equal(t, "", m.Descripcion)
		assert.Equal(t, map[string]any{}, m.PlanEstudio)
		assert.Equal(t, []any{}, m.PuntosEvaluacion)
		assert.Equal(t, t0, m.CreatedAt)
		assert.Equal(t, t0, m.UpdatedAt)
	})

	t.Run("keeps supplied id and timestamps", func(t *testing.T) {
		created := t0.Add(-time.Hour)
		m, err := New(NewInput{ID: "mat-1", Nombre: "Historia", CreatedAt: created, UpdatedAt: t0}, t0.Add(time.Hour))
		require.NoError(t, err)

		assert.Equal(t, "mat-1", m.ID)
		assert.Equal(t, created, m.CreatedAt)
		assert.Equal(t, t0, m.UpdatedAt)
	})

	t.Run("missing nombre", func(t *testing.T) {
		_, err := New(NewInput{}, t0)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "nombre", verr.Field)
		assert.True(t, errors.Is(err, ErrInvalidData))
	})

	t.Run("updatedAt before createdAt", func(t *testing.T) {
		_, err := New(NewInput{Nombre: "Física", CreatedAt: t0, UpdatedAt: t0.Add(-time.Second)}, t0)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "updatedAt", verr.Field)
	})
}

func TestMerge(t *testing.T) {
	current := Materia{
		ID:               "mat-1",
		Nombre:           "Matemáticas",
		Descripcion:      "Números",
		PlanEstudio:      map[string]any{"unidades": "4"},
		PuntosEvaluacion: []any{"examen"},
		CreatedAt:        t0,
		UpdatedAt:        t0,
	}
	later := t0.Add(time.Minute)

	tests := []struct {
		name  string
		patch Patch
		now   time.Time
		want  func(m Materia) Materia
	}{
		{
			name:  "only descripcion",
			patch: Patch{Descripcion: ptr("Álgebra")},
			now:   later,
			want: func(m Materia) Materia {
				m.Descripcion = "Álgebra"
				m.UpdatedAt = later
				return m
			},
		},
		{
			name:  "empty patch still refreshes updatedAt",
			patch: Patch{},
			now:   later,
			want: func(m Materia) Materia {
				m.UpdatedAt = later
				return m
			},
		},
		{
			name: "every field",
			patch: Patch{
				Nombre:           ptr("Matemáticas II"),
				Descripcion:      ptr(""),
				PlanEstudio:      map[string]any{},
				PuntosEvaluacion: []any{"proyecto", "examen"},
			},
			now: later,
			want: func(m Materia) Materia {
				m.Nombre = "Matemáticas II"
				m.Descripcion = ""
				m.PlanEstudio = map[string]any{}
				m.PuntosEvaluacion = []any{"proyecto", "examen"}
				m.UpdatedAt = later
				return m
			},
		},
		{
			name:  "clock behind keeps previous updatedAt",
			patch: Patch{Descripcion: ptr("x")},
			now:   t0.Add(-time.Hour),
			want: func(m Materia) Materia {
				m.Descripcion = "x"
				return m
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Merge(current, tt.patch, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.want(current), got)
			assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
		})
	}

	t.Run("blank nombre is rejected", func(t *testing.T) {
		for _, blank := range []string{"", "   "} {
			_, err := Merge(current, Patch{Nombre: ptr(blank)}, later)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "nombre", verr.Field)
		}
	})
}

func TestPatch_IsEmpty(t *testing.T) {
	assert.True(t, Patch{}.IsEmpty())
	assert.False(t, Patch{Nombre: ptr("a")}.IsEmpty())
	assert.False(t, Patch{PuntosEvaluacion: []any{}}.IsEmpty())
}

func TestMateria_N8nPayload(t *testing.T) {
	m, err := New(NewInput{ID: "mat-9", Nombre: "Química"}, t0)
	require.NoError(t, err)

	assert.Equal(t, N8nPayload{JSON: m}, m.N8nPayload())
}

func ptr[T any](v T) *T {
	return &v
}
