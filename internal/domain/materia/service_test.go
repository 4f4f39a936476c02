package materia

import (
	"context"
	"errors"
	"testing"
	"time"

	"escuela/internal/infrastructure/storage"
	"escuela/internal/infrastructure/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Load(ctx context.Context) ([]Materia, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Materia), args.Error(1)
}

func (m *MockRepository) Save(ctx context.Context, items []Materia) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestService(t *testing.T, doc *memory.Document[Materia]) (Servicer, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: t0}
	return NewService(doc, slog.Default(), WithClock(clock.Now)), clock
}

func TestService_List_MissingDocument(t *testing.T) {
	doc := memory.New[Materia]()
	svc, _ := newTestService(t, doc)

	items, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
	assert.True(t, doc.Exists())

	stored, err := doc.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestService_CreateThenGet(t *testing.T) {
	doc := memory.New[Materia]()
	svc, _ := newTestService(t, doc)
	ctx := context.Background()

	created, err := svc.Create(ctx, NewInput{
		Nombre:           "Matemáticas",
		Descripcion:      "Números",
		PlanEstudio:      map[string]any{"unidad": "1"},
		PuntosEvaluacion: []any{"examen"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, t0, created.CreatedAt)

	found, ok, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, created, found)
}

func TestService_Create_InvalidData(t *testing.T) {
	existing := Materia{ID: "mat-1", Nombre: "Historia", CreatedAt: t0, UpdatedAt: t0}
	doc := memory.Seed(existing)
	svc, _ := newTestService(t, doc)

	_, err := svc.Create(context.Background(), NewInput{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, doc.Saves())

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestService_Create_DuplicateID(t *testing.T) {
	doc := memory.Seed(Materia{ID: "mat-1", Nombre: "Historia", CreatedAt: t0, UpdatedAt: t0})
	svc, _ := newTestService(t, doc)

	_, err := svc.Create(context.Background(), NewInput{ID: "mat-1", Nombre: "Geografía"})

	assert.ErrorIs(t, err, ErrInvalidData)
	assert.Equal(t, 0, doc.Saves())
}

func TestService_UnknownID(t *testing.T) {
	doc := memory.Seed(Materia{ID: "mat-1", Nombre: "Historia", CreatedAt: t0, UpdatedAt: t0})
	svc, _ := newTestService(t, doc)
	ctx := context.Background()

	_, ok, err := svc.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = svc.Update(ctx, "missing", Patch{Nombre: ptr("x")})
	require.NoError(t, err)
	assert.False(t, ok)

	removed, err := svc.Remove(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, removed)

	assert.Equal(t, 0, doc.Saves())
	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestService_Update_OnlyGivenField(t *testing.T) {
	original := Materia{
		ID:               "mat-1",
		Nombre:           "Historia",
		Descripcion:      "Antigua",
		PlanEstudio:      map[string]any{"bloques": "3"},
		PuntosEvaluacion: []any{"ensayo"},
		CreatedAt:        t0,
		UpdatedAt:        t0,
	}
	doc := memory.Seed(original)
	svc, clock := newTestService(t, doc)
	clock.Advance(time.Second)

	updated, ok, err := svc.Update(context.Background(), "mat-1", Patch{Descripcion: ptr("Moderna")})
	require.NoError(t, err)
	require.True(t, ok)

	want := original
	want.Descripcion = "Moderna"
	want.UpdatedAt = t0.Add(time.Second)
	assert.Equal(t, want, updated)
	assert.Equal(t, 1, doc.Saves())

	found, _, err := svc.Get(context.Background(), "mat-1")
	require.NoError(t, err)
	assert.Equal(t, want, found)
}

func TestService_Update_ValidationFailure(t *testing.T) {
	doc := memory.Seed(Materia{ID: "mat-1", Nombre: "Historia", CreatedAt: t0, UpdatedAt: t0})
	svc, _ := newTestService(t, doc)

	_, ok, err := svc.Update(context.Background(), "mat-1", Patch{Nombre: ptr("")})

	assert.True(t, ok)
	assert.ErrorIs(t, err, ErrInvalidData)
	assert.Equal(t, 0, doc.Saves())
}

func TestService_Remove(t *testing.T) {
	doc := memory.Seed(
		Materia{ID: "mat-1", Nombre: "Historia", CreatedAt: t0, UpdatedAt: t0},
		Materia{ID: "mat-2", Nombre: "Física", CreatedAt: t0, UpdatedAt: t0},
	)
	svc, _ := newTestService(t, doc)
	ctx := context.Background()

	removed, err := svc.Remove(ctx, "mat-1")
	require.NoError(t, err)
	assert.True(t, removed)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "mat-2", items[0].ID)

	_, ok, err := svc.Get(ctx, "mat-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_MateriaLifecycle(t *testing.T) {
	doc := memory.New[Materia]()
	svc, clock := newTestService(t, doc)
	ctx := context.Background()

	created, err := svc.Create(ctx, NewInput{Nombre: "Matemáticas"})
	require.NoError(t, err)
	assert.Equal(t, t0, created.CreatedAt)

	clock.Advance(10 * time.Millisecond)
	updated, ok, err := svc.Update(ctx, created.ID, Patch{Descripcion: ptr("Álgebra")})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Matemáticas", updated.Nombre)
	assert.Equal(t, "Álgebra", updated.Descripcion)
	assert.True(t, updated.UpdatedAt.After(created.CreatedAt))

	removed, err := svc.Remove(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	_, ok, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_LoadError(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())
	ctx := context.Background()

	repo.On("Load", mock.Anything).Return(nil, storage.ErrMalformedDocument)

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, storage.ErrMalformedDocument)

	_, _, err = svc.Get(ctx, "mat-1")
	assert.ErrorIs(t, err, storage.ErrMalformedDocument)

	_, err = svc.Create(ctx, NewInput{Nombre: "Arte"})
	assert.ErrorIs(t, err, storage.ErrMalformedDocument)

	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_SaveError(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())
	writeErr := errors.Join(storage.ErrIO, errors.New("disk full"))

	repo.On("Load", mock.Anything).Return([]Materia{}, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(writeErr)

	_, err := svc.Create(context.Background(), NewInput{Nombre: "Arte"})

	assert.ErrorIs(t, err, storage.ErrIO)
	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
	repo.AssertExpectations(t)
}

func TestService_CorruptRecord(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())

	repo.On("Load", mock.Anything).Return([]Materia{{ID: "mat-1"}}, nil)

	_, err := svc.List(context.Background())

	assert.ErrorIs(t, err, ErrCorruptRecord)
	assert.NotErrorIs(t, err, ErrInvalidData)
}
