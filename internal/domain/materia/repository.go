package materia

import "context"

// Repository is the whole-document storage behind the Service. Load returns
// the complete collection; Save replaces it.
type Repository interface {
	Load(ctx context.Context) ([]Materia, error)
	Save(ctx context.Context, items []Materia) error
}
