package materia

import (
	"encoding/json"
	"fmt"
	"time"

	"escuela/cmd/client/cmd/output"
	"escuela/internal/domain/materia"

	"github.com/spf13/cobra"
)

// MateriaCmd groups the subject catalog commands.
var MateriaCmd = &cobra.Command{
	Use:     "materia",
	Aliases: []string{"materias"},
	Short:   "Manage subjects",
	Long:    `List, create, update and delete subjects of the materias document.`,
}

var header = []string{"ID", "NOMBRE", "DESCRIPCION", "ACTUALIZADO"}

func row(m materia.Materia) []string {
	return []string{
		m.ID,
		output.Truncate(m.Nombre, 30),
		output.Truncate(m.Descripcion, 40),
		m.UpdatedAt.Local().Format(time.DateTime),
	}
}

func printOne(p *output.Printer, m materia.Materia) error {
	return p.Table(m, header, [][]string{row(m)})
}

func parseObject(raw string) (map[string]any, error) {
	obj := map[string]any{}
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, fmt.Errorf("plan must be a JSON object: %w", err)
	}
	return obj, nil
}

func parseArray(raw string) ([]any, error) {
	arr := []any{}
	if err := json.Unmarshal([]byte(raw), &arr); err != nil {
		return nil, fmt.Errorf("puntos must be a JSON array: %w", err)
	}
	return arr, nil
}
