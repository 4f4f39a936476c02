package materia

import (
	"fmt"

	"escuela/cmd/client/cmd/output"
	"escuela/internal/app/client"
	"escuela/internal/domain/materia"

	"github.com/spf13/cobra"
)

var (
	createID    string
	nombre      string
	descripcion string
	plan        string
	puntos      string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a subject",
	Example: `  escuela materia create --nombre "Matemáticas"
  escuela materia create --nombre "Física" --plan '{"unidad1":"Cinemática"}' --puntos '["Examen 60%","Tareas 40%"]'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		in := materia.NewInput{
			ID:          createID,
			Nombre:      nombre,
			Descripcion: descripcion,
		}
		if plan != "" {
			if in.PlanEstudio, err = parseObject(plan); err != nil {
				return err
			}
		}
		if puntos != "" {
			if in.PuntosEvaluacion, err = parseArray(puntos); err != nil {
				return err
			}
		}

		m, err := app.Materias().Create(cmd.Context(), in)
		if err != nil {
			return fmt.Errorf("create subject: %w", err)
		}

		p := output.FromContext(cmd.Context())
		p.Message("Subject created: %s", m.ID)
		return printOne(p, m)
	},
}

func init() {
	CreateCmd.Flags().StringVar(&createID, "id", "", "identifier (generated when empty)")
	CreateCmd.Flags().StringVarP(&nombre, "nombre", "n", "", "subject name")
	CreateCmd.Flags().StringVarP(&descripcion, "descripcion", "d", "", "description")
	CreateCmd.Flags().StringVar(&plan, "plan", "", "study plan as a JSON object")
	CreateCmd.Flags().StringVar(&puntos, "puntos", "", "evaluation criteria as a JSON array")
}
